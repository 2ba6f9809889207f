package encoding

// AppendVarint appends a variable-length encoded uint64 to buf
func AppendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// ReadVarint reads a variable-length encoded uint64 from data
// Returns the value and number of bytes read (0 if truncated or overflowing)
func ReadVarint(data []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, b := range data {
		if i == 10 {
			return 0, 0
		}
		if b < 0x80 {
			return x | uint64(b)<<s, i + 1
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, 0
}

// AppendBytes appends len(b) as a varint followed by b
func AppendBytes(buf, b []byte) []byte {
	buf = AppendVarint(buf, uint64(len(b)))
	return append(buf, b...)
}

// ReadBytes reads a varint length-prefixed byte slice.
// Returns the slice (aliasing data), the number of bytes consumed, and false if truncated.
func ReadBytes(data []byte) ([]byte, int, bool) {
	n, size := ReadVarint(data)
	if size == 0 {
		return nil, 0, false
	}
	if uint64(len(data)-size) < n {
		return nil, 0, false
	}
	end := size + int(n)
	return data[size:end], end, true
}
