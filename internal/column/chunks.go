package column

// chunks is a growable sequence stored as fixed-capacity arrays.
// Logical element i lives at arrays[i/capacity][i%capacity].
//
// Arrays are kept across reset so a cleared buffer reuses its storage.
type chunks[T any] struct {
	capacity int
	arrays   [][]T
	length   int
}

func newChunks[T any](capacity int) *chunks[T] {
	return &chunks[T]{capacity: capacity}
}

func (c *chunks[T]) len() int {
	return c.length
}

// put appends v, allocating a new array only when every kept array is full
func (c *chunks[T]) put(v T) {
	idx, off := c.length/c.capacity, c.length%c.capacity
	if idx == len(c.arrays) {
		c.arrays = append(c.arrays, make([]T, c.capacity))
	}
	c.arrays[idx][off] = v
	c.length++
}

// get and set do not check bounds; callers validate i against len()
func (c *chunks[T]) get(i int) T {
	return c.arrays[i/c.capacity][i%c.capacity]
}

func (c *chunks[T]) set(i int, v T) {
	c.arrays[i/c.capacity][i%c.capacity] = v
}

// appendRange appends src[start:end] in order. src may be c itself.
func (c *chunks[T]) appendRange(src *chunks[T], start, end int) {
	for i := start; i < end; i++ {
		c.put(src.get(i))
	}
}

// reset empties the sequence and zeroes used slots so retained references are released
func (c *chunks[T]) reset() {
	used := (c.length + c.capacity - 1) / c.capacity
	for i := 0; i < used; i++ {
		clear(c.arrays[i])
	}
	c.length = 0
}
