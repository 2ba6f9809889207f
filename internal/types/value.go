package types

import (
	"bytes"
	"strconv"
)

// Binary is a variable-length byte value used by Text and EnumText columns
type Binary []byte

// BinaryOf wraps a string as Binary
func BinaryOf(s string) Binary {
	return Binary(s)
}

func (b Binary) String() string {
	return string(b)
}

// Compare compares byte-lexicographically, like bytes.Compare
func (b Binary) Compare(other Binary) int {
	return bytes.Compare(b, other)
}

// Value is a tagged value with one slot per data kind.
// Only the slot matching Type is meaningful.
type Value struct {
	Type   DataType
	Bool   bool
	Int32  int32
	Int64  int64
	Float  float32
	Double float64
	Binary Binary
}

func BooleanValue(v bool) Value {
	return Value{Type: Boolean, Bool: v}
}

func Int32Value(v int32) Value {
	return Value{Type: Int32, Int32: v}
}

func Int64Value(v int64) Value {
	return Value{Type: Int64, Int64: v}
}

func FloatValue(v float32) Value {
	return Value{Type: Float, Float: v}
}

func DoubleValue(v float64) Value {
	return Value{Type: Double, Double: v}
}

func TextValue(v Binary) Value {
	return Value{Type: Text, Binary: v}
}

func EnumTextValue(v Binary) Value {
	return Value{Type: EnumText, Binary: v}
}

func StringValue(v string) Value {
	return TextValue(Binary(v))
}

// Interface returns the active slot boxed, mainly for logging and tests
func (v Value) Interface() interface{} {
	switch v.Type {
	case Boolean:
		return v.Bool
	case Int32:
		return v.Int32
	case Int64:
		return v.Int64
	case Float:
		return v.Float
	case Double:
		return v.Double
	case Text, EnumText:
		return v.Binary.String()
	default:
		return nil
	}
}

// String renders the canonical form of the value.
// Uses type switch + strconv like the dictionary encoder's toString.
func (v Value) String() string {
	switch v.Type {
	case Boolean:
		return strconv.FormatBool(v.Bool)
	case Int32:
		return strconv.FormatInt(int64(v.Int32), 10)
	case Int64:
		return strconv.FormatInt(v.Int64, 10)
	case Float:
		return strconv.FormatFloat(float64(v.Float), 'f', -1, 32)
	case Double:
		return strconv.FormatFloat(v.Double, 'f', -1, 64)
	case Text, EnumText:
		return v.Binary.String()
	default:
		return ""
	}
}

// ParseValue parses the canonical string form of a value of type dt
func ParseValue(dt DataType, s string) (Value, error) {
	switch dt {
	case Boolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, NewDecodeError("invalid %s value %q", dt, s)
		}
		return BooleanValue(b), nil
	case Int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, NewDecodeError("invalid %s value %q", dt, s)
		}
		return Int32Value(int32(n)), nil
	case Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, NewDecodeError("invalid %s value %q", dt, s)
		}
		return Int64Value(n), nil
	case Float:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, NewDecodeError("invalid %s value %q", dt, s)
		}
		return FloatValue(float32(f)), nil
	case Double:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, NewDecodeError("invalid %s value %q", dt, s)
		}
		return DoubleValue(f), nil
	case Text:
		return TextValue(Binary(s)), nil
	case EnumText:
		return EnumTextValue(Binary(s)), nil
	default:
		return Value{}, NewUnsupportedTypeError(dt)
	}
}
