// Package statistics tracks per-chunk minimum/maximum bounds of column values.
//
// One variant exists per data kind. Every variant can be updated with single
// values, merged with another instance of the same variant, and converted to
// and from the byte form stored in chunk metadata.
package statistics

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/soltixdb/tsread/internal/encoding"
	"github.com/soltixdb/tsread/internal/types"
)

// ErrEmpty is returned when the bounds of an empty instance are read
var ErrEmpty = errors.New("statistics: no value has been recorded")

// stringTag marks StringStatistics in the marshaled form; other variants use their data type
const stringTag byte = 0xff

// Statistics is implemented by every variant
type Statistics interface {
	// Type returns the data type the variant accepts
	Type() types.DataType
	IsEmpty() bool

	// Update widens the bounds with a single value
	Update(v types.Value) error

	// Merge folds other into the receiver. An empty receiver adopts other
	// verbatim; an empty other is a no-op. Different variants are rejected
	// before anything changes.
	Merge(other Statistics) error

	MinBytes() []byte
	MaxBytes() []byte
	SetMinMaxFromBytes(minBytes, maxBytes []byte) error

	MinValue() (types.Value, error)
	MaxValue() (types.Value, error)

	// Reset returns the instance to the empty state
	Reset()
}

// compareNumeric orders numbers totally: NaN sorts before every other value
// and equals itself, so bounds do not depend on update or merge order.
func compareNumeric[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// New returns an empty Statistics for the given data type.
// Text and EnumText both use BinaryStatistics.
func New(dt types.DataType) (Statistics, error) {
	switch dt {
	case types.Boolean:
		return NewBooleanStatistics(), nil
	case types.Int32:
		return NewInt32Statistics(), nil
	case types.Int64:
		return NewInt64Statistics(), nil
	case types.Float:
		return NewFloatStatistics(), nil
	case types.Double:
		return NewDoubleStatistics(), nil
	case types.Text, types.EnumText:
		return NewBinaryStatistics(dt), nil
	default:
		return nil, types.NewUnsupportedTypeError(dt)
	}
}

// bounds holds the min/max pair shared by all variants
type bounds[T any] struct {
	min   T
	max   T
	empty bool

	cmp func(a, b T) int
	// keep copies a value before it is retained as a bound; nil means values are retained as is
	keep func(T) T
}

func newBounds[T any](cmp func(a, b T) int, keep func(T) T) bounds[T] {
	return bounds[T]{empty: true, cmp: cmp, keep: keep}
}

func (b *bounds[T]) retain(v T) T {
	if b.keep == nil {
		return v
	}
	return b.keep(v)
}

func (b *bounds[T]) update(v T) {
	if b.empty {
		b.initialize(v, v)
		return
	}
	b.updateRange(v, v)
}

func (b *bounds[T]) initialize(minValue, maxValue T) {
	b.min = b.retain(minValue)
	b.max = b.retain(maxValue)
	b.empty = false
}

// updateRange widens the bounds only where the candidate is strictly outside them
func (b *bounds[T]) updateRange(minValue, maxValue T) {
	if b.cmp(minValue, b.min) < 0 {
		b.min = b.retain(minValue)
	}
	if b.cmp(maxValue, b.max) > 0 {
		b.max = b.retain(maxValue)
	}
}

func (b *bounds[T]) merge(other *bounds[T]) {
	if b.empty {
		if !other.empty {
			b.initialize(other.min, other.max)
		}
		return
	}
	if other.empty {
		return
	}
	b.updateRange(other.min, other.max)
}

func (b *bounds[T]) reset() {
	var zero T
	b.min = zero
	b.max = zero
	b.empty = true
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func mismatch(s, other Statistics) error {
	return types.NewErrorWithDetails(types.CodeTypeMismatch,
		fmt.Sprintf("cannot merge %T into %T", other, s),
		map[string]interface{}{"want": fmt.Sprintf("%T", s), "got": fmt.Sprintf("%T", other)})
}

func checkWidth(dt types.DataType, width int, minBytes, maxBytes []byte) error {
	if len(minBytes) != width || len(maxBytes) != width {
		return types.NewDecodeError("%s statistics expect %d-byte bounds, got %d and %d",
			dt, width, len(minBytes), len(maxBytes))
	}
	return nil
}

// Marshal encodes s as [tag][empty][varint len][min][varint len][max].
// Empty statistics are encoded as the two header bytes only.
func Marshal(s Statistics) []byte {
	tag := byte(s.Type())
	if _, ok := s.(*StringStatistics); ok {
		tag = stringTag
	}
	if s.IsEmpty() {
		return []byte{tag, 1}
	}

	minBytes, maxBytes := s.MinBytes(), s.MaxBytes()
	buf := make([]byte, 0, 2+len(minBytes)+len(maxBytes)+4)
	buf = append(buf, tag, 0)
	buf = encoding.AppendBytes(buf, minBytes)
	buf = encoding.AppendBytes(buf, maxBytes)
	return buf
}

// Unmarshal decodes the output of Marshal
func Unmarshal(data []byte) (Statistics, error) {
	if len(data) < 2 {
		return nil, types.NewDecodeError("statistics header too short: %d bytes", len(data))
	}

	var s Statistics
	if data[0] == stringTag {
		s = NewStringStatistics()
	} else {
		var err error
		s, err = New(types.DataType(data[0]))
		if err != nil {
			return nil, err
		}
	}

	if data[1] == 1 {
		if len(data) != 2 {
			return nil, types.NewDecodeError("empty statistics carry %d trailing bytes", len(data)-2)
		}
		return s, nil
	}

	offset := 2
	minBytes, n, ok := encoding.ReadBytes(data[offset:])
	if !ok {
		return nil, types.NewDecodeError("statistics min bound truncated")
	}
	offset += n

	maxBytes, n, ok := encoding.ReadBytes(data[offset:])
	if !ok {
		return nil, types.NewDecodeError("statistics max bound truncated")
	}
	offset += n

	if offset != len(data) {
		return nil, types.NewDecodeError("statistics carry %d trailing bytes", len(data)-offset)
	}

	if err := s.SetMinMaxFromBytes(minBytes, maxBytes); err != nil {
		return nil, err
	}
	return s, nil
}
