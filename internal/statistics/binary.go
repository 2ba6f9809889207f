package statistics

import (
	"bytes"
	"strings"

	"github.com/soltixdb/tsread/internal/types"
)

func cloneBinary(b types.Binary) types.Binary {
	return types.Binary(bytes.Clone(b))
}

// BinaryStatistics tracks byte-lexicographic bounds of TEXT or ENUMS values.
// Bounds are copied when retained, so callers may reuse their value buffers.
type BinaryStatistics struct {
	dataType types.DataType
	b        bounds[types.Binary]
}

// NewBinaryStatistics creates statistics for dt, which should be Text or EnumText
func NewBinaryStatistics(dt types.DataType) *BinaryStatistics {
	return &BinaryStatistics{
		dataType: dt,
		b:        newBounds[types.Binary](types.Binary.Compare, cloneBinary),
	}
}

// Type returns the configured Text or EnumText type
func (s *BinaryStatistics) Type() types.DataType {
	return s.dataType
}

// IsEmpty reports whether no value has been recorded yet
func (s *BinaryStatistics) IsEmpty() bool {
	return s.b.empty
}

// Min returns the lower bound; meaningless while IsEmpty
func (s *BinaryStatistics) Min() types.Binary {
	return s.b.min
}

// Max returns the upper bound; meaningless while IsEmpty
func (s *BinaryStatistics) Max() types.Binary {
	return s.b.max
}

// UpdateBinary widens the bounds to include v
func (s *BinaryStatistics) UpdateBinary(v types.Binary) {
	s.b.update(v)
}

// Update records v, which must be a Text or EnumText value
func (s *BinaryStatistics) Update(v types.Value) error {
	if v.Type != s.dataType {
		return types.NewTypeMismatchError(s.dataType, v.Type)
	}
	s.b.update(v.Binary)
	return nil
}

// Merge widens the bounds to cover other, which must be the same variant.
// Merging an empty instance is a no-op.
func (s *BinaryStatistics) Merge(other Statistics) error {
	o, ok := other.(*BinaryStatistics)
	if !ok || o.dataType != s.dataType {
		return mismatch(s, other)
	}
	s.b.merge(&o.b)
	return nil
}

// MinBytes returns the encoded lower bound, or nil while empty
func (s *BinaryStatistics) MinBytes() []byte {
	if s.b.empty {
		return nil
	}
	return bytes.Clone(s.b.min)
}

// MaxBytes returns the encoded upper bound, or nil while empty
func (s *BinaryStatistics) MaxBytes() []byte {
	if s.b.empty {
		return nil
	}
	return bytes.Clone(s.b.max)
}

// SetMinMaxFromBytes replaces the bounds with decoded minBytes and maxBytes
func (s *BinaryStatistics) SetMinMaxFromBytes(minBytes, maxBytes []byte) error {
	s.b.initialize(minBytes, maxBytes)
	return nil
}

// MinValue returns the lower bound boxed, or ErrEmpty
func (s *BinaryStatistics) MinValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.Value{Type: s.dataType, Binary: s.b.min}, nil
}

// MaxValue returns the upper bound boxed, or ErrEmpty
func (s *BinaryStatistics) MaxValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.Value{Type: s.dataType, Binary: s.b.max}, nil
}

// Reset empties the bounds
func (s *BinaryStatistics) Reset() {
	s.b.reset()
}

// StringStatistics tracks bounds of Go strings, compared byte-lexicographically.
// Its Type is Text; it only merges with other StringStatistics.
type StringStatistics struct {
	b bounds[string]
}

// NewStringStatistics creates an empty instance
func NewStringStatistics() *StringStatistics {
	return &StringStatistics{b: newBounds[string](strings.Compare, nil)}
}

// Type returns types.Text
func (s *StringStatistics) Type() types.DataType {
	return types.Text
}

// IsEmpty reports whether no value has been recorded yet
func (s *StringStatistics) IsEmpty() bool {
	return s.b.empty
}

// Min returns the lower bound; meaningless while IsEmpty
func (s *StringStatistics) Min() string {
	return s.b.min
}

// Max returns the upper bound; meaningless while IsEmpty
func (s *StringStatistics) Max() string {
	return s.b.max
}

// UpdateString widens the bounds to include v
func (s *StringStatistics) UpdateString(v string) {
	s.b.update(v)
}

// Update accepts Text and EnumText values
func (s *StringStatistics) Update(v types.Value) error {
	if !v.Type.IsBinary() {
		return types.NewTypeMismatchError(types.Text, v.Type)
	}
	s.b.update(string(v.Binary))
	return nil
}

// Merge widens the bounds to cover other, which must be the same variant.
// Merging an empty instance is a no-op.
func (s *StringStatistics) Merge(other Statistics) error {
	o, ok := other.(*StringStatistics)
	if !ok {
		return mismatch(s, other)
	}
	s.b.merge(&o.b)
	return nil
}

// MinBytes returns the encoded lower bound, or nil while empty
func (s *StringStatistics) MinBytes() []byte {
	if s.b.empty {
		return nil
	}
	return []byte(s.b.min)
}

// MaxBytes returns the encoded upper bound, or nil while empty
func (s *StringStatistics) MaxBytes() []byte {
	if s.b.empty {
		return nil
	}
	return []byte(s.b.max)
}

// SetMinMaxFromBytes replaces the bounds with decoded minBytes and maxBytes
func (s *StringStatistics) SetMinMaxFromBytes(minBytes, maxBytes []byte) error {
	s.b.initialize(string(minBytes), string(maxBytes))
	return nil
}

// MinValue returns the lower bound boxed, or ErrEmpty
func (s *StringStatistics) MinValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.StringValue(s.b.min), nil
}

// MaxValue returns the upper bound boxed, or ErrEmpty
func (s *StringStatistics) MaxValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.StringValue(s.b.max), nil
}

// Reset empties the bounds
func (s *StringStatistics) Reset() {
	s.b.reset()
}
