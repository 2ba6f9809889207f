package statistics

import (
	"github.com/soltixdb/tsread/internal/encoding"
	"github.com/soltixdb/tsread/internal/types"
)

// BooleanStatistics tracks bounds of BOOLEAN values; false orders before true
type BooleanStatistics struct {
	b bounds[bool]
}

// NewBooleanStatistics creates an empty instance
func NewBooleanStatistics() *BooleanStatistics {
	return &BooleanStatistics{b: newBounds[bool](compareBool, nil)}
}

// Type returns types.Boolean
func (s *BooleanStatistics) Type() types.DataType {
	return types.Boolean
}

// IsEmpty reports whether no value has been recorded yet
func (s *BooleanStatistics) IsEmpty() bool {
	return s.b.empty
}

// Min returns the lower bound; meaningless while IsEmpty
func (s *BooleanStatistics) Min() bool {
	return s.b.min
}

// Max returns the upper bound; meaningless while IsEmpty
func (s *BooleanStatistics) Max() bool {
	return s.b.max
}

// UpdateBoolean widens the bounds to include v
func (s *BooleanStatistics) UpdateBoolean(v bool) {
	s.b.update(v)
}

// Update records v, which must be a Boolean value
func (s *BooleanStatistics) Update(v types.Value) error {
	if v.Type != types.Boolean {
		return types.NewTypeMismatchError(types.Boolean, v.Type)
	}
	s.b.update(v.Bool)
	return nil
}

// Merge widens the bounds to cover other, which must be the same variant.
// Merging an empty instance is a no-op.
func (s *BooleanStatistics) Merge(other Statistics) error {
	o, ok := other.(*BooleanStatistics)
	if !ok {
		return mismatch(s, other)
	}
	s.b.merge(&o.b)
	return nil
}

// MinBytes returns the encoded lower bound, or nil while empty
func (s *BooleanStatistics) MinBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.BoolToBytes(s.b.min)
}

// MaxBytes returns the encoded upper bound, or nil while empty
func (s *BooleanStatistics) MaxBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.BoolToBytes(s.b.max)
}

// SetMinMaxFromBytes replaces the bounds with decoded minBytes and maxBytes
func (s *BooleanStatistics) SetMinMaxFromBytes(minBytes, maxBytes []byte) error {
	if err := checkWidth(types.Boolean, 1, minBytes, maxBytes); err != nil {
		return err
	}
	s.b.initialize(encoding.BytesToBool(minBytes), encoding.BytesToBool(maxBytes))
	return nil
}

// MinValue returns the lower bound boxed, or ErrEmpty
func (s *BooleanStatistics) MinValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.BooleanValue(s.b.min), nil
}

// MaxValue returns the upper bound boxed, or ErrEmpty
func (s *BooleanStatistics) MaxValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.BooleanValue(s.b.max), nil
}

// Reset empties the bounds
func (s *BooleanStatistics) Reset() {
	s.b.reset()
}

// Int32Statistics tracks bounds of INT32 values
type Int32Statistics struct {
	b bounds[int32]
}

// NewInt32Statistics creates an empty instance
func NewInt32Statistics() *Int32Statistics {
	return &Int32Statistics{b: newBounds[int32](compareNumeric[int32], nil)}
}

// Type returns types.Int32
func (s *Int32Statistics) Type() types.DataType {
	return types.Int32
}

// IsEmpty reports whether no value has been recorded yet
func (s *Int32Statistics) IsEmpty() bool {
	return s.b.empty
}

// Min returns the lower bound; meaningless while IsEmpty
func (s *Int32Statistics) Min() int32 {
	return s.b.min
}

// Max returns the upper bound; meaningless while IsEmpty
func (s *Int32Statistics) Max() int32 {
	return s.b.max
}

// UpdateInt32 widens the bounds to include v
func (s *Int32Statistics) UpdateInt32(v int32) {
	s.b.update(v)
}

// Update records v, which must be a Int32 value
func (s *Int32Statistics) Update(v types.Value) error {
	if v.Type != types.Int32 {
		return types.NewTypeMismatchError(types.Int32, v.Type)
	}
	s.b.update(v.Int32)
	return nil
}

// Merge widens the bounds to cover other, which must be the same variant.
// Merging an empty instance is a no-op.
func (s *Int32Statistics) Merge(other Statistics) error {
	o, ok := other.(*Int32Statistics)
	if !ok {
		return mismatch(s, other)
	}
	s.b.merge(&o.b)
	return nil
}

// MinBytes returns the encoded lower bound, or nil while empty
func (s *Int32Statistics) MinBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Int32ToBytes(s.b.min)
}

// MaxBytes returns the encoded upper bound, or nil while empty
func (s *Int32Statistics) MaxBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Int32ToBytes(s.b.max)
}

// SetMinMaxFromBytes replaces the bounds with decoded minBytes and maxBytes
func (s *Int32Statistics) SetMinMaxFromBytes(minBytes, maxBytes []byte) error {
	if err := checkWidth(types.Int32, 4, minBytes, maxBytes); err != nil {
		return err
	}
	s.b.initialize(encoding.BytesToInt32(minBytes), encoding.BytesToInt32(maxBytes))
	return nil
}

// MinValue returns the lower bound boxed, or ErrEmpty
func (s *Int32Statistics) MinValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.Int32Value(s.b.min), nil
}

// MaxValue returns the upper bound boxed, or ErrEmpty
func (s *Int32Statistics) MaxValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.Int32Value(s.b.max), nil
}

// Reset empties the bounds
func (s *Int32Statistics) Reset() {
	s.b.reset()
}

// Int64Statistics tracks bounds of INT64 values
type Int64Statistics struct {
	b bounds[int64]
}

// NewInt64Statistics creates an empty instance
func NewInt64Statistics() *Int64Statistics {
	return &Int64Statistics{b: newBounds[int64](compareNumeric[int64], nil)}
}

// Type returns types.Int64
func (s *Int64Statistics) Type() types.DataType {
	return types.Int64
}

// IsEmpty reports whether no value has been recorded yet
func (s *Int64Statistics) IsEmpty() bool {
	return s.b.empty
}

// Min returns the lower bound; meaningless while IsEmpty
func (s *Int64Statistics) Min() int64 {
	return s.b.min
}

// Max returns the upper bound; meaningless while IsEmpty
func (s *Int64Statistics) Max() int64 {
	return s.b.max
}

// UpdateInt64 widens the bounds to include v
func (s *Int64Statistics) UpdateInt64(v int64) {
	s.b.update(v)
}

// Update records v, which must be a Int64 value
func (s *Int64Statistics) Update(v types.Value) error {
	if v.Type != types.Int64 {
		return types.NewTypeMismatchError(types.Int64, v.Type)
	}
	s.b.update(v.Int64)
	return nil
}

// Merge widens the bounds to cover other, which must be the same variant.
// Merging an empty instance is a no-op.
func (s *Int64Statistics) Merge(other Statistics) error {
	o, ok := other.(*Int64Statistics)
	if !ok {
		return mismatch(s, other)
	}
	s.b.merge(&o.b)
	return nil
}

// MinBytes returns the encoded lower bound, or nil while empty
func (s *Int64Statistics) MinBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Int64ToBytes(s.b.min)
}

// MaxBytes returns the encoded upper bound, or nil while empty
func (s *Int64Statistics) MaxBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Int64ToBytes(s.b.max)
}

// SetMinMaxFromBytes replaces the bounds with decoded minBytes and maxBytes
func (s *Int64Statistics) SetMinMaxFromBytes(minBytes, maxBytes []byte) error {
	if err := checkWidth(types.Int64, 8, minBytes, maxBytes); err != nil {
		return err
	}
	s.b.initialize(encoding.BytesToInt64(minBytes), encoding.BytesToInt64(maxBytes))
	return nil
}

// MinValue returns the lower bound boxed, or ErrEmpty
func (s *Int64Statistics) MinValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.Int64Value(s.b.min), nil
}

// MaxValue returns the upper bound boxed, or ErrEmpty
func (s *Int64Statistics) MaxValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.Int64Value(s.b.max), nil
}

// Reset empties the bounds
func (s *Int64Statistics) Reset() {
	s.b.reset()
}

// FloatStatistics tracks bounds of FLOAT values
type FloatStatistics struct {
	b bounds[float32]
}

// NewFloatStatistics creates an empty instance
func NewFloatStatistics() *FloatStatistics {
	return &FloatStatistics{b: newBounds[float32](compareNumeric[float32], nil)}
}

// Type returns types.Float
func (s *FloatStatistics) Type() types.DataType {
	return types.Float
}

// IsEmpty reports whether no value has been recorded yet
func (s *FloatStatistics) IsEmpty() bool {
	return s.b.empty
}

// Min returns the lower bound; meaningless while IsEmpty
func (s *FloatStatistics) Min() float32 {
	return s.b.min
}

// Max returns the upper bound; meaningless while IsEmpty
func (s *FloatStatistics) Max() float32 {
	return s.b.max
}

// UpdateFloat widens the bounds to include v
func (s *FloatStatistics) UpdateFloat(v float32) {
	s.b.update(v)
}

// Update records v, which must be a Float value
func (s *FloatStatistics) Update(v types.Value) error {
	if v.Type != types.Float {
		return types.NewTypeMismatchError(types.Float, v.Type)
	}
	s.b.update(v.Float)
	return nil
}

// Merge widens the bounds to cover other, which must be the same variant.
// Merging an empty instance is a no-op.
func (s *FloatStatistics) Merge(other Statistics) error {
	o, ok := other.(*FloatStatistics)
	if !ok {
		return mismatch(s, other)
	}
	s.b.merge(&o.b)
	return nil
}

// MinBytes returns the encoded lower bound, or nil while empty
func (s *FloatStatistics) MinBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Float32ToBytes(s.b.min)
}

// MaxBytes returns the encoded upper bound, or nil while empty
func (s *FloatStatistics) MaxBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Float32ToBytes(s.b.max)
}

// SetMinMaxFromBytes replaces the bounds with decoded minBytes and maxBytes
func (s *FloatStatistics) SetMinMaxFromBytes(minBytes, maxBytes []byte) error {
	if err := checkWidth(types.Float, 4, minBytes, maxBytes); err != nil {
		return err
	}
	s.b.initialize(encoding.BytesToFloat32(minBytes), encoding.BytesToFloat32(maxBytes))
	return nil
}

// MinValue returns the lower bound boxed, or ErrEmpty
func (s *FloatStatistics) MinValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.FloatValue(s.b.min), nil
}

// MaxValue returns the upper bound boxed, or ErrEmpty
func (s *FloatStatistics) MaxValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.FloatValue(s.b.max), nil
}

// Reset empties the bounds
func (s *FloatStatistics) Reset() {
	s.b.reset()
}

// DoubleStatistics tracks bounds of DOUBLE values
type DoubleStatistics struct {
	b bounds[float64]
}

// NewDoubleStatistics creates an empty instance
func NewDoubleStatistics() *DoubleStatistics {
	return &DoubleStatistics{b: newBounds[float64](compareNumeric[float64], nil)}
}

// Type returns types.Double
func (s *DoubleStatistics) Type() types.DataType {
	return types.Double
}

// IsEmpty reports whether no value has been recorded yet
func (s *DoubleStatistics) IsEmpty() bool {
	return s.b.empty
}

// Min returns the lower bound; meaningless while IsEmpty
func (s *DoubleStatistics) Min() float64 {
	return s.b.min
}

// Max returns the upper bound; meaningless while IsEmpty
func (s *DoubleStatistics) Max() float64 {
	return s.b.max
}

// UpdateDouble widens the bounds to include v
func (s *DoubleStatistics) UpdateDouble(v float64) {
	s.b.update(v)
}

// Update records v, which must be a Double value
func (s *DoubleStatistics) Update(v types.Value) error {
	if v.Type != types.Double {
		return types.NewTypeMismatchError(types.Double, v.Type)
	}
	s.b.update(v.Double)
	return nil
}

// Merge widens the bounds to cover other, which must be the same variant.
// Merging an empty instance is a no-op.
func (s *DoubleStatistics) Merge(other Statistics) error {
	o, ok := other.(*DoubleStatistics)
	if !ok {
		return mismatch(s, other)
	}
	s.b.merge(&o.b)
	return nil
}

// MinBytes returns the encoded lower bound, or nil while empty
func (s *DoubleStatistics) MinBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Float64ToBytes(s.b.min)
}

// MaxBytes returns the encoded upper bound, or nil while empty
func (s *DoubleStatistics) MaxBytes() []byte {
	if s.b.empty {
		return nil
	}
	return encoding.Float64ToBytes(s.b.max)
}

// SetMinMaxFromBytes replaces the bounds with decoded minBytes and maxBytes
func (s *DoubleStatistics) SetMinMaxFromBytes(minBytes, maxBytes []byte) error {
	if err := checkWidth(types.Double, 8, minBytes, maxBytes); err != nil {
		return err
	}
	s.b.initialize(encoding.BytesToFloat64(minBytes), encoding.BytesToFloat64(maxBytes))
	return nil
}

// MinValue returns the lower bound boxed, or ErrEmpty
func (s *DoubleStatistics) MinValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.DoubleValue(s.b.min), nil
}

// MaxValue returns the upper bound boxed, or ErrEmpty
func (s *DoubleStatistics) MaxValue() (types.Value, error) {
	if s.b.empty {
		return types.Value{}, ErrEmpty
	}
	return types.DoubleValue(s.b.max), nil
}

// Reset empties the bounds
func (s *DoubleStatistics) Reset() {
	s.b.reset()
}
