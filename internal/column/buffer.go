// Package column holds the decoded values of a single time series column.
//
// A Buffer keeps a time track and a value track, each stored as a list of
// fixed-capacity arrays, so appends never copy existing elements and
// positional access is O(1).
package column

import (
	"errors"
	"fmt"
	"iter"

	"github.com/soltixdb/tsread/internal/config"
	"github.com/soltixdb/tsread/internal/statistics"
	"github.com/soltixdb/tsread/internal/types"
)

const (
	// DefaultCapacity is the number of elements per chunk array
	DefaultCapacity = config.DefaultDynamicDataSize

	// UnknownPageOffset marks a page offset that must be recomputed by the reader
	UnknownPageOffset int64 = -1
)

var (
	// ErrNoTimeTrack is returned when time is written to a buffer built WithoutTime
	ErrNoTimeTrack = errors.New("column: buffer does not record time")
	// ErrNilBuffer is returned when a nil buffer is passed as an operand
	ErrNilBuffer = errors.New("column: nil buffer")
)

// Option configures a Buffer
type Option func(*options)

type options struct {
	capacity   int
	recordTime bool
}

// WithCapacity sets the chunk capacity. It is fixed for the lifetime of the buffer.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithoutTime builds a value-only buffer
func WithoutTime() Option {
	return func(o *options) {
		o.recordTime = false
	}
}

// Buffer holds one column's timestamps and values.
//
// NOT THREAD-SAFE: a buffer is owned by a single reader. Decoders may fill
// buffers on separate goroutines and hand them over once complete.
//
// The time and value tracks grow independently. Consumers that pair them
// (Points, the query merge) only look at entries present in both tracks,
// so a buffer built WithoutTime has no pairs even though Len is ValueLen.
type Buffer struct {
	dataType   types.DataType
	capacity   int
	recordTime bool

	times  *chunks[int64]
	values valueTrack

	// Paging bookkeeping owned by the decode path. The buffer only updates
	// them in AdvanceContainer; Clear leaves them alone.
	RowGroupIndex int
	PageOffset    int64
}

// New creates an empty buffer for dt
func New(dt types.DataType, opts ...Option) (*Buffer, error) {
	o := options{
		capacity:   DefaultCapacity,
		recordTime: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity <= 0 {
		return nil, fmt.Errorf("column: capacity must be positive, got %d", o.capacity)
	}

	values, err := newValueTrack(dt, o.capacity)
	if err != nil {
		return nil, err
	}

	return &Buffer{
		dataType:   dt,
		capacity:   o.capacity,
		recordTime: o.recordTime,
		times:      newChunks[int64](o.capacity),
		values:     values,
		PageOffset: UnknownPageOffset,
	}, nil
}

// NewFromConfig creates a buffer using read.dynamic_data_size and read.record_time
func NewFromConfig(dt types.DataType, cfg config.ReadConfig) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}
	opts := []Option{WithCapacity(cfg.DynamicDataSize)}
	if !cfg.RecordTime {
		opts = append(opts, WithoutTime())
	}
	return New(dt, opts...)
}

// DataType returns the type every value in the buffer has
func (b *Buffer) DataType() types.DataType {
	return b.dataType
}

// Capacity returns the chunk capacity
func (b *Buffer) Capacity() int {
	return b.capacity
}

// RecordsTime reports whether the buffer keeps a time track
func (b *Buffer) RecordsTime() bool {
	return b.recordTime
}

// TimeLen returns the number of appended timestamps
func (b *Buffer) TimeLen() int {
	return b.times.len()
}

// ValueLen returns the number of appended values
func (b *Buffer) ValueLen() int {
	return b.values.len()
}

// Len returns the number of paired entries. Without a time track it is ValueLen.
func (b *Buffer) Len() int {
	if !b.recordTime {
		return b.values.len()
	}
	return min(b.times.len(), b.values.len())
}

func (b *Buffer) checkTime(i int) error {
	if i < 0 || i >= b.times.len() {
		return types.NewOutOfRangeError("time", i, b.times.len())
	}
	return nil
}

func (b *Buffer) checkValue(i int) error {
	if i < 0 || i >= b.values.len() {
		return types.NewOutOfRangeError("value", i, b.values.len())
	}
	return nil
}

// PutTime appends t. It fails with ErrNoTimeTrack on a buffer built WithoutTime.
func (b *Buffer) PutTime(t int64) error {
	if !b.recordTime {
		return ErrNoTimeTrack
	}
	b.times.put(t)
	return nil
}

// Time returns the timestamp at i
func (b *Buffer) Time(i int) (int64, error) {
	if err := b.checkTime(i); err != nil {
		return 0, err
	}
	return b.times.get(i), nil
}

// SetTime overwrites the timestamp at i. Only existing entries can be set.
func (b *Buffer) SetTime(i int, t int64) error {
	if err := b.checkTime(i); err != nil {
		return err
	}
	b.times.set(i, t)
	return nil
}

// PutValue appends v. A value of another data type is rejected and nothing is appended.
func (b *Buffer) PutValue(v types.Value) error {
	return b.values.put(v)
}

// Value returns the value at i boxed as a types.Value
func (b *Buffer) Value(i int) (types.Value, error) {
	if err := b.checkValue(i); err != nil {
		return types.Value{}, err
	}
	return b.values.get(i), nil
}

// SetValue overwrites the value at i. v must match the buffer data type.
func (b *Buffer) SetValue(i int, v types.Value) error {
	if err := b.checkValue(i); err != nil {
		return err
	}
	return b.values.set(i, v)
}

// Typed access skips boxing into types.Value

func typedPut[T any](b *Buffer, dt types.DataType, v T) error {
	t, ok := b.values.(*track[T])
	if !ok {
		return types.NewTypeMismatchError(b.dataType, dt)
	}
	t.chunks.put(v)
	return nil
}

func typedGet[T any](b *Buffer, dt types.DataType, i int) (T, error) {
	var zero T
	t, ok := b.values.(*track[T])
	if !ok {
		return zero, types.NewTypeMismatchError(b.dataType, dt)
	}
	if err := b.checkValue(i); err != nil {
		return zero, err
	}
	return t.chunks.get(i), nil
}

// PutBoolean appends to a Boolean buffer
func (b *Buffer) PutBoolean(v bool) error {
	return typedPut(b, types.Boolean, v)
}

// PutInt32 appends to an Int32 buffer
func (b *Buffer) PutInt32(v int32) error {
	return typedPut(b, types.Int32, v)
}

// PutInt64 appends to an Int64 buffer
func (b *Buffer) PutInt64(v int64) error {
	return typedPut(b, types.Int64, v)
}

// PutFloat appends to a Float buffer
func (b *Buffer) PutFloat(v float32) error {
	return typedPut(b, types.Float, v)
}

// PutDouble appends to a Double buffer
func (b *Buffer) PutDouble(v float64) error {
	return typedPut(b, types.Double, v)
}

// PutBinary appends to a Text or EnumText buffer. The buffer keeps v; do not modify it afterwards.
func (b *Buffer) PutBinary(v types.Binary) error {
	return typedPut(b, types.Text, v)
}

// Boolean returns the value at i of a Boolean buffer
func (b *Buffer) Boolean(i int) (bool, error) {
	return typedGet[bool](b, types.Boolean, i)
}

// Int32 returns the value at i of an Int32 buffer
func (b *Buffer) Int32(i int) (int32, error) {
	return typedGet[int32](b, types.Int32, i)
}

// Int64 returns the value at i of an Int64 buffer
func (b *Buffer) Int64(i int) (int64, error) {
	return typedGet[int64](b, types.Int64, i)
}

// Float returns the value at i of a Float buffer
func (b *Buffer) Float(i int) (float32, error) {
	return typedGet[float32](b, types.Float, i)
}

// Double returns the value at i of a Double buffer
func (b *Buffer) Double(i int) (float64, error) {
	return typedGet[float64](b, types.Double, i)
}

// Binary returns the value at i of a Text or EnumText buffer. The result shares
// memory with the buffer.
func (b *Buffer) Binary(i int) (types.Binary, error) {
	return typedGet[types.Binary](b, types.Text, i)
}

// DisplayString renders the value at i in its canonical form
func (b *Buffer) DisplayString(i int) (string, error) {
	v, err := b.Value(i)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// DisplayPair renders "<time>\t<value>" for entry i
func (b *Buffer) DisplayPair(i int) (string, error) {
	v, err := b.DisplayString(i)
	if err != nil {
		return "", err
	}
	t, err := b.Time(i)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d\t%s", t, v), nil
}

// MergeFrom appends every time of other, then every value of other.
// This is a concatenation, not a merge by timestamp. On error b is unchanged.
func (b *Buffer) MergeFrom(other *Buffer) error {
	if other == nil {
		return ErrNilBuffer
	}
	if other.dataType != b.dataType {
		return types.NewTypeMismatchError(b.dataType, other.dataType)
	}
	if b.recordTime && !other.recordTime && other.ValueLen() > 0 {
		return fmt.Errorf("merge into timed buffer: %w", ErrNoTimeTrack)
	}

	if b.recordTime {
		b.times.appendRange(other.times, 0, other.times.len())
	}
	b.values.appendFrom(other.values, 0, other.values.len())
	return nil
}

// SubRange returns a new buffer holding entries start through end inclusive,
// re-indexed from zero. b is not modified. start == end+1 yields an empty buffer.
func (b *Buffer) SubRange(start, end int) (*Buffer, error) {
	if start < 0 {
		return nil, types.NewOutOfRangeError("value", start, b.values.len())
	}
	if end >= b.values.len() {
		return nil, types.NewOutOfRangeError("value", end, b.values.len())
	}
	if b.recordTime && end >= b.times.len() {
		return nil, types.NewOutOfRangeError("time", end, b.times.len())
	}
	if start > end+1 {
		return nil, types.NewOutOfRangeError("value", start, end+1)
	}

	sub := &Buffer{
		dataType:   b.dataType,
		capacity:   b.capacity,
		recordTime: b.recordTime,
		times:      newChunks[int64](b.capacity),
		values:     b.values.empty(),
		PageOffset: UnknownPageOffset,
	}
	if b.recordTime {
		sub.times.appendRange(b.times, start, end+1)
	}
	sub.values.appendFrom(b.values, start, end+1)
	return sub, nil
}

// SubRangeFrom is SubRange(start, ValueLen()-1)
func (b *Buffer) SubRangeFrom(start int) (*Buffer, error) {
	return b.SubRange(start, b.values.len()-1)
}

// Clear empties both tracks and keeps their arrays for reuse
func (b *Buffer) Clear() {
	b.times.reset()
	b.values.reset()
}

// AdvanceContainer moves to the next row group. The page offset inside it is not known yet.
func (b *Buffer) AdvanceContainer() {
	b.RowGroupIndex++
	b.PageOffset = UnknownPageOffset
}

// Statistics computes the bounds of every value in the buffer
func (b *Buffer) Statistics() (statistics.Statistics, error) {
	stats, err := statistics.New(b.dataType)
	if err != nil {
		return nil, err
	}
	for i := 0; i < b.values.len(); i++ {
		if err := stats.Update(b.values.get(i)); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// Points yields the (time, value) entries present in both tracks, in index order.
// A buffer built WithoutTime yields nothing.
func (b *Buffer) Points() iter.Seq2[int64, types.Value] {
	return func(yield func(int64, types.Value) bool) {
		n := min(b.times.len(), b.values.len())
		for i := 0; i < n; i++ {
			if !yield(b.times.get(i), b.values.get(i)) {
				return
			}
		}
	}
}
