package column

import (
	"github.com/soltixdb/tsread/internal/types"
)

// valueTrack is the value storage of a Buffer. Exactly one implementation,
// a *track[T] for the buffer's kind, is chosen by newValueTrack.
type valueTrack interface {
	len() int
	put(v types.Value) error
	get(i int) types.Value
	set(i int, v types.Value) error
	// appendFrom appends src[start:end]; src must be the same kind
	appendFrom(src valueTrack, start, end int)
	empty() valueTrack
	reset()
}

// track binds a chunk sequence to the conversion between T and types.Value
type track[T any] struct {
	*chunks[T]
	dataType types.DataType
	box      func(T) types.Value
	unbox    func(types.Value) T
}

func newTrack[T any](dt types.DataType, capacity int, box func(T) types.Value, unbox func(types.Value) T) *track[T] {
	return &track[T]{
		chunks:   newChunks[T](capacity),
		dataType: dt,
		box:      box,
		unbox:    unbox,
	}
}

// newValueTrack is the only place the storage kind is chosen from the data type
func newValueTrack(dt types.DataType, capacity int) (valueTrack, error) {
	switch dt {
	case types.Boolean:
		return newTrack(dt, capacity, types.BooleanValue, func(v types.Value) bool { return v.Bool }), nil
	case types.Int32:
		return newTrack(dt, capacity, types.Int32Value, func(v types.Value) int32 { return v.Int32 }), nil
	case types.Int64:
		return newTrack(dt, capacity, types.Int64Value, func(v types.Value) int64 { return v.Int64 }), nil
	case types.Float:
		return newTrack(dt, capacity, types.FloatValue, func(v types.Value) float32 { return v.Float }), nil
	case types.Double:
		return newTrack(dt, capacity, types.DoubleValue, func(v types.Value) float64 { return v.Double }), nil
	case types.Text:
		return newTrack(dt, capacity, types.TextValue, unboxBinary), nil
	case types.EnumText:
		return newTrack(dt, capacity, types.EnumTextValue, unboxBinary), nil
	default:
		return nil, types.NewUnsupportedTypeError(dt)
	}
}

func unboxBinary(v types.Value) types.Binary {
	return v.Binary
}

func (t *track[T]) put(v types.Value) error {
	if v.Type != t.dataType {
		return types.NewTypeMismatchError(t.dataType, v.Type)
	}
	t.chunks.put(t.unbox(v))
	return nil
}

func (t *track[T]) get(i int) types.Value {
	return t.box(t.chunks.get(i))
}

func (t *track[T]) set(i int, v types.Value) error {
	if v.Type != t.dataType {
		return types.NewTypeMismatchError(t.dataType, v.Type)
	}
	t.chunks.set(i, t.unbox(v))
	return nil
}

func (t *track[T]) appendFrom(src valueTrack, start, end int) {
	t.chunks.appendRange(src.(*track[T]).chunks, start, end)
}

func (t *track[T]) empty() valueTrack {
	return newTrack(t.dataType, t.capacity, t.box, t.unbox)
}
