// Package query aligns independently timestamped column buffers into rows.
//
// A DataSet performs a k-way merge over the time tracks of its columns and
// emits one RowRecord per distinct timestamp, in increasing order, with a
// null field for every column that has no value at that timestamp.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/soltixdb/tsread/internal/column"
	"github.com/soltixdb/tsread/internal/logging"
	"github.com/soltixdb/tsread/internal/types"
)

const pathSeparator = "."

var (
	// ErrAlreadyInitialized is returned when columns change after iteration started
	ErrAlreadyInitialized = errors.New("query: data set already initialized, call Clear first")
	ErrNilBuffer          = errors.New("query: nil column buffer")
	ErrInvalidPath        = errors.New("query: path must be <entity>.<measurement>")
)

type registeredColumn struct {
	entityID      string
	measurementID string
	buf           *column.Buffer
}

// Option configures a DataSet
type Option func(*DataSet)

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(logger *logging.Logger) Option {
	return func(d *DataSet) {
		d.logger = logger
	}
}

// WithMetrics enables metrics collection
func WithMetrics(m *Metrics) Option {
	return func(d *DataSet) {
		d.metrics = m
	}
}

// DataSet merges registered column buffers by timestamp.
//
// NOT THREAD-SAFE. Iteration is lazy: the column set is snapshotted on the
// first HasNextRecord/NextRecord/Next call and cannot change until Clear.
type DataSet struct {
	id      string
	logger  *logging.Logger
	metrics *Metrics

	columns *orderedmap.OrderedMap[string, registeredColumn]

	// Snapshot taken by init, in registration order
	initialized bool
	cols        []registeredColumn
	cursors     []int
	pending     pendingTimes

	current *RowRecord
	rows    int
}

// NewDataSet creates an empty data set
func NewDataSet(opts ...Option) *DataSet {
	d := &DataSet{
		id:      uuid.New().String(),
		logger:  logging.Global(),
		columns: orderedmap.New[string, registeredColumn](),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("dataset_id", d.id)
	return d
}

// ID returns the identifier used in this data set's log lines
func (d *DataSet) ID() string {
	return d.id
}

func joinPath(entityID, measurementID string) string {
	return entityID + pathSeparator + measurementID
}

// SplitPath splits "<entity>.<measurement>" at the last separator.
// Entity ids may themselves contain separators.
func SplitPath(path string) (entityID, measurementID string, err error) {
	idx := strings.LastIndex(path, pathSeparator)
	if idx <= 0 || idx == len(path)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return path[:idx], path[idx+1:], nil
}

// AddColumn registers buf under "<entityID>.<measurementID>". Registering an
// existing key replaces its buffer and keeps its position.
func (d *DataSet) AddColumn(entityID, measurementID string, buf *column.Buffer) error {
	if d.initialized {
		return ErrAlreadyInitialized
	}
	if buf == nil {
		return ErrNilBuffer
	}
	d.columns.Set(joinPath(entityID, measurementID), registeredColumn{
		entityID:      entityID,
		measurementID: measurementID,
		buf:           buf,
	})
	return nil
}

// AddPath registers buf under a full "<entity>.<measurement>" path
func (d *DataSet) AddPath(path string, buf *column.Buffer) error {
	entityID, measurementID, err := SplitPath(path)
	if err != nil {
		return err
	}
	return d.AddColumn(entityID, measurementID, buf)
}

// Column returns the buffer registered under key
func (d *DataSet) Column(key string) (*column.Buffer, bool) {
	c, ok := d.columns.Get(key)
	if !ok {
		return nil, false
	}
	return c.buf, true
}

// Columns returns the registered keys in registration order
func (d *DataSet) Columns() []string {
	keys := make([]string, 0, d.columns.Len())
	for pair := d.columns.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of registered columns
func (d *DataSet) Len() int {
	return d.columns.Len()
}

// bound is the number of entries of column i that have both a time and a value
func (d *DataSet) bound(i int) int {
	buf := d.cols[i].buf
	return min(buf.ValueLen(), buf.TimeLen())
}

// timeAt and valueAt read entries already known to be within bound.
// A failed read is a broken invariant and panics; it never becomes a null field.
func (d *DataSet) timeAt(i, idx int) int64 {
	t, err := d.cols[i].buf.Time(idx)
	if err != nil {
		panic(fmt.Sprintf("query: column %d: %v", i, err))
	}
	return t
}

func (d *DataSet) valueAt(i, idx int) types.Value {
	v, err := d.cols[i].buf.Value(idx)
	if err != nil {
		panic(fmt.Sprintf("query: column %d: %v", i, err))
	}
	return v
}

func (d *DataSet) init() {
	d.initialized = true

	n := d.columns.Len()
	d.cols = make([]registeredColumn, 0, n)
	d.cursors = make([]int, n)
	d.pending = newPendingTimes(n)

	if n == 0 {
		d.logger.Warn("data set has no columns, nothing to iterate")
		return
	}

	for pair := d.columns.Oldest(); pair != nil; pair = pair.Next() {
		d.cols = append(d.cols, pair.Value)
	}
	for i := range d.cols {
		if d.bound(i) > 0 {
			d.pending.push(d.timeAt(i, 0))
		}
	}

	d.metrics.setPending(d.pending.len())
	d.logger.Debug("data set initialized", "columns", n, "pending", d.pending.len())
}

// HasNextRecord reports whether another row is available.
// It initializes the data set on first use and is otherwise side-effect free.
func (d *DataSet) HasNextRecord() bool {
	if !d.initialized {
		d.init()
	}
	return d.pending.len() > 0
}

// NextRecord returns the row for the smallest pending timestamp, or false when exhausted.
//
// A column that repeats a timestamp contributes its last entry at that timestamp.
func (d *DataSet) NextRecord() (*RowRecord, bool) {
	if !d.initialized {
		d.init()
	}

	t, ok := d.pending.pop()
	if !ok {
		return nil, false
	}

	record := &RowRecord{
		Timestamp: t,
		EntityID:  d.cols[0].entityID,
		Fields:    make([]Field, len(d.cols)),
	}

	for i, c := range d.cols {
		field := Field{
			DataType:      c.buf.DataType(),
			Null:          true,
			EntityID:      c.entityID,
			MeasurementID: c.measurementID,
		}

		bound := d.bound(i)
		idx := d.cursors[i]
		if idx < bound && d.timeAt(i, idx) == t {
			for idx+1 < bound && d.timeAt(i, idx+1) == t {
				idx++
			}
			field.Value = d.valueAt(i, idx)
			field.Null = false
			d.cursors[i] = idx + 1
			if d.cursors[i] < bound {
				d.pending.push(d.timeAt(i, d.cursors[i]))
			}
		}
		record.Fields[i] = field
	}

	d.rows++
	d.metrics.observeRow(record, d.pending.len())
	if d.pending.len() == 0 {
		d.logger.Debug("data set exhausted", "rows", d.rows)
	}
	return record, true
}

// Next advances to the next row, which CurrentRecord then returns
func (d *DataSet) Next() bool {
	if d.HasNextRecord() {
		d.current, _ = d.NextRecord()
		return true
	}
	d.current = nil
	return false
}

// CurrentRecord returns the row loaded by the last successful Next
func (d *DataSet) CurrentRecord() *RowRecord {
	return d.current
}

// Clear returns the data set to its uninitialized state and empties every
// registered buffer in place. Registrations are kept.
func (d *DataSet) Clear() {
	d.initialized = false
	d.cols = nil
	d.cursors = nil
	d.pending.reset()
	d.current = nil
	d.rows = 0
	for pair := d.columns.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.buf.Clear()
	}
	d.metrics.setPending(0)
}
