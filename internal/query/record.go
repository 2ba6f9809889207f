package query

import (
	"strconv"
	"strings"

	"github.com/soltixdb/tsread/internal/types"
)

const nullText = "null"

// Field is one column's cell in a RowRecord
type Field struct {
	Value         types.Value
	DataType      types.DataType
	Null          bool
	EntityID      string
	MeasurementID string
}

// Key returns "<entity>.<measurement>"
func (f Field) Key() string {
	return joinPath(f.EntityID, f.MeasurementID)
}

func (f Field) String() string {
	if f.Null {
		return nullText
	}
	return f.Value.String()
}

// RowRecord is one aligned row. Fields follow column registration order;
// EntityID is the entity of the first column.
type RowRecord struct {
	Timestamp int64
	EntityID  string
	Fields    []Field
}

// String renders the timestamp and every field separated by tabs
func (r *RowRecord) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(r.Timestamp, 10))
	for _, f := range r.Fields {
		sb.WriteByte('\t')
		sb.WriteString(f.String())
	}
	return sb.String()
}

// NullCount returns how many fields have no value at this timestamp
func (r *RowRecord) NullCount() int {
	n := 0
	for _, f := range r.Fields {
		if f.Null {
			n++
		}
	}
	return n
}
