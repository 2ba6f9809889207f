package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/soltixdb/tsread/internal/column"
	"github.com/soltixdb/tsread/internal/config"
	"github.com/soltixdb/tsread/internal/logging"
	"github.com/soltixdb/tsread/internal/query"
	"github.com/soltixdb/tsread/internal/statistics"
	"github.com/soltixdb/tsread/internal/types"
)

// Input columns
const (
	colEntity = iota
	colMeasurement
	colType
	colTimestamp
	colValue
	inputFields
)

type timedValue struct {
	t     int64
	value types.Value
}

type inputColumn struct {
	entityID      string
	measurementID string
	dataType      types.DataType
	points        []timedValue
}

// columnSet keeps input columns in order of first appearance
type columnSet struct {
	readCfg config.ReadConfig
	order   []string
	byKey   map[string]*inputColumn
	buffers map[string]*column.Buffer
}

func (s *columnSet) Len() int {
	return len(s.order)
}

// readColumns parses input rows into time-sorted column buffers. A header row
// is skipped; rows with an empty value are treated as missing.
func readColumns(r io.Reader, readCfg config.ReadConfig) (*columnSet, error) {
	if err := readCfg.Validate(); err != nil {
		return nil, err
	}
	// Alignment is by time
	readCfg.RecordTime = true

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = inputFields
	reader.TrimLeadingSpace = true

	set := &columnSet{
		readCfg: readCfg,
		byKey:   make(map[string]*inputColumn),
		buffers: make(map[string]*column.Buffer),
	}

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(record[colTimestamp], "timestamp") {
			continue
		}
		if err := set.add(record); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := set.build(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *columnSet) add(record []string) error {
	dataType := s.readCfg.DataType(types.Double)
	if name := record[colType]; name != "" {
		dt, err := types.ParseDataType(name)
		if err != nil {
			return err
		}
		dataType = dt
	}

	key := record[colEntity] + "." + record[colMeasurement]
	col, ok := s.byKey[key]
	if !ok {
		col = &inputColumn{
			entityID:      record[colEntity],
			measurementID: record[colMeasurement],
			dataType:      dataType,
		}
		s.byKey[key] = col
		s.order = append(s.order, key)
	}
	if col.dataType != dataType {
		return fmt.Errorf("column %s: %w", key, types.NewTypeMismatchError(col.dataType, dataType))
	}

	if record[colValue] == "" {
		return nil
	}

	t, err := strconv.ParseInt(record[colTimestamp], 10, 64)
	if err != nil {
		return types.NewDecodeError("invalid timestamp %q", record[colTimestamp])
	}
	v, err := types.ParseValue(dataType, record[colValue])
	if err != nil {
		return err
	}
	col.points = append(col.points, timedValue{t: t, value: v})
	return nil
}

// build sorts each column by time and fills its buffer
func (s *columnSet) build() error {
	for _, key := range s.order {
		col := s.byKey[key]
		sort.SliceStable(col.points, func(i, j int) bool {
			return col.points[i].t < col.points[j].t
		})

		buf, err := column.NewFromConfig(col.dataType, s.readCfg)
		if err != nil {
			return err
		}
		for _, p := range col.points {
			if err := buf.PutTime(p.t); err != nil {
				return err
			}
			if err := buf.PutValue(p.value); err != nil {
				return fmt.Errorf("column %s: %w", key, err)
			}
		}
		s.buffers[key] = buf
	}
	return nil
}

// dataSet registers every buffer in input order
func (s *columnSet) dataSet(opts ...query.Option) (*query.DataSet, error) {
	ds := query.NewDataSet(opts...)
	for _, key := range s.order {
		col := s.byKey[key]
		if err := ds.AddColumn(col.entityID, col.measurementID, s.buffers[key]); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// taggedLogger returns the context logger carrying the context's source and query id
func taggedLogger(ctx context.Context) *logging.Logger {
	return logging.FromContext(ctx).WithContext(ctx)
}

// logColumnStatistics logs type, size and bounds of every column at info level
func logColumnStatistics(logger *logging.Logger, s *columnSet) {
	if !logger.Enabled(zerolog.InfoLevel) {
		return
	}
	for _, key := range s.order {
		buf := s.buffers[key]
		stats, err := buf.Statistics()
		if err != nil {
			logger.Warn("Statistics unavailable", "column", key, "error", err)
			continue
		}
		fields := []interface{}{"column", key, "type", buf.DataType().String(), "points", buf.ValueLen(),
			"stats_bytes", len(statistics.Marshal(stats))}
		if !stats.IsEmpty() {
			minValue, _ := stats.MinValue()
			maxValue, _ := stats.MaxValue()
			fields = append(fields, "min", minValue.String(), "max", maxValue.String())
		}
		logger.Info("Column loaded", fields...)
	}
}

// writeRows writes the header and up to limit aligned rows (all when limit <= 0)
func writeRows(w io.Writer, ds *query.DataSet, limit int) (int, error) {
	writer := csv.NewWriter(w)

	header := append([]string{"time"}, ds.Columns()...)
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	rows := 0
	row := make([]string, len(header))
	for (limit <= 0 || rows < limit) && ds.Next() {
		record := ds.CurrentRecord()
		row[0] = strconv.FormatInt(record.Timestamp, 10)
		for i, f := range record.Fields {
			if f.Null {
				row[i+1] = ""
			} else {
				row[i+1] = f.Value.String()
			}
		}
		if err := writer.Write(row); err != nil {
			return rows, fmt.Errorf("failed to write row: %w", err)
		}
		rows++
	}

	writer.Flush()
	return rows, writer.Error()
}
