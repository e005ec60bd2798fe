// Package series implements the tabular model for grid time-series data:
// conversion from raw API records, descriptive statistics over the value
// column, and console table rendering.
package series

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/tejusbharadwaj/gridview/internal/apperrors"
)

// FieldStartTime and FieldValue are the well-known record keys produced by
// the Fingrid events endpoint.
const (
	FieldStartTime = "start_time"
	FieldValue     = "value"
)

// timeLayouts are the accepted start_time formats, most specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Row is a single observation. Fields holds the original record untouched;
// StartTime is the parsed "start_time" when the record carries one.
type Row struct {
	StartTime *time.Time
	Fields    map[string]any
}

// Value coerces the row's "value" field to float64. The second return is
// false when the field is absent.
func (r Row) Value() (float64, bool, error) {
	raw, ok := r.Fields[FieldValue]
	if !ok || raw == nil {
		return 0, false, nil
	}
	v, err := coerceFloat(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// Table is an ordered sequence of rows in API arrival order. It is built
// once by ToTable and read-only afterwards.
type Table struct {
	rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns the rows in original order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return t.rows
}

// HasColumn reports whether any row carries the given field, mirroring
// column semantics of a record union.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, r := range t.rows {
		if _, ok := r.Fields[name]; ok {
			return true
		}
	}
	return false
}

// ToTable converts raw API records into a Table. All original fields are
// preserved per row and row order is kept; the only transformation is
// parsing "start_time" into a time.Time. A nil or empty input yields an
// empty table.
func ToTable(records []map[string]any) (*Table, error) {
	t := &Table{}
	if len(records) == 0 {
		return t, nil
	}

	t.rows = make([]Row, 0, len(records))
	for i, rec := range records {
		row := Row{Fields: rec}
		if raw, ok := rec[FieldStartTime]; ok {
			s, ok := raw.(string)
			if !ok {
				return nil, apperrors.DataProcessing(
					"failed to convert data to table: record %d has non-string start_time %T", i, raw)
			}
			ts, err := parseTime(s)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.KindDataProcessing, err,
					"failed to convert data to table: record %d has unparseable start_time %q", i, s)
			}
			row.StartTime = &ts
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

func parseTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func coerceFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to float", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to float", raw)
	}
}
