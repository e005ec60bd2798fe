package series

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tejusbharadwaj/gridview/internal/apperrors"
)

// DefaultMaxRows is the row cap used by callers that do not override it.
const DefaultMaxRows = 20

// displayTimeLayout renders timestamps at seconds precision without a
// timezone suffix.
const displayTimeLayout = "2006-01-02 15:04:05"

// FormatTable renders the first maxRows rows as a bordered grid with column
// headers. The start_time column is included only when present; float
// values are rounded to two decimals for display. An empty table renders as
// the literal "No data available.". When the table holds more rows than the
// cap, a trailing "... (showing N of M rows)" note is appended.
func FormatTable(t *Table, maxRows int) (string, error) {
	if maxRows <= 0 {
		return "", apperrors.DataProcessing("failed to format table: max rows must be positive, got %d", maxRows)
	}
	if t.Len() == 0 {
		return "No data available.", nil
	}

	hasTime := t.HasColumn(FieldStartTime)
	headers := []string{FieldValue}
	if hasTime {
		headers = []string{FieldStartTime, FieldValue}
	}

	var buf strings.Builder
	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader(headers)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := t.Rows()
	shown := len(rows)
	if shown > maxRows {
		shown = maxRows
	}

	for _, row := range rows[:shown] {
		var cells []string
		if hasTime {
			cells = append(cells, formatStartTime(row))
		}
		cells = append(cells, formatCell(row.Fields[FieldValue]))
		tw.Append(cells)
	}
	tw.Render()

	out := strings.TrimRight(buf.String(), "\n")
	if t.Len() > maxRows {
		out += fmt.Sprintf("\n... (showing %d of %d rows)", maxRows, t.Len())
	}
	return out, nil
}

func formatStartTime(row Row) string {
	if row.StartTime == nil {
		return ""
	}
	return row.StartTime.Format(displayTimeLayout)
}

// formatCell rounds floats to two decimals for display; everything else is
// rendered verbatim. Underlying table data is never modified.
func formatCell(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', 2, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
