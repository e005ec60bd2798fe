package console

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/tejusbharadwaj/gridview/internal/series"
)

// renderChart plots the value column as an ASCII line chart. Rows without
// a usable value are skipped; a series with no plottable points prints a
// short notice instead of a chart.
func (c *Console) renderChart(table *series.Table, variableID string) {
	values := make([]float64, 0, table.Len())
	for _, row := range table.Rows() {
		v, present, err := row.Value()
		if err != nil || !present {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		fmt.Fprintln(c.out, "Cannot plot: insufficient data.")
		return
	}

	chart := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("Fingrid Variable %s - Electricity Data", variableID)),
	)
	fmt.Fprintln(c.out, "\n"+chart)
}
