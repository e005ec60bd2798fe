// Package sample generates synthetic electricity data for demo mode.
package sample

import (
	"math"
	"math/rand"
	"time"
)

// Hours is the length of the generated series.
const Hours = 72

// Generate returns 72 hourly records shaped like the Fingrid events
// payload, simulating hydro production around 1200 MWh starting at
// 2024-01-15T00:00:00Z. The output feeds series.ToTable directly, so demo
// mode exercises the same pipeline as a live query.
func Generate() []map[string]any {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	records := make([]map[string]any, 0, Hours)
	for i := 0; i < Hours; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		value := 1200 + rand.Float64()*250 - 100
		records = append(records, map[string]any{
			"start_time": ts.Format(time.RFC3339),
			"value":      math.Round(value*100) / 100,
		})
	}
	return records
}
