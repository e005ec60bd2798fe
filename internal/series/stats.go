package series

import (
	"math"
	"sort"

	"github.com/tejusbharadwaj/gridview/internal/apperrors"
)

// Summary is a snapshot of descriptive statistics over the value column.
// A zero Count means the table was empty or had no value column; the float
// fields are meaningless in that case. StdDev is NaN when fewer than two
// values were observed (sample standard deviation, N-1 denominator).
type Summary struct {
	Count   int
	Average float64
	Maximum float64
	Minimum float64
	Median  float64
	StdDev  float64
}

// Empty reports whether the summary carries no statistics.
func (s Summary) Empty() bool { return s.Count == 0 }

// CalculateStats computes count, mean, max, min, median and sample standard
// deviation over the table's value column. Rows lacking the value field are
// counted but excluded from the numeric aggregates. An empty table or a
// table with no value column yields an empty Summary, not an error; a value
// that cannot be coerced to float is a data-processing error.
func CalculateStats(t *Table) (Summary, error) {
	if t.Len() == 0 || !t.HasColumn(FieldValue) {
		return Summary{}, nil
	}

	values := make([]float64, 0, t.Len())
	for i, row := range t.Rows() {
		v, present, err := row.Value()
		if err != nil {
			return Summary{}, apperrors.Wrap(apperrors.KindDataProcessing, err,
				"failed to calculate statistics: row %d", i)
		}
		if present {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Summary{}, nil
	}

	s := Summary{
		Count:   t.Len(),
		Average: mean(values),
		Maximum: values[0],
		Minimum: values[0],
		Median:  median(values),
	}
	for _, v := range values[1:] {
		s.Maximum = math.Max(s.Maximum, v)
		s.Minimum = math.Min(s.Minimum, v)
	}
	s.StdDev = sampleStdDev(values, s.Average)
	return s, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median returns the 50th percentile with linear interpolation between the
// two middle elements for even counts.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func sampleStdDev(values []float64, avg float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, v := range values {
		d := v - avg
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}
