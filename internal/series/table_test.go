package series_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejusbharadwaj/gridview/internal/apperrors"
	"github.com/tejusbharadwaj/gridview/internal/series"
)

func TestToTable(t *testing.T) {
	tests := []struct {
		name    string
		records []map[string]any
		wantLen int
		wantErr bool
	}{
		{
			name:    "nil input yields empty table",
			records: nil,
			wantLen: 0,
		},
		{
			name:    "empty input yields empty table",
			records: []map[string]any{},
			wantLen: 0,
		},
		{
			name: "parses RFC3339 start_time",
			records: []map[string]any{
				{"start_time": "2024-01-15T00:00:00Z", "value": 1200.5},
			},
			wantLen: 1,
		},
		{
			name: "parses bare date",
			records: []map[string]any{
				{"start_time": "2024-01-15", "value": 1.0},
			},
			wantLen: 1,
		},
		{
			name: "records without start_time pass through",
			records: []map[string]any{
				{"value": 42.0},
			},
			wantLen: 1,
		},
		{
			name: "unparseable start_time",
			records: []map[string]any{
				{"start_time": "not-a-time", "value": 1.0},
			},
			wantErr: true,
		},
		{
			name: "non-string start_time",
			records: []map[string]any{
				{"start_time": 1705276800, "value": 1.0},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := series.ToTable(tt.records)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.KindDataProcessing, apperrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, table.Len())
		})
	}
}

func TestToTableParsesTimestamp(t *testing.T) {
	table, err := series.ToTable([]map[string]any{
		{"start_time": "2024-01-15T06:30:00Z", "value": 1200.5},
	})
	require.NoError(t, err)

	row := table.Rows()[0]
	require.NotNil(t, row.StartTime)
	assert.Equal(t, time.Date(2024, 1, 15, 6, 30, 0, 0, time.UTC), row.StartTime.UTC())
}

func TestToTableRoundTrip(t *testing.T) {
	records := []map[string]any{
		{"start_time": "2024-01-15T00:00:00Z", "value": 1.5, "source": "hydro", "quality": 3.0},
		{"start_time": "2024-01-15T01:00:00Z", "value": 2.5, "source": "wind"},
		{"value": 3.5},
	}

	table, err := series.ToTable(records)
	require.NoError(t, err)
	require.Equal(t, len(records), table.Len())

	// Every original field survives with its value, in the original order.
	for i, row := range table.Rows() {
		assert.Equal(t, records[i], row.Fields)
	}
}

func TestHasColumn(t *testing.T) {
	table, err := series.ToTable([]map[string]any{
		{"value": 1.0},
		{"start_time": "2024-01-15", "value": 2.0},
	})
	require.NoError(t, err)

	assert.True(t, table.HasColumn("start_time"))
	assert.True(t, table.HasColumn("value"))
	assert.False(t, table.HasColumn("end_time"))
}
