package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTimeInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantValid bool
	}{
		{
			name:      "bare date becomes midnight UTC",
			input:     "2024-01-15",
			want:      "2024-01-15T00:00:00Z",
			wantValid: true,
		},
		{
			name:      "timestamp without zone gets Z appended",
			input:     "2024-01-15T06:30:00",
			want:      "2024-01-15T06:30:00Z",
			wantValid: true,
		},
		{
			name:      "full ISO timestamp unchanged",
			input:     "2024-01-15T06:30:00Z",
			want:      "2024-01-15T06:30:00Z",
			wantValid: true,
		},
		{
			name:  "garbage",
			input: "yesterday",
		},
		{
			name:  "wrong separator",
			input: "2024/01/15",
		},
		{
			name:  "impossible date",
			input: "2024-13-45",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := normalizeTimeInput(tt.input)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.want, got)
		})
	}
}
