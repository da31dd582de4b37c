package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSince(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"date only", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, berlin)},
		{"local date-time", "2024-03-05T10:00:00", time.Date(2024, 3, 5, 10, 0, 0, 0, berlin)},
		{"local with space", "2024-03-05 10:00:00.5", time.Date(2024, 3, 5, 10, 0, 0, 500_000_000, berlin)},
		{"local minutes", "2024-03-05T10:30", time.Date(2024, 3, 5, 10, 30, 0, 0, berlin)},
		{"with offset", "2024-03-05T10:00:00Z", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSince(tt.value, berlin)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	_, err = parseSince("05.03.2024", berlin)
	assert.Error(t, err)
}
