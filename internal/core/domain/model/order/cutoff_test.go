package order_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditCutoff(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		placedAt time.Time
		want     time.Time
	}{
		{
			name:     "morning order closes the same evening",
			placedAt: time.Date(2024, 3, 5, 8, 15, 0, 0, berlin),
			want:     time.Date(2024, 3, 5, 22, 0, 0, 0, berlin),
		},
		{
			name:     "one minute before cutoff",
			placedAt: time.Date(2024, 3, 5, 21, 59, 0, 0, berlin),
			want:     time.Date(2024, 3, 5, 22, 0, 0, 0, berlin),
		},
		{
			name:     "exactly at cutoff rolls over",
			placedAt: time.Date(2024, 3, 5, 22, 0, 0, 0, berlin),
			want:     time.Date(2024, 3, 6, 22, 0, 0, 0, berlin),
		},
		{
			name:     "late order rolls over month end",
			placedAt: time.Date(2024, 3, 31, 23, 30, 0, 0, berlin),
			want:     time.Date(2024, 4, 1, 22, 0, 0, 0, berlin),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.EditCutoff(tt.placedAt, berlin)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestEditCutoff_EvaluatedInShopZone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 20:30 UTC is 22:30 in Berlin during summer time.
	placedAt := time.Date(2024, 7, 10, 20, 30, 0, 0, time.UTC)

	got := order.EditCutoff(placedAt, berlin)

	assert.True(t, time.Date(2024, 7, 11, 22, 0, 0, 0, berlin).Equal(got))
}

func TestEditCutoff_NilLocationUsesPlacedAtZone(t *testing.T) {
	placedAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	got := order.EditCutoff(placedAt, nil)

	assert.True(t, time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC).Equal(got))
}
