package queries_test

import (
	"testing"
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, "orderID")

	q, err := queries.NewGetOrderQuery(7, 60)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
}

func TestQueries_MustBeConstructed(t *testing.T) {
	assert.ErrorIs(t, queries.GetCartQuery{}.Validate(), queries.ErrGetCartQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListProductsQuery{}.Validate(), queries.ErrListProductsQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.ListPendingChangeRequestsQuery{}.Validate(),
		queries.ErrListPendingChangeRequestsQueryIsNotConstructed,
	)
}

func TestNewGetCostsQuery(t *testing.T) {
	_, err := queries.NewGetCostsQuery(7, time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListExportLogsQuery_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, queries.MaxExportLogs},
		{"negative", -3, queries.MaxExportLogs},
		{"within range", 10, 10},
		{"too large", 500, queries.MaxExportLogs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queries.NewListExportLogsQuery(tt.limit).Limit())
		})
	}
}
