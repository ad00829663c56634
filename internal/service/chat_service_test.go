package service

import (
	"testing"
	"time"

	"chatlog-admin-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      dto.ListChatsQuery
		wantPage   int
		wantLimit  int
		wantColumn string
		wantDesc   bool
	}{
		{
			name:       "empty query gets defaults",
			query:      dto.ListChatsQuery{},
			wantPage:   1,
			wantLimit:  20,
			wantColumn: "created_at",
			wantDesc:   true,
		},
		{
			name:       "negative page clamps to first",
			query:      dto.ListChatsQuery{Page: -3, Limit: 10},
			wantPage:   1,
			wantLimit:  10,
			wantColumn: "created_at",
			wantDesc:   true,
		},
		{
			name:       "oversized limit clamps to 100",
			query:      dto.ListChatsQuery{Page: 2, Limit: 500},
			wantPage:   2,
			wantLimit:  100,
			wantColumn: "created_at",
			wantDesc:   true,
		},
		{
			name:       "unknown sort column falls back",
			query:      dto.ListChatsQuery{SortBy: "phone; DROP TABLE chats"},
			wantPage:   1,
			wantLimit:  20,
			wantColumn: "created_at",
			wantDesc:   true,
		},
		{
			name:       "known sort column ascending",
			query:      dto.ListChatsQuery{SortBy: "message_count", SortOrder: "asc"},
			wantPage:   1,
			wantLimit:  20,
			wantColumn: "message_count",
			wantDesc:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := normalizeListQuery(&tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, params.page)
			assert.Equal(t, tt.wantLimit, params.limit)
			assert.Equal(t, tt.wantColumn, params.sortColumn)
			assert.Equal(t, tt.wantDesc, params.sortDesc)
		})
	}
}

func TestNormalizeListQueryDateBounds(t *testing.T) {
	params, err := normalizeListQuery(&dto.ListChatsQuery{
		DateFrom: "2026-01-15",
		DateTo:   "2026-01-20",
	})
	require.NoError(t, err)

	require.NotNil(t, params.dateFrom)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), params.dateFrom.UTC())

	// Date-only upper bound covers the full day.
	require.NotNil(t, params.dateTo)
	assert.Equal(t, 23, params.dateTo.Hour())
	assert.Equal(t, 20, params.dateTo.Day())

	_, err = normalizeListQuery(&dto.ListChatsQuery{DateFrom: "not-a-date"})
	assert.Error(t, err)
}

func TestParseDateBoundRFC3339(t *testing.T) {
	got, err := parseDateBound("2026-03-01T10:30:00Z", true)
	require.NoError(t, err)
	// Full timestamps are taken as-is, even for the upper bound.
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), got.UTC())
}

func TestUncertaintyRate(t *testing.T) {
	assert.Equal(t, 0.0, uncertaintyRate(0, 0))
	assert.Equal(t, 0.0, uncertaintyRate(5, 0))
	assert.Equal(t, 37.5, uncertaintyRate(3, 8))
	assert.Equal(t, 100.0, uncertaintyRate(10, 10))
	assert.Equal(t, 33.33, uncertaintyRate(1, 3))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 3, totalPages(25, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 0, totalPages(10, 0))
}

func TestMetricsFromPayload(t *testing.T) {
	t.Run("nil payload defaults everything but count", func(t *testing.T) {
		m := metricsFromPayload(nil, 6)
		assert.Equal(t, 6, m.MessageCount)
		assert.False(t, m.HasPriceObjection)
		assert.False(t, m.HasUncertainty)
		assert.Equal(t, 0, m.UncertaintyCount)
	})

	t.Run("message count mirrors transcript length, not the payload", func(t *testing.T) {
		m := metricsFromPayload(&dto.ChatMetricsPayload{
			MessageCount:    999,
			AskedForContact: true,
			HasUncertainty:  true,
		}, 4)
		assert.Equal(t, 4, m.MessageCount)
		assert.True(t, m.AskedForContact)
		assert.True(t, m.HasUncertainty)
	})
}

func TestFilterSpecs(t *testing.T) {
	empty := &listParams{}
	assert.Empty(t, empty.filterSpecs())

	hasPhone := true
	from := time.Now()
	full := &listParams{
		status:   "new",
		search:   "ivan",
		dateFrom: &from,
		hasPhone: &hasPhone,
	}
	assert.Len(t, full.filterSpecs(), 4)
}
