package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

func TestBudget_TriggerAmount(t *testing.T) {
	budget := domain.Budget{
		Limit:                 decimal.NewFromInt(200),
		NotificationThreshold: decimal.NewFromInt(80),
	}
	assert.True(t, budget.TriggerAmount().Equal(decimal.NewFromInt(160)))

	budget.NotificationThreshold = decimal.NewFromInt(100)
	assert.True(t, budget.TriggerAmount().Equal(decimal.NewFromInt(200)))
}

func TestBudget_Covers(t *testing.T) {
	budget := domain.Budget{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, budget.Covers(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), "start date is inclusive")
	assert.True(t, budget.Covers(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)), "end date is inclusive")
	assert.True(t, budget.Covers(time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)), "afternoon on the end date is still the end date")
	assert.True(t, budget.Covers(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.Covers(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.Covers(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateOnly(t *testing.T) {
	assert.Equal(t,
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		domain.DateOnly(time.Date(2025, 3, 31, 15, 30, 45, 12, time.UTC)))

	// Non-UTC inputs resolve to the UTC calendar day: 01:00 +02:00 is still
	// 23:00 the previous day in UTC.
	assert.Equal(t,
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		domain.DateOnly(time.Date(2025, 4, 1, 1, 0, 0, 0, time.FixedZone("CEST", 2*60*60))))
}

func TestRangesOverlap(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{name: "disjoint", aStart: day(1), aEnd: day(10), bStart: day(11), bEnd: day(20), want: false},
		{name: "contained", aStart: day(1), aEnd: day(31), bStart: day(10), bEnd: day(20), want: true},
		{name: "partial overlap", aStart: day(1), aEnd: day(15), bStart: day(10), bEnd: day(25), want: true},
		{name: "touching endpoints overlap", aStart: day(1), aEnd: day(10), bStart: day(10), bEnd: day(20), want: true},
		{name: "identical", aStart: day(1), aEnd: day(10), bStart: day(1), bEnd: day(10), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, domain.RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
