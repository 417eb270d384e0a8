package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultNotificationThreshold is the percentage of the limit at which a
// budget notification fires when no explicit threshold is configured.
var DefaultNotificationThreshold = decimal.NewFromInt(80)

// Budget caps Expense spending for one category over an inclusive date
// range. Invariants: StartDate <= EndDate, and no two budgets for the same
// category may have overlapping ranges.
type Budget struct {
	BudgetID   string          `json:"budgetID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`   // FK -> users.user_id (Not Null)
	CategoryID string          `json:"categoryID"`
	Limit      decimal.Decimal `json:"limit"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"` // Inclusive
	// NotificationThreshold is the percentage of Limit at which spending
	// triggers a notification (e.g. 80 for 80%).
	NotificationThreshold decimal.Decimal `json:"notificationThreshold"`

	CreatedAt time.Time `json:"createdAt"`
}

// TriggerAmount returns the spending total above which this budget
// notifies: Limit * NotificationThreshold / 100.
func (b Budget) TriggerAmount() decimal.Decimal {
	return b.Limit.Mul(b.NotificationThreshold).Div(decimal.NewFromInt(100))
}

// Covers reports whether date falls inside the budget's inclusive range.
// Comparison is at day granularity: a posting at any time of day on the end
// date is still covered.
func (b Budget) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate))
}

// RangesOverlap reports whether the inclusive date ranges [aStart, aEnd] and
// [bStart, bEnd] intersect. Touching endpoints count as overlapping.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
