package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodSummary is the income/expense rollup for a date range.
type PeriodSummary struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}

// CategorySpend is one row of a per-category expense breakdown.
type CategorySpend struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// DailyTotal is one point of a daily expense time series.
type DailyTotal struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}
