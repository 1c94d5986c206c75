package domain

import "time"

// ValuationPoint is one point on an equity curve: the portfolio's total
// value on a given calendar day. Both the live pipeline and the backtest
// simulator produce this shape, so metrics are computed by one code path.
type ValuationPoint struct {
	Date       time.Time `json:"date"`
	TotalValue float64   `json:"totalValue"`
}

// CashFlow is an external capital movement (contribution or withdrawal)
// that must be separated from market returns when computing metrics.
// Positive amounts are money entering the portfolio.
type CashFlow struct {
	Date   time.Time
	Amount float64
}

type MonthlyReturn struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Return float64 `json:"return"`
}
