package domain

import "time"

type DataQualityCode string

const (
	// DataQuality_NegativeCashIntermediate marks a replay step where the
	// running cash balance dipped below zero. Historical ledgers can pass
	// through this legitimately, so it is a condition, not an error.
	DataQuality_NegativeCashIntermediate DataQualityCode = "NEGATIVE_CASH_INTERMEDIATE"

	// DataQuality_NegativeCashFinal is the operator-facing alert raised
	// when the final replayed balance is negative beyond tolerance.
	DataQuality_NegativeCashFinal DataQualityCode = "NEGATIVE_CASH_FINAL"

	// DataQuality_MissingPriceData marks a backtest step that had to fall
	// back to the most recent prior price for a ticker.
	DataQuality_MissingPriceData DataQualityCode = "MISSING_PRICE_DATA"
)

type DataQualityFlag struct {
	Code    DataQualityCode `json:"code"`
	Ticker  string          `json:"ticker,omitempty"`
	Date    time.Time       `json:"date"`
	Message string          `json:"message"`
}
