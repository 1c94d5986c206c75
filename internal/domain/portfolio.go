package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Holdings is the replayed state of a portfolio at a point in time:
// running cash plus open positions. It is always derived from the
// transaction log, never stored as authoritative data.
type Holdings struct {
	Positions map[string]*Position
	Cash      decimal.Decimal
}

func NewHoldings() *Holdings {
	return &Holdings{
		Positions: map[string]*Position{},
		Cash:      decimal.Zero,
	}
}

func (h Holdings) HeldTickers() []string {
	tickers := []string{}
	for ticker, position := range h.Positions {
		if position.Quantity.IsPositive() {
			tickers = append(tickers, ticker)
		}
	}
	return tickers
}

func (h Holdings) DeepCopy() *Holdings {
	out := &Holdings{
		Cash:      h.Cash,
		Positions: map[string]*Position{},
	}
	for ticker, position := range h.Positions {
		out.Positions[ticker] = position.DeepCopy()
	}
	return out
}

// Buy increases the position quantity and updates the weighted-average
// cost basis. Cash movement is handled by the caller.
func (h *Holdings) Buy(ticker string, quantity, price decimal.Decimal) {
	position, ok := h.Positions[ticker]
	if !ok {
		h.Positions[ticker] = &Position{
			Ticker:   ticker,
			Quantity: quantity,
			AvgCost:  price,
		}
		return
	}
	newQuantity := position.Quantity.Add(quantity)
	if newQuantity.IsPositive() {
		totalCost := position.AvgCost.Mul(position.Quantity).Add(price.Mul(quantity))
		position.AvgCost = totalCost.Div(newQuantity)
	}
	position.Quantity = newQuantity
}

// Sell decreases the position quantity. The average cost is unchanged,
// which is the weighted-average method for realized quantity reductions.
func (h *Holdings) Sell(ticker string, quantity decimal.Decimal) {
	position, ok := h.Positions[ticker]
	if !ok {
		h.Positions[ticker] = &Position{
			Ticker:   ticker,
			Quantity: quantity.Neg(),
		}
		return
	}
	position.Quantity = position.Quantity.Sub(quantity)
	if position.Quantity.IsZero() {
		delete(h.Positions, ticker)
	}
}

func (h Holdings) PositionsValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	value := decimal.Zero
	for ticker, position := range h.Positions {
		price, ok := priceMap[ticker]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute positions value: price map missing %s", ticker)
		}
		value = value.Add(position.Quantity.Mul(price))
	}
	return value, nil
}

func (h Holdings) TotalValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	positionsValue, err := h.PositionsValue(priceMap)
	if err != nil {
		return decimal.Zero, err
	}
	return h.Cash.Add(positionsValue), nil
}

type Position struct {
	Ticker   string
	Quantity decimal.Decimal
	AvgCost  decimal.Decimal
}

func (p Position) DeepCopy() *Position {
	return &Position{
		Ticker:   p.Ticker,
		Quantity: p.Quantity,
		AvgCost:  p.AvgCost,
	}
}

// LedgerSnapshot is the replayed portfolio state recorded after each
// confirmed transaction.
type LedgerSnapshot struct {
	Date          time.Time
	TransactionID string
	CashBalance   decimal.Decimal
	Holdings      *Holdings
}

type AssetPrice struct {
	Ticker string
	Date   time.Time
	Price  float64
}

type DividendPayment struct {
	Ticker         string
	ExDate         time.Time
	AmountPerShare decimal.Decimal
}
