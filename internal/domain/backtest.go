package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationTolerance is how far the sum of target allocations may drift
// from 1.0 before a config is rejected.
const AllocationTolerance = 0.001

type BacktestAsset struct {
	Ticker           string  `json:"ticker"`
	TargetAllocation float64 `json:"targetAllocation"`
}

type BacktestConfig struct {
	BacktestConfigID    uuid.UUID
	UserID              uuid.UUID
	Name                string
	Assets              []BacktestAsset
	StartDate           time.Time
	EndDate             time.Time
	InitialCapital      decimal.Decimal
	MonthlyContribution decimal.Decimal
	RebalanceFrequency  string
}

type AssetPerformance struct {
	Ticker             string  `json:"ticker"`
	TotalReturn        float64 `json:"totalReturn"`
	ContributionToGain float64 `json:"contributionToGain"`
	FinalValue         float64 `json:"finalValue"`
	DividendsReceived  float64 `json:"dividendsReceived"`
}

type EvolutionPoint struct {
	Date           time.Time `json:"date"`
	PositionsValue float64   `json:"positionsValue"`
	CashReserve    float64   `json:"cashReserve"`
	TotalValue     float64   `json:"totalValue"`
}

type BacktestRunResult struct {
	BacktestConfigID       uuid.UUID
	CalculatedAt           time.Time
	TotalReturn            float64
	AnnualizedReturn       *float64
	Volatility             *float64
	SharpeRatio            *float64
	MaxDrawdown            *float64
	PositiveMonths         int
	NegativeMonths         int
	TotalInvested          float64
	FinalValue             float64
	FinalCashReserve       float64
	TotalDividendsReceived float64
	MonthlyReturns         []MonthlyReturn
	AssetPerformance       []AssetPerformance
	PortfolioEvolution     []EvolutionPoint
	DataQualityFlags       []DataQualityFlag
}
