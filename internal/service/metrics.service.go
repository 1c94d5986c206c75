package service

import (
	"carteira/internal/calculator"
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/domain"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"carteira/internal/util"
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// RiskFreeRateProvider abstracts where the annual risk-free rate comes
// from. Production uses the SELIC rate; tests and offline runs use a
// fixed value.
type RiskFreeRateProvider interface {
	GetRiskFreeRate(ctx context.Context) (float64, error)
}

type FixedRiskFreeRate float64

func (f FixedRiskFreeRate) GetRiskFreeRate(ctx context.Context) (float64, error) {
	return float64(f), nil
}

type MetricsService interface {
	// GetMetrics computes performance metrics for a portfolio from its
	// confirmed ledger. Results are cached; any ledger mutation evicts
	// the cache entry, so a cached value is never stale.
	GetMetrics(ctx context.Context, portfolioID uuid.UUID) (*calculator.Metrics, error)
}

type metricsServiceHandler struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
	PriceRepository       repository.PriceRepository
	RiskFreeRate          RiskFreeRateProvider
	Cache                 *gocache.Cache
}

func NewMetricsService(
	db *sql.DB,
	transactionRepository repository.TransactionRepository,
	priceRepository repository.PriceRepository,
	riskFreeRate RiskFreeRateProvider,
	cache *gocache.Cache,
) MetricsService {
	return metricsServiceHandler{
		Db:                    db,
		TransactionRepository: transactionRepository,
		PriceRepository:       priceRepository,
		RiskFreeRate:          riskFreeRate,
		Cache:                 cache,
	}
}

func (h metricsServiceHandler) GetMetrics(ctx context.Context, portfolioID uuid.UUID) (*calculator.Metrics, error) {
	if cached, found := h.Cache.Get(portfolioID.String()); found {
		return cached.(*calculator.Metrics), nil
	}

	metrics, err := h.computeMetrics(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	h.Cache.Set(portfolioID.String(), metrics, gocache.DefaultExpiration)
	return metrics, nil
}

func (h metricsServiceHandler) computeMetrics(ctx context.Context, portfolioID uuid.UUID) (*calculator.Metrics, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetPerformanceProfile(ctx)

	confirmed := model.TransactionStatus_Confirmed
	transactions, err := h.TransactionRepository.List(h.Db, portfolioID, repository.TransactionListFilter{
		Status: &confirmed,
	})
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, fmt.Errorf("portfolio %s has no confirmed transactions", portfolioID)
	}

	replayed, err := Replay(transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to replay portfolio %s: %w", portfolioID, err)
	}
	profile.Add("replay ledger")

	// one valuation point per ledger day, using the end-of-day state
	curve := []domain.ValuationPoint{}
	for i, snapshot := range replayed.Snapshots {
		if i+1 < len(replayed.Snapshots) && util.SameDay(snapshot.Date, replayed.Snapshots[i+1].Date) {
			continue
		}

		value := snapshot.Holdings.Cash
		for ticker, position := range snapshot.Holdings.Positions {
			price, err := h.PriceRepository.Get(h.Db, ticker, snapshot.Date)
			if err != nil {
				// a position without a stored price falls back to its
				// cost basis so one gap does not sink the whole curve
				log.Warnw("no price for valuation, using cost basis",
					"ticker", ticker, "date", snapshot.Date)
				price, _ = position.AvgCost.Float64()
			}
			value = value.Add(position.Quantity.Mul(decimal.NewFromFloat(price)))
		}

		totalValue, _ := value.Float64()
		curve = append(curve, domain.ValuationPoint{
			Date:       snapshot.Date,
			TotalValue: totalValue,
		})
	}
	profile.Add("build equity curve")

	// only external capital movements count as flows; buys, sells and
	// dividends shuffle value inside the portfolio
	cashFlows := []domain.CashFlow{}
	for _, t := range transactions {
		if t.Type == model.TransactionType_CashCredit || t.Type == model.TransactionType_CashDebit {
			amount, _ := t.Amount.Float64()
			cashFlows = append(cashFlows, domain.CashFlow{
				Date:   t.Date,
				Amount: amount,
			})
		}
	}

	riskFreeRate, err := h.RiskFreeRate.GetRiskFreeRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get risk-free rate: %w", err)
	}

	metrics, err := calculator.ComputeMetrics(calculator.ComputeMetricsInput{
		EquityCurve:  curve,
		CashFlows:    cashFlows,
		RiskFreeRate: riskFreeRate,
	})
	if err != nil {
		return nil, err
	}
	profile.Add("compute metrics")

	return metrics, nil
}
