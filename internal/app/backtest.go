package app

import (
	"carteira/internal/calculator"
	"carteira/internal/domain"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"carteira/internal/util"
	"context"
	"database/sql"
	"fmt"
	"time"
)

// priceLookbackDays is how far behind a valuation date the simulator
// will reach for a quote before flagging the gap.
const priceLookbackDays = 5

type BacktestHandler struct {
	Db                       *sql.DB
	PriceRepository          repository.PriceRepository
	DividendRepository       repository.DividendRepository
	BacktestResultRepository repository.BacktestResultRepository
}

// assetState tracks one simulated position across the run.
type assetState struct {
	units             float64
	netInvested       float64
	dividendsReceived float64
}

type priceSeries struct {
	prices []domain.AssetPrice
}

// on returns the most recent quote on or before date, and whether the
// quote is stale beyond the lookback window.
func (s priceSeries) on(date time.Time) (float64, bool, error) {
	var last *domain.AssetPrice
	for i := range s.prices {
		if s.prices[i].Date.After(date) {
			break
		}
		last = &s.prices[i]
	}
	if last == nil {
		return 0, false, fmt.Errorf("no quote on or before %s", date.Format("2006-01-02"))
	}
	stale := last.Date.Before(date.AddDate(0, 0, -priceLookbackDays))
	return last.Price, stale, nil
}

// Run simulates the configured strategy month by month. The simulation
// buys fractional units, pays dividends into a cash reserve that is
// never reinvested, and rebalances back to target weights on frequency
// boundaries. On a rebalance month the fresh contribution is folded
// into the rebalance rather than bought pro-rata first.
func (h BacktestHandler) Run(ctx context.Context, config domain.BacktestConfig, riskFreeRate float64) (*domain.BacktestRunResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetPerformanceProfile(ctx)

	start := util.TruncateToDay(config.StartDate)
	end := util.TruncateToDay(config.EndDate)
	if !start.Before(end) {
		return nil, fmt.Errorf("backtest start %s must precede end %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	tickers := make([]string, 0, len(config.Assets))
	targetByTicker := map[string]float64{}
	for _, asset := range config.Assets {
		tickers = append(tickers, asset.Ticker)
		targetByTicker[asset.Ticker] = asset.TargetAllocation
	}

	priceHistory, err := h.PriceRepository.ListMany(h.Db, tickers, start.AddDate(0, 0, -priceLookbackDays), end)
	if err != nil {
		return nil, err
	}
	series := map[string]priceSeries{}
	for _, ticker := range tickers {
		if len(priceHistory[ticker]) == 0 {
			return nil, fmt.Errorf("no price data for %s between %s and %s",
				ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
		series[ticker] = priceSeries{prices: priceHistory[ticker]}
	}
	profile.Add("load price history")

	dividendHistory, err := h.DividendRepository.ListMany(h.Db, tickers, start, end)
	if err != nil {
		return nil, err
	}
	profile.Add("load dividend history")

	// monthly valuation dates anchored on the start day, with the end
	// date as a final partial point when the range is not month-aligned
	dates := []time.Time{}
	for d := start; !d.After(end); d = start.AddDate(0, len(dates), 0) {
		dates = append(dates, d)
	}
	if !dates[len(dates)-1].Equal(end) {
		dates = append(dates, end)
	}

	states := map[string]*assetState{}
	for _, ticker := range tickers {
		states[ticker] = &assetState{}
	}
	cashReserve := 0.0
	flags := []domain.DataQualityFlag{}

	flagStale := func(ticker string, date time.Time) {
		flags = append(flags, domain.DataQualityFlag{
			Code:    domain.DataQuality_MissingPriceData,
			Ticker:  ticker,
			Date:    date,
			Message: fmt.Sprintf("no quote for %s near %s, carried the last known price", ticker, date.Format("2006-01-02")),
		})
	}

	// deploy splits investable cash across assets at target weights
	deploy := func(amount float64, date time.Time) error {
		for _, ticker := range tickers {
			price, stale, err := series[ticker].on(date)
			if err != nil {
				return fmt.Errorf("%s: %w", ticker, err)
			}
			if stale {
				flagStale(ticker, date)
			}
			slice := amount * targetByTicker[ticker]
			states[ticker].units += slice / price
			states[ticker].netInvested += slice
		}
		return nil
	}

	rebalanceEvery := 0
	switch config.RebalanceFrequency {
	case "MONTHLY":
		rebalanceEvery = 1
	case "QUARTERLY":
		rebalanceEvery = 3
	case "ANNUAL":
		rebalanceEvery = 12
	case "NONE", "":
	default:
		return nil, fmt.Errorf("unknown rebalance frequency %q", config.RebalanceFrequency)
	}

	initialCapital := config.InitialCapital.InexactFloat64()
	monthlyContribution := config.MonthlyContribution.InexactFloat64()

	evolution := []domain.EvolutionPoint{}
	curve := []domain.ValuationPoint{}
	cashFlows := []domain.CashFlow{
		{Date: start, Amount: initialCapital},
	}

	if err := deploy(initialCapital, start); err != nil {
		return nil, err
	}

	recordPoint := func(date time.Time) error {
		positionsValue := 0.0
		for _, ticker := range tickers {
			price, stale, err := series[ticker].on(date)
			if err != nil {
				return fmt.Errorf("%s: %w", ticker, err)
			}
			if stale {
				flagStale(ticker, date)
			}
			positionsValue += states[ticker].units * price
		}
		evolution = append(evolution, domain.EvolutionPoint{
			Date:           date,
			PositionsValue: positionsValue,
			CashReserve:    cashReserve,
			TotalValue:     positionsValue + cashReserve,
		})
		curve = append(curve, domain.ValuationPoint{
			Date:       date,
			TotalValue: positionsValue + cashReserve,
		})
		return nil
	}

	if err := recordPoint(start); err != nil {
		return nil, err
	}

	for i := 1; i < len(dates); i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("backtest aborted at %s: %w", dates[i].Format("2006-01-02"), err)
		}

		date := dates[i]
		previous := dates[i-1]

		// dividends pay on units held before this month's trading
		for _, ticker := range tickers {
			for _, dividend := range dividendHistory[ticker] {
				if dividend.ExDate.After(previous) && !dividend.ExDate.After(date) {
					paid := states[ticker].units * dividend.AmountPerShare.InexactFloat64()
					states[ticker].dividendsReceived += paid
					cashReserve += paid
				}
			}
		}

		isFinalPartial := i == len(dates)-1 && !date.Equal(start.AddDate(0, i, 0))
		contribution := 0.0
		if monthlyContribution > 0 && !isFinalPartial {
			contribution = monthlyContribution
			cashFlows = append(cashFlows, domain.CashFlow{Date: date, Amount: contribution})
		}

		rebalancing := rebalanceEvery > 0 && !isFinalPartial && i%rebalanceEvery == 0
		if rebalancing {
			// sell everything down to cash on paper, then redeploy the
			// whole investable amount at target weights
			investable := contribution
			for _, ticker := range tickers {
				price, stale, err := series[ticker].on(date)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", ticker, err)
				}
				if stale {
					flagStale(ticker, date)
				}
				value := states[ticker].units * price
				investable += value
				states[ticker].netInvested -= value
				states[ticker].units = 0
			}
			if err := deploy(investable, date); err != nil {
				return nil, err
			}
		} else if contribution > 0 {
			if err := deploy(contribution, date); err != nil {
				return nil, err
			}
		}

		if err := recordPoint(date); err != nil {
			return nil, err
		}
	}
	profile.Add("simulate")

	metrics, err := calculator.ComputeMetrics(calculator.ComputeMetricsInput{
		EquityCurve:  curve,
		CashFlows:    cashFlows,
		RiskFreeRate: riskFreeRate,
	})
	if err != nil {
		return nil, err
	}
	profile.Add("compute metrics")

	totalDividends := 0.0
	totalGain := metrics.FinalValue - metrics.TotalInvested
	assetPerformance := make([]domain.AssetPerformance, 0, len(config.Assets))
	for _, asset := range config.Assets {
		state := states[asset.Ticker]
		price, _, err := series[asset.Ticker].on(end)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", asset.Ticker, err)
		}

		finalValue := state.units * price
		gain := finalValue + state.dividendsReceived - state.netInvested

		performance := domain.AssetPerformance{
			Ticker:            asset.Ticker,
			FinalValue:        finalValue,
			DividendsReceived: state.dividendsReceived,
		}
		if state.netInvested > 0 {
			performance.TotalReturn = gain / state.netInvested
		}
		if totalGain != 0 {
			performance.ContributionToGain = gain / totalGain
		}

		totalDividends += state.dividendsReceived
		assetPerformance = append(assetPerformance, performance)
	}

	result := &domain.BacktestRunResult{
		BacktestConfigID:       config.BacktestConfigID,
		CalculatedAt:           time.Now().UTC(),
		TotalReturn:            metrics.TotalReturn,
		AnnualizedReturn:       metrics.AnnualizedReturn,
		Volatility:             metrics.Volatility,
		SharpeRatio:            metrics.SharpeRatio,
		MaxDrawdown:            metrics.MaxDrawdown,
		PositiveMonths:         metrics.PositiveMonths,
		NegativeMonths:         metrics.NegativeMonths,
		TotalInvested:          metrics.TotalInvested,
		FinalValue:             metrics.FinalValue,
		FinalCashReserve:       cashReserve,
		TotalDividendsReceived: totalDividends,
		MonthlyReturns:         metrics.MonthlyReturns,
		AssetPerformance:       assetPerformance,
		PortfolioEvolution:     evolution,
		DataQualityFlags:       flags,
	}

	log.Infow("backtest complete",
		"configID", config.BacktestConfigID,
		"months", len(dates)-1,
		"finalValue", fmt.Sprintf("%.2f", result.FinalValue),
		"flags", len(flags),
	)

	return result, nil
}

// RunAndPersist runs the simulation and appends the result row.
func (h BacktestHandler) RunAndPersist(ctx context.Context, config domain.BacktestConfig, riskFreeRate float64) (*domain.BacktestRunResult, error) {
	result, err := h.Run(ctx, config, riskFreeRate)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := h.BacktestResultRepository.Add(tx, *result); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}
