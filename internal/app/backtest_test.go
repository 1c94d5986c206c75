package app

import (
	"carteira/internal/domain"
	mock_repository "carteira/internal/repository/mocks"
	"carteira/internal/util"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func monthlySeries(ticker string, start time.Time, values []float64) []domain.AssetPrice {
	out := []domain.AssetPrice{}
	for i, v := range values {
		out = append(out, domain.AssetPrice{
			Ticker: ticker,
			Date:   start.AddDate(0, i, 0),
			Price:  v,
		})
	}
	return out
}

func newBacktestHandler(t *testing.T) (BacktestHandler, *mock_repository.MockPriceRepository, *mock_repository.MockDividendRepository) {
	ctrl := gomock.NewController(t)
	priceRepository := mock_repository.NewMockPriceRepository(ctrl)
	dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

	return BacktestHandler{
		PriceRepository:    priceRepository,
		DividendRepository: dividendRepository,
	}, priceRepository, dividendRepository
}

func Test_BacktestHandler_Run(t *testing.T) {
	start := util.NewDate(2024, 1, 1)

	t.Run("buy and hold single asset", func(t *testing.T) {
		handler, priceRepository, dividendRepository := newBacktestHandler(t)
		end := start.AddDate(0, 6, 0)

		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"PETR4": monthlySeries("PETR4", start, []float64{100, 105, 110, 108, 115, 120, 125}),
			}, nil)
		dividendRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.DividendPayment{}, nil)

		result, err := handler.Run(context.Background(), domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "PETR4", TargetAllocation: 1.0},
			},
			StartDate:      start,
			EndDate:        end,
			InitialCapital: decimal.NewFromInt(1000),
		}, 0)
		require.NoError(t, err)

		// 10 units bought at 100, worth 125 each at the end
		require.InEpsilon(t, 1250.0, result.FinalValue, 1e-9)
		require.InEpsilon(t, 1000.0, result.TotalInvested, 1e-9)
		require.InEpsilon(t, 0.25, result.TotalReturn, 1e-9)
		require.Zero(t, result.FinalCashReserve)
		require.Empty(t, result.DataQualityFlags)
		require.Len(t, result.PortfolioEvolution, 7)
	})

	t.Run("dividends accumulate in the cash reserve", func(t *testing.T) {
		handler, priceRepository, dividendRepository := newBacktestHandler(t)
		end := start.AddDate(0, 3, 0)

		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"ITSA4": monthlySeries("ITSA4", start, []float64{100, 100, 100, 100}),
			}, nil)
		dividendRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.DividendPayment{
				"ITSA4": {
					{Ticker: "ITSA4", ExDate: util.NewDate(2024, 2, 15), AmountPerShare: decimal.NewFromInt(1)},
				},
			}, nil)

		result, err := handler.Run(context.Background(), domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "ITSA4", TargetAllocation: 1.0},
			},
			StartDate:      start,
			EndDate:        end,
			InitialCapital: decimal.NewFromInt(1000),
		}, 0)
		require.NoError(t, err)

		// 10 units x R$1, never reinvested
		require.InEpsilon(t, 10.0, result.FinalCashReserve, 1e-9)
		require.InEpsilon(t, 10.0, result.TotalDividendsReceived, 1e-9)
		require.InEpsilon(t, 1010.0, result.FinalValue, 1e-9)
		require.Len(t, result.AssetPerformance, 1)
		require.InEpsilon(t, 10.0, result.AssetPerformance[0].DividendsReceived, 1e-9)
	})

	t.Run("monthly rebalance restores target weights", func(t *testing.T) {
		handler, priceRepository, dividendRepository := newBacktestHandler(t)
		end := start.AddDate(0, 2, 0)

		// AAA doubles every month, BBB is flat
		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"AAA": monthlySeries("AAA", start, []float64{100, 200, 400}),
				"BBB": monthlySeries("BBB", start, []float64{100, 100, 100}),
			}, nil)
		dividendRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.DividendPayment{}, nil)

		result, err := handler.Run(context.Background(), domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "AAA", TargetAllocation: 0.5},
				{Ticker: "BBB", TargetAllocation: 0.5},
			},
			StartDate:          start,
			EndDate:            end,
			InitialCapital:     decimal.NewFromInt(1000),
			RebalanceFrequency: "MONTHLY",
		}, 0)
		require.NoError(t, err)

		// month 1: AAA 500->1000, total 1500, rebalanced to 750/750
		// month 2: AAA 750->1500, total 2250
		require.InEpsilon(t, 2250.0, result.FinalValue, 1e-9)
	})

	t.Run("no rebalance lets weights drift", func(t *testing.T) {
		handler, priceRepository, dividendRepository := newBacktestHandler(t)
		end := start.AddDate(0, 2, 0)

		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"AAA": monthlySeries("AAA", start, []float64{100, 200, 400}),
				"BBB": monthlySeries("BBB", start, []float64{100, 100, 100}),
			}, nil)
		dividendRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.DividendPayment{}, nil)

		result, err := handler.Run(context.Background(), domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "AAA", TargetAllocation: 0.5},
				{Ticker: "BBB", TargetAllocation: 0.5},
			},
			StartDate:          start,
			EndDate:            end,
			InitialCapital:     decimal.NewFromInt(1000),
			RebalanceFrequency: "NONE",
		}, 0)
		require.NoError(t, err)

		// AAA 500 -> 2000, BBB stays 500
		require.InEpsilon(t, 2500.0, result.FinalValue, 1e-9)
	})

	t.Run("monthly contributions are deployed at target weights", func(t *testing.T) {
		handler, priceRepository, dividendRepository := newBacktestHandler(t)
		end := start.AddDate(0, 2, 0)

		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"FLAT": monthlySeries("FLAT", start, []float64{100, 100, 100}),
			}, nil)
		dividendRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.DividendPayment{}, nil)

		result, err := handler.Run(context.Background(), domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "FLAT", TargetAllocation: 1.0},
			},
			StartDate:           start,
			EndDate:             end,
			InitialCapital:      decimal.NewFromInt(1000),
			MonthlyContribution: decimal.NewFromInt(100),
		}, 0)
		require.NoError(t, err)

		require.InEpsilon(t, 1200.0, result.FinalValue, 1e-9)
		require.InEpsilon(t, 1200.0, result.TotalInvested, 1e-9)
		require.InDelta(t, 0.0, result.TotalReturn, 1e-9)
	})

	t.Run("price gaps carry the last quote and are flagged", func(t *testing.T) {
		handler, priceRepository, dividendRepository := newBacktestHandler(t)
		end := start.AddDate(0, 3, 0)

		// quotes stop after the first month
		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"THIN": monthlySeries("THIN", start, []float64{100, 110}),
			}, nil)
		dividendRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.DividendPayment{}, nil)

		result, err := handler.Run(context.Background(), domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "THIN", TargetAllocation: 1.0},
			},
			StartDate:      start,
			EndDate:        end,
			InitialCapital: decimal.NewFromInt(1000),
		}, 0)
		require.NoError(t, err)

		require.NotEmpty(t, result.DataQualityFlags)
		require.Equal(t, domain.DataQuality_MissingPriceData, result.DataQualityFlags[0].Code)
		// valuation carried the 110 quote forward
		require.InEpsilon(t, 1100.0, result.FinalValue, 1e-9)
	})

	t.Run("a ticker with no data at all is fatal", func(t *testing.T) {
		handler, priceRepository, _ := newBacktestHandler(t)
		end := start.AddDate(0, 3, 0)

		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"GONE": {},
			}, nil)

		_, err := handler.Run(context.Background(), domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "GONE", TargetAllocation: 1.0},
			},
			StartDate:      start,
			EndDate:        end,
			InitialCapital: decimal.NewFromInt(1000),
		}, 0)
		require.Error(t, err)
		require.Contains(t, err.Error(), "no price data")
	})

	t.Run("cancelled context aborts the simulation", func(t *testing.T) {
		handler, priceRepository, dividendRepository := newBacktestHandler(t)
		end := start.AddDate(0, 12, 0)

		values := []float64{}
		for i := 0; i <= 12; i++ {
			values = append(values, 100)
		}
		priceRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.AssetPrice{
				"SLOW": monthlySeries("SLOW", start, values),
			}, nil)
		dividendRepository.EXPECT().ListMany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.DividendPayment{}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := handler.Run(ctx, domain.BacktestConfig{
			BacktestConfigID: uuid.New(),
			Assets: []domain.BacktestAsset{
				{Ticker: "SLOW", TargetAllocation: 1.0},
			},
			StartDate:      start,
			EndDate:        end,
			InitialCapital: decimal.NewFromInt(1000),
		}, 0)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid date range is rejected", func(t *testing.T) {
		handler, _, _ := newBacktestHandler(t)

		_, err := handler.Run(context.Background(), domain.BacktestConfig{
			Assets:         []domain.BacktestAsset{{Ticker: "AAA", TargetAllocation: 1.0}},
			StartDate:      start,
			EndDate:        start,
			InitialCapital: decimal.NewFromInt(1000),
		}, 0)
		require.Error(t, err)
	})
}
