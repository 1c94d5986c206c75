package calculator

import (
	"carteira/internal/domain"
	"carteira/internal/util"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func flatCurve(months int, value float64) []domain.ValuationPoint {
	out := []domain.ValuationPoint{}
	for i := 0; i <= months; i++ {
		out = append(out, domain.ValuationPoint{
			Date:       util.NewDate(2024, 1, 15).AddDate(0, i, 0),
			TotalValue: value,
		})
	}
	return out
}

func Test_ComputeMetrics(t *testing.T) {
	t.Run("empty curve is an error", func(t *testing.T) {
		_, err := ComputeMetrics(ComputeMetricsInput{})
		require.Error(t, err)
	})

	t.Run("annualized metrics stay nil before twelve months", func(t *testing.T) {
		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: flatCurve(11, 1000),
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 15), Amount: 1000},
			},
		})
		require.NoError(t, err)

		require.Nil(t, metrics.AnnualizedReturn)
		require.Nil(t, metrics.SharpeRatio)
		// shorter-horizon metrics are already available
		require.NotNil(t, metrics.Volatility)
		require.NotNil(t, metrics.MaxDrawdown)
	})

	t.Run("annualized return appears at twelve months", func(t *testing.T) {
		curve := flatCurve(12, 1000)
		curve[len(curve)-1].TotalValue = 1100

		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: curve,
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 15), Amount: 1000},
			},
		})
		require.NoError(t, err)

		require.InEpsilon(t, 0.10, metrics.TotalReturn, 1e-9)
		require.NotNil(t, metrics.AnnualizedReturn)
		// 12 months elapsed: annualized equals total return
		require.InEpsilon(t, 0.10, *metrics.AnnualizedReturn, 1e-9)
	})

	t.Run("annualized return compounds over longer horizons", func(t *testing.T) {
		curve := flatCurve(24, 1000)
		curve[len(curve)-1].TotalValue = 1210

		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: curve,
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 15), Amount: 1000},
			},
		})
		require.NoError(t, err)

		require.NotNil(t, metrics.AnnualizedReturn)
		// (1.21)^(12/24) - 1 = 0.10
		require.InEpsilon(t, 0.10, *metrics.AnnualizedReturn, 1e-9)
	})

	t.Run("volatility needs at least two monthly returns", func(t *testing.T) {
		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: flatCurve(1, 1000),
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 15), Amount: 1000},
			},
		})
		require.NoError(t, err)
		require.Nil(t, metrics.Volatility)
	})

	t.Run("drawdown needs two months of history", func(t *testing.T) {
		// two points inside one calendar month: a dip, but not yet a
		// meaningful drawdown
		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: []domain.ValuationPoint{
				{Date: util.NewDate(2024, 1, 5), TotalValue: 100},
				{Date: util.NewDate(2024, 1, 20), TotalValue: 80},
			},
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 5), Amount: 100},
			},
		})
		require.NoError(t, err)
		require.Nil(t, metrics.MaxDrawdown)
	})

	t.Run("max drawdown tracks the running peak", func(t *testing.T) {
		values := []float64{100, 120, 90, 150, 80}
		curve := []domain.ValuationPoint{}
		for i, v := range values {
			curve = append(curve, domain.ValuationPoint{
				Date:       util.NewDate(2024, 1, 1).AddDate(0, i, 0),
				TotalValue: v,
			})
		}

		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: curve,
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 1), Amount: 100},
			},
		})
		require.NoError(t, err)

		require.NotNil(t, metrics.MaxDrawdown)
		// worst decline is 150 -> 80, not 120 -> 90
		require.InEpsilon(t, (150.0-80.0)/150.0, *metrics.MaxDrawdown, 1e-9)
	})

	t.Run("contributions are not counted as gains", func(t *testing.T) {
		curve := []domain.ValuationPoint{
			{Date: util.NewDate(2024, 1, 1), TotalValue: 1000},
			{Date: util.NewDate(2024, 2, 1), TotalValue: 1500},
		}
		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: curve,
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 1), Amount: 1000},
				{Date: util.NewDate(2024, 2, 1), Amount: 500},
			},
		})
		require.NoError(t, err)

		// (1500 - 1000 - 500) / (1000 + 250) = 0
		require.Empty(t, cmp.Diff([]domain.MonthlyReturn{
			{Year: 2024, Month: 2, Return: 0},
		}, metrics.MonthlyReturns))
		require.InDelta(t, 0.0, metrics.TotalReturn, 1e-9)
	})

	t.Run("months with non-positive adjusted start are skipped", func(t *testing.T) {
		curve := []domain.ValuationPoint{
			{Date: util.NewDate(2024, 1, 1), TotalValue: 100},
			{Date: util.NewDate(2024, 2, 1), TotalValue: 50},
		}
		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: curve,
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 1), Amount: 100},
				// a huge withdrawal makes the midpoint denominator negative
				{Date: util.NewDate(2024, 2, 1), Amount: -300},
			},
		})
		require.NoError(t, err)

		require.Empty(t, metrics.MonthlyReturns)
		for _, mr := range metrics.MonthlyReturns {
			require.False(t, math.IsInf(mr.Return, 0))
			require.False(t, math.IsNaN(mr.Return))
		}
	})

	t.Run("positive and negative month counts", func(t *testing.T) {
		values := []float64{100, 110, 99, 120}
		curve := []domain.ValuationPoint{}
		for i, v := range values {
			curve = append(curve, domain.ValuationPoint{
				Date:       util.NewDate(2024, 1, 1).AddDate(0, i, 0),
				TotalValue: v,
			})
		}

		metrics, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve: curve,
			CashFlows: []domain.CashFlow{
				{Date: util.NewDate(2024, 1, 1), Amount: 100},
			},
		})
		require.NoError(t, err)

		require.Equal(t, 2, metrics.PositiveMonths)
		require.Equal(t, 1, metrics.NegativeMonths)
	})

	t.Run("sharpe uses the supplied risk-free rate", func(t *testing.T) {
		values := []float64{1000, 1020, 1010, 1050, 1040, 1080, 1070, 1110, 1100, 1140, 1130, 1170, 1200}
		curve := []domain.ValuationPoint{}
		for i, v := range values {
			curve = append(curve, domain.ValuationPoint{
				Date:       util.NewDate(2024, 1, 1).AddDate(0, i, 0),
				TotalValue: v,
			})
		}

		withZero, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve:  curve,
			CashFlows:    []domain.CashFlow{{Date: util.NewDate(2024, 1, 1), Amount: 1000}},
			RiskFreeRate: 0,
		})
		require.NoError(t, err)
		withSelic, err := ComputeMetrics(ComputeMetricsInput{
			EquityCurve:  curve,
			CashFlows:    []domain.CashFlow{{Date: util.NewDate(2024, 1, 1), Amount: 1000}},
			RiskFreeRate: 0.105,
		})
		require.NoError(t, err)

		require.NotNil(t, withZero.SharpeRatio)
		require.NotNil(t, withSelic.SharpeRatio)
		require.Greater(t, *withZero.SharpeRatio, *withSelic.SharpeRatio)
	})
}

func Test_AvailableAt(t *testing.T) {
	start := util.NewDate(2024, 3, 10)

	annualized, err := AvailableAt("annualizedReturn", start)
	require.NoError(t, err)
	require.Equal(t, util.NewDate(2025, 3, 10), annualized)

	volatility, err := AvailableAt("volatility", start)
	require.NoError(t, err)
	require.Equal(t, util.NewDate(2024, 5, 10), volatility)

	_, err = AvailableAt("unknownMetric", start)
	require.Error(t, err)
}
