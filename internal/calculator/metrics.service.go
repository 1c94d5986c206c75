package calculator

import (
	"carteira/internal/domain"
	"carteira/internal/util"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// Conventions: returns are bucketed by calendar month, annualization uses
// a factor of 12 (sqrt(12) for volatility), and the risk-free rate is an
// annual rate supplied by the caller. Metrics that need more history than
// the curve has are nil, never zero - callers must be able to distinguish
// "not yet meaningful" from "computed as zero".

const (
	MonthsRequiredForAnnualized = 12
	MonthsRequiredForVolatility = 2
)

type ComputeMetricsInput struct {
	EquityCurve  []domain.ValuationPoint
	CashFlows    []domain.CashFlow
	RiskFreeRate float64
}

type Metrics struct {
	TotalReturn      float64                `json:"totalReturn"`
	AnnualizedReturn *float64               `json:"annualizedReturn"`
	Volatility       *float64               `json:"volatility"`
	SharpeRatio      *float64               `json:"sharpeRatio"`
	MaxDrawdown      *float64               `json:"maxDrawdown"`
	PositiveMonths   int                    `json:"positiveMonths"`
	NegativeMonths   int                    `json:"negativeMonths"`
	TotalInvested    float64                `json:"totalInvested"`
	FinalValue       float64                `json:"finalValue"`
	MonthlyReturns   []domain.MonthlyReturn `json:"monthlyReturns"`
}

func ComputeMetrics(in ComputeMetricsInput) (*Metrics, error) {
	if len(in.EquityCurve) == 0 {
		return nil, fmt.Errorf("cannot compute metrics on an empty equity curve")
	}

	curve := make([]domain.ValuationPoint, len(in.EquityCurve))
	copy(curve, in.EquityCurve)
	sort.Slice(curve, func(i, j int) bool {
		return curve[i].Date.Before(curve[j].Date)
	})

	totalInvested := 0.0
	for _, flow := range in.CashFlows {
		totalInvested += flow.Amount
	}

	finalValue := curve[len(curve)-1].TotalValue

	out := &Metrics{
		TotalInvested:  totalInvested,
		FinalValue:     finalValue,
		MonthlyReturns: []domain.MonthlyReturn{},
	}

	if totalInvested > 0 {
		out.TotalReturn = (finalValue - totalInvested) / totalInvested
	}

	out.MonthlyReturns = monthlyReturns(curve, in.CashFlows)
	for _, mr := range out.MonthlyReturns {
		if mr.Return > 0 {
			out.PositiveMonths++
		} else if mr.Return < 0 {
			out.NegativeMonths++
		}
	}

	monthsElapsed := util.MonthsElapsed(curve[0].Date, curve[len(curve)-1].Date)

	if monthsElapsed >= MonthsRequiredForAnnualized {
		annualized := math.Pow(1+out.TotalReturn, 12/float64(monthsElapsed)) - 1
		out.AnnualizedReturn = &annualized
	}

	if len(out.MonthlyReturns) >= MonthsRequiredForVolatility {
		returns := make([]float64, 0, len(out.MonthlyReturns))
		for _, mr := range out.MonthlyReturns {
			returns = append(returns, mr.Return)
		}
		stdev, err := stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stdev of monthly returns: %w", err)
		}
		volatility := stdev * math.Sqrt(12)
		out.Volatility = &volatility
	}

	if out.AnnualizedReturn != nil && out.Volatility != nil && *out.Volatility != 0 {
		sharpe := (*out.AnnualizedReturn - in.RiskFreeRate) / *out.Volatility
		out.SharpeRatio = &sharpe
	}

	if monthsElapsed >= MonthsRequiredForVolatility {
		drawdown := maxDrawdown(curve)
		out.MaxDrawdown = &drawdown
	}

	return out, nil
}

// monthlyReturns computes time-weighted monthly returns. Contributions
// made during a month are removed from the gain and half-weighted in the
// denominator, the usual midpoint approximation. A month whose adjusted
// start value is not positive is excluded from the series rather than
// producing Inf or NaN.
func monthlyReturns(curve []domain.ValuationPoint, cashFlows []domain.CashFlow) []domain.MonthlyReturn {
	type monthBucket struct {
		year, month int
		endValue    float64
	}

	buckets := []monthBucket{}
	for _, point := range curve {
		year, month := util.MonthKey(point.Date)
		if len(buckets) > 0 && buckets[len(buckets)-1].year == year && buckets[len(buckets)-1].month == month {
			buckets[len(buckets)-1].endValue = point.TotalValue
			continue
		}
		buckets = append(buckets, monthBucket{year: year, month: month, endValue: point.TotalValue})
	}

	flowByMonth := map[[2]int]float64{}
	for _, flow := range cashFlows {
		// the opening point of the curve already includes capital
		// contributed on that day
		if util.SameDay(flow.Date, curve[0].Date) || flow.Date.Before(curve[0].Date) {
			continue
		}
		year, month := util.MonthKey(flow.Date)
		flowByMonth[[2]int{year, month}] += flow.Amount
	}

	out := []domain.MonthlyReturn{}
	for i := 1; i < len(buckets); i++ {
		startValue := buckets[i-1].endValue
		endValue := buckets[i].endValue
		netContribution := flowByMonth[[2]int{buckets[i].year, buckets[i].month}]

		denominator := startValue + netContribution/2
		if denominator <= 0 {
			continue
		}

		out = append(out, domain.MonthlyReturn{
			Year:   buckets[i].year,
			Month:  buckets[i].month,
			Return: (endValue - startValue - netContribution) / denominator,
		})
	}

	return out
}

// maxDrawdown scans left to right tracking the running peak, so the
// result is the largest peak-to-trough decline, not the distance from
// the global maximum.
func maxDrawdown(curve []domain.ValuationPoint) float64 {
	peak := curve[0].TotalValue
	worst := 0.0
	for _, point := range curve[1:] {
		if point.TotalValue > peak {
			peak = point.TotalValue
			continue
		}
		if peak > 0 {
			drawdown := (peak - point.TotalValue) / peak
			if drawdown > worst {
				worst = drawdown
			}
		}
	}
	return worst
}

// AvailableAt reports the first date a nullable metric becomes
// meaningful for a curve starting at startDate. The UI surfaces this
// instead of rendering a placeholder value.
func AvailableAt(metric string, startDate time.Time) (time.Time, error) {
	switch metric {
	case "annualizedReturn", "sharpeRatio":
		return startDate.AddDate(0, MonthsRequiredForAnnualized, 0), nil
	case "volatility", "maxDrawdown":
		return startDate.AddDate(0, MonthsRequiredForVolatility, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown metric %q", metric)
	}
}
