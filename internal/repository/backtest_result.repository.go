package repository

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/db/models/postgres/public/table"
	"carteira/internal/domain"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type BacktestResultRepository interface {
	Add(tx *sql.Tx, result domain.BacktestRunResult) (*model.BacktestResult, error)
	List(db qrm.Queryable, configID uuid.UUID) ([]domain.BacktestRunResult, error)
}

type backtestResultRepositoryHandler struct{}

func NewBacktestResultRepository() BacktestResultRepository {
	return backtestResultRepositoryHandler{}
}

// Add appends a new result row. Results are history: a re-run never
// overwrites a previous row.
func (h backtestResultRepositoryHandler) Add(tx *sql.Tx, result domain.BacktestRunResult) (*model.BacktestResult, error) {
	monthlyReturns, err := json.Marshal(result.MonthlyReturns)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal monthly returns: %w", err)
	}
	assetPerformance, err := json.Marshal(result.AssetPerformance)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal asset performance: %w", err)
	}
	portfolioEvolution, err := json.Marshal(result.PortfolioEvolution)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio evolution: %w", err)
	}
	flags, err := json.Marshal(result.DataQualityFlags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data quality flags: %w", err)
	}

	resultModel := model.BacktestResult{
		BacktestResultID:       uuid.New(),
		BacktestConfigID:       result.BacktestConfigID,
		CalculatedAt:           result.CalculatedAt,
		TotalReturn:            result.TotalReturn,
		AnnualizedReturn:       result.AnnualizedReturn,
		Volatility:             result.Volatility,
		SharpeRatio:            result.SharpeRatio,
		MaxDrawdown:            result.MaxDrawdown,
		PositiveMonths:         int32(result.PositiveMonths),
		NegativeMonths:         int32(result.NegativeMonths),
		TotalInvested:          result.TotalInvested,
		FinalValue:             result.FinalValue,
		FinalCashReserve:       result.FinalCashReserve,
		TotalDividendsReceived: result.TotalDividendsReceived,
		MonthlyReturns:         string(monthlyReturns),
		AssetPerformance:       string(assetPerformance),
		PortfolioEvolution:     string(portfolioEvolution),
		DataQualityFlags:       string(flags),
		CreatedAt:              time.Now().UTC(),
	}

	query := table.BacktestResult.
		INSERT(table.BacktestResult.MutableColumns, table.BacktestResult.BacktestResultID).
		MODEL(resultModel).
		RETURNING(table.BacktestResult.AllColumns)

	out := model.BacktestResult{}
	err = query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert backtest result: %w", err)
	}

	return &out, nil
}

func (h backtestResultRepositoryHandler) List(db qrm.Queryable, configID uuid.UUID) ([]domain.BacktestRunResult, error) {
	query := table.BacktestResult.
		SELECT(table.BacktestResult.AllColumns).
		WHERE(table.BacktestResult.BacktestConfigID.EQ(postgres.UUID(configID))).
		ORDER_BY(table.BacktestResult.CalculatedAt.DESC())

	resultModels := []model.BacktestResult{}
	err := query.Query(db, &resultModels)
	if err != nil {
		return nil, fmt.Errorf("failed to list backtest results for config %s: %w", configID, err)
	}

	out := []domain.BacktestRunResult{}
	for _, m := range resultModels {
		result, err := toDomainBacktestResult(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *result)
	}

	return out, nil
}

func toDomainBacktestResult(m model.BacktestResult) (*domain.BacktestRunResult, error) {
	out := domain.BacktestRunResult{
		BacktestConfigID:       m.BacktestConfigID,
		CalculatedAt:           m.CalculatedAt,
		TotalReturn:            m.TotalReturn,
		AnnualizedReturn:       m.AnnualizedReturn,
		Volatility:             m.Volatility,
		SharpeRatio:            m.SharpeRatio,
		MaxDrawdown:            m.MaxDrawdown,
		PositiveMonths:         int(m.PositiveMonths),
		NegativeMonths:         int(m.NegativeMonths),
		TotalInvested:          m.TotalInvested,
		FinalValue:             m.FinalValue,
		FinalCashReserve:       m.FinalCashReserve,
		TotalDividendsReceived: m.TotalDividendsReceived,
	}

	if err := json.Unmarshal([]byte(m.MonthlyReturns), &out.MonthlyReturns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal monthly returns: %w", err)
	}
	if err := json.Unmarshal([]byte(m.AssetPerformance), &out.AssetPerformance); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset performance: %w", err)
	}
	if err := json.Unmarshal([]byte(m.PortfolioEvolution), &out.PortfolioEvolution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio evolution: %w", err)
	}
	if err := json.Unmarshal([]byte(m.DataQualityFlags), &out.DataQualityFlags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data quality flags: %w", err)
	}

	return &out, nil
}
