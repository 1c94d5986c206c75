package repository

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/db/models/postgres/public/table"
	"carteira/internal/domain"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type BacktestConfigRepository interface {
	Add(tx *sql.Tx, config domain.BacktestConfig) (*domain.BacktestConfig, error)
	Get(db qrm.Queryable, id uuid.UUID) (*domain.BacktestConfig, error)
	List(db qrm.Queryable, userID uuid.UUID) ([]domain.BacktestConfig, error)
	Delete(tx *sql.Tx, id uuid.UUID) error
}

type backtestConfigRepositoryHandler struct{}

func NewBacktestConfigRepository() BacktestConfigRepository {
	return backtestConfigRepositoryHandler{}
}

// ValidateAllocations rejects configs whose target allocations do not
// sum to 1.0 within tolerance.
func ValidateAllocations(assets []domain.BacktestAsset) error {
	if len(assets) == 0 {
		return fmt.Errorf("backtest config must include at least one asset")
	}
	sum := 0.0
	for _, a := range assets {
		if a.TargetAllocation <= 0 {
			return fmt.Errorf("target allocation for %s must be positive, got %f", a.Ticker, a.TargetAllocation)
		}
		sum += a.TargetAllocation
	}
	if sum < 1-domain.AllocationTolerance || sum > 1+domain.AllocationTolerance {
		return fmt.Errorf("target allocations must sum to 1.0, got %f", sum)
	}
	return nil
}

func (h backtestConfigRepositoryHandler) Add(tx *sql.Tx, config domain.BacktestConfig) (*domain.BacktestConfig, error) {
	if err := ValidateAllocations(config.Assets); err != nil {
		return nil, err
	}

	configModel := model.BacktestConfig{
		BacktestConfigID:    uuid.New(),
		UserID:              config.UserID,
		Name:                config.Name,
		StartDate:           config.StartDate,
		EndDate:             config.EndDate,
		InitialCapital:      config.InitialCapital,
		MonthlyContribution: config.MonthlyContribution,
		RebalanceFrequency:  model.RebalanceFrequency(config.RebalanceFrequency),
		CreatedAt:           time.Now().UTC(),
		ModifiedAt:          time.Now().UTC(),
	}

	query := table.BacktestConfig.
		INSERT(table.BacktestConfig.MutableColumns, table.BacktestConfig.BacktestConfigID).
		MODEL(configModel).
		RETURNING(table.BacktestConfig.AllColumns)

	insertedConfig := model.BacktestConfig{}
	err := query.Query(tx, &insertedConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to insert backtest config: %w", err)
	}

	assetModels := []*model.BacktestConfigAsset{}
	for _, a := range config.Assets {
		assetModels = append(assetModels, &model.BacktestConfigAsset{
			BacktestConfigAssetID: uuid.New(),
			BacktestConfigID:      insertedConfig.BacktestConfigID,
			Ticker:                a.Ticker,
			TargetAllocation:      a.TargetAllocation,
		})
	}

	assetQuery := table.BacktestConfigAsset.
		INSERT(table.BacktestConfigAsset.MutableColumns, table.BacktestConfigAsset.BacktestConfigAssetID).
		MODELS(assetModels)

	_, err = assetQuery.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert backtest config assets: %w", err)
	}

	out := toDomainBacktestConfig(insertedConfig, config.Assets)
	return &out, nil
}

func (h backtestConfigRepositoryHandler) Get(db qrm.Queryable, id uuid.UUID) (*domain.BacktestConfig, error) {
	query := table.BacktestConfig.
		SELECT(table.BacktestConfig.AllColumns).
		WHERE(table.BacktestConfig.BacktestConfigID.EQ(postgres.UUID(id)))

	configModel := model.BacktestConfig{}
	err := query.Query(db, &configModel)
	if err != nil {
		return nil, fmt.Errorf("failed to get backtest config %s: %w", id, err)
	}

	assetQuery := table.BacktestConfigAsset.
		SELECT(table.BacktestConfigAsset.AllColumns).
		WHERE(table.BacktestConfigAsset.BacktestConfigID.EQ(postgres.UUID(id))).
		ORDER_BY(table.BacktestConfigAsset.Ticker.ASC())

	assetModels := []model.BacktestConfigAsset{}
	err = assetQuery.Query(db, &assetModels)
	if err != nil {
		return nil, fmt.Errorf("failed to get backtest config assets for %s: %w", id, err)
	}

	assets := []domain.BacktestAsset{}
	for _, a := range assetModels {
		assets = append(assets, domain.BacktestAsset{
			Ticker:           a.Ticker,
			TargetAllocation: a.TargetAllocation,
		})
	}

	out := toDomainBacktestConfig(configModel, assets)
	return &out, nil
}

func (h backtestConfigRepositoryHandler) List(db qrm.Queryable, userID uuid.UUID) ([]domain.BacktestConfig, error) {
	query := table.BacktestConfig.
		SELECT(table.BacktestConfig.AllColumns).
		WHERE(table.BacktestConfig.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.BacktestConfig.CreatedAt.DESC())

	configModels := []model.BacktestConfig{}
	err := query.Query(db, &configModels)
	if err != nil {
		return nil, fmt.Errorf("failed to list backtest configs for user %s: %w", userID, err)
	}

	out := []domain.BacktestConfig{}
	for _, c := range configModels {
		config, err := h.Get(db, c.BacktestConfigID)
		if err != nil {
			return nil, err
		}
		out = append(out, *config)
	}

	return out, nil
}

// deleteBacktestConfigStatements orders the deletes so no foreign key is
// left dangling: result history and assets reference the config, so the
// config row goes last.
func deleteBacktestConfigStatements(id uuid.UUID) []postgres.DeleteStatement {
	return []postgres.DeleteStatement{
		table.BacktestResult.
			DELETE().
			WHERE(table.BacktestResult.BacktestConfigID.EQ(postgres.UUID(id))),
		table.BacktestConfigAsset.
			DELETE().
			WHERE(table.BacktestConfigAsset.BacktestConfigID.EQ(postgres.UUID(id))),
		table.BacktestConfig.
			DELETE().
			WHERE(table.BacktestConfig.BacktestConfigID.EQ(postgres.UUID(id))),
	}
}

func (h backtestConfigRepositoryHandler) Delete(tx *sql.Tx, id uuid.UUID) error {
	for _, query := range deleteBacktestConfigStatements(id) {
		if _, err := query.Exec(tx); err != nil {
			return fmt.Errorf("failed to delete backtest config %s: %w", id, err)
		}
	}
	return nil
}

func toDomainBacktestConfig(m model.BacktestConfig, assets []domain.BacktestAsset) domain.BacktestConfig {
	return domain.BacktestConfig{
		BacktestConfigID:    m.BacktestConfigID,
		UserID:              m.UserID,
		Name:                m.Name,
		Assets:              assets,
		StartDate:           m.StartDate,
		EndDate:             m.EndDate,
		InitialCapital:      m.InitialCapital,
		MonthlyContribution: m.MonthlyContribution,
		RebalanceFrequency:  m.RebalanceFrequency.String(),
	}
}
