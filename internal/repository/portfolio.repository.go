package repository

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioRepository interface {
	Add(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error)
	Get(db qrm.Queryable, id uuid.UUID) (*model.Portfolio, error)
	List(db qrm.Queryable, userID uuid.UUID) ([]model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Add(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error) {
	p.PortfolioID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	p.ModifiedAt = time.Now().UTC()

	query := table.Portfolio.
		INSERT(table.Portfolio.MutableColumns, table.Portfolio.PortfolioID).
		MODEL(p).
		RETURNING(table.Portfolio.AllColumns)

	out := model.Portfolio{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) Get(db qrm.Queryable, id uuid.UUID) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(id)))

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %s: %w", id, err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) List(db qrm.Queryable, userID uuid.UUID) ([]model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.Portfolio.CreatedAt.ASC())

	out := []model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios for user %s: %w", userID, err)
	}

	return out, nil
}
