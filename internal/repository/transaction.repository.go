package repository

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/db/models/postgres/public/table"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const dividendUniqueIndex = "portfolio_transaction_dividend_unique_idx"

// IsDuplicateDividend reports whether err is the unique-index violation
// raised when a second non-rejected DIVIDEND lands on the same
// (portfolio, ticker, date). Callers surface this as a conflict instead
// of a server error.
func IsDuplicateDividend(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == dividendUniqueIndex
}

type TransactionListFilter struct {
	Status    *model.TransactionStatus
	Type      *model.TransactionType
	Ticker    *string
	StartDate *time.Time
	EndDate   *time.Time
}

type TransactionRepository interface {
	Add(tx *sql.Tx, t model.PortfolioTransaction) (*model.PortfolioTransaction, error)
	AddDividendSuggestions(tx *sql.Tx, ts []*model.PortfolioTransaction) ([]model.PortfolioTransaction, error)
	Get(db qrm.Queryable, id uuid.UUID) (*model.PortfolioTransaction, error)
	List(db qrm.Queryable, portfolioID uuid.UUID, filter TransactionListFilter) ([]model.PortfolioTransaction, error)
	ListDistinctTickers(db qrm.Queryable) ([]string, error)
	UpdateStatus(tx *sql.Tx, id uuid.UUID, status model.TransactionStatus) (*model.PortfolioTransaction, error)
	UpdateBalances(tx *sql.Tx, id uuid.UUID, before, after decimal.Decimal) error
	ClearBalances(tx *sql.Tx, portfolioID uuid.UUID) error
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, t model.PortfolioTransaction) (*model.PortfolioTransaction, error) {
	t.TransactionID = uuid.New()
	t.CreatedAt = time.Now().UTC()
	t.ModifiedAt = time.Now().UTC()

	query := table.PortfolioTransaction.
		INSERT(table.PortfolioTransaction.MutableColumns, table.PortfolioTransaction.TransactionID).
		MODEL(t).
		RETURNING(table.PortfolioTransaction.AllColumns)

	out := model.PortfolioTransaction{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

// AddDividendSuggestions inserts pending DIVIDEND drafts. The partial
// unique index on (portfolio_id, ticker, date) for non-rejected DIVIDEND
// rows makes re-running generation a no-op for already-suggested pairs,
// even across concurrent calls. A rejected suggestion frees its slot.
func (h transactionRepositoryHandler) AddDividendSuggestions(tx *sql.Tx, ts []*model.PortfolioTransaction) ([]model.PortfolioTransaction, error) {
	if len(ts) == 0 {
		return []model.PortfolioTransaction{}, nil
	}

	for _, t := range ts {
		t.TransactionID = uuid.New()
		t.CreatedAt = time.Now().UTC()
		t.ModifiedAt = time.Now().UTC()
	}

	query := table.PortfolioTransaction.
		INSERT(table.PortfolioTransaction.MutableColumns, table.PortfolioTransaction.TransactionID).
		MODELS(ts).
		ON_CONFLICT(
			table.PortfolioTransaction.PortfolioID,
			table.PortfolioTransaction.Ticker,
			table.PortfolioTransaction.Date,
		).
		WHERE(
			table.PortfolioTransaction.Type.EQ(postgres.String(model.TransactionType_Dividend.String())).
				AND(table.PortfolioTransaction.Status.NOT_EQ(postgres.String(model.TransactionStatus_Rejected.String()))),
		).
		DO_NOTHING().
		RETURNING(table.PortfolioTransaction.AllColumns)

	out := []model.PortfolioTransaction{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert dividend suggestions: %w", err)
	}

	return out, nil
}

func (h transactionRepositoryHandler) Get(db qrm.Queryable, id uuid.UUID) (*model.PortfolioTransaction, error) {
	query := table.PortfolioTransaction.
		SELECT(table.PortfolioTransaction.AllColumns).
		WHERE(table.PortfolioTransaction.TransactionID.EQ(postgres.UUID(id)))

	out := model.PortfolioTransaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}

	return &out, nil
}

// List returns transactions ordered by (date, insertion_order). The
// insertion order is the tie-break for same-day entries, preserving the
// order the user entered them.
func (h transactionRepositoryHandler) List(db qrm.Queryable, portfolioID uuid.UUID, filter TransactionListFilter) ([]model.PortfolioTransaction, error) {
	where := []postgres.BoolExpression{
		table.PortfolioTransaction.PortfolioID.EQ(postgres.UUID(portfolioID)),
	}
	if filter.Status != nil {
		where = append(where, table.PortfolioTransaction.Status.EQ(postgres.String(filter.Status.String())))
	}
	if filter.Type != nil {
		where = append(where, table.PortfolioTransaction.Type.EQ(postgres.String(filter.Type.String())))
	}
	if filter.Ticker != nil {
		where = append(where, table.PortfolioTransaction.Ticker.EQ(postgres.String(*filter.Ticker)))
	}
	if filter.StartDate != nil {
		where = append(where, table.PortfolioTransaction.Date.GT_EQ(postgres.DateT(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		where = append(where, table.PortfolioTransaction.Date.LT_EQ(postgres.DateT(*filter.EndDate)))
	}

	query := table.PortfolioTransaction.
		SELECT(table.PortfolioTransaction.AllColumns).
		WHERE(postgres.AND(where...)).
		ORDER_BY(
			table.PortfolioTransaction.Date.ASC(),
			table.PortfolioTransaction.InsertionOrder.ASC(),
		)

	out := []model.PortfolioTransaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for portfolio %s: %w", portfolioID, err)
	}

	return out, nil
}

// ListDistinctTickers returns every ticker referenced by any ledger.
// The nightly market data sync uses this as its universe.
func (h transactionRepositoryHandler) ListDistinctTickers(db qrm.Queryable) ([]string, error) {
	query := table.PortfolioTransaction.
		SELECT(table.PortfolioTransaction.Ticker).
		WHERE(table.PortfolioTransaction.Ticker.IS_NOT_NULL()).
		GROUP_BY(table.PortfolioTransaction.Ticker).
		ORDER_BY(table.PortfolioTransaction.Ticker.ASC())

	rows := []model.PortfolioTransaction{}
	err := query.Query(db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct tickers: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Ticker != nil {
			out = append(out, *row.Ticker)
		}
	}

	return out, nil
}

func (h transactionRepositoryHandler) UpdateStatus(tx *sql.Tx, id uuid.UUID, status model.TransactionStatus) (*model.PortfolioTransaction, error) {
	query := table.PortfolioTransaction.
		UPDATE(table.PortfolioTransaction.Status, table.PortfolioTransaction.ModifiedAt).
		SET(postgres.String(status.String()), postgres.TimestampzT(time.Now().UTC())).
		WHERE(table.PortfolioTransaction.TransactionID.EQ(postgres.UUID(id))).
		RETURNING(table.PortfolioTransaction.AllColumns)

	out := model.PortfolioTransaction{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update status of transaction %s: %w", id, err)
	}

	return &out, nil
}

// UpdateBalances writes back the replayed cash balances. These columns
// are a materialized cache of the replay, never an input to it.
func (h transactionRepositoryHandler) UpdateBalances(tx *sql.Tx, id uuid.UUID, before, after decimal.Decimal) error {
	query := table.PortfolioTransaction.
		UPDATE(table.PortfolioTransaction.CashBalanceBefore, table.PortfolioTransaction.CashBalanceAfter).
		SET(postgres.Float(before.InexactFloat64()), postgres.Float(after.InexactFloat64())).
		WHERE(table.PortfolioTransaction.TransactionID.EQ(postgres.UUID(id)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update balances of transaction %s: %w", id, err)
	}

	return nil
}

func (h transactionRepositoryHandler) ClearBalances(tx *sql.Tx, portfolioID uuid.UUID) error {
	query := table.PortfolioTransaction.
		UPDATE(table.PortfolioTransaction.CashBalanceBefore, table.PortfolioTransaction.CashBalanceAfter).
		SET(postgres.NULL, postgres.NULL).
		WHERE(table.PortfolioTransaction.PortfolioID.EQ(postgres.UUID(portfolioID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear balances for portfolio %s: %w", portfolioID, err)
	}

	return nil
}
