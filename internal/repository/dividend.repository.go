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
)

type DividendRepository interface {
	Add(tx *sql.Tx, dividends []model.Dividend) error
	List(db qrm.Queryable, ticker string, start, end time.Time) ([]domain.DividendPayment, error)
	ListMany(db qrm.Queryable, tickers []string, start, end time.Time) (map[string][]domain.DividendPayment, error)
}

type dividendRepositoryHandler struct{}

func NewDividendRepository() DividendRepository {
	return dividendRepositoryHandler{}
}

func (h dividendRepositoryHandler) Add(tx *sql.Tx, dividends []model.Dividend) error {
	if len(dividends) == 0 {
		return nil
	}

	query := table.Dividend.
		INSERT(table.Dividend.MutableColumns).
		MODELS(dividends).
		ON_CONFLICT(
			table.Dividend.Ticker, table.Dividend.ExDate,
		).DO_UPDATE(
		postgres.SET(
			table.Dividend.AmountPerShare.SET(table.Dividend.EXCLUDED.AmountPerShare),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add dividends: %w", err)
	}

	return nil
}

func (h dividendRepositoryHandler) List(db qrm.Queryable, ticker string, start, end time.Time) ([]domain.DividendPayment, error) {
	query := table.Dividend.
		SELECT(table.Dividend.AllColumns).
		WHERE(
			postgres.AND(
				table.Dividend.Ticker.EQ(postgres.String(ticker)),
				table.Dividend.ExDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.Dividend.ExDate.ASC())

	result := []model.Dividend{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list dividends for %s: %w", ticker, err)
	}

	out := []domain.DividendPayment{}
	for _, d := range result {
		out = append(out, domain.DividendPayment{
			Ticker:         d.Ticker,
			ExDate:         d.ExDate,
			AmountPerShare: d.AmountPerShare,
		})
	}

	return out, nil
}

func (h dividendRepositoryHandler) ListMany(db qrm.Queryable, tickers []string, start, end time.Time) (map[string][]domain.DividendPayment, error) {
	out := map[string][]domain.DividendPayment{}
	for _, ticker := range tickers {
		dividends, err := h.List(db, ticker, start, end)
		if err != nil {
			return nil, err
		}
		out[ticker] = dividends
	}
	return out, nil
}
