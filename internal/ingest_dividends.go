package internal

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"carteira/pkg/brapi"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// IngestDividends pulls the cash dividend calendar for one ticker and
// upserts it. JCP and regular dividends are stored alike; the ledger
// only cares about the cash effect per share.
func IngestDividends(
	ctx context.Context,
	tx *sql.Tx,
	ticker string,
	brapiClient *brapi.Client,
	dividendRepository repository.DividendRepository,
) (int, error) {
	events, err := brapiClient.GetDividendHistory(ctx, ticker)
	if err != nil {
		return 0, err
	}

	models := []model.Dividend{}
	for _, event := range events {
		if event.AmountPerShare <= 0 {
			continue
		}
		models = append(models, model.Dividend{
			Ticker:         ticker,
			ExDate:         event.ExDate,
			AmountPerShare: decimal.NewFromFloat(event.AmountPerShare),
			CreatedAt:      time.Now().UTC(),
		})
	}

	if err := dividendRepository.Add(tx, models); err != nil {
		return 0, err
	}

	return len(models), nil
}

// UpdateLedgerDividends refreshes the dividend calendar for every
// ticker referenced by any ledger, collecting per-ticker failures.
func UpdateLedgerDividends(
	ctx context.Context,
	tx *sql.Tx,
	tickers []string,
	brapiClient *brapi.Client,
	dividendRepository repository.DividendRepository,
) error {
	log := logger.FromContext(ctx)

	errors := []error{}
	for _, ticker := range tickers {
		n, err := IngestDividends(ctx, tx, ticker, brapiClient, dividendRepository)
		if err != nil {
			log.Warnw("dividend ingestion failed", "ticker", ticker, "error", err)
			errors = append(errors, err)
			continue
		}
		log.Infow("ingested dividends", "ticker", ticker, "rows", n)
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to ingest dividends for %d/%d tickers. first err: %w", len(errors), len(tickers), errors[0])
	}

	return nil
}
