package internal

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// yahooSymbol maps a B3 ticker to its Yahoo Finance symbol. B3 listings
// carry the .SA suffix there; anything already suffixed or containing a
// dot is passed through.
func yahooSymbol(ticker string) string {
	if strings.Contains(ticker, ".") {
		return ticker
	}
	return ticker + ".SA"
}

// IngestPrices pulls the daily close history for one ticker and upserts
// it into the price store.
func IngestPrices(
	tx *sql.Tx,
	ticker string,
	start, end time.Time,
	priceRepository repository.PriceRepository,
) (int, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   yahooSymbol(ticker),
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.AssetPrice{}
	for iter.Next() {
		models = append(models, model.AssetPrice{
			Ticker:    ticker,
			Date:      time.Unix(int64(iter.Bar().Timestamp), 0).UTC().Truncate(24 * time.Hour),
			Price:     iter.Bar().AdjClose.InexactFloat64(),
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to get prices for %s: %w", ticker, err)
	}

	if err := priceRepository.Add(tx, models); err != nil {
		return 0, err
	}

	return len(models), nil
}

// UpdateLedgerPrices refreshes price history for every ticker that
// appears in any portfolio ledger. Per-ticker failures are collected so
// one delisted symbol does not abort the nightly sync.
func UpdateLedgerPrices(
	ctx context.Context,
	tx *sql.Tx,
	tickers []string,
	start, end time.Time,
	priceRepository repository.PriceRepository,
) error {
	log := logger.FromContext(ctx)

	if len(tickers) == 0 {
		return fmt.Errorf("no tickers to ingest prices for")
	}

	errors := []error{}
	for _, ticker := range tickers {
		n, err := IngestPrices(tx, ticker, start, end, priceRepository)
		if err != nil {
			log.Warnw("price ingestion failed", "ticker", ticker, "error", err)
			errors = append(errors, err)
			continue
		}
		log.Infow("ingested prices", "ticker", ticker, "rows", n)
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to ingest %d/%d tickers. first err: %w", len(errors), len(tickers), errors[0])
	}

	return nil
}
