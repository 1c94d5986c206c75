package internal

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/repository"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

type priceCsvRow struct {
	Ticker string  `csv:"ticker"`
	Date   string  `csv:"date"`
	Price  float64 `csv:"price"`
}

// ImportPricesFromCsv loads a price history export into the price
// store. Expected columns: ticker, date (YYYY-MM-DD), price. Used to
// backfill history the market data provider no longer serves.
func ImportPricesFromCsv(
	tx *sql.Tx,
	r io.Reader,
	priceRepository repository.PriceRepository,
) (int, error) {
	rows := []priceCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse price csv: %w", err)
	}

	models := []model.AssetPrice{}
	for i, row := range rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			return 0, fmt.Errorf("row %d: bad date %q: %w", i+1, row.Date, err)
		}
		if row.Ticker == "" || row.Price <= 0 {
			return 0, fmt.Errorf("row %d: ticker and a positive price are required", i+1)
		}
		models = append(models, model.AssetPrice{
			Ticker:    row.Ticker,
			Date:      date,
			Price:     row.Price,
			CreatedAt: time.Now().UTC(),
		})
	}

	if err := priceRepository.Add(tx, models); err != nil {
		return 0, err
	}

	return len(models), nil
}
