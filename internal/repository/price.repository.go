package repository

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/db/models/postgres/public/table"
	"carteira/internal/domain"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceCache map[string]map[time.Time]float64

type PriceRepository interface {
	Add(tx *sql.Tx, prices []model.AssetPrice) error
	Get(db qrm.Queryable, ticker string, date time.Time) (float64, error)
	List(db qrm.Queryable, ticker string, start, end time.Time) ([]domain.AssetPrice, error)
	ListMany(db qrm.Queryable, tickers []string, start, end time.Time) (map[string][]domain.AssetPrice, error)
}

type priceRepositoryHandler struct {
	Cache     PriceCache
	ReadMutex *sync.RWMutex
}

func NewPriceRepository() PriceRepository {
	return &priceRepositoryHandler{
		Cache:     make(PriceCache),
		ReadMutex: &sync.RWMutex{},
	}
}

func (h *priceRepositoryHandler) getFromCache(ticker string, date time.Time) *float64 {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if _, ok := h.Cache[ticker]; ok {
		if price, ok := h.Cache[ticker][date]; ok {
			return &price
		}
	}
	return nil
}

func (h *priceRepositoryHandler) addToCache(ticker string, date time.Time, price float64) {
	h.ReadMutex.Lock()
	defer h.ReadMutex.Unlock()
	if _, ok := h.Cache[ticker]; !ok {
		h.Cache[ticker] = map[time.Time]float64{}
	}
	h.Cache[ticker][date] = price
}

func (h *priceRepositoryHandler) Add(tx *sql.Tx, prices []model.AssetPrice) error {
	if len(prices) == 0 {
		return nil
	}

	query := table.AssetPrice.
		INSERT(table.AssetPrice.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(
			table.AssetPrice.Ticker, table.AssetPrice.Date,
		).DO_UPDATE(
		postgres.SET(
			table.AssetPrice.Price.SET(table.AssetPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add asset prices: %w", err)
	}

	return nil
}

// Get looks back a few days so weekends and holidays resolve to the most
// recent trading day.
func (h *priceRepositoryHandler) Get(db qrm.Queryable, ticker string, date time.Time) (float64, error) {
	if cached := h.getFromCache(ticker, date); cached != nil {
		return *cached, nil
	}

	minDate := postgres.DateT(date.AddDate(0, 0, -5))
	maxDate := postgres.DateT(date)
	query := table.AssetPrice.
		SELECT(table.AssetPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.AssetPrice.Ticker.EQ(postgres.String(ticker)),
				table.AssetPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(table.AssetPrice.Date.DESC()).
		LIMIT(1)

	result := model.AssetPrice{}
	err := query.Query(db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to query price for %s on %v: %w", ticker, date, err)
	}

	h.addToCache(ticker, date, result.Price)
	return result.Price, nil
}

// List returns the stored series as-is. Gaps stay explicit so callers
// can apply their own missing-data policy.
func (h *priceRepositoryHandler) List(db qrm.Queryable, ticker string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := table.AssetPrice.
		SELECT(table.AssetPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.AssetPrice.Ticker.EQ(postgres.String(ticker)),
				table.AssetPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.AssetPrice.Date.ASC())

	result := []model.AssetPrice{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", ticker, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Ticker: p.Ticker,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

func (h *priceRepositoryHandler) ListMany(db qrm.Queryable, tickers []string, start, end time.Time) (map[string][]domain.AssetPrice, error) {
	out := map[string][]domain.AssetPrice{}
	for _, ticker := range tickers {
		prices, err := h.List(db, ticker, start, end)
		if err != nil {
			return nil, err
		}
		out[ticker] = prices
	}
	return out, nil
}
