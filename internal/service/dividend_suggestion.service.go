package service

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"carteira/internal/util"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type DividendSuggestionService interface {
	// GenerateSuggestions scans the dividend calendar between start and
	// end and creates PENDING DIVIDEND transactions for every payment
	// the portfolio was entitled to. Running it twice over the same
	// window creates nothing new.
	GenerateSuggestions(ctx context.Context, portfolioID uuid.UUID, start, end time.Time) ([]model.PortfolioTransaction, error)
}

type dividendSuggestionServiceHandler struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
	DividendRepository    repository.DividendRepository
	PortfolioLocks        *util.KeyedMutex
}

func NewDividendSuggestionService(
	db *sql.DB,
	transactionRepository repository.TransactionRepository,
	dividendRepository repository.DividendRepository,
	portfolioLocks *util.KeyedMutex,
) DividendSuggestionService {
	return dividendSuggestionServiceHandler{
		Db:                    db,
		TransactionRepository: transactionRepository,
		DividendRepository:    dividendRepository,
		PortfolioLocks:        portfolioLocks,
	}
}

func (h dividendSuggestionServiceHandler) GenerateSuggestions(ctx context.Context, portfolioID uuid.UUID, start, end time.Time) ([]model.PortfolioTransaction, error) {
	log := logger.FromContext(ctx)

	unlock := h.PortfolioLocks.Lock(portfolioID)
	defer unlock()

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	confirmed := model.TransactionStatus_Confirmed
	transactions, err := h.TransactionRepository.List(tx, portfolioID, repository.TransactionListFilter{
		Status: &confirmed,
	})
	if err != nil {
		return nil, err
	}

	replayed, err := Replay(transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to replay portfolio %s: %w", portfolioID, err)
	}

	// every ticker the portfolio ever touched, not just current
	// holdings - a position sold mid-window may still have caught an
	// earlier ex-date
	tickerSet := map[string]bool{}
	for _, t := range transactions {
		if t.Ticker != nil && *t.Ticker != "" {
			tickerSet[*t.Ticker] = true
		}
	}
	tickers := make([]string, 0, len(tickerSet))
	for ticker := range tickerSet {
		tickers = append(tickers, ticker)
	}

	dividendsByTicker, err := h.DividendRepository.ListMany(tx, tickers, start, end)
	if err != nil {
		return nil, err
	}

	drafts := []*model.PortfolioTransaction{}
	for _, dividends := range dividendsByTicker {
		for _, dividend := range dividends {
			holdings := replayed.HoldingsAt(dividend.ExDate)
			position, held := holdings.Positions[dividend.Ticker]
			if !held || !position.Quantity.IsPositive() {
				continue
			}

			amount := position.Quantity.Mul(dividend.AmountPerShare)
			ticker := dividend.Ticker
			notes := fmt.Sprintf("suggested: %s x %s per share, ex-date %s",
				position.Quantity.String(),
				dividend.AmountPerShare.String(),
				dividend.ExDate.Format("2006-01-02"),
			)
			quantity := position.Quantity
			amountPerShare := dividend.AmountPerShare

			drafts = append(drafts, &model.PortfolioTransaction{
				PortfolioID: portfolioID,
				Date:        util.TruncateToDay(dividend.ExDate),
				Type:        model.TransactionType_Dividend,
				Ticker:      &ticker,
				Quantity:    &quantity,
				Price:       &amountPerShare,
				Amount:      amount,
				Status:      model.TransactionStatus_Pending,
				Notes:       &notes,
			})
		}
	}

	// the unique index on (portfolio, ticker, date) for dividends makes
	// this insert skip anything already suggested or recorded
	inserted, err := h.TransactionRepository.AddDividendSuggestions(tx, drafts)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Infow("generated dividend suggestions",
		"portfolioID", portfolioID,
		"candidates", len(drafts),
		"created", len(inserted),
	)

	return inserted, nil
}
