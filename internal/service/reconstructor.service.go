package service

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/domain"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NegativeBalanceTolerance is how far below zero the final replayed cash
// balance may sit before an operator alert is raised. Small rounding
// residue is expected; anything beyond it means the ledger is missing a
// correcting transaction.
var NegativeBalanceTolerance = decimal.NewFromFloat(-0.10)

type BalanceWriteback struct {
	TransactionID uuid.UUID
	Before        decimal.Decimal
	After         decimal.Decimal
}

type ReplayResult struct {
	Snapshots  []domain.LedgerSnapshot
	Final      *domain.Holdings
	Flags      []domain.DataQualityFlag
	Writebacks []BalanceWriteback
}

// Replay walks the confirmed transactions of one portfolio in
// (date, insertion order) and rebuilds cash and positions from scratch.
// It is a pure function: running it twice on the same input yields
// identical output, and it never patches incrementally - a retroactive
// insert changes every subsequent balance, so the only safe rebuild is a
// full one.
//
// A negative balance mid-replay is recorded as a data-quality condition,
// not an error: historical ledgers can legitimately pass through
// negative states that a later transaction corrects.
func Replay(transactions []model.PortfolioTransaction) (*ReplayResult, error) {
	sorted := make([]model.PortfolioTransaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].InsertionOrder < sorted[j].InsertionOrder
	})

	holdings := domain.NewHoldings()
	out := &ReplayResult{
		Snapshots:  []domain.LedgerSnapshot{},
		Flags:      []domain.DataQualityFlag{},
		Writebacks: []BalanceWriteback{},
	}

	for _, t := range sorted {
		if t.Status != model.TransactionStatus_Confirmed {
			return nil, fmt.Errorf("replay received non-confirmed transaction %s (%s)", t.TransactionID, t.Status)
		}

		before := holdings.Cash

		switch t.Type {
		case model.TransactionType_Buy:
			if t.Ticker == nil || t.Quantity == nil || t.Price == nil {
				return nil, fmt.Errorf("confirmed BUY %s is missing ticker, quantity or price", t.TransactionID)
			}
			holdings.Cash = holdings.Cash.Add(t.Amount)
			holdings.Buy(*t.Ticker, *t.Quantity, *t.Price)
		case model.TransactionType_SellWithdrawal:
			if t.Ticker == nil || t.Quantity == nil {
				return nil, fmt.Errorf("confirmed SELL_WITHDRAWAL %s is missing ticker or quantity", t.TransactionID)
			}
			holdings.Cash = holdings.Cash.Add(t.Amount)
			holdings.Sell(*t.Ticker, *t.Quantity)
		case model.TransactionType_CashCredit, model.TransactionType_CashDebit, model.TransactionType_Dividend:
			holdings.Cash = holdings.Cash.Add(t.Amount)
		default:
			return nil, fmt.Errorf("replay does not handle transaction type %q", t.Type)
		}

		if holdings.Cash.IsNegative() {
			ticker := ""
			if t.Ticker != nil {
				ticker = *t.Ticker
			}
			out.Flags = append(out.Flags, domain.DataQualityFlag{
				Code:    domain.DataQuality_NegativeCashIntermediate,
				Ticker:  ticker,
				Date:    t.Date,
				Message: fmt.Sprintf("cash balance reached %s after transaction %s", holdings.Cash.StringFixed(2), t.TransactionID),
			})
		}

		out.Writebacks = append(out.Writebacks, BalanceWriteback{
			TransactionID: t.TransactionID,
			Before:        before,
			After:         holdings.Cash,
		})
		out.Snapshots = append(out.Snapshots, domain.LedgerSnapshot{
			Date:          t.Date,
			TransactionID: t.TransactionID.String(),
			CashBalance:   holdings.Cash,
			Holdings:      holdings.DeepCopy(),
		})
	}

	if holdings.Cash.LessThan(NegativeBalanceTolerance) {
		flagDate := time.Time{}
		if len(sorted) > 0 {
			flagDate = sorted[len(sorted)-1].Date
		}
		out.Flags = append(out.Flags, domain.DataQualityFlag{
			Code:    domain.DataQuality_NegativeCashFinal,
			Date:    flagDate,
			Message: fmt.Sprintf("final cash balance is %s; add a retroactive cash credit or recalculate in chronological order", holdings.Cash.StringFixed(2)),
		})
	}

	out.Final = holdings
	return out, nil
}

// HoldingsAt returns the portfolio state as of end of day on the given
// date, replayed from the snapshots. Used by the dividend engine, which
// must see the position at the ex-date, not the current position.
func (r ReplayResult) HoldingsAt(date time.Time) *domain.Holdings {
	var last *domain.Holdings
	for _, snapshot := range r.Snapshots {
		if snapshot.Date.After(date) {
			break
		}
		last = snapshot.Holdings
	}
	if last == nil {
		return domain.NewHoldings()
	}
	return last
}

type ReconstructorService interface {
	// RecalculateBalances replays the full confirmed ledger and writes
	// the running balances back onto the transaction rows. The caller
	// must hold the portfolio lock.
	RecalculateBalances(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) (*ReplayResult, error)
}

type reconstructorServiceHandler struct {
	TransactionRepository repository.TransactionRepository
}

func NewReconstructorService(transactionRepository repository.TransactionRepository) ReconstructorService {
	return reconstructorServiceHandler{
		TransactionRepository: transactionRepository,
	}
}

func (h reconstructorServiceHandler) RecalculateBalances(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID) (*ReplayResult, error) {
	log := logger.FromContext(ctx)

	confirmed := model.TransactionStatus_Confirmed
	transactions, err := h.TransactionRepository.List(tx, portfolioID, repository.TransactionListFilter{
		Status: &confirmed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed transactions: %w", err)
	}

	result, err := Replay(transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to replay portfolio %s: %w", portfolioID, err)
	}

	for _, wb := range result.Writebacks {
		if err := h.TransactionRepository.UpdateBalances(tx, wb.TransactionID, wb.Before, wb.After); err != nil {
			return nil, err
		}
	}

	for _, flag := range result.Flags {
		if flag.Code == domain.DataQuality_NegativeCashFinal {
			log.Warnw("negative final cash balance",
				"portfolioID", portfolioID,
				"balance", result.Final.Cash.StringFixed(2),
			)
		}
	}

	return result, nil
}
