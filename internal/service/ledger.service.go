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
	"github.com/shopspring/decimal"
	gocache "github.com/patrickmn/go-cache"
)

// TransactionDraft is the single normalized entry point to the ledger.
// Manual entry, AI parsing and suggestion confirmation all produce this
// shape; nothing downstream cares where a draft came from.
type TransactionDraft struct {
	PortfolioID uuid.UUID
	Date        time.Time
	Type        model.TransactionType
	Ticker      *string
	Quantity    *decimal.Decimal
	Price       *decimal.Decimal
	Amount      decimal.Decimal
	Notes       *string

	// AutoConfirm applies the transaction immediately instead of
	// leaving it PENDING. Used when confirming a suggestion that was
	// never materialized: create-and-confirm must be one atomic step.
	AutoConfirm bool
}

type LedgerService interface {
	CreateTransaction(ctx context.Context, draft TransactionDraft) (*model.PortfolioTransaction, error)
	Confirm(ctx context.Context, transactionID uuid.UUID) (*ReplayResult, error)
	ConfirmBatch(ctx context.Context, transactionIDs []uuid.UUID) (map[uuid.UUID]*ReplayResult, error)
	Reject(ctx context.Context, transactionID uuid.UUID) error
	RecalculateBalances(ctx context.Context, portfolioID uuid.UUID) (*ReplayResult, error)
	List(ctx context.Context, portfolioID uuid.UUID, filter repository.TransactionListFilter) ([]model.PortfolioTransaction, error)
}

type ledgerServiceHandler struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
	Reconstructor         ReconstructorService
	PortfolioLocks        *util.KeyedMutex
	MetricsCache          *gocache.Cache
}

func NewLedgerService(
	db *sql.DB,
	transactionRepository repository.TransactionRepository,
	reconstructor ReconstructorService,
	portfolioLocks *util.KeyedMutex,
	metricsCache *gocache.Cache,
) LedgerService {
	return ledgerServiceHandler{
		Db:                    db,
		TransactionRepository: transactionRepository,
		Reconstructor:         reconstructor,
		PortfolioLocks:        portfolioLocks,
		MetricsCache:          metricsCache,
	}
}

// NormalizeDraft validates a draft and forces the invariants the replay
// depends on: required fields per type, and the sign of amount. BUY and
// CASH_DEBIT debit cash; everything else credits it.
func NormalizeDraft(draft TransactionDraft) (*model.PortfolioTransaction, error) {
	if draft.PortfolioID == uuid.Nil {
		return nil, fmt.Errorf("transaction draft is missing portfolioID")
	}
	if draft.Date.IsZero() {
		return nil, fmt.Errorf("transaction draft is missing date")
	}

	out := model.PortfolioTransaction{
		PortfolioID: draft.PortfolioID,
		Date:        util.TruncateToDay(draft.Date),
		Type:        draft.Type,
		Ticker:      draft.Ticker,
		Quantity:    draft.Quantity,
		Price:       draft.Price,
		Notes:       draft.Notes,
		Status:      model.TransactionStatus_Pending,
	}

	switch draft.Type {
	case model.TransactionType_Buy, model.TransactionType_SellWithdrawal:
		if draft.Ticker == nil || *draft.Ticker == "" {
			return nil, fmt.Errorf("%s requires a ticker", draft.Type)
		}
		if draft.Quantity == nil || !draft.Quantity.IsPositive() {
			return nil, fmt.Errorf("%s requires a positive quantity", draft.Type)
		}
		if draft.Price == nil || draft.Price.IsNegative() {
			return nil, fmt.Errorf("%s requires a non-negative price", draft.Type)
		}
		// amount is derived, not trusted: quantity x price, debit for
		// buys, credit for sells
		gross := draft.Quantity.Mul(*draft.Price)
		if draft.Type == model.TransactionType_Buy {
			out.Amount = gross.Neg()
		} else {
			out.Amount = gross
		}
	case model.TransactionType_Dividend:
		if draft.Ticker == nil || *draft.Ticker == "" {
			return nil, fmt.Errorf("DIVIDEND requires a ticker")
		}
		if draft.Amount.IsZero() && draft.Quantity != nil && draft.Price != nil {
			out.Amount = draft.Quantity.Mul(*draft.Price)
		} else {
			out.Amount = draft.Amount.Abs()
		}
		if out.Amount.IsZero() {
			return nil, fmt.Errorf("DIVIDEND requires a non-zero amount")
		}
	case model.TransactionType_CashCredit:
		if draft.Ticker != nil {
			return nil, fmt.Errorf("CASH_CREDIT must not reference a ticker")
		}
		if draft.Amount.IsZero() {
			return nil, fmt.Errorf("CASH_CREDIT requires a non-zero amount")
		}
		out.Amount = draft.Amount.Abs()
	case model.TransactionType_CashDebit:
		if draft.Ticker != nil {
			return nil, fmt.Errorf("CASH_DEBIT must not reference a ticker")
		}
		if draft.Amount.IsZero() {
			return nil, fmt.Errorf("CASH_DEBIT requires a non-zero amount")
		}
		out.Amount = draft.Amount.Abs().Neg()
	default:
		return nil, fmt.Errorf("unknown transaction type %q", draft.Type)
	}

	return &out, nil
}

func (h ledgerServiceHandler) CreateTransaction(ctx context.Context, draft TransactionDraft) (*model.PortfolioTransaction, error) {
	normalized, err := NormalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	unlock := h.PortfolioLocks.Lock(draft.PortfolioID)
	defer unlock()

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted, err := h.TransactionRepository.Add(tx, *normalized)
	if err != nil {
		return nil, err
	}

	if draft.AutoConfirm {
		inserted, err = h.TransactionRepository.UpdateStatus(tx, inserted.TransactionID, model.TransactionStatus_Confirmed)
		if err != nil {
			return nil, err
		}
		if _, err := h.Reconstructor.RecalculateBalances(ctx, tx, draft.PortfolioID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if draft.AutoConfirm {
		h.MetricsCache.Delete(draft.PortfolioID.String())
	}

	return inserted, nil
}

func (h ledgerServiceHandler) Confirm(ctx context.Context, transactionID uuid.UUID) (*ReplayResult, error) {
	existing, err := h.TransactionRepository.Get(h.Db, transactionID)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.TransactionStatus_Pending {
		return nil, fmt.Errorf("cannot confirm transaction %s with status %s", transactionID, existing.Status)
	}

	unlock := h.PortfolioLocks.Lock(existing.PortfolioID)
	defer unlock()

	result, err := h.confirmLocked(ctx, transactionID, existing.PortfolioID)
	if err != nil {
		return nil, err
	}

	h.MetricsCache.Delete(existing.PortfolioID.String())
	return result, nil
}

func (h ledgerServiceHandler) confirmLocked(ctx context.Context, transactionID, portfolioID uuid.UUID) (*ReplayResult, error) {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// status re-checked inside the critical section: a concurrent call
	// may have already moved the row
	current, err := h.TransactionRepository.Get(tx, transactionID)
	if err != nil {
		return nil, err
	}
	if current.Status != model.TransactionStatus_Pending {
		return nil, fmt.Errorf("cannot confirm transaction %s with status %s", transactionID, current.Status)
	}

	if _, err := h.TransactionRepository.UpdateStatus(tx, transactionID, model.TransactionStatus_Confirmed); err != nil {
		return nil, err
	}

	result, err := h.Reconstructor.RecalculateBalances(ctx, tx, portfolioID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

func (h ledgerServiceHandler) ConfirmBatch(ctx context.Context, transactionIDs []uuid.UUID) (map[uuid.UUID]*ReplayResult, error) {
	log := logger.FromContext(ctx)

	// group by portfolio so each portfolio is locked and replayed once
	byPortfolio := map[uuid.UUID][]uuid.UUID{}
	for _, id := range transactionIDs {
		t, err := h.TransactionRepository.Get(h.Db, id)
		if err != nil {
			return nil, err
		}
		if t.Status != model.TransactionStatus_Pending {
			return nil, fmt.Errorf("cannot confirm transaction %s with status %s", id, t.Status)
		}
		byPortfolio[t.PortfolioID] = append(byPortfolio[t.PortfolioID], id)
	}

	out := map[uuid.UUID]*ReplayResult{}
	for portfolioID, ids := range byPortfolio {
		unlock := h.PortfolioLocks.Lock(portfolioID)

		result, err := func() (*ReplayResult, error) {
			tx, err := h.Db.BeginTx(ctx, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to begin transaction: %w", err)
			}
			defer tx.Rollback()

			for _, id := range ids {
				current, err := h.TransactionRepository.Get(tx, id)
				if err != nil {
					return nil, err
				}
				if current.Status != model.TransactionStatus_Pending {
					return nil, fmt.Errorf("cannot confirm transaction %s with status %s", id, current.Status)
				}
				if _, err := h.TransactionRepository.UpdateStatus(tx, id, model.TransactionStatus_Confirmed); err != nil {
					return nil, err
				}
			}

			result, err := h.Reconstructor.RecalculateBalances(ctx, tx, portfolioID)
			if err != nil {
				return nil, err
			}

			if err := tx.Commit(); err != nil {
				return nil, fmt.Errorf("failed to commit transaction: %w", err)
			}
			return result, nil
		}()

		unlock()
		if err != nil {
			return nil, err
		}

		h.MetricsCache.Delete(portfolioID.String())
		out[portfolioID] = result
		log.Infow("confirmed transaction batch", "portfolioID", portfolioID, "count", len(ids))
	}

	return out, nil
}

// Reject is terminal and ledger-neutral: the transaction never affects
// balances, so no replay is needed.
func (h ledgerServiceHandler) Reject(ctx context.Context, transactionID uuid.UUID) error {
	existing, err := h.TransactionRepository.Get(h.Db, transactionID)
	if err != nil {
		return err
	}
	if existing.Status != model.TransactionStatus_Pending {
		return fmt.Errorf("cannot reject transaction %s with status %s", transactionID, existing.Status)
	}

	unlock := h.PortfolioLocks.Lock(existing.PortfolioID)
	defer unlock()

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := h.TransactionRepository.Get(tx, transactionID)
	if err != nil {
		return err
	}
	if current.Status != model.TransactionStatus_Pending {
		return fmt.Errorf("cannot reject transaction %s with status %s", transactionID, current.Status)
	}

	if _, err := h.TransactionRepository.UpdateStatus(tx, transactionID, model.TransactionStatus_Rejected); err != nil {
		return err
	}

	return tx.Commit()
}

func (h ledgerServiceHandler) RecalculateBalances(ctx context.Context, portfolioID uuid.UUID) (*ReplayResult, error) {
	unlock := h.PortfolioLocks.Lock(portfolioID)
	defer unlock()

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := h.Reconstructor.RecalculateBalances(ctx, tx, portfolioID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	h.MetricsCache.Delete(portfolioID.String())
	return result, nil
}

func (h ledgerServiceHandler) List(ctx context.Context, portfolioID uuid.UUID, filter repository.TransactionListFilter) ([]model.PortfolioTransaction, error) {
	return h.TransactionRepository.List(h.Db, portfolioID, filter)
}
