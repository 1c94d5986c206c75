package service

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_NormalizeDraft(t *testing.T) {
	portfolioID := uuid.New()
	date := util.NewDate(2024, 6, 3)

	t.Run("buy derives a negative amount from quantity and price", func(t *testing.T) {
		out, err := NormalizeDraft(TransactionDraft{
			PortfolioID: portfolioID,
			Date:        date,
			Type:        model.TransactionType_Buy,
			Ticker:      util.StrPointer("PETR4"),
			Quantity:    util.DecimalPointer(decimal.NewFromInt(100)),
			Price:       util.DecimalPointer(decimal.NewFromFloat(32.50)),
			// client-supplied amount is ignored for trades
			Amount: decimal.NewFromInt(999999),
		})
		require.NoError(t, err)
		require.True(t, out.Amount.Equal(decimal.NewFromInt(-3250)),
			"amount was %s", out.Amount)
		require.Equal(t, model.TransactionStatus_Pending, out.Status)
	})

	t.Run("sell derives a positive amount", func(t *testing.T) {
		out, err := NormalizeDraft(TransactionDraft{
			PortfolioID: portfolioID,
			Date:        date,
			Type:        model.TransactionType_SellWithdrawal,
			Ticker:      util.StrPointer("VALE3"),
			Quantity:    util.DecimalPointer(decimal.NewFromInt(10)),
			Price:       util.DecimalPointer(decimal.NewFromInt(70)),
		})
		require.NoError(t, err)
		require.True(t, out.Amount.Equal(decimal.NewFromInt(700)))
	})

	t.Run("cash debit forces a negative sign", func(t *testing.T) {
		out, err := NormalizeDraft(TransactionDraft{
			PortfolioID: portfolioID,
			Date:        date,
			Type:        model.TransactionType_CashDebit,
			Amount:      decimal.NewFromInt(500),
		})
		require.NoError(t, err)
		require.True(t, out.Amount.Equal(decimal.NewFromInt(-500)))
	})

	t.Run("cash credit forces a positive sign", func(t *testing.T) {
		out, err := NormalizeDraft(TransactionDraft{
			PortfolioID: portfolioID,
			Date:        date,
			Type:        model.TransactionType_CashCredit,
			Amount:      decimal.NewFromInt(-500),
		})
		require.NoError(t, err)
		require.True(t, out.Amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("dividend computes amount from quantity and per-share value", func(t *testing.T) {
		out, err := NormalizeDraft(TransactionDraft{
			PortfolioID: portfolioID,
			Date:        date,
			Type:        model.TransactionType_Dividend,
			Ticker:      util.StrPointer("ITSA4"),
			Quantity:    util.DecimalPointer(decimal.NewFromInt(200)),
			Price:       util.DecimalPointer(decimal.NewFromFloat(0.25)),
		})
		require.NoError(t, err)
		require.True(t, out.Amount.Equal(decimal.NewFromInt(50)))
	})

	t.Run("date is truncated to the calendar day", func(t *testing.T) {
		out, err := NormalizeDraft(TransactionDraft{
			PortfolioID: portfolioID,
			Date:        date.Add(14*time.Hour + 35*time.Minute),
			Type:        model.TransactionType_CashCredit,
			Amount:      decimal.NewFromInt(1),
		})
		require.NoError(t, err)
		require.Equal(t, date, out.Date)
	})

	t.Run("rejects invalid drafts", func(t *testing.T) {
		for name, draft := range map[string]TransactionDraft{
			"missing portfolio": {
				Date:   date,
				Type:   model.TransactionType_CashCredit,
				Amount: decimal.NewFromInt(1),
			},
			"missing date": {
				PortfolioID: portfolioID,
				Type:        model.TransactionType_CashCredit,
				Amount:      decimal.NewFromInt(1),
			},
			"buy without ticker": {
				PortfolioID: portfolioID,
				Date:        date,
				Type:        model.TransactionType_Buy,
				Quantity:    util.DecimalPointer(decimal.NewFromInt(1)),
				Price:       util.DecimalPointer(decimal.NewFromInt(1)),
			},
			"buy with zero quantity": {
				PortfolioID: portfolioID,
				Date:        date,
				Type:        model.TransactionType_Buy,
				Ticker:      util.StrPointer("PETR4"),
				Quantity:    util.DecimalPointer(decimal.Zero),
				Price:       util.DecimalPointer(decimal.NewFromInt(1)),
			},
			"sell with negative price": {
				PortfolioID: portfolioID,
				Date:        date,
				Type:        model.TransactionType_SellWithdrawal,
				Ticker:      util.StrPointer("PETR4"),
				Quantity:    util.DecimalPointer(decimal.NewFromInt(1)),
				Price:       util.DecimalPointer(decimal.NewFromInt(-1)),
			},
			"cash credit with ticker": {
				PortfolioID: portfolioID,
				Date:        date,
				Type:        model.TransactionType_CashCredit,
				Ticker:      util.StrPointer("PETR4"),
				Amount:      decimal.NewFromInt(1),
			},
			"cash debit with zero amount": {
				PortfolioID: portfolioID,
				Date:        date,
				Type:        model.TransactionType_CashDebit,
			},
			"dividend without ticker": {
				PortfolioID: portfolioID,
				Date:        date,
				Type:        model.TransactionType_Dividend,
				Amount:      decimal.NewFromInt(10),
			},
			"unknown type": {
				PortfolioID: portfolioID,
				Date:        date,
				Type:        model.TransactionType("SPLIT"),
				Amount:      decimal.NewFromInt(1),
			},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := NormalizeDraft(draft)
				require.Error(t, err)
			})
		}
	})
}
