package service

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/domain"
	"carteira/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func confirmedTransaction(
	date time.Time,
	insertionOrder int64,
	transactionType model.TransactionType,
	ticker string,
	quantity, price, amount float64,
) model.PortfolioTransaction {
	out := model.PortfolioTransaction{
		TransactionID:  uuid.New(),
		PortfolioID:    uuid.New(),
		Date:           date,
		Type:           transactionType,
		Amount:         decimal.NewFromFloat(amount),
		Status:         model.TransactionStatus_Confirmed,
		InsertionOrder: insertionOrder,
	}
	if ticker != "" {
		out.Ticker = &ticker
		out.Quantity = util.DecimalPointer(decimal.NewFromFloat(quantity))
		out.Price = util.DecimalPointer(decimal.NewFromFloat(price))
	}
	return out
}

func Test_Replay(t *testing.T) {
	t.Run("rebuilds cash and positions from scratch", func(t *testing.T) {
		transactions := []model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_CashCredit, "", 0, 0, 1000),
			confirmedTransaction(util.NewDate(2024, 1, 5), 2, model.TransactionType_Buy, "PETR4", 10, 50, -500),
			confirmedTransaction(util.NewDate(2024, 2, 1), 3, model.TransactionType_Dividend, "PETR4", 0, 0, 30),
			confirmedTransaction(util.NewDate(2024, 3, 1), 4, model.TransactionType_SellWithdrawal, "PETR4", 5, 60, 300),
		}

		result, err := Replay(transactions)
		require.NoError(t, err)

		require.True(t, result.Final.Cash.Equal(decimal.NewFromInt(830)),
			"final cash was %s", result.Final.Cash)
		require.Len(t, result.Snapshots, 4)
		require.Empty(t, result.Flags)

		position := result.Final.Positions["PETR4"]
		require.NotNil(t, position)
		require.True(t, position.Quantity.Equal(decimal.NewFromInt(5)))
		require.True(t, position.AvgCost.Equal(decimal.NewFromInt(50)))

		// writebacks chain: each before equals the previous after
		require.Len(t, result.Writebacks, 4)
		require.True(t, result.Writebacks[0].Before.IsZero())
		for i := 1; i < len(result.Writebacks); i++ {
			require.True(t, result.Writebacks[i].Before.Equal(result.Writebacks[i-1].After))
		}
	})

	t.Run("is deterministic across runs", func(t *testing.T) {
		transactions := []model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_CashCredit, "", 0, 0, 333.33),
			confirmedTransaction(util.NewDate(2024, 1, 3), 2, model.TransactionType_Buy, "VALE3", 3, 71.11, -213.33),
			confirmedTransaction(util.NewDate(2024, 1, 4), 3, model.TransactionType_SellWithdrawal, "VALE3", 1, 72.22, 72.22),
		}

		first, err := Replay(transactions)
		require.NoError(t, err)
		second, err := Replay(transactions)
		require.NoError(t, err)

		require.True(t, first.Final.Cash.Equal(second.Final.Cash))
		require.Len(t, second.Snapshots, len(first.Snapshots))
		for i := range first.Snapshots {
			require.True(t, first.Snapshots[i].CashBalance.Equal(second.Snapshots[i].CashBalance))
		}
	})

	t.Run("sorts by date then insertion order", func(t *testing.T) {
		day := util.NewDate(2024, 5, 10)
		// given out of order: the buy was entered first, the deposit second
		transactions := []model.PortfolioTransaction{
			confirmedTransaction(day, 2, model.TransactionType_CashCredit, "", 0, 0, 1000),
			confirmedTransaction(day, 1, model.TransactionType_Buy, "ITUB4", 10, 30, -300),
		}

		result, err := Replay(transactions)
		require.NoError(t, err)

		// buy replays first, so cash dips negative before the deposit
		require.Len(t, result.Flags, 1)
		require.Equal(t, domain.DataQuality_NegativeCashIntermediate, result.Flags[0].Code)
		require.True(t, result.Final.Cash.Equal(decimal.NewFromInt(700)))
	})

	t.Run("intermediate negative is a flag, not an error", func(t *testing.T) {
		transactions := []model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_Buy, "BBAS3", 10, 25, -250),
			confirmedTransaction(util.NewDate(2024, 1, 3), 2, model.TransactionType_CashCredit, "", 0, 0, 250),
		}

		result, err := Replay(transactions)
		require.NoError(t, err)
		require.True(t, result.Final.Cash.IsZero())

		codes := []domain.DataQualityCode{}
		for _, flag := range result.Flags {
			codes = append(codes, flag.Code)
		}
		require.Contains(t, codes, domain.DataQuality_NegativeCashIntermediate)
		require.NotContains(t, codes, domain.DataQuality_NegativeCashFinal)
	})

	t.Run("final balance at exactly the tolerance is not flagged", func(t *testing.T) {
		transactions := []model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_CashDebit, "", 0, 0, -0.10),
		}

		result, err := Replay(transactions)
		require.NoError(t, err)

		for _, flag := range result.Flags {
			require.NotEqual(t, domain.DataQuality_NegativeCashFinal, flag.Code)
		}
	})

	t.Run("final balance past the tolerance is flagged", func(t *testing.T) {
		transactions := []model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_CashDebit, "", 0, 0, -0.11),
		}

		result, err := Replay(transactions)
		require.NoError(t, err)

		codes := []domain.DataQualityCode{}
		for _, flag := range result.Flags {
			codes = append(codes, flag.Code)
		}
		require.Contains(t, codes, domain.DataQuality_NegativeCashFinal)
	})

	t.Run("weighted average cost across purchases", func(t *testing.T) {
		transactions := []model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_CashCredit, "", 0, 0, 1000),
			confirmedTransaction(util.NewDate(2024, 1, 3), 2, model.TransactionType_Buy, "WEGE3", 10, 10, -100),
			confirmedTransaction(util.NewDate(2024, 1, 4), 3, model.TransactionType_Buy, "WEGE3", 10, 20, -200),
			confirmedTransaction(util.NewDate(2024, 1, 5), 4, model.TransactionType_SellWithdrawal, "WEGE3", 5, 25, 125),
		}

		result, err := Replay(transactions)
		require.NoError(t, err)

		position := result.Final.Positions["WEGE3"]
		require.NotNil(t, position)
		require.True(t, position.Quantity.Equal(decimal.NewFromInt(15)))
		// selling never moves the average cost
		require.True(t, position.AvgCost.Equal(decimal.NewFromInt(15)),
			"avg cost was %s", position.AvgCost)
	})

	t.Run("retroactive insert changes every subsequent balance", func(t *testing.T) {
		base := []model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 1, 10), 1, model.TransactionType_CashCredit, "", 0, 0, 500),
			confirmedTransaction(util.NewDate(2024, 3, 10), 2, model.TransactionType_CashDebit, "", 0, 0, -100),
		}
		before, err := Replay(base)
		require.NoError(t, err)
		require.True(t, before.Final.Cash.Equal(decimal.NewFromInt(400)))

		// a deposit dated between the two existing rows
		withRetroactive := append([]model.PortfolioTransaction{
			confirmedTransaction(util.NewDate(2024, 2, 1), 3, model.TransactionType_CashCredit, "", 0, 0, 250),
		}, base...)

		after, err := Replay(withRetroactive)
		require.NoError(t, err)
		require.True(t, after.Final.Cash.Equal(decimal.NewFromInt(650)))

		// the debit row's running balance shifted
		last := after.Writebacks[len(after.Writebacks)-1]
		require.True(t, last.Before.Equal(decimal.NewFromInt(750)))
		require.True(t, last.After.Equal(decimal.NewFromInt(650)))
	})

	t.Run("rejects non-confirmed input", func(t *testing.T) {
		pending := confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_CashCredit, "", 0, 0, 100)
		pending.Status = model.TransactionStatus_Pending

		_, err := Replay([]model.PortfolioTransaction{pending})
		require.Error(t, err)
	})

	t.Run("empty ledger replays to zero", func(t *testing.T) {
		result, err := Replay(nil)
		require.NoError(t, err)
		require.True(t, result.Final.Cash.IsZero())
		require.Empty(t, result.Snapshots)
		require.Empty(t, result.Flags)
	})
}

func Test_ReplayResult_HoldingsAt(t *testing.T) {
	transactions := []model.PortfolioTransaction{
		confirmedTransaction(util.NewDate(2024, 1, 2), 1, model.TransactionType_CashCredit, "", 0, 0, 1000),
		confirmedTransaction(util.NewDate(2024, 2, 2), 2, model.TransactionType_Buy, "PETR4", 10, 40, -400),
		confirmedTransaction(util.NewDate(2024, 4, 2), 3, model.TransactionType_SellWithdrawal, "PETR4", 10, 45, 450),
	}

	result, err := Replay(transactions)
	require.NoError(t, err)

	t.Run("before the first transaction", func(t *testing.T) {
		holdings := result.HoldingsAt(util.NewDate(2023, 12, 31))
		require.True(t, holdings.Cash.IsZero())
		require.Empty(t, holdings.Positions)
	})

	t.Run("while the position was held", func(t *testing.T) {
		holdings := result.HoldingsAt(util.NewDate(2024, 3, 15))
		position := holdings.Positions["PETR4"]
		require.NotNil(t, position)
		require.True(t, position.Quantity.Equal(decimal.NewFromInt(10)))
	})

	t.Run("after the position was sold", func(t *testing.T) {
		holdings := result.HoldingsAt(util.NewDate(2024, 5, 1))
		require.Empty(t, holdings.Positions)
		require.True(t, holdings.Cash.Equal(decimal.NewFromInt(1050)))
	})
}
