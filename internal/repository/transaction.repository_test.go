package repository

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func Test_IsDuplicateDividend(t *testing.T) {
	t.Run("matches the dividend unique index, even wrapped", func(t *testing.T) {
		err := fmt.Errorf("failed to insert transaction: %w", &pq.Error{
			Code:       "23505",
			Constraint: "portfolio_transaction_dividend_unique_idx",
		})
		require.True(t, IsDuplicateDividend(err))
	})

	t.Run("ignores other unique violations", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "asset_price_pkey"}
		require.False(t, IsDuplicateDividend(err))
	})

	t.Run("ignores non-postgres errors", func(t *testing.T) {
		require.False(t, IsDuplicateDividend(fmt.Errorf("connection refused")))
	})
}
