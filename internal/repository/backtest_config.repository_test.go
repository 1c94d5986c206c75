package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_deleteBacktestConfigStatements(t *testing.T) {
	statements := deleteBacktestConfigStatements(uuid.New())
	require.Len(t, statements, 3)

	// result rows and asset rows reference the config, so they must be
	// removed before the config row itself
	first, _ := statements[0].Sql()
	require.Contains(t, first, "backtest_result")

	second, _ := statements[1].Sql()
	require.Contains(t, second, "backtest_config_asset")

	third, _ := statements[2].Sql()
	require.Contains(t, third, "backtest_config")
	require.NotContains(t, third, "backtest_config_asset")
	require.NotContains(t, third, "backtest_result")
}
