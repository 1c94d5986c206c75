package main

import (
	"carteira/cmd"
	"carteira/internal"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

func main() {
	root := &cobra.Command{
		Use:   "carteira-script",
		Short: "operational scripts for the portfolio ledger",
	}

	root.AddCommand(
		syncMarketDataCmd(),
		importPricesCmd(),
		suggestDividendsCmd(),
		recalculateCmd(),
		backtestCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func syncMarketDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-market-data",
		Short: "refresh prices and the dividend calendar for all ledger tickers",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			return deps.MarketDataSync.Run(context.Background())
		},
	}
}

func importPricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-prices <file.csv>",
		Short: "backfill price history from a csv export (ticker,date,price)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			tx, err := deps.MarketDataSync.Db.Begin()
			if err != nil {
				return err
			}
			defer tx.Rollback()

			n, err := internal.ImportPricesFromCsv(tx, f, deps.MarketDataSync.PriceRepository)
			if err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return err
			}

			fmt.Printf("imported %d price rows\n", n)
			return nil
		},
	}
}

func suggestDividendsCmd() *cobra.Command {
	var startFlag, endFlag string

	out := &cobra.Command{
		Use:   "suggest-dividends <portfolioId>",
		Short: "generate pending dividend transactions from the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			portfolioID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid portfolio id: %w", err)
			}
			start, err := time.Parse("2006-01-02", startFlag)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			end, err := time.Parse("2006-01-02", endFlag)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			suggestions, err := deps.ApiHandler.DividendSuggestionService.GenerateSuggestions(
				context.Background(), portfolioID, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("created %d suggestions\n", len(suggestions))
			return nil
		},
	}

	out.Flags().StringVar(&startFlag, "start", "", "window start (YYYY-MM-DD)")
	out.Flags().StringVar(&endFlag, "end", "", "window end (YYYY-MM-DD)")
	_ = out.MarkFlagRequired("start")
	_ = out.MarkFlagRequired("end")

	return out
}

func recalculateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recalculate <portfolioId>",
		Short: "replay the full ledger and rewrite cash balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			portfolioID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid portfolio id: %w", err)
			}

			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			result, err := deps.ApiHandler.LedgerService.RecalculateBalances(context.Background(), portfolioID)
			if err != nil {
				return err
			}

			fmt.Printf("replayed %d transactions, final cash %s, %d flags\n",
				len(result.Snapshots), result.Final.Cash.StringFixed(2), len(result.Flags))
			return nil
		},
	}
}

func backtestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backtest <configId>",
		Short: "run a saved backtest config and store the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			configID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid config id: %w", err)
			}

			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			handler := deps.ApiHandler

			config, err := handler.BacktestConfigRepository.Get(handler.Db, configID)
			if err != nil {
				return err
			}
			riskFreeRate, err := handler.RiskFreeRate.GetRiskFreeRate(context.Background())
			if err != nil {
				return err
			}

			result, err := handler.BacktestHandler.RunAndPersist(context.Background(), *config, riskFreeRate)
			if err != nil {
				return err
			}

			fmt.Printf("total return %.2f%%, final value %.2f, %d data quality flags\n",
				result.TotalReturn*100, result.FinalValue, len(result.DataQualityFlags))
			return nil
		},
	}
}
