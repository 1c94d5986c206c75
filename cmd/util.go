package cmd

import (
	"carteira/api"
	"carteira/internal"
	"carteira/internal/app"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"carteira/internal/service"
	"carteira/internal/util"
	"carteira/pkg/bcb"
	"carteira/pkg/brapi"
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"

	_ "github.com/lib/pq"
)

const (
	metricsCacheTtl     = 15 * time.Minute
	metricsCacheCleanup = 30 * time.Minute
)

// Dependencies is the wired object graph. The api handler serves
// requests; the sync job is handed to the scheduler.
type Dependencies struct {
	ApiHandler     *api.ApiHandler
	MarketDataSync *MarketDataSync
}

func CloseDependencies(deps *Dependencies) {
	if err := deps.ApiHandler.Db.Close(); err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	transactionRepository := repository.NewTransactionRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	priceRepository := repository.NewPriceRepository()
	dividendRepository := repository.NewDividendRepository()
	backtestConfigRepository := repository.NewBacktestConfigRepository()
	backtestResultRepository := repository.NewBacktestResultRepository()
	apiRequestRepository := repository.NewApiRequestRepository()

	portfolioLocks := util.NewKeyedMutex()
	metricsCache := gocache.New(metricsCacheTtl, metricsCacheCleanup)

	reconstructor := service.NewReconstructorService(transactionRepository)
	ledgerService := service.NewLedgerService(
		dbConn,
		transactionRepository,
		reconstructor,
		portfolioLocks,
		metricsCache,
	)
	dividendSuggestionService := service.NewDividendSuggestionService(
		dbConn,
		transactionRepository,
		dividendRepository,
		portfolioLocks,
	)

	var riskFreeRate service.RiskFreeRateProvider
	if secrets.RiskFreeRate != nil {
		riskFreeRate = service.FixedRiskFreeRate(*secrets.RiskFreeRate)
	} else {
		riskFreeRate = selicRiskFreeRate{client: bcb.NewClient()}
	}

	metricsService := service.NewMetricsService(
		dbConn,
		transactionRepository,
		priceRepository,
		riskFreeRate,
		metricsCache,
	)

	backtestHandler := app.BacktestHandler{
		Db:                       dbConn,
		PriceRepository:          priceRepository,
		DividendRepository:       dividendRepository,
		BacktestResultRepository: backtestResultRepository,
	}

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		LedgerService:             ledgerService,
		DividendSuggestionService: dividendSuggestionService,
		MetricsService:            metricsService,
		BacktestHandler:           backtestHandler,
		RiskFreeRate:              riskFreeRate,
		PortfolioRepository:       portfolioRepository,
		BacktestConfigRepository:  backtestConfigRepository,
		BacktestResultRepository:  backtestResultRepository,
		GptRepository:             gptRepository,
		ApiRequestRepository:      apiRequestRepository,
	}

	marketDataSync := &MarketDataSync{
		Db:                    dbConn,
		TransactionRepository: transactionRepository,
		PriceRepository:       priceRepository,
		DividendRepository:    dividendRepository,
		BrapiClient:           brapi.NewClient(secrets.BrapiToken),
	}

	return &Dependencies{
		ApiHandler:     apiHandler,
		MarketDataSync: marketDataSync,
	}, nil
}

// selicRiskFreeRate sources the risk-free rate from the central bank.
type selicRiskFreeRate struct {
	client *bcb.Client
}

func (s selicRiskFreeRate) GetRiskFreeRate(ctx context.Context) (float64, error) {
	return s.client.GetSelicRate(ctx)
}

// priceHistoryStart bounds how far back the nightly sync reaches.
var priceHistoryStart = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

// MarketDataSync refreshes prices and the dividend calendar for every
// ticker referenced by any ledger.
type MarketDataSync struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
	PriceRepository       repository.PriceRepository
	DividendRepository    repository.DividendRepository
	BrapiClient           *brapi.Client
}

func (s *MarketDataSync) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tickers, err := s.TransactionRepository.ListDistinctTickers(s.Db)
	if err != nil {
		return err
	}
	if len(tickers) == 0 {
		log.Infow("no tickers in any ledger, skipping market data sync")
		return nil
	}

	tx, err := s.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := internal.UpdateLedgerPrices(ctx, tx, tickers, priceHistoryStart, time.Now().UTC(), s.PriceRepository); err != nil {
		log.Warnw("price sync finished with errors", "error", err)
	}
	if err := internal.UpdateLedgerDividends(ctx, tx, tickers, s.BrapiClient, s.DividendRepository); err != nil {
		log.Warnw("dividend sync finished with errors", "error", err)
	}

	return tx.Commit()
}
