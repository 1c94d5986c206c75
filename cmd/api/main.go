package main

import (
	"carteira/cmd"
	"carteira/internal/logger"
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	scheduler := cron.New()
	_, err = scheduler.AddFunc("0 3 * * *", func() {
		ctx := context.Background()
		if err := deps.MarketDataSync.Run(ctx); err != nil {
			logger.FromContext(ctx).Errorw("market data sync failed", "error", err)
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	if err := deps.ApiHandler.StartApi(3009); err != nil {
		log.Fatal(err)
	}
}
