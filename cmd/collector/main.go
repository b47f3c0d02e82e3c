package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"pricecompare/internal/cache"
	"pricecompare/internal/collector"
	"pricecompare/internal/config"
	"pricecompare/internal/crawler"
	"pricecompare/internal/db"
	"pricecompare/internal/logger"
	"pricecompare/internal/model"
	"pricecompare/internal/observability"
	"pricecompare/internal/report"
	"pricecompare/internal/repository"
	"pricecompare/internal/store"
)

// go run ./cmd/collector -mock=false -input=data/sku_master.csv
// go run ./cmd/collector -sku-source=db
func main() {
	cfg := config.Load()

	flag.BoolVar(&cfg.UseMock, "mock", cfg.UseMock, "usa dados fixos em vez das APIs das lojas")
	flag.StringVar(&cfg.InputPath, "input", cfg.InputPath, "CSV com as colunas sku_id,sku_name")
	flag.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "CSV de saída (sempre sobrescrito)")
	flag.StringVar(&cfg.SKUSource, "sku-source", cfg.SKUSource, "origem dos SKUs: 'csv' ou 'db'")
	flag.Parse()

	base, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer base.Sync()
	log, _ := logger.WithRun(base)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	observability.Start(cfg.MetricsPort)

	skus, err := loadSKUs(ctx, cfg)
	if err != nil {
		log.Fatal("cannot load sku list", zap.Error(err))
	}
	log.Info("sku list loaded", zap.Int("count", len(skus)), zap.String("source", cfg.SKUSource))

	src, closeSrc := buildSource(cfg, log)
	defer closeSrc()

	out, err := report.Create(cfg.OutputPath)
	if err != nil {
		log.Fatal("cannot create report", zap.Error(err))
	}

	_, runErr := collector.New(src, out, cfg.Currency, log).Run(ctx, skus)
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		log.Fatal("collection aborted", zap.Error(runErr), zap.String("output", cfg.OutputPath))
	}

	fmt.Println("Data written to", cfg.OutputPath)
}

func loadSKUs(ctx context.Context, cfg *config.Config) ([]model.SKU, error) {
	if cfg.SKUSource != "db" {
		return report.ReadSKUs(cfg.InputPath)
	}
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	repo := &repository.SKURepository{DB: conn}
	return repo.List(ctx)
}

func buildSource(cfg *config.Config, log *zap.Logger) (store.Source, func()) {
	if cfg.UseMock {
		log.Info("mock mode: no API calls will be made")
		return store.MockSource{}, func() {}
	}
	if cfg.RapidAPIKey == "" {
		log.Warn("RAPIDAPI_KEY is not set; requests will be unauthenticated")
	}

	client := crawler.NewClient(cfg, log)
	closer := func() {}
	if cfg.RedisURL != "" {
		rc := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL, log)
		client.Cache = rc
		closer = func() { rc.Close() }
	}

	var adapters []store.Adapter
	if cfg.StoreEnabled("walmart") {
		adapters = append(adapters, store.NewWalmart(client, cfg.WalmartBaseURL, cfg.WalmartHost, cfg.RapidAPIKey, log))
	}
	if cfg.StoreEnabled("target") {
		adapters = append(adapters, store.NewTarget(client, cfg.TargetBaseURL, cfg.TargetHost, cfg.RapidAPIKey, log))
	}
	return store.NewLiveSource(adapters...), closer
}
