package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jengzang/carrier-backend-go/internal/api"
	"github.com/jengzang/carrier-backend-go/internal/carrier"
	"github.com/jengzang/carrier-backend-go/internal/config"
	"github.com/jengzang/carrier-backend-go/internal/database"
	"github.com/jengzang/carrier-backend-go/internal/dataset"
	"github.com/jengzang/carrier-backend-go/internal/handler"
	"github.com/jengzang/carrier-backend-go/internal/logging"
	"github.com/jengzang/carrier-backend-go/internal/repository"
	"github.com/jengzang/carrier-backend-go/internal/service"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	// 加载历史数据
	loader, ids, closeFn, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	env, err := carrier.Load(ctx, loader, ids, carrier.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to load day datasets: %w", err)
	}

	h := handler.NewCarrierHandler(service.NewCarrierService(env, logger))

	// 初始化路由
	router := api.SetupRouter(cfg, h, logger)

	// 启动服务器
	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Int("days", len(env.Days())),
		zap.Bool("auth", cfg.AuthEnabled))
	return router.Run(cfg.Port)
}

// openSource picks the day dataset source named by the configuration
func openSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (dataset.Loader, []string, func(), error) {
	switch cfg.DataSource {
	case config.SourceCSV:
		if len(cfg.DataFiles) == 0 {
			return nil, nil, nil, fmt.Errorf("DATA_FILES is empty")
		}
		return &dataset.CSVLoader{HasHeader: cfg.CSVHeader}, cfg.DataFiles, func() {}, nil

	case config.SourceSQLite:
		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() { db.Close() }
		if err := database.Migrate(db, logger); err != nil {
			closeFn()
			return nil, nil, nil, err
		}

		repo := repository.NewRecordRepository(db)
		days, err := selectDays(ctx, repo, cfg.DataDays)
		if err != nil {
			closeFn()
			return nil, nil, nil, err
		}
		return repo, days, closeFn, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.DataSource)
}

func selectDays(ctx context.Context, repo *repository.RecordRepository, configured []string) ([]string, error) {
	if len(configured) > 0 {
		return configured, nil
	}
	days, err := repo.ListDays(ctx)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no days stored in database")
	}
	return days, nil
}

