// Command importer loads day dataset CSV files into the SQLite store.
// Each file becomes one day named after its base name. It can also mint
// a bearer token for the server's write endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jengzang/carrier-backend-go/internal/config"
	"github.com/jengzang/carrier-backend-go/internal/database"
	"github.com/jengzang/carrier-backend-go/internal/dataset"
	"github.com/jengzang/carrier-backend-go/internal/logging"
	"github.com/jengzang/carrier-backend-go/internal/middleware"
	"github.com/jengzang/carrier-backend-go/internal/repository"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	header := flag.Bool("header", cfg.CSVHeader, "CSV files start with a header line")
	sortByTime := flag.Bool("sort", false, "order rows by time before storing")
	subject := flag.String("token", "", "print a bearer token for this subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] day.csv...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	if *subject != "" {
		token, err := middleware.IssueToken(cfg.JWTSecret, *subject, *ttl)
		if err != nil {
			logger.Fatal("failed to issue token", zap.Error(err))
		}
		fmt.Println(token)
	}

	if flag.NArg() == 0 {
		if *subject == "" {
			flag.Usage()
			os.Exit(2)
		}
		return
	}

	loader := &dataset.CSVLoader{HasHeader: *header, SortByTime: *sortByTime}
	if err := importFiles(context.Background(), *dbPath, loader, flag.Args(), logger); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}

func importFiles(ctx context.Context, dbPath string, loader *dataset.CSVLoader, paths []string, logger *zap.Logger) error {
	db, err := database.Open(database.Config{Path: dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		return err
	}
	repo := repository.NewRecordRepository(db)

	for _, path := range paths {
		day := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		f, err := loader.Load(ctx, path)
		if err != nil {
			return err
		}
		n, err := repo.ReplaceDay(ctx, day, f)
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", path, err)
		}
		logger.Info("imported day", zap.String("day", day), zap.String("file", path), zap.Int("rows", n))
	}
	return nil
}
