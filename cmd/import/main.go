// Command import loads a tab-separated export of one book into the content
// store and the search index, optionally rebuilding the book's catalog
// afterwards.
//
// Usage:
//
//	import --book=riyad --file=riyad.tsv [--status=published] [--rebuild]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/hadith-backend/internal/app"
	"github.com/heartmarshall/hadith-backend/internal/app/hadithimport"
	"github.com/heartmarshall/hadith-backend/internal/config"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

func main() {
	book := flag.String("book", "", "book alias the rows belong to")
	file := flag.String("file", "", "path to the TSV export")
	status := flag.String("status", "", "status for rows without one (default from config)")
	rebuild := flag.Bool("rebuild", false, "rebuild the book's catalog after import")
	configPath := flag.String("config", "", "path to config YAML (default CONFIG_PATH)")
	flag.Parse()

	if *book == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: import --book=<alias> --file=<export.tsv> [--status=pending] [--rebuild]")
		os.Exit(1)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *status != "" {
		if !domain.RecordStatus(*status).IsValid() {
			log.Fatalf("invalid status %q", *status)
		}
		cfg.Import.DefaultStatus = *status
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Hour)
	defer cancel()

	c, err := app.NewComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	report, err := hadithimport.NewPipeline(logger, c.Import, c.Catalog).Run(ctx, hadithimport.Options{
		Book:    *book,
		Path:    *file,
		Rebuild: *rebuild,
	})
	if err != nil {
		logger.Error("import failed", slog.String("book", *book), slog.String("error", err.Error()))
		c.Close()
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.String("book", *book),
		slog.Int("created", report.Import.Created),
		slog.Int("updated", report.Import.Updated),
		slog.Duration("duration", report.Duration),
	)
}
