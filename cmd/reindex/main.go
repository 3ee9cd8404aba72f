// Command reindex rebuilds the full-text search index from the content
// store. Without --book every book is indexed.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/hadith-backend/internal/app"
	"github.com/heartmarshall/hadith-backend/internal/config"
)

func main() {
	bookFlag := flag.String("book", "", "comma-separated books to index (default: all)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Search.Enabled {
		logger.Error("search is disabled, nothing to index")
		os.Exit(1)
	}

	var books []string
	if *bookFlag != "" {
		for _, b := range strings.Split(*bookFlag, ",") {
			if b = strings.TrimSpace(b); b != "" {
				books = append(books, b)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	c, err := app.NewComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	res, err := c.Indexer.Reindex(ctx, books...)
	if err != nil {
		logger.Error("reindex failed", slog.String("error", err.Error()))
		c.Close()
		os.Exit(1)
	}

	logger.Info("reindex completed",
		slog.Int("books", res.Books),
		slog.Int("indexed", res.Indexed),
		slog.Int("batches", res.Batches),
	)
}
