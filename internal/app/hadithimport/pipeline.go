package hadithimport

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hadith-backend/internal/service/catalog"
	"github.com/heartmarshall/hadith-backend/internal/service/importer"
)

type rowImporter interface {
	Import(ctx context.Context, book string, rows importer.RowReader) (*importer.Result, error)
}

type catalogRebuilder interface {
	Rebuild(ctx context.Context, book string) (*catalog.RebuildResult, error)
}

// Options selects what a pipeline run does.
type Options struct {
	Book string
	Path string
	// Rebuild derives the book's catalog after a successful import.
	Rebuild bool
}

// Report is the outcome of a pipeline run.
type Report struct {
	Import   *importer.Result
	Rebuild  *catalog.RebuildResult
	Duration time.Duration
}

// Pipeline imports one export file and optionally rebuilds the catalog.
type Pipeline struct {
	log      *slog.Logger
	importer rowImporter
	catalog  catalogRebuilder
}

// NewPipeline creates a new Pipeline. rebuilder may be nil when Rebuild is
// never requested.
func NewPipeline(log *slog.Logger, imp rowImporter, rebuilder catalogRebuilder) *Pipeline {
	return &Pipeline{log: log, importer: imp, catalog: rebuilder}
}

// Run executes the import described by opts.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()

	f, err := os.Open(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Path, err)
	}
	defer f.Close()

	rows, err := NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Path, err)
	}

	report := &Report{}
	report.Import, err = p.importer.Import(ctx, opts.Book, rows)
	if err != nil {
		report.Duration = time.Since(start)
		return report, fmt.Errorf("import %s: %w", opts.Book, err)
	}

	p.log.InfoContext(ctx, "import finished",
		slog.String("book", opts.Book),
		slog.Int("kept", report.Import.Kept),
		slog.Int("skipped", report.Import.Skipped),
		slog.Int("disambiguated", report.Import.Disambiguated),
		slog.Int("created", report.Import.Created),
		slog.Int("updated", report.Import.Updated),
		slog.Int("invalid", report.Import.Invalid),
	)

	if opts.Rebuild && p.catalog != nil {
		report.Rebuild, err = p.catalog.Rebuild(ctx, opts.Book)
		if err != nil {
			report.Duration = time.Since(start)
			return report, fmt.Errorf("rebuild %s: %w", opts.Book, err)
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}
