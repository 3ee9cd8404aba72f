package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// PropagationResult summarizes how a rename reached the content records.
type PropagationResult struct {
	Book     string               `json:"book"`
	Strategy domain.MatchStrategy `json:"strategy"`
	// Matched is the number of records the winning strategy selected.
	Matched int `json:"matched"`
	// Modified is the number of records rewritten. Records already carrying
	// the new names are not counted.
	Modified int `json:"modified"`
	Batches  int `json:"batches"`
	// Unlinked is set when no strategy matched any record.
	Unlinked bool `json:"unlinked"`
	// Partial is set when the rename reached no records or stopped on error.
	Partial bool   `json:"partial"`
	Error   string `json:"error,omitempty"`
}

// matchStrategies returns the predicates for old in priority order: catalog
// order id, then display (Thai) name, then source (Arabic) name.
func matchStrategies(book string, old domain.ChapterIdentity) []domain.ChapterMatch {
	var out []domain.ChapterMatch
	if old.Order > 0 {
		out = append(out, domain.ChapterMatch{Book: book, Strategy: domain.MatchByOrderID, Order: int64(old.Order)})
	}
	if old.Name.Th != "" {
		out = append(out, domain.ChapterMatch{Book: book, Strategy: domain.MatchByThName, Name: old.Name.Th})
	}
	if old.Name.Ar != "" {
		out = append(out, domain.ChapterMatch{Book: book, Strategy: domain.MatchByArName, Name: old.Name.Ar})
	}
	return out
}

// Propagate writes the name set names onto every record of book linked to
// old. Empty fields clear the record's copy. The first strategy that matches at least one record is the
// only one applied. Updates run in bounded batches and are not atomic: on
// error the partial result is returned together with the error, and a
// repeated call finishes the job.
func (s *Service) Propagate(ctx context.Context, book string, old domain.ChapterIdentity, names domain.NameSet) (*PropagationResult, error) {
	res := &PropagationResult{Book: book, Strategy: domain.MatchNone}
	if names.IsEmpty() {
		res.Unlinked, res.Partial = true, true
		return res, nil
	}

	for _, m := range matchStrategies(book, old) {
		n, err := s.records.CountMatching(ctx, m)
		if err != nil {
			res.Partial = true
			res.Error = err.Error()
			return res, fmt.Errorf("count records by %s: %w", m.Strategy, err)
		}
		if n == 0 {
			continue
		}

		res.Strategy = m.Strategy
		res.Matched = n
		for {
			changed, err := s.records.RenameChapterBatch(ctx, m, names, s.cfg.PropagationBatchSize)
			if err != nil {
				res.Partial = true
				res.Error = err.Error()
				return res, fmt.Errorf("rename batch %d by %s: %w", res.Batches+1, m.Strategy, err)
			}
			if changed == 0 {
				break
			}
			res.Modified += changed
			res.Batches++
			s.log.DebugContext(ctx, "propagation progress",
				slog.String("book", book),
				slog.String("strategy", string(m.Strategy)),
				slog.Int("modified", res.Modified),
				slog.Int("matched", res.Matched),
			)
		}

		s.log.InfoContext(ctx, "chapter rename propagated",
			slog.String("book", book),
			slog.String("strategy", string(m.Strategy)),
			slog.Int("matched", res.Matched),
			slog.Int("modified", res.Modified),
		)
		return res, nil
	}

	res.Unlinked, res.Partial = true, true
	s.log.InfoContext(ctx, "chapter rename matched no records",
		slog.String("book", book),
		slog.Int("order", old.Order),
	)
	return res, nil
}
