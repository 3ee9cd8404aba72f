package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// GroupReport describes a chapter group that was left out of the catalog.
type GroupReport struct {
	Key     string         `json:"key"`
	Name    domain.NameSet `json:"name"`
	Records int            `json:"records"`
	Reason  string         `json:"reason"`
}

// RebuildResult summarizes a catalog rebuild.
type RebuildResult struct {
	Book    string `json:"book"`
	Records int    `json:"records"`
	Entries int    `json:"entries"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Deleted int    `json:"deleted"`
	// Ungrouped counts records carrying neither chapter id nor name.
	Ungrouped int           `json:"ungrouped"`
	Skipped   []GroupReport `json:"skipped"`
	Ambiguous []GroupReport `json:"ambiguous"`
}

// catalogPlan is the catalog derived from a set of groups.
type catalogPlan struct {
	entries   []domain.KitabEntry
	created   int
	updated   int
	skipped   []GroupReport
	ambiguous []GroupReport
}

// planCatalog assigns orders 1..N to the named groups in the given order and
// matches each to an existing entry by normalized name. Matched entries keep
// their id and creation time; new entries have a nil id.
//
// Two groups whose names normalize to the same key would both claim one
// entry, so the later group is reported as ambiguous and left out.
func planCatalog(book string, groups []*chapterGroup, existing []domain.KitabEntry) catalogPlan {
	byName := make(map[string]domain.KitabEntry, len(existing))
	for _, e := range existing {
		if k := e.Name.Key(); k != "" {
			if _, ok := byName[k]; !ok {
				byName[k] = e
			}
		}
	}

	var plan catalogPlan
	claimed := make(map[string]string, len(groups))
	order := 0
	for _, g := range groups {
		key := g.name.Key()
		if key == "" {
			plan.skipped = append(plan.skipped, GroupReport{
				Key: g.key, Records: g.count, Reason: "no chapter name",
			})
			continue
		}
		if owner, taken := claimed[key]; taken {
			plan.ambiguous = append(plan.ambiguous, GroupReport{
				Key: g.key, Name: g.name, Records: g.count,
				Reason: fmt.Sprintf("%v: name also used by group %s", domain.ErrMatchAmbiguous, owner),
			})
			continue
		}
		claimed[key] = g.key

		order++
		e := domain.KitabEntry{
			Book:        book,
			Order:       order,
			Name:        g.name,
			RecordCount: g.count,
			MinSeq:      g.minSeq,
			MaxSeq:      g.maxSeq,
		}
		if prev, ok := byName[key]; ok {
			e.ID = prev.ID
			e.CreatedAt = prev.CreatedAt
			// Keep catalog-only names, e.g. an English name never imported.
			e.Name.FillFrom(prev.Name)
			plan.updated++
		} else {
			plan.created++
		}
		plan.entries = append(plan.entries, e)
	}
	return plan
}

// Rebuild derives the catalog of book from its records and replaces the
// stored catalog with it. Re-running on unchanged records yields the same
// orders and entry ids. Overlapping rebuilds of one book are rejected with
// ErrRebuildInProgress.
func (s *Service) Rebuild(ctx context.Context, book string) (*RebuildResult, error) {
	book = strings.TrimSpace(book)
	if book == "" {
		return nil, domain.NewValidationError("book", "required")
	}

	unlock, ok, err := s.locker.TryLock(ctx, "rebuild:"+book)
	if err != nil {
		return nil, fmt.Errorf("lock rebuild of %s: %w", book, err)
	}
	if !ok {
		return nil, fmt.Errorf("book %s: %w", book, domain.ErrRebuildInProgress)
	}
	defer unlock()

	scan, err := s.scanGroups(ctx, book)
	if err != nil {
		return nil, err
	}
	if scan.records == 0 {
		return nil, fmt.Errorf("records of book %s: %w", book, domain.ErrNotFound)
	}

	res := &RebuildResult{
		Book:      book,
		Records:   scan.records,
		Ungrouped: scan.ungrouped,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.kitabs.ListByBook(txCtx, book)
		if err != nil {
			return fmt.Errorf("list catalog: %w", err)
		}

		plan := planCatalog(book, scan.groups, existing)
		for i := range plan.entries {
			if plan.entries[i].ID == uuid.Nil {
				plan.entries[i].ID = uuid.New()
			}
		}

		deleted, err := s.kitabs.ReplaceBook(txCtx, book, plan.entries)
		if err != nil {
			return fmt.Errorf("replace catalog: %w", err)
		}

		res.Entries = len(plan.entries)
		res.Created = plan.created
		res.Updated = plan.updated
		res.Deleted = deleted
		res.Skipped = plan.skipped
		res.Ambiguous = plan.ambiguous
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, g := range res.Skipped {
		s.log.WarnContext(ctx, "chapter group skipped",
			slog.String("book", book),
			slog.String("group", g.Key),
			slog.Int("records", g.Records),
			slog.String("reason", g.Reason),
		)
	}
	for _, g := range res.Ambiguous {
		s.log.WarnContext(ctx, "ambiguous chapter group",
			slog.String("book", book),
			slog.String("group", g.Key),
			slog.Int("records", g.Records),
			slog.String("reason", g.Reason),
		)
	}

	s.log.InfoContext(ctx, "catalog rebuilt",
		slog.String("book", book),
		slog.Int("records", res.Records),
		slog.Int("entries", res.Entries),
		slog.Int("created", res.Created),
		slog.Int("updated", res.Updated),
		slog.Int("deleted", res.Deleted),
	)

	return res, nil
}
