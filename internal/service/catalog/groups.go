package catalog

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// chapterGroup aggregates the records of one logical chapter.
type chapterGroup struct {
	key    string
	id     domain.ChapterID
	name   domain.NameSet
	count  int
	minSeq int64
	maxSeq int64
	// numbered is false while no member had a numeric sequence number.
	numbered bool
}

func (g *chapterGroup) add(rec domain.ContentRecord) {
	g.count++
	// The name set of the first member that has one is kept whole.
	if g.name.IsEmpty() && !rec.Kitab.Name.IsEmpty() {
		g.name = rec.Kitab.Name
	}

	seq := rec.SeqSort()
	if seq == domain.UnparsedSeqSort {
		return
	}
	if !g.numbered || seq < g.minSeq {
		g.minSeq = seq
	}
	if !g.numbered || seq > g.maxSeq {
		g.maxSeq = seq
	}
	g.numbered = true
}

// sortKey orders groups by their lowest sequence number; groups without a
// numeric sequence number go last.
func (g *chapterGroup) sortKey() int64 {
	if !g.numbered {
		return domain.UnparsedSeqSort
	}
	return g.minSeq
}

// groupScan is the result of streaming a book's records into groups.
type groupScan struct {
	groups []*chapterGroup
	// records is the number of records scanned.
	records int
	// ungrouped counts records with neither chapter id nor chapter name.
	ungrouped int
}

// scanGroups streams every record of book in bounded keyset batches and
// groups them by chapter id, or by normalized chapter name when the id is
// missing. Groups are returned sorted by their lowest sequence number.
func (s *Service) scanGroups(ctx context.Context, book string) (*groupScan, error) {
	byKey := make(map[string]*chapterGroup)
	var (
		order  []*chapterGroup
		cursor *domain.RecordCursor
		res    groupScan
	)

	for {
		batch, err := s.records.ScanBook(ctx, book, cursor, s.cfg.ScanBatchSize)
		if err != nil {
			return nil, fmt.Errorf("scan records of %s: %w", book, err)
		}
		for _, rec := range batch {
			res.records++
			key := rec.Kitab.GroupKey()
			if key == "" {
				res.ungrouped++
				continue
			}
			g, ok := byKey[key]
			if !ok {
				g = &chapterGroup{key: key, id: rec.Kitab.ID}
				byKey[key] = g
				order = append(order, g)
			}
			g.add(rec)
		}

		if len(batch) < s.cfg.ScanBatchSize {
			break
		}
		last := batch[len(batch)-1]
		cursor = &domain.RecordCursor{SeqSort: last.SeqSort(), ID: last.ID}

		s.log.DebugContext(ctx, "rebuild scan progress",
			slog.String("book", book),
			slog.Int("records", res.records),
			slog.Int("groups", len(order)),
		)
	}

	// Stable sort keeps first-seen order for groups with equal keys.
	slices.SortStableFunc(order, func(a, b *chapterGroup) int {
		return cmp.Compare(a.sortKey(), b.sortKey())
	})
	res.groups = order
	return &res, nil
}
