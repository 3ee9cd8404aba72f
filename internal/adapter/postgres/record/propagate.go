package record

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/hadith-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// matchPredicate returns the WHERE clause selecting records linked by m.
func matchPredicate(m domain.ChapterMatch) (sq.Sqlizer, error) {
	book := sq.Eq{"book": m.Book}
	switch m.Strategy {
	case domain.MatchByOrderID:
		// Source data stores the chapter id both as a number and as text.
		return sq.And{book, sq.Or{
			sq.Eq{"kitab_id_num": m.Order},
			sq.Eq{"kitab_id_text": fmt.Sprint(m.Order)},
		}}, nil
	case domain.MatchByThName:
		return sq.And{book, sq.Eq{"kitab_th": m.Name}}, nil
	case domain.MatchByArName:
		return sq.And{book, sq.Eq{"kitab_ar": m.Name}}, nil
	}
	return nil, fmt.Errorf("unknown match strategy %q", m.Strategy)
}

// alreadyNamed matches records whose chapter copy already equals n.
func alreadyNamed(n domain.NameSet) sq.Sqlizer {
	return sq.Eq{"kitab_ar": n.Ar, "kitab_th": n.Th, "kitab_en": n.En}
}

// CountMatching returns how many records the match selects.
func (r *Repo) CountMatching(ctx context.Context, m domain.ChapterMatch) (int, error) {
	pred, err := matchPredicate(m)
	if err != nil {
		return 0, err
	}
	query, args, err := psql.Select("count(*)").From(table).Where(pred).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count matching records: %w", err)
	}
	return n, nil
}

// RenameChapterBatch sets the chapter names of at most limit records selected
// by m that do not already carry names. It returns the number of modified
// rows; zero means the match is fully propagated.
func (r *Repo) RenameChapterBatch(ctx context.Context, m domain.ChapterMatch, names domain.NameSet, limit int) (int, error) {
	if names.IsEmpty() {
		return 0, nil
	}
	pred, err := matchPredicate(m)
	if err != nil {
		return 0, err
	}

	sub := psql.Select("id").From(table).
		Where(pred).
		Where(sq.Expr("NOT (?)", alreadyNamed(names))).
		OrderBy("id").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	set := map[string]any{
		"kitab_ar":   names.Ar,
		"kitab_th":   names.Th,
		"kitab_en":   names.En,
		"updated_at": sq.Expr("now()"),
	}

	query, args, err := psql.Update(table).
		SetMap(set).
		Where(sq.Expr("id IN (?)", sub)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("rename chapter batch: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
