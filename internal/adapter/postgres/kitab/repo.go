// Package kitab implements the chapter catalog repository using PostgreSQL.
package kitab

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hadith-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const table = "kitab_entries"

var columns = []string{
	"id", "book", "sort_order", "name_ar", "name_th", "name_en",
	"record_count", "min_seq", "max_seq", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByBook returns every entry of book ordered by sort order.
func (r *Repo) ListByBook(ctx context.Context, book string) ([]domain.KitabEntry, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(sq.Eq{"book": book}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query kitab_entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.KitabEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect kitab_entries: %w", err)
	}
	return entries, nil
}

// GetByID returns an entry by id.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.KitabEntry, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByOrder returns the entry of book with the given sort order.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByOrder(ctx context.Context, book string, order int) (*domain.KitabEntry, error) {
	return r.getOne(ctx, sq.Eq{"book": book, "sort_order": order}, fmt.Sprintf("%s/%d", book, order))
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id any) (*domain.KitabEntry, error) {
	query, args, err := psql.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "kitab_entry", id)
	}
	return &e, nil
}

// MaxOrder returns the highest sort order used in book, or 0.
func (r *Repo) MaxOrder(ctx context.Context, book string) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT COALESCE(MAX(sort_order), 0) FROM kitab_entries WHERE book = $1`, book,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("max order of %s: %w", book, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry. A zero ID is replaced by a fresh one.
// Returns domain.ErrAlreadyExists when the (book, order) pair is taken.
func (r *Repo) Create(ctx context.Context, e domain.KitabEntry) (*domain.KitabEntry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(entryValues(e)...).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "kitab_entry", e.ID)
	}
	return &out, nil
}

// Update overwrites order and names of an entry.
// Returns domain.ErrNotFound if it does not exist and domain.ErrAlreadyExists
// when the new order is taken.
func (r *Repo) Update(ctx context.Context, e domain.KitabEntry) (*domain.KitabEntry, error) {
	query, args, err := psql.Update(table).SetMap(map[string]any{
		"sort_order": e.Order,
		"name_ar":    e.Name.Ar,
		"name_th":    e.Name.Th,
		"name_en":    e.Name.En,
		"updated_at": time.Now().UTC(),
	}).
		Where(sq.Eq{"id": e.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "kitab_entry", e.ID)
	}
	return &out, nil
}

// Delete removes an entry. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM kitab_entries WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "kitab_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "kitab_entry", id)
	}
	return nil
}

// ReplaceBook makes entries the complete catalog of book: entries are
// upserted by id and every other entry of the book is deleted. It returns the
// number of deleted entries.
//
// The (book, sort_order) constraint is deferred, so the call must run inside
// a transaction for renumbering to succeed.
func (r *Repo) ReplaceBook(ctx context.Context, book string, entries []domain.KitabEntry) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC()

	keep := make([]uuid.UUID, 0, len(entries))
	if len(entries) > 0 {
		batch := &pgx.Batch{}
		for _, e := range entries {
			e.Book = book
			e.CreatedAt, e.UpdatedAt = now, now
			batch.Queue(upsertSQL, entryValues(e)...)
			keep = append(keep, e.ID)
		}
		if _, err := postgres.SendBatchExec(ctx, q, batch); err != nil {
			return 0, postgres.MapError(err, "kitab_entries", book)
		}
	}

	tag, err := q.Exec(ctx,
		`DELETE FROM kitab_entries WHERE book = $1 AND NOT (id = ANY($2))`, book, keep)
	if err != nil {
		return 0, postgres.MapError(err, "kitab_entries", book)
	}
	return int(tag.RowsAffected()), nil
}

const upsertSQL = `INSERT INTO kitab_entries (
	id, book, sort_order, name_ar, name_th, name_en,
	record_count, min_seq, max_seq, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
	sort_order = EXCLUDED.sort_order,
	name_ar = EXCLUDED.name_ar,
	name_th = EXCLUDED.name_th,
	name_en = EXCLUDED.name_en,
	record_count = EXCLUDED.record_count,
	min_seq = EXCLUDED.min_seq,
	max_seq = EXCLUDED.max_seq,
	updated_at = EXCLUDED.updated_at`

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (domain.KitabEntry, error) {
	var e domain.KitabEntry
	err := row.Scan(
		&e.ID, &e.Book, &e.Order, &e.Name.Ar, &e.Name.Th, &e.Name.En,
		&e.RecordCount, &e.MinSeq, &e.MaxSeq, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func entryValues(e domain.KitabEntry) []any {
	return []any{
		e.ID, e.Book, e.Order, e.Name.Ar, e.Name.Th, e.Name.En,
		e.RecordCount, e.MinSeq, e.MaxSeq, e.CreatedAt, e.UpdatedAt,
	}
}
