// Package record implements the content record repository using PostgreSQL.
// Records carry a denormalized copy of their chapter (kitab_* columns); the
// sequence number is stored as text with a numeric sort key alongside.
package record

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hadith-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const table = "content_records"

var columns = []string{
	"id", "book", "seq_no",
	"kitab_id_num", "kitab_id_text", "kitab_ar", "kitab_th", "kitab_en",
	"content_ar", "content_th", "content_en",
	"bab", "title", "chain", "footnote", "grade",
	"status", "notes", "created_at", "updated_at",
}

var insertColumns = append(slices.Clone(columns), "seq_sort")

var returning = "RETURNING " + strings.Join(columns, ", ")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides content record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record by its composite id.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.ContentRecord, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "content_record", id)
	}
	return &rec, nil
}

// GetByIDs returns the records with the given ids, in the order of ids.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.ContentRecord, error) {
	if len(ids) == 0 {
		return []domain.ContentRecord{}, nil
	}

	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	found, err := r.queryRecords(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.ContentRecord, len(found))
	for _, rec := range found {
		byID[rec.ID] = rec
	}
	out := make([]domain.ContentRecord, 0, len(found))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Find returns a page of records matching the filter and the optional
// substring search, ordered numerically by sequence number.
func (r *Repo) Find(ctx context.Context, f domain.RecordFilter, search string, offset, limit int) ([]domain.ContentRecord, error) {
	b := applyFilter(psql.Select(columns...).From(table), f, search).
		OrderBy("seq_sort ASC", "id ASC").
		Offset(uint64(max(offset, 0)))
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.queryRecords(ctx, query, args...)
}

// Count returns the exact number of records matching the filter and search.
func (r *Repo) Count(ctx context.Context, f domain.RecordFilter, search string) (int, error) {
	query, args, err := applyFilter(psql.Select("count(*)").From(table), f, search).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count content_records: %w", err)
	}
	return n, nil
}

// ScanBook returns up to limit records of book strictly after cursor in
// (seq_sort, id) order. A zero cursor starts from the beginning.
func (r *Repo) ScanBook(ctx context.Context, book string, after *domain.RecordCursor, limit int) ([]domain.ContentRecord, error) {
	b := psql.Select(columns...).From(table).Where(sq.Eq{"book": book})
	if after != nil {
		b = b.Where(sq.Expr("(seq_sort, id) > (?, ?)", after.SeqSort, after.ID))
	}
	query, args, err := b.OrderBy("seq_sort ASC", "id ASC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.queryRecords(ctx, query, args...)
}

// Books returns every distinct book code.
func (r *Repo) Books(ctx context.Context) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT DISTINCT book FROM content_records ORDER BY book`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	books, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect books: %w", err)
	}
	return books, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record. Returns domain.ErrAlreadyExists on id collision.
func (r *Repo) Create(ctx context.Context, rec domain.ContentRecord) (*domain.ContentRecord, error) {
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	query, args, err := psql.Insert(table).
		Columns(insertColumns...).
		Values(append(recordValues(rec), rec.SeqSort())...).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "content_record", rec.ID)
	}
	return &out, nil
}

// Update overwrites every mutable field of the record with the given id.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Update(ctx context.Context, rec domain.ContentRecord) (*domain.ContentRecord, error) {
	num, text := chapterIDColumns(rec.Kitab.ID)

	query, args, err := psql.Update(table).SetMap(map[string]any{
		"seq_no":        rec.SeqNo,
		"seq_sort":      rec.SeqSort(),
		"kitab_id_num":  num,
		"kitab_id_text": text,
		"kitab_ar":      rec.Kitab.Name.Ar,
		"kitab_th":      rec.Kitab.Name.Th,
		"kitab_en":      rec.Kitab.Name.En,
		"content_ar":    rec.Content.Ar,
		"content_th":    rec.Content.Th,
		"content_en":    rec.Content.En,
		"bab":           rec.Bab,
		"title":         rec.Title,
		"chain":         rec.Chain,
		"footnote":      rec.Footnote,
		"grade":         rec.Grade,
		"status":        string(rec.Status),
		"notes":         rec.Notes,
		"updated_at":    time.Now().UTC(),
	}).
		Where(sq.Eq{"id": rec.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "content_record", rec.ID)
	}
	return &out, nil
}

// Delete removes a record. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM content_records WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "content_record", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "content_record", id)
	}
	return nil
}

// BulkUpsert inserts or replaces records by id using pgx.Batch.
// Existing rows keep their created_at. It reports how many rows were newly
// created and how many were updated.
func (r *Repo) BulkUpsert(ctx context.Context, recs []domain.ContentRecord) (created, updated int, err error) {
	if len(recs) == 0 {
		return 0, 0, nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, rec := range recs {
		rec.CreatedAt, rec.UpdatedAt = now, now
		batch.Queue(upsertSQL, append(recordValues(rec), rec.SeqSort())...)
	}

	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	for _, rec := range recs {
		var inserted bool
		if err := results.QueryRow().Scan(&inserted); err != nil {
			return created, updated, postgres.MapError(err, "content_record", rec.ID)
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

// xmax = 0 only for rows inserted by this statement.
const upsertSQL = `INSERT INTO content_records (
	id, book, seq_no,
	kitab_id_num, kitab_id_text, kitab_ar, kitab_th, kitab_en,
	content_ar, content_th, content_en,
	bab, title, chain, footnote, grade,
	status, notes, created_at, updated_at, seq_sort
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
ON CONFLICT (id) DO UPDATE SET
	book = EXCLUDED.book,
	seq_no = EXCLUDED.seq_no,
	seq_sort = EXCLUDED.seq_sort,
	kitab_id_num = EXCLUDED.kitab_id_num,
	kitab_id_text = EXCLUDED.kitab_id_text,
	kitab_ar = EXCLUDED.kitab_ar,
	kitab_th = EXCLUDED.kitab_th,
	kitab_en = EXCLUDED.kitab_en,
	content_ar = EXCLUDED.content_ar,
	content_th = EXCLUDED.content_th,
	content_en = EXCLUDED.content_en,
	bab = EXCLUDED.bab,
	title = EXCLUDED.title,
	chain = EXCLUDED.chain,
	footnote = EXCLUDED.footnote,
	grade = EXCLUDED.grade,
	status = EXCLUDED.status,
	notes = EXCLUDED.notes,
	updated_at = EXCLUDED.updated_at
RETURNING (xmax = 0) AS inserted`

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryRecords(ctx context.Context, query string, args ...any) ([]domain.ContentRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query content_records: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContentRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content_record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content_records: %w", err)
	}
	return out, nil
}

func scanRecord(row pgx.Row) (domain.ContentRecord, error) {
	var (
		rec       domain.ContentRecord
		kitabNum  *int64
		kitabText *string
		status    string
	)
	err := row.Scan(
		&rec.ID, &rec.Book, &rec.SeqNo,
		&kitabNum, &kitabText, &rec.Kitab.Name.Ar, &rec.Kitab.Name.Th, &rec.Kitab.Name.En,
		&rec.Content.Ar, &rec.Content.Th, &rec.Content.En,
		&rec.Bab, &rec.Title, &rec.Chain, &rec.Footnote, &rec.Grade,
		&status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.ContentRecord{}, err
	}

	switch {
	case kitabNum != nil:
		rec.Kitab.ID = domain.NumericChapterID(*kitabNum)
	case kitabText != nil:
		rec.Kitab.ID = domain.TextChapterID(*kitabText)
	}
	rec.Status = domain.RecordStatus(status)
	return rec, nil
}

// recordValues returns values in the order of columns.
func recordValues(rec domain.ContentRecord) []any {
	num, text := chapterIDColumns(rec.Kitab.ID)
	return []any{
		rec.ID, rec.Book, rec.SeqNo,
		num, text, rec.Kitab.Name.Ar, rec.Kitab.Name.Th, rec.Kitab.Name.En,
		rec.Content.Ar, rec.Content.Th, rec.Content.En,
		rec.Bab, rec.Title, rec.Chain, rec.Footnote, rec.Grade,
		string(rec.Status), rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	}
}

func chapterIDColumns(id domain.ChapterID) (*int64, *string) {
	switch id.Kind() {
	case domain.ChapterIDNumeric:
		n, _ := id.Numeric()
		return &n, nil
	case domain.ChapterIDText:
		s, _ := id.Text()
		return nil, &s
	}
	return nil, nil
}
