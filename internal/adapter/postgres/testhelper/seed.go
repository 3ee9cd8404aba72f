package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueBook returns a book code no other test uses, so tests sharing the
// container never see each other's rows.
func UniqueBook() string {
	return "book_" + uniqueSuffix()
}

// NewRecord builds a published record of book with the given sequence number
// and chapter. It is not persisted.
func NewRecord(book, seq string, kitab domain.ChapterRef) domain.ContentRecord {
	return domain.ContentRecord{
		ID:      domain.RecordID(book, seq),
		Book:    book,
		SeqNo:   seq,
		Kitab:   kitab,
		Content: domain.LocalizedText{Ar: "متن " + seq, Th: "เนื้อหา " + seq},
		Status:  domain.RecordStatusPublished,
	}
}

// SeedRecord inserts rec directly and returns it with timestamps filled.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, rec domain.ContentRecord) domain.ContentRecord {
	t.Helper()
	ctx := context.Background()

	if rec.Status == "" {
		rec.Status = domain.RecordStatusPublished
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	rec.CreatedAt, rec.UpdatedAt = now, now

	var kitabNum *int64
	var kitabText *string
	switch rec.Kitab.ID.Kind() {
	case domain.ChapterIDNumeric:
		n, _ := rec.Kitab.ID.Numeric()
		kitabNum = &n
	case domain.ChapterIDText:
		s, _ := rec.Kitab.ID.Text()
		kitabText = &s
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO content_records (
			id, book, seq_no, seq_sort,
			kitab_id_num, kitab_id_text, kitab_ar, kitab_th, kitab_en,
			content_ar, content_th, content_en,
			bab, title, chain, footnote, grade,
			status, notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		rec.ID, rec.Book, rec.SeqNo, rec.SeqSort(),
		kitabNum, kitabText, rec.Kitab.Name.Ar, rec.Kitab.Name.Th, rec.Kitab.Name.En,
		rec.Content.Ar, rec.Content.Th, rec.Content.En,
		rec.Bab, rec.Title, rec.Chain, rec.Footnote, rec.Grade,
		string(rec.Status), rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("SeedRecord: insert %s: %v", rec.ID, err)
	}
	return rec
}

// SeedKitab inserts a catalog entry for book at the given order.
func SeedKitab(t *testing.T, pool *pgxpool.Pool, book string, order int, name domain.NameSet) domain.KitabEntry {
	t.Helper()
	ctx := context.Background()

	e := domain.KitabEntry{
		ID:    uuid.New(),
		Book:  book,
		Order: order,
		Name:  name,
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO kitab_entries (id, book, sort_order, name_ar, name_th, name_en, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		 RETURNING created_at, updated_at`,
		e.ID, e.Book, e.Order, e.Name.Ar, e.Name.Th, e.Name.En,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("SeedKitab: insert %s/%d: %v", book, order, err)
	}
	return e
}
