package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// fingerprintPrefix is the number of body runes that take part in the
// duplicate fingerprint.
const fingerprintPrefix = 50

// DefaultMaxSuffix is the highest disambiguation suffix tried before an id
// collision is reported as ErrDuplicateKey.
const DefaultMaxSuffix = 999

type fingerprint struct {
	seq     string
	chapter string
	body    string
}

func fingerprintOf(row RawRow) fingerprint {
	return fingerprint{
		seq:     strings.TrimSpace(row.SeqNo),
		chapter: chapterIdentity(row.Kitab),
		body:    runePrefix(row.body(), fingerprintPrefix),
	}
}

// chapterIdentity is the raw chapter identity of a row: its id when present,
// otherwise its first non-empty name as written.
func chapterIdentity(ref domain.ChapterRef) string {
	if !ref.ID.IsZero() {
		return ref.ID.Key()
	}
	if names := ref.Name.Values(); len(names) > 0 {
		return "name:" + names[0]
	}
	return ""
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// DedupeStats counts the outcome of deduplication.
type DedupeStats struct {
	Kept          int `json:"kept"`
	Skipped       int `json:"skipped"`
	Disambiguated int `json:"disambiguated"`
}

// Deduplicator turns raw rows of one book into content records, dropping
// repeated rows and assigning suffixed ids to rows that only share a
// sequence number. Suffixes follow source order, so a reordered input may
// receive different suffixes.
type Deduplicator struct {
	book      string
	status    domain.RecordStatus
	maxSuffix int

	seen  map[fingerprint]struct{}
	ids   map[string]struct{}
	stats DedupeStats
}

// NewDeduplicator creates a Deduplicator for book. Records without a status
// get defaultStatus. maxSuffix below 2 falls back to DefaultMaxSuffix.
func NewDeduplicator(book string, defaultStatus domain.RecordStatus, maxSuffix int) *Deduplicator {
	if maxSuffix < 2 {
		maxSuffix = DefaultMaxSuffix
	}
	return &Deduplicator{
		book:      book,
		status:    defaultStatus,
		maxSuffix: maxSuffix,
		seen:      make(map[fingerprint]struct{}),
		ids:       make(map[string]struct{}),
	}
}

// Add processes the next row in source order. It returns ok=false when the
// row duplicates an earlier one. ErrDuplicateKey is returned when no free
// suffix is left.
func (d *Deduplicator) Add(row RawRow) (domain.ContentRecord, bool, error) {
	fp := fingerprintOf(row)
	if _, dup := d.seen[fp]; dup {
		d.stats.Skipped++
		return domain.ContentRecord{}, false, nil
	}

	id, suffixed, err := d.claimID(fp.seq)
	if err != nil {
		return domain.ContentRecord{}, false, err
	}
	d.seen[fp] = struct{}{}

	d.stats.Kept++
	if suffixed {
		d.stats.Disambiguated++
	}
	return row.toRecord(d.book, id, d.status), true, nil
}

func (d *Deduplicator) claimID(seq string) (string, bool, error) {
	base := domain.RecordID(d.book, seq)
	if _, taken := d.ids[base]; !taken {
		d.ids[base] = struct{}{}
		return base, false, nil
	}
	for n := 2; n <= d.maxSuffix; n++ {
		id := base + "-" + strconv.Itoa(n)
		if _, taken := d.ids[id]; !taken {
			d.ids[id] = struct{}{}
			return id, true, nil
		}
	}
	return "", false, fmt.Errorf("record %s: no free suffix up to %d: %w", base, d.maxSuffix, domain.ErrDuplicateKey)
}

// Stats returns the counts accumulated so far.
func (d *Deduplicator) Stats() DedupeStats { return d.stats }

// Dedupe runs a Deduplicator over rows and returns the kept records.
func Dedupe(book string, rows []RawRow, defaultStatus domain.RecordStatus, maxSuffix int) ([]domain.ContentRecord, DedupeStats, error) {
	d := NewDeduplicator(book, defaultStatus, maxSuffix)
	out := make([]domain.ContentRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok, err := d.Add(row)
		if err != nil {
			return nil, d.Stats(), err
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, d.Stats(), nil
}
