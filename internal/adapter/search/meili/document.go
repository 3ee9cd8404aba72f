package meili

import (
	"encoding/base64"
	"strings"

	"github.com/meilisearch/meilisearch-go"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const primaryKey = "id"

var highlightAttributes = []string{"content_th", "content_ar"}

// document is the flattened index representation of a record.
type document struct {
	ID        string `json:"id"`
	RecordID  string `json:"record_id"`
	Book      string `json:"book"`
	SeqNo     string `json:"seq_no"`
	SeqSort   int64  `json:"seq_sort"`
	KitabAr   string `json:"kitab_ar"`
	KitabTh   string `json:"kitab_th"`
	KitabEn   string `json:"kitab_en"`
	ContentAr string `json:"content_ar"`
	ContentTh string `json:"content_th"`
	Status    string `json:"status"`
}

// DocumentID maps a record id to a valid index primary key. Index ids only
// allow alphanumerics, '-' and '_', so "book:seq" is base64url encoded.
func DocumentID(recordID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(recordID))
}

func toDocument(r domain.ContentRecord) document {
	return document{
		ID:        DocumentID(r.ID),
		RecordID:  r.ID,
		Book:      r.Book,
		SeqNo:     r.SeqNo,
		SeqSort:   r.SeqSort(),
		KitabAr:   r.Kitab.Name.Ar,
		KitabTh:   r.Kitab.Name.Th,
		KitabEn:   r.Kitab.Name.En,
		ContentAr: r.Content.Ar,
		ContentTh: r.Content.Th,
		Status:    string(r.Status),
	}
}

func indexSettings() *meilisearch.Settings {
	return &meilisearch.Settings{
		SearchableAttributes: []string{
			"record_id", "seq_no", "content_th", "content_ar", "kitab_th", "kitab_ar",
		},
		FilterableAttributes: []string{"book", "status", "kitab_ar", "kitab_th", "kitab_en"},
		SortableAttributes:   []string{"seq_sort"},
		TypoTolerance: &meilisearch.TypoTolerance{
			Enabled: true,
			MinWordSizeForTypos: meilisearch.MinWordSizeForTypos{
				OneTypo:  4,
				TwoTypos: 8,
			},
		},
	}
}

// buildFilter renders the structural filter in the index filter syntax.
func buildFilter(f domain.RecordFilter) string {
	var parts []string
	for _, c := range f.Conditions() {
		var or []string
		for _, v := range c.Values {
			q := quote(v)
			for _, field := range c.Fields {
				or = append(or, field+" = "+q)
			}
		}
		if len(or) == 1 {
			parts = append(parts, or[0])
			continue
		}
		parts = append(parts, "("+strings.Join(or, " OR ")+")")
	}
	return strings.Join(parts, " AND ")
}

var filterEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + filterEscaper.Replace(s) + `"`
}

// parseHit extracts the record id and highlighted snippets from a raw hit.
func parseHit(raw interface{}) (domain.SearchHit, bool) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return domain.SearchHit{}, false
	}
	id, _ := m["record_id"].(string)
	if id == "" {
		return domain.SearchHit{}, false
	}

	hit := domain.SearchHit{ID: id}
	formatted, _ := m["_formatted"].(map[string]interface{})
	for _, attr := range highlightAttributes {
		if s, ok := formatted[attr].(string); ok && s != "" {
			if hit.Highlights == nil {
				hit.Highlights = make(map[string]string, len(highlightAttributes))
			}
			hit.Highlights[attr] = s
		}
	}
	return hit, true
}
