package domain

import "strconv"

// RecordFilter holds the structural filters shared by every read path.
// Zero values mean "no filter".
type RecordFilter struct {
	Book   string
	Status RecordStatus
	// KitabNames matches records whose embedded chapter name equals any of
	// the values in any language.
	KitabNames []string
}

// FieldCondition matches records where any of Fields equals any of Values.
// Field names are store column names, which the full-text index uses as
// attribute names too.
type FieldCondition struct {
	Fields []string
	Values []string
}

// Conditions returns the structural filter as conditions that must all hold.
// Every read path renders the filter from this list.
func (f RecordFilter) Conditions() []FieldCondition {
	var out []FieldCondition
	if f.Book != "" {
		out = append(out, FieldCondition{Fields: []string{"book"}, Values: []string{f.Book}})
	}
	if f.Status != "" {
		out = append(out, FieldCondition{Fields: []string{"status"}, Values: []string{string(f.Status)}})
	}
	if len(f.KitabNames) > 0 {
		out = append(out, FieldCondition{
			Fields: []string{"kitab_ar", "kitab_th", "kitab_en"},
			Values: f.KitabNames,
		})
	}
	return out
}

// ListQuery is a paginated, optionally searched listing request.
type ListQuery struct {
	Book   string
	Status RecordStatus
	// Kitab is a chapter display name in any language, or a catalog entry id
	// when KitabByID is set.
	Kitab     string
	KitabByID bool
	Search    string
	Page      int
	Limit     int
}

// Params returns the query as a flat parameter map, used for cache keys.
func (q ListQuery) Params() map[string]string {
	p := map[string]string{
		"page":  strconv.Itoa(q.Page),
		"limit": strconv.Itoa(q.Limit),
	}
	if q.Book != "" {
		p["book"] = q.Book
	}
	if q.Status != "" {
		p["status"] = string(q.Status)
	}
	if q.Kitab != "" {
		p["kitab"] = q.Kitab
	}
	if q.KitabByID {
		p["kitab_by_id"] = "true"
	}
	if q.Search != "" {
		p["search"] = q.Search
	}
	return p
}

// SearchRequest is sent to the full-text backend.
type SearchRequest struct {
	Query  string
	Filter RecordFilter
	Offset int
	Limit  int
}

// SearchHit is one ranked result of the full-text backend.
type SearchHit struct {
	ID         string
	Highlights map[string]string
}

// SearchResult holds ranked hits and the backend's estimated total.
type SearchResult struct {
	Hits           []SearchHit
	EstimatedTotal int
}
