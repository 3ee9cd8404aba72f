package record

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// searchColumns are matched case-insensitively by the substring fallback.
// They mirror the searchable attributes of the full-text index.
var searchColumns = []string{"id", "content_ar", "content_th", "kitab_ar", "kitab_th"}

// applyFilter adds the structural filters and the optional substring search
// to a SELECT builder.
func applyFilter(b sq.SelectBuilder, f domain.RecordFilter, search string) sq.SelectBuilder {
	for _, c := range f.Conditions() {
		b = b.Where(conditionSQL(c))
	}
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		or := make(sq.Or, 0, len(searchColumns))
		for _, col := range searchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		b = b.Where(or)
	}
	return b
}

func conditionSQL(c domain.FieldCondition) sq.Sqlizer {
	var values any = c.Values
	if len(c.Values) == 1 {
		values = c.Values[0]
	}
	if len(c.Fields) == 1 {
		return sq.Eq{c.Fields[0]: values}
	}
	or := make(sq.Or, 0, len(c.Fields))
	for _, field := range c.Fields {
		or = append(or, sq.Eq{field: values})
	}
	return or
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so the term matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
