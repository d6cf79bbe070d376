package dataset

import (
	"strings"

	"ozicme/internal/domain/entity"
	"ozicme/internal/domain/search"
)

// BuildSearchText derives the lowercase search index for a record. Field
// order is fixed: name, address, category, category detail, region parts,
// tags, menus. Empty fields are skipped; the parts are space-joined and
// folded with the same function the query engine uses, so index and query
// always agree on canonicalization.
//
// The index must contain every token a user could search by: it is the
// single source of truth for the query engine.
func BuildSearchText(r entity.Restaurant) string {
	parts := make([]string, 0, 8+len(r.SearchTags)+len(r.SignatureMenus))

	for _, part := range []string{
		r.Name,
		r.Address,
		r.Category,
		r.CategoryDetail,
		r.Region.Sido,
		r.Region.Sigungu,
		r.Region.Eupmyeondong,
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	for _, tag := range r.SearchTags {
		if tag != "" {
			parts = append(parts, tag)
		}
	}
	for _, menu := range r.SignatureMenus {
		if menu != "" {
			parts = append(parts, menu)
		}
	}

	return search.Fold(strings.Join(parts, " "))
}
