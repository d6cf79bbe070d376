package search

import "ozicme/internal/domain/entity"

// Page is one slice of a filtered result set. NextCursor is nil exactly when
// HasMore is false, matching the wire contract of the stores API.
type Page struct {
	Items      []entity.Restaurant `json:"items"`
	NextCursor *int                `json:"nextCursor"`
	HasMore    bool                `json:"hasMore"`
	TotalCount int                 `json:"totalCount"`
}

// Slice materializes up to limit items starting at cursor. A cursor at or
// past the end of the set yields an empty page, not an error; a negative
// cursor is treated as zero.
func Slice(filtered []entity.Restaurant, cursor, limit int) Page {
	if cursor < 0 {
		cursor = 0
	}
	if limit < 0 {
		limit = 0
	}

	total := len(filtered)
	start := cursor
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]entity.Restaurant, end-start)
	copy(items, filtered[start:end])

	page := Page{
		Items:      items,
		HasMore:    end < total,
		TotalCount: total,
	}
	if page.HasMore {
		next := end
		page.NextCursor = &next
	}

	return page
}
