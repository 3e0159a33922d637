package services

import "github.com/ajaniguide/ajani/backend/internal/domain/entities"

// DefaultPageSize is the fixed number of listings per chat reply.
const DefaultPageSize = 5

// Page is one slice of a ranked result set.
type Page struct {
	Items      []entities.Listing
	StartIndex int // absolute index of the first item, for running numbering
	Total      int
	HasMore    bool
}

// Paginate slices the ranked sequence at the zero-based cursor. A cursor past
// the end yields an empty page; callers reset their cursor and reply with a
// no-more-results sentinel instead of an empty listing.
func Paginate(items []entities.Listing, cursor, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	start := cursor * size
	if start < 0 || start >= len(items) {
		return Page{StartIndex: start, Total: len(items)}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return Page{
		Items:      items[start:end],
		StartIndex: start,
		Total:      len(items),
		HasMore:    end < len(items),
	}
}
