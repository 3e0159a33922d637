package repositories

import (
	"context"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

// SuggestIndex is a search index over listings used for typeahead
// suggestions on the directory pages. It is optional; services fall back to
// in-memory matching when no index is configured.
type SuggestIndex interface {
	InitSchema(ctx context.Context) error
	Index(ctx context.Context, listing *entities.Listing) error
	Suggest(ctx context.Context, query string, limit int) ([]*entities.Listing, error)
}
