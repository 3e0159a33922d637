package repositories

import (
	"context"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

// ListingSource returns the full listing set for one request. The chat core
// filters in memory, so a source fetches everything; adapters are free to
// cache the snapshot.
type ListingSource interface {
	FetchAll(ctx context.Context) ([]entities.Listing, error)
}
