package sheets

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/providers"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
)

const listingsCacheKey = "listings:all"

// CachedSource wraps a ListingSource with a cache so repeated chat turns and
// directory pages do not re-fetch the sheet. Cache failures fall through to
// the underlying source.
type CachedSource struct {
	source repositories.ListingSource
	cache  providers.CacheProvider
	ttl    int
}

// NewCachedSource creates a caching wrapper with the given TTL in seconds.
func NewCachedSource(source repositories.ListingSource, cacheProvider providers.CacheProvider, ttlSeconds int) repositories.ListingSource {
	return &CachedSource{
		source: source,
		cache:  cacheProvider,
		ttl:    ttlSeconds,
	}
}

// FetchAll returns the cached snapshot when fresh, otherwise fetches and
// caches it.
func (s *CachedSource) FetchAll(ctx context.Context) ([]entities.Listing, error) {
	if data, err := s.cache.Get(ctx, listingsCacheKey); err == nil {
		var cached []entities.Listing
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	}

	listings, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(listings); err == nil {
		if err := s.cache.Set(ctx, listingsCacheKey, data, s.ttl); err != nil {
			log.Warn().Err(err).Msg("failed to cache listing snapshot")
		}
	}

	return listings, nil
}
