package services

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
	"github.com/ajaniguide/ajani/backend/pkg/errors"
	"github.com/ajaniguide/ajani/backend/pkg/utils"
)

// BrowseFilter narrows the directory listing endpoint. Zero values mean
// "no constraint".
type BrowseFilter struct {
	Category string
	Area     string
	MinPrice *float64
	MaxPrice *float64
	Sort     entities.SortOrder
	Limit    int
	Offset   int
}

// ListingService serves the browse side of the directory: full listings by
// id, filtered pages, and typeahead suggestions.
type ListingService struct {
	source  repositories.ListingSource
	suggest repositories.SuggestIndex
}

func NewListingService(source repositories.ListingSource, suggest repositories.SuggestIndex) *ListingService {
	return &ListingService{source: source, suggest: suggest}
}

// List returns listings matching the filter, price-sorted, windowed by
// limit/offset. Total is the match count before windowing.
func (s *ListingService) List(ctx context.Context, f BrowseFilter) ([]entities.Listing, int, error) {
	listings, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]entities.Listing, 0, len(listings))
	normCategory := utils.Normalize(f.Category)
	normArea := utils.Normalize(f.Area)
	for _, l := range listings {
		if normCategory != "" && !strings.Contains(utils.Normalize(l.Category), normCategory) {
			continue
		}
		if normArea != "" && !strings.Contains(utils.Normalize(l.Area), normArea) {
			continue
		}
		if f.MinPrice != nil && (!l.HasPrice() || l.PriceFrom < *f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && (!l.HasPrice() || l.PriceFrom > *f.MaxPrice) {
			continue
		}
		matched = append(matched, l)
	}

	desc := f.Sort == entities.SortDescending
	sort.SliceStable(matched, func(i, j int) bool {
		if desc {
			return matched[i].PriceFrom > matched[j].PriceFrom
		}
		return matched[i].PriceFrom < matched[j].PriceFrom
	})

	total := len(matched)
	start := f.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}

// GetByID returns a single listing or a not-found error.
func (s *ListingService) GetByID(ctx context.Context, id int) (*entities.Listing, error) {
	listings, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, errors.NewNotFoundError("listing not found")
}

// Suggest returns typeahead candidates for a partial query. When the search
// index is unavailable it degrades to an in-memory name scan.
func (s *ListingService) Suggest(ctx context.Context, query string, limit int) ([]*entities.Listing, error) {
	if limit <= 0 {
		limit = 10
	}
	if strings.TrimSpace(query) == "" {
		return []*entities.Listing{}, nil
	}

	if s.suggest != nil {
		results, err := s.suggest.Suggest(ctx, query, limit)
		if err == nil {
			return results, nil
		}
		log.Warn().Err(err).Str("query", query).Msg("suggest index unavailable, falling back to scan")
	}

	listings, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	norm := utils.Normalize(query)
	results := make([]*entities.Listing, 0, limit)
	for i := range listings {
		l := listings[i]
		if strings.Contains(utils.Normalize(l.Name), norm) ||
			strings.Contains(utils.Normalize(l.Category), norm) ||
			strings.Contains(utils.Normalize(l.Area), norm) {
			results = append(results, &l)
			if len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

// RefreshIndex rebuilds the suggest index from the listing source.
func (s *ListingService) RefreshIndex(ctx context.Context) (int, error) {
	if s.suggest == nil {
		return 0, errors.NewUnavailableError("suggest index not configured", nil)
	}
	listings, err := s.source.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.suggest.InitSchema(ctx); err != nil {
		return 0, err
	}
	indexed := 0
	for i := range listings {
		if err := s.suggest.Index(ctx, &listings[i]); err != nil {
			log.Warn().Err(err).Int("listing_id", listings[i].ID).Msg("failed to index listing")
			continue
		}
		indexed++
	}
	return indexed, nil
}
