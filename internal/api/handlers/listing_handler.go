package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ajaniguide/ajani/backend/internal/application/services"
	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

// ListingReader defines the browse operations used by the handler.
type ListingReader interface {
	List(ctx context.Context, f services.BrowseFilter) ([]entities.Listing, int, error)
	GetByID(ctx context.Context, id int) (*entities.Listing, error)
	Suggest(ctx context.Context, query string, limit int) ([]*entities.Listing, error)
}

// ListingHandler handles directory browse requests.
type ListingHandler struct {
	service ListingReader
}

func NewListingHandler(service ListingReader) *ListingHandler {
	return &ListingHandler{service: service}
}

// ListListings handles GET /api/listings
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := services.BrowseFilter{
		Category: q.Get("category"),
		Area:     q.Get("area"),
		Limit:    30,
		Offset:   0,
	}
	if v := q.Get("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "min_price must be a number")
			return
		}
		filter.MinPrice = &price
	}
	if v := q.Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "max_price must be a number")
			return
		}
		filter.MaxPrice = &price
	}
	switch q.Get("sort") {
	case "", "ascending":
		filter.Sort = entities.SortAscending
	case "descending":
		filter.Sort = entities.SortDescending
	default:
		respondWithError(w, http.StatusBadRequest, "sort must be ascending or descending")
		return
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}

	listings, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"count":    len(listings),
		"total":    total,
	})
}

// GetListing handles GET /api/listings/{id}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "listing ID must be an integer")
		return
	}

	listing, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, listing)
}

// SuggestListings handles GET /api/listings/suggest
func (h *ListingHandler) SuggestListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 25 {
			limit = n
		}
	}

	results, err := h.service.Suggest(r.Context(), query, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": results,
		"count":       len(results),
	})
}

// ListCategories handles GET /api/categories
func (h *ListingHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := services.Categories()
	keys := make([]string, 0, len(categories))
	for _, c := range categories {
		keys = append(keys, c.Key)
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": keys,
	})
}
