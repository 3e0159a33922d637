package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajaniguide/ajani/backend/internal/api/handlers"
	"github.com/ajaniguide/ajani/backend/internal/application/services"
	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	apperrors "github.com/ajaniguide/ajani/backend/pkg/errors"
)

type stubListingService struct {
	lastFilter services.BrowseFilter
	listings   []entities.Listing
}

func (s *stubListingService) List(ctx context.Context, f services.BrowseFilter) ([]entities.Listing, int, error) {
	s.lastFilter = f
	return s.listings, len(s.listings), nil
}

func (s *stubListingService) GetByID(ctx context.Context, id int) (*entities.Listing, error) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			return &s.listings[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("listing not found")
}

func (s *stubListingService) Suggest(ctx context.Context, query string, limit int) ([]*entities.Listing, error) {
	out := make([]*entities.Listing, 0, len(s.listings))
	for i := range s.listings {
		out = append(out, &s.listings[i])
	}
	return out, nil
}

func TestListingHandler_ListListings(t *testing.T) {
	service := &stubListingService{listings: []entities.Listing{
		{ID: 1, Name: "Bodija Suites", Category: "hotel", Area: "bodija", PriceFrom: 15000},
	}}
	handler := handlers.NewListingHandler(service)

	req := httptest.NewRequest("GET", "/api/listings?category=hotel&area=bodija&min_price=10000&sort=descending&limit=10&offset=5", nil)
	w := httptest.NewRecorder()

	handler.ListListings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hotel", service.lastFilter.Category)
	assert.Equal(t, "bodija", service.lastFilter.Area)
	require.NotNil(t, service.lastFilter.MinPrice)
	assert.Equal(t, 10000.0, *service.lastFilter.MinPrice)
	assert.Equal(t, entities.SortDescending, service.lastFilter.Sort)
	assert.Equal(t, 10, service.lastFilter.Limit)
	assert.Equal(t, 5, service.lastFilter.Offset)

	var response map[string]any
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, float64(1), response["count"])
}

func TestListingHandler_ListListings_BadPrice(t *testing.T) {
	handler := handlers.NewListingHandler(&stubListingService{})

	req := httptest.NewRequest("GET", "/api/listings?min_price=cheap", nil)
	w := httptest.NewRecorder()

	handler.ListListings(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListingHandler_GetListing_NotFound(t *testing.T) {
	handler := handlers.NewListingHandler(&stubListingService{})

	req := httptest.NewRequest("GET", "/api/listings/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	handler.GetListing(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListingHandler_GetListing_BadID(t *testing.T) {
	handler := handlers.NewListingHandler(&stubListingService{})

	req := httptest.NewRequest("GET", "/api/listings/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler.GetListing(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListingHandler_SuggestRequiresQuery(t *testing.T) {
	handler := handlers.NewListingHandler(&stubListingService{})

	req := httptest.NewRequest("GET", "/api/listings/suggest", nil)
	w := httptest.NewRecorder()

	handler.SuggestListings(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListingHandler_ListCategories(t *testing.T) {
	handler := handlers.NewListingHandler(&stubListingService{})

	req := httptest.NewRequest("GET", "/api/categories", nil)
	w := httptest.NewRecorder()

	handler.ListCategories(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string][]string
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Contains(t, response["categories"], "hotel")
	assert.Contains(t, response["categories"], "restaurant")
	assert.Equal(t, "hotel", response["categories"][0])
}
