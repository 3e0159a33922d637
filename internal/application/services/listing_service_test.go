package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	apperrors "github.com/ajaniguide/ajani/backend/pkg/errors"
)

func TestListingService_List(t *testing.T) {
	source := &stubListingSource{listings: testListings()}
	svc := NewListingService(source, nil)

	got, total, err := svc.List(context.Background(), BrowseFilter{
		Category: "hotel",
		MaxPrice: floatPtr(30000),
		Sort:     entities.SortAscending,
		Limit:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, total, "unpriced listings fall outside a price bound")
	require.Len(t, got, 2)
	assert.Equal(t, "No Coords Hotel", got[0].Name)
	assert.Equal(t, "Bodija Suites", got[1].Name)
}

func TestListingService_ListByArea(t *testing.T) {
	source := &stubListingSource{listings: testListings()}
	svc := NewListingService(source, nil)

	got, total, err := svc.List(context.Background(), BrowseFilter{Area: "dugbe"})
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
}

func TestListingService_GetByID(t *testing.T) {
	source := &stubListingSource{listings: testListings()}
	svc := NewListingService(source, nil)

	got, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Kakanfo Inn", got.Name)

	_, err = svc.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestListingService_SuggestFallsBackToScan(t *testing.T) {
	source := &stubListingSource{listings: testListings()}
	svc := NewListingService(source, nil)

	got, err := svc.Suggest(context.Background(), "kakanfo", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kakanfo Inn", got[0].Name)
}

func TestListingService_SuggestEmptyQuery(t *testing.T) {
	source := &stubListingSource{listings: testListings()}
	svc := NewListingService(source, nil)

	got, err := svc.Suggest(context.Background(), "  ", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, source.calls)
}
