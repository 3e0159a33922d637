package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
	tsclient "github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/typesense"
)

const collectionName = "listings"

// TypesenseAdapter implements the listing suggest index using Typesense.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.SuggestIndex = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil // collection exists
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "category", Type: "string", Facet: pointer.True()},
			{Name: "area", Type: "string", Facet: pointer.True()},
			{Name: "short_desc", Type: "string", Optional: pointer.True()},
			{Name: "price_from", Type: "float"},
			{Name: "location", Type: "geopoint", Optional: pointer.True()},
		},
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index upserts a listing document
func (a *TypesenseAdapter) Index(ctx context.Context, listing *entities.Listing) error {
	document := map[string]interface{}{
		"id":         strconv.Itoa(listing.ID),
		"name":       listing.Name,
		"category":   listing.Category,
		"area":       listing.Area,
		"short_desc": listing.ShortDesc,
		"price_from": listing.PriceFrom,
	}
	if listing.HasCoordinates() {
		document["location"] = []float64{*listing.Lat, *listing.Lon}
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index listing: %w", err)
	}

	return nil
}

// Suggest runs a prefix search over name, category and area.
func (a *TypesenseAdapter) Suggest(ctx context.Context, query string, limit int) ([]*entities.Listing, error) {
	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,category,area"),
		Prefix:  pointer.String("true"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}

	listings := []*entities.Listing{}
	if result.Hits == nil {
		return listings, nil
	}

	for _, hit := range *result.Hits {
		doc := *hit.Document

		listing := &entities.Listing{}
		if v, ok := doc["id"].(string); ok {
			listing.ID, _ = strconv.Atoi(v)
		}
		if v, ok := doc["name"].(string); ok {
			listing.Name = v
		}
		if v, ok := doc["category"].(string); ok {
			listing.Category = v
		}
		if v, ok := doc["area"].(string); ok {
			listing.Area = v
		}
		if v, ok := doc["short_desc"].(string); ok {
			listing.ShortDesc = v
		}
		if v, ok := doc["price_from"].(float64); ok {
			listing.PriceFrom = v
		}
		if loc, ok := doc["location"].([]interface{}); ok && len(loc) == 2 {
			if lat, ok := loc[0].(float64); ok {
				if lon, ok := loc[1].(float64); ok {
					listing.Lat, listing.Lon = &lat, &lon
				}
			}
		}

		listings = append(listings, listing)
	}

	return listings, nil
}
