package geolocation

import (
	"context"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/providers"
)

// MockLocationProvider returns a fixed point in central Ibadan. Used in
// development and tests where no IP geolocation service is available.
type MockLocationProvider struct{}

// NewMockLocationProvider creates a new mock location provider
func NewMockLocationProvider() providers.LocationProvider {
	return &MockLocationProvider{}
}

// Locate returns the Dugbe area of Ibadan regardless of IP.
func (m *MockLocationProvider) Locate(ctx context.Context, clientIP string) (*entities.Location, error) {
	return &entities.Location{Latitude: 7.3878, Longitude: 3.8964}, nil
}

// Distance returns the great-circle distance in kilometers.
func (m *MockLocationProvider) Distance(from, to entities.Location) float64 {
	return haversineKm(from, to)
}
