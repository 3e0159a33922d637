package geolocation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

func TestHaversineKm(t *testing.T) {
	dugbe := entities.Location{Latitude: 7.3878, Longitude: 3.8964}

	assert.Zero(t, haversineKm(dugbe, dugbe))

	// One degree of latitude is roughly 111.2 km.
	north := entities.Location{Latitude: 8.3878, Longitude: 3.8964}
	assert.InDelta(t, 111.2, haversineKm(dugbe, north), 0.5)

	// Symmetric in both directions.
	assert.InDelta(t, haversineKm(dugbe, north), haversineKm(north, dugbe), 1e-9)
}

func TestMockLocationProvider(t *testing.T) {
	p := NewMockLocationProvider()

	loc, err := p.Locate(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.InDelta(t, 7.3878, loc.Latitude, 1e-6)
	assert.InDelta(t, 3.8964, loc.Longitude, 1e-6)
}

func TestIPProvider_Locate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"lat":    7.40,
			"lon":    3.92,
		})
	}))
	defer server.Close()

	p := NewIPProvider(server.URL)
	loc, err := p.Locate(context.Background(), "102.89.0.1")
	require.NoError(t, err)
	assert.Equal(t, 7.40, loc.Latitude)
	assert.Equal(t, 3.92, loc.Longitude)
}

func TestIPProvider_LocateFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "fail",
			"message": "private range",
		})
	}))
	defer server.Close()

	p := NewIPProvider(server.URL)
	_, err := p.Locate(context.Background(), "10.0.0.1")
	assert.Error(t, err)
}
