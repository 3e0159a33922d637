package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/providers"
	apperrors "github.com/ajaniguide/ajani/backend/pkg/errors"
)

// IPProvider resolves client coordinates from an IP geolocation HTTP API
// (ip-api.com shape). Lookups are best-effort; callers degrade gracefully on
// error.
type IPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPProvider creates a new IP geolocation provider.
func NewIPProvider(baseURL string) providers.LocationProvider {
	return &IPProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate resolves the coordinates for a client IP.
func (p *IPProvider) Locate(ctx context.Context, clientIP string) (*entities.Location, error) {
	if clientIP == "" {
		return nil, apperrors.NewValidationError("client IP is required for location lookup")
	}

	reqURL := fmt.Sprintf("%s/%s?fields=status,message,lat,lon", p.baseURL, url.PathEscape(clientIP))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build geolocation request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("geolocation request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read geolocation response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("geolocation API returned status %d", resp.StatusCode), nil,
		)
	}

	var lookup ipLookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil, apperrors.NewExternalError("failed to decode geolocation response", err)
	}
	if lookup.Status != "success" {
		return nil, apperrors.NewExternalError("geolocation lookup failed: "+lookup.Message, nil)
	}

	return &entities.Location{
		Latitude:  lookup.Lat,
		Longitude: lookup.Lon,
	}, nil
}

// Distance returns the great-circle distance in kilometers.
func (p *IPProvider) Distance(from, to entities.Location) float64 {
	return haversineKm(from, to)
}
