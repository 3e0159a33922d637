package providers

import (
	"context"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

// LocationProvider resolves a requester's coordinates and measures distances.
// Location acquisition is best-effort: callers degrade to price sorting when
// it fails, they never abort the query.
type LocationProvider interface {
	// Locate resolves the coordinates for a client, typically from its IP.
	Locate(ctx context.Context, clientIP string) (*entities.Location, error)

	// Distance returns the great-circle distance between two points in
	// kilometers, the unit of the nearby-radius threshold.
	Distance(from, to entities.Location) float64
}
