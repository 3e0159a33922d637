package repositories

import (
	"context"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

// LeadRepository persists captured leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	List(ctx context.Context, limit, offset int) ([]*entities.Lead, error)
}
