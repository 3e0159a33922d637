package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
	"github.com/ajaniguide/ajani/backend/pkg/errors"
)

// LeadService records business-owner signups ("list your business" form).
type LeadService struct {
	repo repositories.LeadRepository
}

func NewLeadService(repo repositories.LeadRepository) *LeadService {
	return &LeadService{repo: repo}
}

// Create validates and stores a new lead. Name and phone are required.
func (s *LeadService) Create(ctx context.Context, lead *entities.Lead) error {
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Phone = strings.TrimSpace(lead.Phone)
	lead.Email = strings.TrimSpace(lead.Email)
	lead.BusinessName = strings.TrimSpace(lead.BusinessName)
	lead.Message = strings.TrimSpace(lead.Message)

	if lead.Name == "" {
		return errors.NewValidationError("name is required")
	}
	if lead.Phone == "" {
		return errors.NewValidationError("phone is required")
	}

	lead.ID = uuid.New().String()
	lead.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, lead)
}

// List returns stored leads, newest first.
func (s *LeadService) List(ctx context.Context, limit, offset int) ([]*entities.Lead, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}
