package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/ajaniguide/ajani/backend/pkg/errors"
)

// LeadAdapter implements lead persistence in Postgres.
type LeadAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewLeadAdapter creates a new lead adapter.
func NewLeadAdapter(client *postgres.Client) repositories.LeadRepository {
	return &LeadAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a lead record.
func (a *LeadAdapter) Create(ctx context.Context, lead *entities.Lead) error {
	if lead == nil {
		return apperrors.NewInternalError("lead is nil", fmt.Errorf("lead is nil"))
	}

	record := goqu.Record{
		"id":            lead.ID,
		"name":          lead.Name,
		"phone":         lead.Phone,
		"email":         sql.NullString{String: lead.Email, Valid: lead.Email != ""},
		"business_name": sql.NullString{String: lead.BusinessName, Valid: lead.BusinessName != ""},
		"message":       lead.Message,
		"created_at":    lead.CreatedAt,
	}
	if lead.ListingID != nil {
		record["listing_id"] = *lead.ListingID
	}

	query, args, err := a.db.Insert("leads").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build lead insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create lead", err)
	}

	return nil
}

// List returns leads most recent first.
func (a *LeadAdapter) List(ctx context.Context, limit, offset int) ([]*entities.Lead, error) {
	query, args, err := a.db.From("leads").
		Select("id", "name", "phone", "email", "business_name", "listing_id", "message", "created_at").
		Order(goqu.C("created_at").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build lead list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list leads", err)
	}
	defer rows.Close()

	var leads []*entities.Lead
	for rows.Next() {
		var lead entities.Lead
		var email, businessName sql.NullString
		var listingID sql.NullInt64
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Phone,
			&email,
			&businessName,
			&listingID,
			&lead.Message,
			&lead.CreatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan lead", err)
		}
		lead.Email = email.String
		lead.BusinessName = businessName.String
		if listingID.Valid {
			id := int(listingID.Int64)
			lead.ListingID = &id
		}
		leads = append(leads, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate leads", err)
	}

	return leads, nil
}
