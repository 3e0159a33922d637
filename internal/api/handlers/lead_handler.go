package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

// LeadService defines the lead operations used by the handler.
type LeadService interface {
	Create(ctx context.Context, lead *entities.Lead) error
	List(ctx context.Context, limit, offset int) ([]*entities.Lead, error)
}

// LeadHandler handles business-owner signup submissions.
type LeadHandler struct {
	service LeadService
}

func NewLeadHandler(service LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

type leadRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	ListingID    *int   `json:"listing_id"`
	Message      string `json:"message"`
}

// SubmitLead handles POST /api/leads
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var payload leadRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if len(payload.Message) > 1000 {
		respondWithError(w, http.StatusBadRequest, "message is too long")
		return
	}

	lead := &entities.Lead{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Email:        payload.Email,
		BusinessName: payload.BusinessName,
		ListingID:    payload.ListingID,
		Message:      payload.Message,
	}

	if err := h.service.Create(r.Context(), lead); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"status": "received",
		"id":     lead.ID,
	})
}

// ListLeads handles GET /api/admin/leads
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	leads, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
		"count": len(leads),
	})
}
