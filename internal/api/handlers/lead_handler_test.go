package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajaniguide/ajani/backend/internal/api/handlers"
	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	apperrors "github.com/ajaniguide/ajani/backend/pkg/errors"
)

type stubLeadService struct {
	created []*entities.Lead
	err     error
}

func (s *stubLeadService) Create(ctx context.Context, lead *entities.Lead) error {
	if s.err != nil {
		return s.err
	}
	lead.ID = "lead-1"
	s.created = append(s.created, lead)
	return nil
}

func (s *stubLeadService) List(ctx context.Context, limit, offset int) ([]*entities.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func TestLeadHandler_SubmitLead(t *testing.T) {
	service := &stubLeadService{}
	handler := handlers.NewLeadHandler(service)

	body := `{"name":"Adewale Ogun","phone":"08012345678","business_name":"Ade Suites","message":"List my hotel"}`
	req := httptest.NewRequest("POST", "/api/leads", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.SubmitLead(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, service.created, 1)
	assert.Equal(t, "Ade Suites", service.created[0].BusinessName)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, "received", response["status"])
	assert.Equal(t, "lead-1", response["id"])
}

func TestLeadHandler_SubmitLead_ValidationErrorMapsTo400(t *testing.T) {
	service := &stubLeadService{err: apperrors.NewValidationError("phone is required")}
	handler := handlers.NewLeadHandler(service)

	req := httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{"name":"Adewale"}`))
	w := httptest.NewRecorder()

	handler.SubmitLead(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, "phone is required", response["error"])
}

func TestLeadHandler_ListLeads(t *testing.T) {
	service := &stubLeadService{created: []*entities.Lead{
		{ID: "lead-1", Name: "Adewale Ogun", Phone: "08012345678"},
	}}
	handler := handlers.NewLeadHandler(service)

	req := httptest.NewRequest("GET", "/api/admin/leads", nil)
	w := httptest.NewRecorder()

	handler.ListLeads(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, float64(1), response["count"])
}

func TestLeadHandler_SubmitLead_InvalidJSON(t *testing.T) {
	handler := handlers.NewLeadHandler(&stubLeadService{})

	req := httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{{`))
	w := httptest.NewRecorder()

	handler.SubmitLead(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
