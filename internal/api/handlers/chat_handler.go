package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ajaniguide/ajani/backend/internal/application/services"
	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

const maxChatMessageLength = 500

// ChatProcessor defines the chat operations used by the handler.
type ChatProcessor interface {
	HandleMessage(ctx context.Context, input services.ChatInput) (*services.ChatResult, error)
}

// ChatHandler handles chat message submissions.
type ChatHandler struct {
	service ChatProcessor
}

func NewChatHandler(service ChatProcessor) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatMessageRequest struct {
	ConversationID string   `json:"conversation_id"`
	Text           string   `json:"text"`
	Lat            *float64 `json:"lat"`
	Lon            *float64 `json:"lon"`
}

// PostMessage handles POST /api/chat/messages
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var payload chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		respondWithError(w, http.StatusBadRequest, "text is required")
		return
	}
	if len(payload.Text) > maxChatMessageLength {
		respondWithError(w, http.StatusBadRequest, "message is too long")
		return
	}

	input := services.ChatInput{
		ConversationID: strings.TrimSpace(payload.ConversationID),
		Text:           payload.Text,
		ClientIP:       clientIP(r),
	}
	if payload.Lat != nil && payload.Lon != nil {
		input.Location = &entities.Location{
			Latitude:  *payload.Lat,
			Longitude: *payload.Lon,
		}
	}

	result, err := h.service.HandleMessage(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
