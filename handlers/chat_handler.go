// Package handlers contains the thin HTTP layer. Handlers parse and
// validate requests, delegate to services and encode responses.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/oceanus-labs/argo-backend/utils"
	"go.uber.org/zap"
)

// ChatService defines the interface for the answer pipeline
type ChatService interface {
	// Respond always returns a user-visible answer, never an error.
	Respond(ctx context.Context, sessionID, question string) string
}

// ChatRequest represents the chat request body
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse represents the chat response body
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	service ChatService
	logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// HandleChat handles POST /api/chat
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body", zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		h.logger.Warn("request validation failed", zap.Error(err))
		details := make(map[string]interface{})
		for field, msg := range utils.GetValidationFields(err) {
			details[field] = msg
		}
		_ = utils.WriteBadRequest(w, "Message is required.", details)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		_ = utils.WriteBadRequest(w, "Message is required.", nil)
		return
	}

	reply := h.service.Respond(r.Context(), req.SessionID, req.Message)

	if err := utils.WriteJSON(w, http.StatusOK, ChatResponse{Reply: reply}); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
