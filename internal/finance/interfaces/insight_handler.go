package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"finsight/internal/finance/domain"
	"finsight/internal/log"
)

type InsightServiceInterface interface {
	GetInsights(ctx context.Context, userID string) (*domain.Insight, error)
}

type ClassifierServiceInterface interface {
	Categorize(ctx context.Context, description, transactionType string) string
}

type InsightHandler struct {
	insights     InsightServiceInterface
	classifier   ClassifierServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
	logger       *log.Logger
}

func NewInsightHandler(
	insights InsightServiceInterface,
	classifier ClassifierServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
	logger *log.Logger,
) *InsightHandler {
	if insights == nil || classifier == nil || respondJSON == nil || respondError == nil {
		panic("Services and response functions must not be nil")
	}
	return &InsightHandler{
		insights:     insights,
		classifier:   classifier,
		respondJSON:  respondJSON,
		respondError: respondError,
		logger:       logger,
	}
}

// GetInsights is a hard-fail endpoint: any upstream analysis failure surfaces
// as a 500 with a generic message, never as a partial insight.
func (h *InsightHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	insight, err := h.insights.GetInsights(r.Context(), userID)
	if err != nil {
		h.logger.Error("insight generation failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to generate insights")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"insight": insight})
}

// Categorize never surfaces classification failures; the service already
// falls back to the kind default. Only a malformed request body is rejected.
func (h *InsightHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	if _, ok := r.Context().Value("userID").(string); !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Description == "" {
		h.respondError(w, http.StatusBadRequest, "Description must be provided")
		return
	}
	if body.Type == "" {
		body.Type = domain.TypeExpense
	}
	if !domain.IsValidTransactionType(body.Type) {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}

	category := h.classifier.Categorize(r.Context(), body.Description, body.Type)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"category": category})
}
