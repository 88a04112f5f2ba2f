package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

// analysisService defines the minimal interface needed by AnalysisHandler.
type analysisService interface {
	RequestAnalysis(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error)
	GetAnalysis(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error)
}

// AnalysisHandler serves sentiment analysis REST endpoints.
type AnalysisHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(svc analysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, log: logger.With("handler", "analysis")}
}

type analysisResponse struct {
	ID                 string `json:"id"`
	FormID             string `json:"form_id"`
	OverallSentiment   string `json:"overall_sentiment"`
	PositiveHighlights string `json:"positive_highlights"`
	CommonComplaints   string `json:"common_complaints"`
	ExecutiveSummary   string `json:"executive_summary"`
	AnalyzedAt         string `json:"analyzed_at"`
}

// Analyze handles POST /api/v1/forms/{id}/analyze. The first call
// generates and stores the analysis; later calls return the stored one.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	formID, ok := formIDFromPath(w, r)
	if !ok {
		return
	}

	result, err := h.svc.RequestAnalysis(r.Context(), formID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(result))
}

// Get handles GET /api/v1/forms/{id}/analysis. Never triggers generation.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID, ok := formIDFromPath(w, r)
	if !ok {
		return
	}

	result, err := h.svc.GetAnalysis(r.Context(), formID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(result))
}

func (h *AnalysisHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrNoResponses):
		writeError(w, http.StatusUnprocessableEntity, "no responses to analyze")
	case errors.Is(err, domain.ErrAIUnavailable):
		h.log.ErrorContext(r.Context(), "analysis unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "analysis service unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toAnalysisResponse(a *domain.Analysis) analysisResponse {
	return analysisResponse{
		ID:                 a.ID.String(),
		FormID:             a.FormID.String(),
		OverallSentiment:   a.OverallSentiment.String(),
		PositiveHighlights: a.PositiveHighlights,
		CommonComplaints:   a.CommonComplaints,
		ExecutiveSummary:   a.ExecutiveSummary,
		AnalyzedAt:         a.AnalyzedAt.Format(time.RFC3339),
	}
}
