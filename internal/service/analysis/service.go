// Package analysis orchestrates AI sentiment analysis of feedback forms.
// Each form carries at most one analysis; once generated it is served
// from the database without further model calls.
package analysis

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

type analysisRepo interface {
	Create(ctx context.Context, a *domain.Analysis) (*domain.Analysis, error)
	GetByFormID(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error)
}

type formRepo interface {
	GetByID(ctx context.Context, formID uuid.UUID) (*domain.Form, error)
}

type responseRepo interface {
	ListByFormID(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
}

type analyzer interface {
	Analyze(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error)
}

// Service provides analysis generation and retrieval.
type Service struct {
	analyses  analysisRepo
	forms     formRepo
	responses responseRepo
	ai        analyzer
	log       *slog.Logger
}

// NewService creates a new Analysis service.
func NewService(
	log *slog.Logger,
	analyses analysisRepo,
	forms formRepo,
	responses responseRepo,
	ai analyzer,
) *Service {
	return &Service{
		analyses:  analyses,
		forms:     forms,
		responses: responses,
		ai:        ai,
		log:       log.With("service", "analysis"),
	}
}
