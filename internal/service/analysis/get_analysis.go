package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

// GetAnalysis returns the stored analysis for a form. It never triggers
// generation; a form that was not analyzed yet reports not found.
func (s *Service) GetAnalysis(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error) {
	if formID == uuid.Nil {
		return nil, domain.NewValidationError("form_id", "required")
	}

	if _, err := s.forms.GetByID(ctx, formID); err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	stored, err := s.analyses.GetByFormID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}

	return stored, nil
}
