package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

// GetForm returns a single feedback form by ID.
func (s *Service) GetForm(ctx context.Context, formID uuid.UUID) (*domain.Form, error) {
	if formID == uuid.Nil {
		return nil, domain.NewValidationError("form_id", "required")
	}

	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	return form, nil
}
