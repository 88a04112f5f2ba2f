package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

// ListResponses returns all responses for a form in submission order.
// The form must exist; a form with no responses yields an empty slice.
func (s *Service) ListResponses(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error) {
	if formID == uuid.Nil {
		return nil, domain.NewValidationError("form_id", "required")
	}

	if _, err := s.forms.GetByID(ctx, formID); err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	responses, err := s.responses.ListByFormID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	return responses, nil
}
