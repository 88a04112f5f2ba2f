package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/attendly/feedback-backend/internal/domain"
)

// CreateForm creates a new feedback form for an event.
func (s *Service) CreateForm(ctx context.Context, input CreateFormInput) (*domain.Form, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.forms.Create(ctx, &domain.Form{
		EventName:   strings.TrimSpace(input.EventName),
		EventDate:   input.EventDate,
		Description: trimOrNil(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}

	s.log.InfoContext(ctx, "form created",
		slog.String("form_id", created.ID.String()),
		slog.String("event_name", created.EventName),
	)

	return created, nil
}
