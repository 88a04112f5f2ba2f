package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attendly/feedback-backend/internal/domain"
)

// UpdateForm applies a partial update to a feedback form. Fields left nil
// keep their current value; Clear flags reset the optional fields.
func (s *Service) UpdateForm(ctx context.Context, input UpdateFormInput) (*domain.Form, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.FormUpdateParams{
		EventName:        trimOrNil(input.EventName),
		EventDate:        input.EventDate,
		ClearEventDate:   input.ClearEventDate,
		Description:      input.Description,
		ClearDescription: input.ClearDescription,
	}

	// The repository reads the current row before writing, so the
	// overlay runs in a transaction to stay atomic under concurrency.
	var updated *domain.Form
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.forms.Update(txCtx, input.FormID, params)
		if updateErr != nil {
			return fmt.Errorf("update form: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "form updated",
		slog.String("form_id", updated.ID.String()),
	)

	return updated, nil
}
