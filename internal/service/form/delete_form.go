package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attendly/feedback-backend/internal/domain"
)

// DeleteForm deletes a feedback form. Responses and any cached analysis
// go with it via ON DELETE CASCADE.
func (s *Service) DeleteForm(ctx context.Context, input DeleteFormInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	// Fetch and delete share one transaction so the logged form cannot
	// change between the read and the delete.
	var form *domain.Form
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		form, getErr = s.forms.GetByID(txCtx, input.FormID)
		if getErr != nil {
			return fmt.Errorf("get form: %w", getErr)
		}

		if delErr := s.forms.Delete(txCtx, input.FormID); delErr != nil {
			return fmt.Errorf("delete form: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "form deleted",
		slog.String("form_id", input.FormID.String()),
		slog.String("event_name", form.EventName),
	)

	return nil
}
