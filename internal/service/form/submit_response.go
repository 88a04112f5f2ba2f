package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attendly/feedback-backend/internal/domain"
)

// SubmitResponse records one attendee's feedback on a form. Responses are
// append-only; there is no update or delete.
func (s *Service) SubmitResponse(ctx context.Context, input SubmitResponseInput) (*domain.Response, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Whitespace-only names and comments are stored as absent.
	attendeeName := trimOrNil(input.AttendeeName)
	comment := trimOrNil(input.Comment)

	var created *domain.Response
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, getErr := s.forms.GetByID(txCtx, input.FormID); getErr != nil {
			return fmt.Errorf("get form: %w", getErr)
		}

		var createErr error
		created, createErr = s.responses.Create(txCtx, &domain.Response{
			FormID:       input.FormID,
			AttendeeName: attendeeName,
			Rating:       input.Rating,
			Comment:      comment,
		})
		if createErr != nil {
			return fmt.Errorf("create response: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "response submitted",
		slog.String("form_id", input.FormID.String()),
		slog.String("response_id", created.ID.String()),
		slog.Int("rating", created.Rating),
	)

	return created, nil
}
