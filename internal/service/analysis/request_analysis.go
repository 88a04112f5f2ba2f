package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

// RequestAnalysis returns the analysis for a form, generating it on the
// first request. A cached analysis is returned as-is without touching the
// model. A form with no responses cannot be analyzed.
//
// Concurrent first requests may both reach the model; the UNIQUE
// constraint on form_id picks a single winner and the loser re-reads the
// winner's row, so callers always see one consistent analysis.
func (s *Service) RequestAnalysis(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error) {
	if formID == uuid.Nil {
		return nil, domain.NewValidationError("form_id", "required")
	}

	if _, err := s.forms.GetByID(ctx, formID); err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	cached, err := s.analyses.GetByFormID(ctx, formID)
	if err == nil {
		s.log.InfoContext(ctx, "analysis served from cache",
			slog.String("form_id", formID.String()),
		)
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get cached analysis: %w", err)
	}

	responses, err := s.responses.ListByFormID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	if len(responses) == 0 {
		return nil, fmt.Errorf("form %s: %w", formID, domain.ErrNoResponses)
	}

	generated, err := s.ai.Analyze(ctx, responses)
	if err != nil {
		return nil, fmt.Errorf("analyze responses: %w", err)
	}
	generated.FormID = formID

	created, err := s.analyses.Create(ctx, generated)
	if err != nil {
		// A concurrent request got there first; its analysis wins.
		if errors.Is(err, domain.ErrAlreadyExists) {
			winner, getErr := s.analyses.GetByFormID(ctx, formID)
			if getErr != nil {
				return nil, fmt.Errorf("get winning analysis: %w", getErr)
			}
			s.log.InfoContext(ctx, "analysis lost creation race, serving existing",
				slog.String("form_id", formID.String()),
			)
			return winner, nil
		}
		return nil, fmt.Errorf("store analysis: %w", err)
	}

	s.log.InfoContext(ctx, "analysis generated",
		slog.String("form_id", formID.String()),
		slog.String("sentiment", created.OverallSentiment.String()),
		slog.Int("response_count", len(responses)),
	)

	return created, nil
}
