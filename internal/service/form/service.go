// Package form implements feedback form management: form lifecycle and
// response collection.
package form

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

type formRepo interface {
	Create(ctx context.Context, form *domain.Form) (*domain.Form, error)
	GetByID(ctx context.Context, formID uuid.UUID) (*domain.Form, error)
	Update(ctx context.Context, formID uuid.UUID, params domain.FormUpdateParams) (*domain.Form, error)
	Delete(ctx context.Context, formID uuid.UUID) error
}

type responseRepo interface {
	Create(ctx context.Context, resp *domain.Response) (*domain.Response, error)
	ListByFormID(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides form and response operations.
type Service struct {
	forms     formRepo
	responses responseRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Form service.
func NewService(
	log *slog.Logger,
	forms formRepo,
	responses responseRepo,
	tx txManager,
) *Service {
	return &Service{
		forms:     forms,
		responses: responses,
		tx:        tx,
		log:       log.With("service", "form"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
