package form

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

// CreateFormInput holds the parameters for creating a feedback form.
type CreateFormInput struct {
	EventName   string
	EventDate   *time.Time
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateFormInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.EventName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "event_name", Message: "required"})
	}
	if len(name) > domain.MaxEventNameLen {
		errs = append(errs, domain.FieldError{Field: "event_name", Message: "max 255 characters"})
	}

	if i.Description != nil && len(*i.Description) > domain.MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFormInput holds the parameters for updating a feedback form.
// nil pointer = don't change; Clear flags reset the optional fields.
type UpdateFormInput struct {
	FormID           uuid.UUID
	EventName        *string
	EventDate        *time.Time
	ClearEventDate   bool
	Description      *string
	ClearDescription bool
}

// Validate checks all fields and collects all errors.
func (i UpdateFormInput) Validate() error {
	var errs []domain.FieldError

	if i.FormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "required"})
	}
	if i.EventName == nil && i.EventDate == nil && i.Description == nil &&
		!i.ClearEventDate && !i.ClearDescription {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.EventName != nil {
		name := strings.TrimSpace(*i.EventName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "event_name", Message: "required"})
		}
		if len(name) > domain.MaxEventNameLen {
			errs = append(errs, domain.FieldError{Field: "event_name", Message: "max 255 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > domain.MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteFormInput holds the parameters for deleting a feedback form.
type DeleteFormInput struct {
	FormID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteFormInput) Validate() error {
	if i.FormID == uuid.Nil {
		return domain.NewValidationError("form_id", "required")
	}
	return nil
}

// SubmitResponseInput holds the parameters for submitting a feedback response.
type SubmitResponseInput struct {
	FormID       uuid.UUID
	AttendeeName *string
	Rating       int
	Comment      *string
}

// Validate checks all fields and collects all errors.
func (i SubmitResponseInput) Validate() error {
	var errs []domain.FieldError

	if i.FormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "required"})
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.AttendeeName != nil && len(strings.TrimSpace(*i.AttendeeName)) > domain.MaxAttendeeNameLen {
		errs = append(errs, domain.FieldError{Field: "attendee_name", Message: "max 255 characters"})
	}
	if i.Comment != nil && len(*i.Comment) > domain.MaxCommentLen {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
