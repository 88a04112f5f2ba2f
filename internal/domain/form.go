// Package domain defines the core entities of the feedback analyzer:
// feedback forms, attendee responses, and cached sentiment analyses,
// together with the sentinel errors shared by all layers.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Limits for user-supplied text fields. Enforced at the service layer
// and backed by CHECK constraints in the schema.
const (
	MaxEventNameLen    = 255
	MaxDescriptionLen  = 2000
	MaxAttendeeNameLen = 255
	MaxCommentLen      = 2000
)

// Form is an event's feedback-collection container. A form owns zero or
// more Responses and at most one Analysis; deleting it cascades to both.
type Form struct {
	ID          uuid.UUID
	EventName   string
	EventDate   *time.Time // date-only, no time component
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormUpdateParams describes a partial form update. nil fields are left
// untouched; EventDate and Description use ClearEventDate/ClearDescription
// to distinguish "don't change" from "set NULL".
type FormUpdateParams struct {
	EventName        *string
	EventDate        *time.Time
	ClearEventDate   bool
	Description      *string
	ClearDescription bool
}

// IsEmpty reports whether the update would touch no fields at all.
func (p FormUpdateParams) IsEmpty() bool {
	return p.EventName == nil &&
		p.EventDate == nil && !p.ClearEventDate &&
		p.Description == nil && !p.ClearDescription
}
