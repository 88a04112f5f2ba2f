package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for attendee feedback. The schema carries a matching
// CHECK constraint.
const (
	MinRating = 1
	MaxRating = 5
)

// Response is one attendee's rating/comment submission against a form.
// Responses are append-only: they are never updated or deleted directly
// and disappear only when their form is deleted.
type Response struct {
	ID           uuid.UUID
	FormID       uuid.UUID
	AttendeeName *string
	Rating       int
	Comment      *string
	SubmittedAt  time.Time
}
