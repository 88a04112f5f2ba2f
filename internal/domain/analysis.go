package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxAnalysisFieldLen bounds each stored analysis text field.
const MaxAnalysisFieldLen = 1000

// Analysis is the single cached sentiment summary for a form. It is
// created exactly once per form, never mutated, and destroyed only by
// form cascade deletion. Uniqueness of FormID is a hard invariant
// enforced by the database.
type Analysis struct {
	ID                 uuid.UUID
	FormID             uuid.UUID
	OverallSentiment   Sentiment
	PositiveHighlights string
	CommonComplaints   string
	ExecutiveSummary   string
	AnalyzedAt         time.Time
}
