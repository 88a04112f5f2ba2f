package gemini

import (
	"fmt"
	"strings"

	"github.com/attendly/feedback-backend/internal/domain"
)

// maxPromptComments caps how many written comments go into the prompt.
const maxPromptComments = 50

// buildPrompt renders the analysis prompt from the collected responses.
// The section headers here must stay in sync with parseAnalysis.
func buildPrompt(responses []*domain.Response) string {
	total := len(responses)

	var ratingSum int
	var comments []string
	for _, r := range responses {
		ratingSum += r.Rating
		if r.Comment != nil && *r.Comment != "" {
			comments = append(comments, *r.Comment)
		}
	}
	avgRating := float64(ratingSum) / float64(total)

	return fmt.Sprintf(`You are an expert event feedback analyzer. Analyze the following attendee feedback and provide insights.

FEEDBACK DATA:
- Total Responses: %d
- Average Rating: %.2f/5.0

ATTENDEE COMMENTS:
%s

Please provide your analysis in the following exact format:

OVERALL_SENTIMENT: [Choose ONLY one: Positive, Neutral, or Negative]

POSITIVE_HIGHLIGHTS:
[List the main positive aspects mentioned by attendees. If none, write "None mentioned"]

COMMON_COMPLAINTS:
[List recurring issues or complaints. If none, write "None mentioned"]

EXECUTIVE_SUMMARY:
[Provide a concise 2-3 sentence summary of the overall feedback]

Important:
- Be specific and data-driven
- Extract actual themes from the comments
- Keep each section concise
- Use the exact format headers shown above
`, total, avgRating, formatComments(comments))
}

// formatComments numbers the comments for the prompt, keeping at most
// maxPromptComments of them in submission order.
func formatComments(comments []string) string {
	if len(comments) == 0 {
		return "(No written comments provided)"
	}

	if len(comments) > maxPromptComments {
		comments = comments[:maxPromptComments]
	}

	var b strings.Builder
	for i, comment := range comments {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, comment)
	}
	return b.String()
}
