package gemini

import (
	"strings"
	"unicode"

	"github.com/attendly/feedback-backend/internal/domain"
)

// Fallbacks used when a section is missing from the model response.
const (
	defaultHighlights = "No specific highlights mentioned"
	defaultComplaints = "No specific complaints mentioned"
	defaultSummary    = "Analysis completed successfully"
)

const (
	sentimentHeader  = "OVERALL_SENTIMENT:"
	highlightsHeader = "POSITIVE_HIGHLIGHTS:"
	complaintsHeader = "COMMON_COMPLAINTS:"
	summaryHeader    = "EXECUTIVE_SUMMARY:"
)

// parseAnalysis extracts the four sections from a model response.
// Headers are matched case-insensitively; a section runs until the next
// expected header or the end of the text. Anything missing or malformed
// falls back to a safe default, so the result is never partial.
func parseAnalysis(text string) *domain.Analysis {
	sentiment, ok := domain.ParseSentiment(extractSentimentWord(text))
	if !ok {
		sentiment = domain.SentimentNeutral
	}

	return &domain.Analysis{
		OverallSentiment:   sentiment,
		PositiveHighlights: truncate(extractSection(text, highlightsHeader, complaintsHeader, defaultHighlights), domain.MaxAnalysisFieldLen),
		CommonComplaints:   truncate(extractSection(text, complaintsHeader, summaryHeader, defaultComplaints), domain.MaxAnalysisFieldLen),
		ExecutiveSummary:   truncate(extractSection(text, summaryHeader, "", defaultSummary), domain.MaxAnalysisFieldLen),
	}
}

// extractSentimentWord returns the first word after the sentiment header,
// or "" when the header or word is absent.
func extractSentimentWord(text string) string {
	idx := indexFold(text, sentimentHeader)
	if idx < 0 {
		return ""
	}

	rest := text[idx+len(sentimentHeader):]
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)

	end := 0
	for end < len(rest) && isWordByte(rest[end]) {
		end++
	}
	return rest[:end]
}

// extractSection returns the trimmed text between header and the next
// header (or end of text). fallback is used when header is absent or the
// section body is blank.
func extractSection(text, header, nextHeader, fallback string) string {
	idx := indexFold(text, header)
	if idx < 0 {
		return fallback
	}

	body := text[idx+len(header):]
	if nextHeader != "" {
		if end := indexFold(body, nextHeader); end >= 0 {
			body = body[:end]
		}
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return fallback
	}
	return body
}

// indexFold is a case-insensitive strings.Index for ASCII headers.
// Folding maps only the bytes 'A'..'Z', keeping byte offsets valid for
// the original string even when it contains non-ASCII case-folding
// characters (which strings.ToLower can widen or narrow).
func indexFold(s, substr string) int {
	return strings.Index(asciiLower(s), asciiLower(substr))
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// truncate limits s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
