package domain

// Sentiment is the overall sentiment label of an analysis. Exactly three
// values exist; anything else coming out of the AI reply is coerced to
// SentimentNeutral by the parser before it reaches this type.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

func (s Sentiment) String() string { return string(s) }

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// ParseSentiment validates a raw label against the three defined values.
// The match is case-sensitive: "positive" is not a valid sentiment.
func ParseSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(raw)
	return s, s.IsValid()
}
