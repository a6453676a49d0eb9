package domain

// SentimentUnavailable marks score and magnitude when no analysis could run.
const SentimentUnavailable = -10000

type SentimentResult struct {
	Score     float64 `json:"score"`
	Magnitude float64 `json:"mag"`
}

func UnavailableSentiment() SentimentResult {
	return SentimentResult{Score: SentimentUnavailable, Magnitude: SentimentUnavailable}
}

func (s SentimentResult) Available() bool {
	return s.Score != SentimentUnavailable || s.Magnitude != SentimentUnavailable
}

type DiaryReply struct {
	Status    string  `json:"status,omitempty"`
	Answer    string  `json:"answer"`
	Score     float64 `json:"score"`
	Magnitude float64 `json:"mag"`
}
