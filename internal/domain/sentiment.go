package domain

// Sentiment aggregates the comment sentiment of one video.
type Sentiment struct {
	Mean  float64
	Count int64
}
