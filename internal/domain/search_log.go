package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchLog is one entry of the search audit trail.
type SearchLog struct {
	ID             uuid.UUID
	Query          string
	ResultsCount   int
	ResponseTimeMs int64
	CreatedAt      time.Time
}
