package storage

import (
	"context"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

type SearchLogger interface {
	LogSearch(ctx context.Context, entry domain.SearchLog) error
}
