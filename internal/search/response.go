package search

import (
	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
	"github.com/DjordjeVuckovic/video-hunter/pkg/utils"
)

// Response is the envelope returned for every search request.
type Response struct {
	Videos     []domain.Video `json:"videos"`
	TotalCount int            `json:"total_count"`
	TotalPages int            `json:"total_pages"`
	Query      string         `json:"query"`
	SearchTime float64        `json:"search_time"`
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func newResponse(text string, limit int, res *Result, seconds float64) Response {
	videos := make([]domain.Video, len(res.Hits))
	for i, h := range res.Hits {
		videos[i] = h.Video.Normalize()
	}
	return Response{
		Videos:     videos,
		TotalCount: res.Total,
		TotalPages: TotalPages(res.Total, limit),
		Query:      text,
		SearchTime: utils.RoundDecimal(seconds, 4),
	}
}
