package search

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Request is a search as received from a caller. Page 0 means no page was given.
type Request struct {
	Text      string
	Algorithm string
	Limit     int
	Page      int
	Offset    int
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return apperr.NewValidation("query text is required")
	}
	if r.Limit < 1 || r.Limit > MaxLimit {
		return apperr.NewValidation(fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
	}
	if r.Page < 0 {
		return apperr.NewValidation("page must be positive")
	}
	if r.Offset < 0 {
		return apperr.NewValidation("offset must not be negative")
	}
	return nil
}

// EffectiveOffset derives the offset from the page when one is given.
func (r Request) EffectiveOffset() int {
	if r.Page > 0 {
		return (r.Page - 1) * r.Limit
	}
	return r.Offset
}

// CacheKey identifies the response for this request. Without a page the offset takes its slot.
// Every slot after the text is free of ':', so the key reads back uniquely from the right.
// Unknown algorithm ids share the basic entry.
func (r Request) CacheKey() string {
	page := fmt.Sprint(r.Page)
	if r.Page <= 0 {
		page = fmt.Sprintf("o%d", r.Offset)
	}
	return fmt.Sprintf("search:%s:%d:%s:%s", r.Text, r.Limit, page, ParseAlgorithm(r.Algorithm))
}

func (r Request) query() Query {
	return Query{Text: r.Text, Limit: r.Limit, Offset: r.EffectiveOffset()}
}
