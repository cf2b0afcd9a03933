package router

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/video-hunter/internal/search"
)

// Searcher produces the serialized response envelope for a request.
type Searcher interface {
	Search(ctx context.Context, req search.Request) ([]byte, error)
}

type SearchRouter struct {
	e        *echo.Echo
	searcher Searcher
}

type AlgorithmInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

func NewSearchRouter(e *echo.Echo, searcher Searcher) *SearchRouter {
	return &SearchRouter{
		e:        e,
		searcher: searcher,
	}
}

func (r *SearchRouter) Bind() {
	api := r.e.Group("/api")
	api.GET("/search", r.searchHandler)
	api.GET("/algorithms", r.algorithmsHandler)
}

// searchHandler godoc
// @Summary Search videos
// @Description Ranks videos with the selected algorithm. Unknown algorithms and strategy failures fall back to basic matching.
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Page size (1-100)" default(10)
// @Param page query int false "1-based page number"
// @Param offset query int false "Result offset, used when page is absent" default(0)
// @Param algorithm query string false "Ranking algorithm" Enums(basic, tfidf, weighted, bm25, hybrid, semantic, sentiment) default(basic)
// @Success 200 {object} search.Response
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/search [get]
func (r *SearchRouter) searchHandler(c echo.Context) error {
	req, err := parseSearchRequest(c)
	if err != nil {
		return err
	}

	body, err := r.searcher.Search(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, body)
}

// algorithmsHandler godoc
// @Summary List search algorithms
// @Tags search
// @Produce json
// @Success 200 {object} AlgorithmsResponse
// @Router /api/algorithms [get]
func (r *SearchRouter) algorithmsHandler(c echo.Context) error {
	resp := AlgorithmsResponse{Algorithms: make([]AlgorithmInfo, 0, len(search.Algorithms))}
	for _, a := range search.Algorithms {
		resp.Algorithms = append(resp.Algorithms, AlgorithmInfo{ID: string(a), Description: a.Description()})
	}
	return c.JSON(http.StatusOK, resp)
}

func parseSearchRequest(c echo.Context) (search.Request, error) {
	req := search.Request{
		Text:      c.QueryParam("q"),
		Algorithm: c.QueryParam("algorithm"),
		Limit:     search.DefaultLimit,
	}
	if req.Algorithm == "" {
		req.Algorithm = string(search.Basic)
	}

	var err error
	if req.Limit, err = intParam(c, "limit", search.DefaultLimit); err != nil {
		return req, err
	}
	if req.Page, err = intParam(c, "page", 0); err != nil {
		return req, err
	}
	if c.QueryParam("page") != "" && req.Page < 1 {
		return req, apperr.NewValidation("page must be at least 1")
	}
	if req.Offset, err = intParam(c, "offset", 0); err != nil {
		return req, err
	}

	return req, nil
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewValidationWrap(name+" must be an integer", err)
	}
	return n, nil
}
