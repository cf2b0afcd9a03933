package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticChecker bool

func (s staticChecker) Healthy(context.Context) bool { return bool(s) }

func TestCompositeHealthChecker(t *testing.T) {
	ctx := context.Background()

	healthy := NewCompositeHealthChecker(map[string]HealthChecker{
		"database": staticChecker(true),
		"cache":    NewOkHealthChecker(),
		"skipped":  nil,
	})
	assert.True(t, healthy.Healthy(ctx))
	assert.Equal(t, []string{"cache", "database"}, healthy.Names())

	degraded := NewCompositeHealthChecker(map[string]HealthChecker{
		"database":     staticChecker(true),
		"search_index": staticChecker(false),
	})
	assert.False(t, degraded.Healthy(ctx))
	assert.Equal(t, map[string]bool{"database": true, "search_index": false}, degraded.Report(ctx))
}
