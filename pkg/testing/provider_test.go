package testing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProviderHealthy_NeverPanics(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NotPanics(t, func() {
		_ = ProviderHealthy(ctx)
	})
}

func TestSkipIfNoProvider_SkipsOrReturns(t *testing.T) {
	var reached bool
	t.Run("container", func(t *testing.T) {
		skipIfNoProvider(t)
		reached = true
	})
	if ProviderHealthy(context.Background()) == nil {
		assert.True(t, reached)
	}
}
