package testing

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

// ProviderHealthy reports whether a container runtime answers. testcontainers panics when no
// Docker host can be found, so the panic is turned into an error here.
func ProviderHealthy(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("container runtime unavailable: %v", r)
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return fmt.Errorf("container runtime unavailable: %w", err)
	}
	return provider.Health(ctx)
}

// skipIfNoProvider skips tb when no container runtime is reachable.
func skipIfNoProvider(tb testing.TB) {
	tb.Helper()
	if t, ok := tb.(*testing.T); ok {
		testcontainers.SkipIfProviderIsNotHealthy(t)
		return
	}
	if err := ProviderHealthy(context.Background()); err != nil {
		tb.Skipf("skipping container test: %v", err)
	}
}
