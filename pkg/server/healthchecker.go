package server

import (
	"context"
	"sort"
	"sync"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// CompositeHealthChecker is healthy only when every named dependency is.
type CompositeHealthChecker struct {
	checks map[string]HealthChecker
}

func NewCompositeHealthChecker(checks map[string]HealthChecker) *CompositeHealthChecker {
	c := &CompositeHealthChecker{checks: make(map[string]HealthChecker, len(checks))}
	for name, hc := range checks {
		if hc != nil {
			c.checks[name] = hc
		}
	}
	return c
}

// Report checks every dependency concurrently.
func (c *CompositeHealthChecker) Report(ctx context.Context) map[string]bool {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string]bool, len(c.checks))
	)
	for name, hc := range c.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok := hc.Healthy(ctx)
			mu.Lock()
			out[name] = ok
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}

func (c *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	for _, ok := range c.Report(ctx) {
		if !ok {
			return false
		}
	}
	return true
}

func (c *CompositeHealthChecker) Names() []string {
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
