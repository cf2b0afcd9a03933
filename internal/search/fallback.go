package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/video-hunter/internal/apperr"
)

// Outcome reports which strategy produced a result and why earlier ones were skipped.
type Outcome struct {
	Result   *Result
	Executed Algorithm
	Failures []error
}

// TryInOrder runs strategies in turn and returns the first success.
// A panicking strategy counts as a computation failure.
func TryInOrder(ctx context.Context, q Query, strategies ...Strategy) (*Outcome, error) {
	out := &Outcome{}
	for _, s := range strategies {
		res, err := safeExecute(ctx, s, q)
		if err == nil {
			if res == nil {
				res = &Result{}
			}
			out.Result = res
			out.Executed = s.Algorithm()
			return out, nil
		}
		out.Failures = append(out.Failures, err)
	}
	return out, errors.Join(out.Failures...)
}

func safeExecute(ctx context.Context, s Strategy, q Query) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperr.NewStrategy(string(s.Algorithm()), apperr.KindComputationFailure, fmt.Errorf("panic: %v", r))
		}
	}()
	return s.Execute(ctx, q)
}

func kindOf(err error) apperr.Kind {
	var se *apperr.StrategyError
	if errors.As(err, &se) {
		return se.Kind
	}
	return apperr.KindUnknown
}
