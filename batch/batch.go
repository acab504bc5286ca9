// Package batch fans independent service calls out over a bounded set of
// goroutines with an optional request rate limit.
package batch

import (
	"context"

	wxtouch "github.com/HeteroCat/wx-touch"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Result is the outcome of one account search.
type Result struct {
	Query string
	Page  *wxtouch.Page[wxtouch.Account]
	Err   error
}

// Runner executes batches of calls. The zero value runs with
// DefaultConcurrency and no rate limit.
type Runner struct {
	// Concurrency bounds in-flight calls.
	Concurrency int

	// Limiter, when set, is waited on before every call.
	Limiter *rate.Limiter
}

// NewRunner creates a Runner. A non-positive rps disables rate limiting.
// Each limiter has a burst of 1.
func NewRunner(concurrency int, rps float64) *Runner {
	r := &Runner{Concurrency: concurrency}
	if rps > 0 {
		r.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return r
}

// SearchAccounts runs svc.SearchAccounts for every query and returns one
// Result per query in input order. A failed query does not stop the others;
// canceling ctx fails the queries that have not started.
func (r *Runner) SearchAccounts(ctx context.Context, svc wxtouch.AccountService, queries []string) []Result {
	results := make([]Result, len(queries))

	var g errgroup.Group
	g.SetLimit(r.concurrency())

	for i, query := range queries {
		results[i].Query = query
		g.Go(func() error {
			if err := r.wait(ctx); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Page, results[i].Err = svc.SearchAccounts(ctx, query)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

func (r *Runner) concurrency() int {
	if r.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return r.Concurrency
}

func (r *Runner) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Limiter == nil {
		return nil
	}
	return r.Limiter.Wait(ctx)
}
