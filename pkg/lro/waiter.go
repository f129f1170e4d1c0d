// Package lro waits for long-running operations to reach a terminal state.
//
// A mutating call against the platform returns an operation handle
// immediately; the actual work finishes later on the server side. Wait polls
// the operation's status with exponential backoff until it is done, the poll
// budget runs out, or the context is canceled. The status-check endpoint
// differs per surface, so callers supply it as a StatusFetcher.
package lro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusFetcher fetches the current snapshot of a named operation. Each
// surface (gRPC client, HTTP client, server-side repository) supplies its own
// adapter.
type StatusFetcher interface {
	FetchOperation(ctx context.Context, name string) (*longrunningpb.Operation, error)
}

// StatusFetcherFunc adapts a plain function to a StatusFetcher.
type StatusFetcherFunc func(ctx context.Context, name string) (*longrunningpb.Operation, error)

func (f StatusFetcherFunc) FetchOperation(ctx context.Context, name string) (*longrunningpb.Operation, error) {
	return f(ctx, name)
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type waitOptions struct {
	clock    Clock
	progress func(op *longrunningpb.Operation)
}

type Option func(*waitOptions)

// WithClock replaces the wall clock, letting tests observe sleeps instead of
// taking them.
func WithClock(c Clock) Option {
	return func(o *waitOptions) {
		o.clock = c
	}
}

// WithProgress registers a sink invoked after every fetch that observes the
// operation still running.
func WithProgress(fn func(op *longrunningpb.Operation)) Option {
	return func(o *waitOptions) {
		o.progress = fn
	}
}

// Wait blocks until the named operation reaches a terminal state.
//
// On success it returns the terminal operation, whose Response field holds
// the service-specific result payload. A server-reported failure surfaces as
// *OperationError carrying the server's status verbatim; an exhausted poll
// budget surfaces as *TimeoutError. Fetch errors abort the wait once the
// policy's transient retry budget is spent; the wait never treats a broken
// status endpoint as "still running". Canceling ctx aborts the wait, but the
// server-side operation keeps going.
func Wait(ctx context.Context, fetcher StatusFetcher, name string, policy PollPolicy, opts ...Option) (*longrunningpb.Operation, error) {
	options := waitOptions{clock: systemClock{}}
	for _, opt := range opts {
		opt(&options)
	}

	policy = policy.withDefaults()
	interval := policy.Initial
	start := options.clock.Now()
	transient := 0

	for {
		op, err := fetcher.FetchOperation(ctx, name)
		if err != nil {
			if isTransient(err) && transient < policy.TransientRetries {
				transient++
				continue
			}
			return nil, fmt.Errorf("fetch status of operation %s: %w", name, err)
		}
		transient = 0

		if op.GetDone() {
			if errStatus := op.GetError(); errStatus != nil {
				return nil, &OperationError{Name: name, Status: errStatus, Op: op}
			}
			return op, nil
		}

		if options.progress != nil {
			options.progress(op)
		}

		if policy.MaxWait > 0 && options.clock.Now().Sub(start) >= policy.MaxWait {
			return nil, &TimeoutError{Name: name, MaxWait: policy.MaxWait, Last: op}
		}

		if err := options.clock.Sleep(ctx, interval); err != nil {
			return nil, err
		}
		interval = policy.next(interval)
	}
}

func isTransient(err error) bool {
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.ResourceExhausted:
			return true
		}
		return false
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) {
		return temporary.Temporary()
	}
	return false
}
