package lro_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/10Narratives/nimbus/pkg/lro"
	"github.com/stretchr/testify/require"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func running(name string) *longrunningpb.Operation {
	return &longrunningpb.Operation{Name: name}
}

func succeeded(t *testing.T, name, payload string) *longrunningpb.Operation {
	t.Helper()

	resp, err := anypb.New(wrapperspb.String(payload))
	require.NoError(t, err)

	return &longrunningpb.Operation{
		Name:   name,
		Done:   true,
		Result: &longrunningpb.Operation_Response{Response: resp},
	}
}

func failed(name string, st *statuspb.Status) *longrunningpb.Operation {
	return &longrunningpb.Operation{
		Name:   name,
		Done:   true,
		Result: &longrunningpb.Operation_Error{Error: st},
	}
}

// doneAfter reports not-done for the first n fetches and terminal afterwards.
func doneAfter(n int, terminal *longrunningpb.Operation, fetches *int) lro.StatusFetcherFunc {
	return func(_ context.Context, name string) (*longrunningpb.Operation, error) {
		*fetches++
		if *fetches <= n {
			return running(name), nil
		}
		return terminal, nil
	}
}

func TestWait_DoneOnFirstFetch(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	terminal := succeeded(t, "operations/1", "payload")

	op, err := lro.Wait(context.Background(), doneAfter(0, terminal, &fetches), "operations/1",
		lro.PollPolicy{Initial: time.Second, Multiplier: 2, Ceiling: 10 * time.Second, MaxWait: 35 * time.Second},
		lro.WithClock(clock))

	require.NoError(t, err)
	require.Equal(t, 1, fetches)
	require.Empty(t, clock.sleeps)
	require.True(t, proto.Equal(terminal, op))
}

func TestWait_BackoffSequenceUntilDone(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	terminal := succeeded(t, "operations/2", "X")

	op, err := lro.Wait(context.Background(), doneAfter(4, terminal, &fetches), "operations/2",
		lro.PollPolicy{Initial: time.Second, Multiplier: 2, Ceiling: 10 * time.Second, MaxWait: 35 * time.Second},
		lro.WithClock(clock))

	require.NoError(t, err)
	require.Equal(t, 5, fetches)
	require.Equal(t, []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
	}, clock.sleeps)

	var got wrapperspb.StringValue
	require.NoError(t, op.GetResponse().UnmarshalTo(&got))
	require.Equal(t, "X", got.GetValue())
}

func TestWait_TimeoutWhenNeverDone(t *testing.T) {
	clock := newFakeClock()
	fetches := 0

	neverDone := lro.StatusFetcherFunc(func(_ context.Context, name string) (*longrunningpb.Operation, error) {
		fetches++
		return running(name), nil
	})

	_, err := lro.Wait(context.Background(), neverDone, "operations/3",
		lro.PollPolicy{Initial: time.Second, Multiplier: 2, Ceiling: 10 * time.Second, MaxWait: 35 * time.Second},
		lro.WithClock(clock))

	var timeoutErr *lro.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	require.Equal(t, "operations/3", timeoutErr.Name)
	require.Equal(t, 35*time.Second, timeoutErr.MaxWait)
	require.NotNil(t, timeoutErr.Last)
	require.False(t, timeoutErr.Last.GetDone())

	require.Equal(t, []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
	}, clock.sleeps)

	// the budget expires right after the seventh fetch
	require.Equal(t, 7, fetches)
}

func TestWait_ServerErrorCarriedVerbatim(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	serverErr := &statuspb.Status{Code: int32(codes.FailedPrecondition), Message: "quota exceeded"}

	_, err := lro.Wait(context.Background(), doneAfter(0, failed("operations/4", serverErr), &fetches),
		"operations/4", lro.PollPolicy{}, lro.WithClock(clock))

	var opErr *lro.OperationError
	require.ErrorAs(t, err, &opErr)
	require.True(t, proto.Equal(serverErr, opErr.Status))
	require.Equal(t, 1, fetches)
	require.Empty(t, clock.sleeps)

	// the failure is visible through the standard status machinery too
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestWait_IntervalsMonotonicAndCapped(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	terminal := succeeded(t, "operations/5", "done")

	_, err := lro.Wait(context.Background(), doneAfter(8, terminal, &fetches), "operations/5",
		lro.PollPolicy{Initial: time.Second, Multiplier: 3, Ceiling: 5 * time.Second, MaxWait: time.Hour},
		lro.WithClock(clock))
	require.NoError(t, err)

	require.Len(t, clock.sleeps, 8)
	for i, d := range clock.sleeps {
		require.LessOrEqual(t, d, 5*time.Second)
		if i > 0 {
			require.GreaterOrEqual(t, d, clock.sleeps[i-1])
		}
	}
}

func TestWait_TransientFetchErrorsRetriedImmediately(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	terminal := succeeded(t, "operations/6", "ok")

	flaky := lro.StatusFetcherFunc(func(_ context.Context, name string) (*longrunningpb.Operation, error) {
		fetches++
		if fetches <= 2 {
			return nil, status.Error(codes.Unavailable, "connection dropped")
		}
		return terminal, nil
	})

	op, err := lro.Wait(context.Background(), flaky, "operations/6",
		lro.PollPolicy{TransientRetries: 3}, lro.WithClock(clock))

	require.NoError(t, err)
	require.Equal(t, 3, fetches)
	require.Empty(t, clock.sleeps, "transient retries must not consume poll sleeps")
	require.True(t, proto.Equal(terminal, op))
}

func TestWait_TransientBudgetExhausted(t *testing.T) {
	fetches := 0
	alwaysDown := lro.StatusFetcherFunc(func(_ context.Context, _ string) (*longrunningpb.Operation, error) {
		fetches++
		return nil, status.Error(codes.Unavailable, "still down")
	})

	_, err := lro.Wait(context.Background(), alwaysDown, "operations/7",
		lro.PollPolicy{TransientRetries: 2}, lro.WithClock(newFakeClock()))

	require.Error(t, err)
	require.Equal(t, codes.Unavailable, status.Code(err))
	require.Equal(t, 3, fetches, "initial fetch plus two retries")
}

type temporaryError struct{ msg string }

func (e *temporaryError) Error() string   { return e.msg }
func (e *temporaryError) Temporary() bool { return true }

func TestWait_TemporaryErrorCountsAsTransient(t *testing.T) {
	fetches := 0
	terminal := succeeded(t, "operations/8", "ok")

	flaky := lro.StatusFetcherFunc(func(_ context.Context, _ string) (*longrunningpb.Operation, error) {
		fetches++
		if fetches == 1 {
			return nil, &temporaryError{msg: "503 service unavailable"}
		}
		return terminal, nil
	})

	_, err := lro.Wait(context.Background(), flaky, "operations/8",
		lro.PollPolicy{TransientRetries: 1}, lro.WithClock(newFakeClock()))
	require.NoError(t, err)
	require.Equal(t, 2, fetches)
}

func TestWait_FatalFetchErrorAbortsWait(t *testing.T) {
	fetches := 0
	broken := lro.StatusFetcherFunc(func(_ context.Context, _ string) (*longrunningpb.Operation, error) {
		fetches++
		return nil, status.Error(codes.PermissionDenied, "nope")
	})

	_, err := lro.Wait(context.Background(), broken, "operations/9",
		lro.PollPolicy{TransientRetries: 5}, lro.WithClock(newFakeClock()))

	require.Error(t, err)
	require.Equal(t, codes.PermissionDenied, status.Code(err))
	require.Equal(t, 1, fetches, "fatal fetch errors must not be retried")
}

func TestWait_ContextCancellationStopsThePoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	notDone := lro.StatusFetcherFunc(func(_ context.Context, name string) (*longrunningpb.Operation, error) {
		return running(name), nil
	})

	_, err := lro.Wait(ctx, notDone, "operations/10",
		lro.PollPolicy{Initial: time.Millisecond, MaxWait: time.Hour})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWait_ProgressSinkSeesEveryRunningSnapshot(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	terminal := succeeded(t, "operations/11", "ok")

	var observed int
	_, err := lro.Wait(context.Background(), doneAfter(3, terminal, &fetches), "operations/11",
		lro.PollPolicy{Initial: time.Second, Multiplier: 2, Ceiling: 4 * time.Second, MaxWait: time.Minute},
		lro.WithClock(clock),
		lro.WithProgress(func(op *longrunningpb.Operation) {
			require.False(t, op.GetDone())
			observed++
		}))

	require.NoError(t, err)
	require.Equal(t, 3, observed)
}
