package async_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/careledger/careledger/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// syncBuffer lets the background goroutine log while the test reads
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// dispatchAndWait runs handler through Dispatch and blocks until it returned
func dispatchAndWait(t *testing.T, ctx context.Context, handler func(ctx context.Context) error) {
	t.Helper()
	done := make(chan struct{})
	async.Dispatch(ctx, func(ctx context.Context) error {
		defer close(done)
		return handler(ctx)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async handler did not run")
	}
}

func TestDispatchCarriesCallerIdentity(t *testing.T) {
	authCtx := model.NewAuthContext("alice", types.UserRoleAdmin)
	ctx := model.WithAuthContext(context.Background(), authCtx)

	var seen *model.AuthContext
	dispatchAndWait(t, ctx, func(ctx context.Context) error {
		seen, _ = model.GetAuthContext(ctx)
		return nil
	})

	gt.V(t, seen).NotNil()
	gt.Equal(t, types.Principal("alice"), seen.Principal)
	gt.Equal(t, types.UserRoleAdmin, seen.Role)

	// The handler holds a copy; later changes by the caller do not leak in
	authCtx.Role = types.UserRoleGuest
	gt.Equal(t, types.UserRoleAdmin, seen.Role)
}

func TestDispatchOutlivesCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var handlerErr error
	dispatchAndWait(t, ctx, func(ctx context.Context) error {
		handlerErr = ctx.Err()
		return nil
	})
	gt.NoError(t, handlerErr)
}

func TestDispatchLogsFailures(t *testing.T) {
	var buf syncBuffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	dispatchAndWait(t, ctx, func(ctx context.Context) error {
		return goerr.New("refetch failed")
	})
	waitForLog(t, &buf, "Error in async handler")

	dispatchAndWait(t, ctx, func(ctx context.Context) error {
		panic("kaboom")
	})
	waitForLog(t, &buf, "Panic in async handler")
}

// waitForLog waits for the deferred logging that runs after the handler returned
func waitForLog(t *testing.T, buf *syncBuffer, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if bytes.Contains([]byte(buf.String()), []byte(msg)) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("log %q not written", msg)
}
