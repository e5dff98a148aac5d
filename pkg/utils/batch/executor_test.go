package batch_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/careledger/careledger/pkg/utils/batch"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"go.uber.org/goleak"
)

func TestExecuteAllSucceed(t *testing.T) {
	ids := []types.InvoiceID{5, 3, 9, 1}
	summary := batch.Execute(context.Background(), ids, func(ctx context.Context, id types.InvoiceID) (bool, error) {
		return true, nil
	})

	gt.Equal(t, ids, summary.SuccessfulIDs)
	gt.Equal(t, 0, len(summary.FailedIDs))
	gt.Equal(t, len(ids), len(summary.Outcomes))
	for i, o := range summary.Outcomes {
		gt.Equal(t, ids[i], o.ID)
		gt.True(t, o.Success)
		gt.Equal(t, "", o.Error)
	}
}

func TestExecutePartialFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	ids := []types.InvoiceID{1, 2, 3, 4, 5, 6}
	summary := batch.Execute(context.Background(), ids, func(ctx context.Context, id types.InvoiceID) (bool, error) {
		switch id % 3 {
		case 0:
			return false, goerr.New("Unauthorized: Can only delete your own invoices")
		case 1:
			return false, nil
		}
		return true, nil
	})

	gt.Equal(t, []types.InvoiceID{2, 5}, summary.SuccessfulIDs)
	gt.Equal(t, []types.InvoiceID{1, 3, 4, 6}, summary.FailedIDs)
	gt.Equal(t, len(ids), len(summary.Outcomes))

	// Union reconstructs the input, no overlap
	seen := map[types.InvoiceID]int{}
	for _, id := range summary.SuccessfulIDs {
		seen[id]++
	}
	for _, id := range summary.FailedIDs {
		seen[id]++
	}
	gt.Equal(t, len(ids), len(seen))
	for _, id := range ids {
		gt.Equal(t, 1, seen[id])
	}

	gt.Equal(t, "Failed to delete invoice", summary.Outcomes[0].Error)
	gt.Equal(t, "Unauthorized: Can only delete your own invoices", summary.Outcomes[2].Error)
}

func TestExecutePreservesOrderRegardlessOfCompletion(t *testing.T) {
	ids := []types.InvoiceID{1, 2, 3, 4}
	summary := batch.Execute(context.Background(), ids, func(ctx context.Context, id types.InvoiceID) (bool, error) {
		// Earlier ids finish later
		time.Sleep(time.Duration(5-id) * 10 * time.Millisecond)
		return true, nil
	})

	for i, o := range summary.Outcomes {
		gt.Equal(t, ids[i], o.ID)
	}
}

func TestExecuteDispatchesConcurrently(t *testing.T) {
	defer goleak.VerifyNone(t)
	const n = 8
	var inFlight, peak int32
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(n)

	go func() {
		started.Wait()
		close(release)
	}()

	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	done := make(chan *model.BatchSummary[int])
	go func() {
		done <- batch.Execute(context.Background(), ids, func(ctx context.Context, id int) (bool, error) {
			cur := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if cur <= p || atomic.CompareAndSwapInt32(&peak, p, cur) {
					break
				}
			}
			started.Done()
			<-release
			atomic.AddInt32(&inFlight, -1)
			return true, nil
		})
	}()

	select {
	case summary := <-done:
		gt.Equal(t, n, summary.SuccessCount())
		gt.Equal(t, int32(n), atomic.LoadInt32(&peak))
	case <-time.After(2 * time.Second):
		t.Fatal("calls were not dispatched concurrently")
	}
}

func TestExecuteWithLimit(t *testing.T) {
	defer goleak.VerifyNone(t)
	var inFlight, peak int32
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	summary := batch.Execute(context.Background(), ids, func(ctx context.Context, id int) (bool, error) {
		cur := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			p := atomic.LoadInt32(&peak)
			if cur <= p || atomic.CompareAndSwapInt32(&peak, p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return true, nil
	}, batch.WithLimit(2))

	gt.Equal(t, len(ids), summary.SuccessCount())
	gt.True(t, atomic.LoadInt32(&peak) <= 2)
}

func TestExecuteNilFunction(t *testing.T) {
	summary := batch.Execute[types.InvoiceID](context.Background(), []types.InvoiceID{1, 2}, nil)
	gt.Equal(t, 0, len(summary.SuccessfulIDs))
	gt.Equal(t, []types.InvoiceID{1, 2}, summary.FailedIDs)
	for _, o := range summary.Outcomes {
		gt.Equal(t, "Backend connection not available", o.Error)
	}
}

func TestExecuteRecoversPanic(t *testing.T) {
	defer goleak.VerifyNone(t)
	summary := batch.Execute(context.Background(), []string{"a", "b"}, func(ctx context.Context, id string) (bool, error) {
		if id == "a" {
			panic("kaboom")
		}
		return true, nil
	})

	gt.Equal(t, []string{"b"}, summary.SuccessfulIDs)
	gt.Equal(t, []string{"a"}, summary.FailedIDs)
	gt.S(t, summary.Outcomes[0].Error).Contains("kaboom")
}

func TestExecuteCollapsesDuplicates(t *testing.T) {
	var calls int32
	summary := batch.Execute(context.Background(), []types.InvoiceID{7, 7, 8}, func(ctx context.Context, id types.InvoiceID) (bool, error) {
		atomic.AddInt32(&calls, 1)
		return true, nil
	})

	gt.Equal(t, int32(2), atomic.LoadInt32(&calls))
	gt.Equal(t, []types.InvoiceID{7, 8}, summary.SuccessfulIDs)
	gt.Equal(t, 2, len(summary.Outcomes))
}

func TestExecuteIsStateless(t *testing.T) {
	store := map[types.InvoiceID]bool{1: true, 2: true}
	var mu sync.Mutex
	del := func(ctx context.Context, id types.InvoiceID) (bool, error) {
		mu.Lock()
		defer mu.Unlock()
		if !store[id] {
			return false, nil
		}
		delete(store, id)
		return true, nil
	}

	first := batch.Execute(context.Background(), []types.InvoiceID{1, 2}, del)
	gt.Equal(t, 2, first.SuccessCount())

	// Already deleted ids are reported as failures on a second run
	second := batch.Execute(context.Background(), []types.InvoiceID{1, 2}, del)
	gt.Equal(t, 0, second.SuccessCount())
	gt.Equal(t, []types.InvoiceID{1, 2}, second.FailedIDs)
}

func TestExecuteEmpty(t *testing.T) {
	summary := batch.Execute(context.Background(), []types.InvoiceID{}, func(ctx context.Context, id types.InvoiceID) (bool, error) {
		t.Fatal("must not be called")
		return false, nil
	})
	gt.Equal(t, 0, len(summary.Outcomes))
}
