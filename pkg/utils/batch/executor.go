package batch

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"golang.org/x/sync/errgroup"
)

// MutateFunc performs one remote mutation. It reports false or returns an
// error when the item was not mutated.
type MutateFunc[K comparable] func(ctx context.Context, id K) (bool, error)

type config struct {
	limit int
}

// Option configures Execute
type Option func(*config)

// WithLimit caps the number of in-flight calls. Zero or negative means unlimited.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

// Execute calls fn once per identifier concurrently and waits for every call
// to settle. A failing call never stops the others and never escapes as an
// error: each one becomes a failed outcome. Outcomes keep the order of ids;
// duplicate ids are collapsed to their first occurrence. A nil fn fails every
// item with model.ErrBackendUnavailable.
func Execute[K comparable](ctx context.Context, ids []K, fn MutateFunc[K], opts ...Option) *model.BatchSummary[K] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	ids = unique(ids)
	outcomes := make([]model.OperationOutcome[K], len(ids))

	if fn == nil {
		for i, id := range ids {
			outcomes[i] = model.OperationOutcome[K]{ID: id, Error: model.ErrBackendUnavailable.Error()}
		}
		return model.NewBatchSummary(outcomes)
	}

	batchID := uuid.NewString()
	logger := ctxlog.From(ctx).With("batch_id", batchID)
	start := time.Now()

	var g errgroup.Group
	if cfg.limit > 0 {
		g.SetLimit(cfg.limit)
	}

	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = settle(ctx, id, fn)
			return nil // never cancel siblings
		})
	}
	_ = g.Wait()

	summary := model.NewBatchSummary(outcomes)
	logger.Debug("batch settled",
		"total", len(ids),
		"succeeded", summary.SuccessCount(),
		"failed", summary.FailedCount(),
		"duration", time.Since(start),
	)
	return summary
}

// settle runs one call and converts every way it can end into an outcome
func settle[K comparable](ctx context.Context, id K, fn MutateFunc[K]) (outcome model.OperationOutcome[K]) {
	outcome.ID = id

	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic in batch item",
				"id", id,
				"recover", r,
				"stack", string(debug.Stack()),
			)
			outcome = model.OperationOutcome[K]{ID: id, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()

	deleted, err := fn(ctx, id)
	switch {
	case err != nil:
		outcome.Error = err.Error()
	case !deleted:
		outcome.Error = model.ErrDeleteRejected.Error()
	default:
		outcome.Success = true
	}
	return outcome
}

func unique[K comparable](ids []K) []K {
	seen := make(map[K]struct{}, len(ids))
	result := make([]K, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
