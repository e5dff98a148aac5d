package usecase

import (
	"context"
	"slices"
	"sync"

	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/careledger/careledger/pkg/service/cache"
	"github.com/careledger/careledger/pkg/utils/async"
	"github.com/careledger/careledger/pkg/utils/batch"
	"github.com/careledger/careledger/pkg/utils/message"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Receivables drives billing operations against a backend and keeps cached
// listings consistent with the mutations it performs.
type Receivables struct {
	backend interfaces.Backend
	limit   int

	// locMu guards locGen. locGen counts changes of the cached LOC
	// receivables; a background refetch only lands when it is unchanged.
	locMu  sync.Mutex
	locGen uint64

	invoices  interfaces.QueryCache[[]*model.Invoice] // invoices, locReceivables
	inquiries interfaces.QueryCache[[]*model.Inquiry]
	loc       interfaces.QueryCache[*model.LOCInquiry]
}

// ReceivablesOption configures Receivables
type ReceivablesOption func(*Receivables)

// WithDeleteConcurrency caps concurrent deletions in DeleteInvoices
func WithDeleteConcurrency(n int) ReceivablesOption {
	return func(r *Receivables) {
		r.limit = n
	}
}

// WithInvoiceCache sets the cache of invoice listings
func WithInvoiceCache(c interfaces.QueryCache[[]*model.Invoice]) ReceivablesOption {
	return func(r *Receivables) {
		r.invoices = c
	}
}

// WithInquiryCache sets the cache of inquiry listings
func WithInquiryCache(c interfaces.QueryCache[[]*model.Inquiry]) ReceivablesOption {
	return func(r *Receivables) {
		r.inquiries = c
	}
}

// WithLOCCache sets the cache of the displayed LOC inquiry
func WithLOCCache(c interfaces.QueryCache[*model.LOCInquiry]) ReceivablesOption {
	return func(r *Receivables) {
		r.loc = c
	}
}

// NewReceivables creates a Receivables workflow. Caches not set by options
// are LRU caches of cache.DefaultSize. A nil backend is accepted; every
// operation then fails with model.ErrBackendUnavailable.
func NewReceivables(backend interfaces.Backend, opts ...ReceivablesOption) (*Receivables, error) {
	r := &Receivables{backend: backend}
	for _, opt := range opts {
		opt(r)
	}

	if r.invoices == nil {
		c, err := cache.New[[]*model.Invoice](cache.DefaultSize)
		if err != nil {
			return nil, err
		}
		r.invoices = c
	}
	if r.inquiries == nil {
		c, err := cache.New[[]*model.Inquiry](cache.DefaultSize)
		if err != nil {
			return nil, err
		}
		r.inquiries = c
	}
	if r.loc == nil {
		c, err := cache.New[*model.LOCInquiry](cache.DefaultSize)
		if err != nil {
			return nil, err
		}
		r.loc = c
	}
	return r, nil
}

func (r *Receivables) invalidate(keys ...types.QueryKey) {
	if slices.Contains(keys, types.QueryKeyLOCReceivables) {
		r.nextLOCGeneration()
	}
	r.invoices.Invalidate(keys...)
	r.inquiries.Invalidate(keys...)
	r.loc.Invalidate(keys...)
}

func (r *Receivables) nextLOCGeneration() uint64 {
	r.locMu.Lock()
	defer r.locMu.Unlock()
	r.locGen++
	return r.locGen
}

// LOCReceivables returns outstanding LOC invoices, cached
func (r *Receivables) LOCReceivables(ctx context.Context) ([]*model.Invoice, error) {
	if cached, ok := r.invoices.Get(types.QueryKeyLOCReceivables); ok {
		return cached, nil
	}
	if r.backend == nil {
		return nil, model.ErrBackendUnavailable
	}
	invoices, err := r.backend.GetLOCReceivables(ctx)
	if err != nil {
		return nil, err
	}
	r.invoices.Set(types.QueryKeyLOCReceivables, invoices)
	return invoices, nil
}

// refetchLOCReceivables replaces the cached listing with a fresh one taken at
// generation gen. When the fetch fails or the listing changed meanwhile, the
// entry is dropped instead so the next read goes to the backend.
func (r *Receivables) refetchLOCReceivables(ctx context.Context, gen uint64) error {
	invoices, err := r.backend.GetLOCReceivables(ctx)
	if err != nil {
		r.invoices.Invalidate(types.QueryKeyLOCReceivables)
		return goerr.Wrap(err, "failed to refetch LOC receivables")
	}

	r.locMu.Lock()
	defer r.locMu.Unlock()
	if r.locGen != gen {
		ctxlog.From(ctx).Debug("Discarded stale LOC receivables refetch", "generation", gen, "current", r.locGen)
		r.invoices.Invalidate(types.QueryKeyLOCReceivables)
		return nil
	}
	r.invoices.Set(types.QueryKeyLOCReceivables, invoices)
	return nil
}

// Invoices returns every invoice visible to the caller, cached
func (r *Receivables) Invoices(ctx context.Context) ([]*model.Invoice, error) {
	if cached, ok := r.invoices.Get(types.QueryKeyInvoices); ok {
		return cached, nil
	}
	if r.backend == nil {
		return nil, model.ErrBackendUnavailable
	}
	invoices, err := r.backend.GetAllInvoices(ctx)
	if err != nil {
		return nil, err
	}
	r.invoices.Set(types.QueryKeyInvoices, invoices)
	return invoices, nil
}

// Inquiries returns the inquiries visible to the caller, cached
func (r *Receivables) Inquiries(ctx context.Context) ([]*model.Inquiry, error) {
	if cached, ok := r.inquiries.Get(types.QueryKeyInquiries); ok {
		return cached, nil
	}
	if r.backend == nil {
		return nil, model.ErrBackendUnavailable
	}
	inquiries, err := r.backend.GetInquiries(ctx)
	if err != nil {
		return nil, err
	}
	r.inquiries.Set(types.QueryKeyInquiries, inquiries)
	return inquiries, nil
}

// DisplayLOCInquiry returns the LOC inquiry waiting to be invoiced, cached. It
// is nil once the inquiry was invoiced.
func (r *Receivables) DisplayLOCInquiry(ctx context.Context) (*model.LOCInquiry, error) {
	if cached, ok := r.loc.Get(types.QueryKeyLOCInquiry); ok {
		return cached, nil
	}
	if r.backend == nil {
		return nil, model.ErrBackendUnavailable
	}
	inquiry, err := r.backend.DisplayLOCInquiry(ctx)
	if err != nil {
		return nil, err
	}
	r.loc.Set(types.QueryKeyLOCInquiry, inquiry)
	return inquiry, nil
}

// DeleteInvoices deletes every id concurrently and settles all of them. The
// deleted invoices are removed from the cached LOC receivables right away and
// the listing is refetched in the background. The returned notice describes
// the outcome; its selection holds the ids that were not deleted.
func (r *Receivables) DeleteInvoices(ctx context.Context, ids []types.InvoiceID) (*model.BatchSummary[types.InvoiceID], *model.BatchNotice[types.InvoiceID]) {
	var fn batch.MutateFunc[types.InvoiceID]
	if r.backend != nil {
		fn = r.backend.DeleteInvoice
	}

	summary := batch.Execute(ctx, ids, fn, batch.WithLimit(r.limit))
	notice := message.Summarize(summary, len(ids))

	if len(summary.SuccessfulIDs) > 0 {
		deleted := summary.Succeeded()
		r.invoices.OptimisticUpdate(types.QueryKeyLOCReceivables, func(current []*model.Invoice) []*model.Invoice {
			remaining := make([]*model.Invoice, 0, len(current))
			for _, inv := range current {
				if _, ok := deleted[inv.ID]; !ok {
					remaining = append(remaining, inv)
				}
			}
			return remaining
		})
		r.invalidate(types.QueryKeyInvoices)
	}

	if r.backend != nil {
		gen := r.nextLOCGeneration()
		async.Dispatch(ctx, func(ctx context.Context) error {
			return r.refetchLOCReceivables(ctx, gen)
		})
	}

	ctxlog.From(ctx).Info("Bulk delete completed",
		"requested", len(ids),
		"deleted", summary.SuccessCount(),
		"failed", summary.FailedCount(),
		"notice", notice.Message,
	)
	return summary, notice
}

// DeleteInvoice deletes one invoice. A backend that reports nothing deleted
// yields model.ErrDeleteRejected.
func (r *Receivables) DeleteInvoice(ctx context.Context, id types.InvoiceID) error {
	if r.backend == nil {
		return model.ErrBackendUnavailable
	}

	deleted, err := r.backend.DeleteInvoice(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrDeleteRejected
	}

	r.invalidate(types.QueryKeyInvoices, types.QueryKeyInquiries, types.QueryKeyLOCReceivables)
	return nil
}

func (r *Receivables) CreateInvoice(ctx context.Context, req *model.CreateInvoiceRequest) (types.InvoiceID, error) {
	if r.backend == nil {
		return 0, model.ErrBackendUnavailable
	}
	id, err := r.backend.CreateInvoice(ctx, req)
	if err != nil {
		return 0, err
	}
	r.invalidate(types.QueryKeyInvoices, types.QueryKeyLOCReceivables)
	return id, nil
}

func (r *Receivables) CreateInquiry(ctx context.Context, details string) (types.InquiryID, error) {
	if r.backend == nil {
		return 0, model.ErrBackendUnavailable
	}
	id, err := r.backend.CreateInquiry(ctx, details)
	if err != nil {
		return 0, err
	}
	r.invalidate(types.QueryKeyInquiries)
	return id, nil
}

func (r *Receivables) MarkInquiryAsInvoiced(ctx context.Context, id types.InquiryID, isInvoiced bool) (bool, error) {
	if r.backend == nil {
		return false, model.ErrBackendUnavailable
	}
	ok, err := r.backend.MarkInquiryAsInvoiced(ctx, id, isInvoiced)
	if err != nil {
		return false, err
	}
	r.invalidate(types.QueryKeyInquiries)
	return ok, nil
}

// CreateLOCInvoice invoices the displayed LOC inquiry
func (r *Receivables) CreateLOCInvoice(ctx context.Context, invoiceDate, transactionDate string) (types.InvoiceID, error) {
	if r.backend == nil {
		return 0, model.ErrBackendUnavailable
	}
	id, err := r.backend.CreateLOCInvoice(ctx, invoiceDate, transactionDate)
	if err != nil {
		return 0, err
	}
	r.invalidate(types.QueryKeyLOCInquiry, types.QueryKeyLOCReceivables, types.QueryKeyInvoices)
	return id, nil
}

// ResetLOCSample removes LOC receivables and restores the sample inquiry
func (r *Receivables) ResetLOCSample(ctx context.Context) error {
	if r.backend == nil {
		return model.ErrBackendUnavailable
	}
	if _, err := r.backend.DeleteLOCInvoice(ctx); err != nil {
		return err
	}
	r.invalidate(types.QueryKeyLOCInquiry, types.QueryKeyInvoices, types.QueryKeyInquiries, types.QueryKeyLOCReceivables)
	return nil
}
