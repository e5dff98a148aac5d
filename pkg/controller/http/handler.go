package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/careledger/careledger/pkg/utils/apperr"
	"github.com/careledger/careledger/pkg/utils/batch"
	"github.com/careledger/careledger/pkg/utils/message"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type handler struct {
	backend     interfaces.Backend
	deleteLimit int
}

func (h *handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	var (
		invoices []*model.Invoice
		err      error
	)
	switch q := r.URL.Query(); {
	case q.Get("client") != "":
		invoices, err = h.backend.GetInvoicesByClient(r.Context(), q.Get("client"))
	case q.Get("status") != "":
		invoices, err = h.backend.GetInvoicesByStatus(r.Context(), types.InvoiceStatus(q.Get("status")))
	default:
		invoices, err = h.backend.GetAllInvoices(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, invoices)
}

func (h *handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInvoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := h.backend.CreateInvoice(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, model.InvoiceCreatedResponse{ID: id})
}

func (h *handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceIDParam(w, r)
	if !ok {
		return
	}
	invoice, err := h.backend.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, invoice)
}

func (h *handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceIDParam(w, r)
	if !ok {
		return
	}
	deleted, err := h.backend.DeleteInvoice(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ResultResponse{OK: deleted})
}

func (h *handler) markInvoiceAsPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceIDParam(w, r)
	if !ok {
		return
	}
	updated, err := h.backend.MarkInvoiceAsPaid(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ResultResponse{OK: updated})
}

// MaxBulkDeleteIDs bounds the identifiers accepted by one bulk delete request
const MaxBulkDeleteIDs = 500

var errInternal = goerr.New("Internal server error")

// bulkDeleteInvoices settles every deletion and answers 200 once the request
// is valid; failures are reported per item in the summary.
func (h *handler) bulkDeleteInvoices(w http.ResponseWriter, r *http.Request) {
	var req model.BulkDeleteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, r, goerr.New("ids are required", goerr.T(model.ErrTagInvalid)))
		return
	}
	if len(req.IDs) > MaxBulkDeleteIDs {
		writeError(w, r, goerr.New("too many ids",
			goerr.V("count", len(req.IDs)),
			goerr.V("max", MaxBulkDeleteIDs),
			goerr.T(model.ErrTagInvalid)))
		return
	}

	summary := batch.Execute(r.Context(), req.IDs, h.deleteOne, batch.WithLimit(h.deleteLimit))
	notice := message.Summarize(summary, len(req.IDs))

	ctxlog.From(r.Context()).Info("Bulk delete request settled",
		"requested", len(req.IDs),
		"deleted", summary.SuccessCount(),
		"failed", summary.FailedCount(),
	)
	writeJSON(w, r, http.StatusOK, model.BulkDeleteResponse{Summary: summary, Notice: notice})
}

// deleteOne hides failures that are not the caller's fault the same way writeError does
func (h *handler) deleteOne(ctx context.Context, id types.InvoiceID) (bool, error) {
	deleted, err := h.backend.DeleteInvoice(ctx, id)
	if err != nil && statusOf(err) == http.StatusInternalServerError {
		apperr.Handle(ctx, goerr.Wrap(err, "bulk delete item failed", goerr.V("id", id)))
		return false, errInternal
	}
	return deleted, err
}

func (h *handler) listLOCReceivables(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.backend.GetLOCReceivables(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, invoices)
}

func (h *handler) displayLOCInquiry(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.backend.DisplayLOCInquiry(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.LOCInquiryResponse{Inquiry: inquiry})
}

func (h *handler) createLOCInvoice(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLOCInvoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := h.backend.CreateLOCInvoice(r.Context(), req.InvoiceDate, req.TransactionDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, model.InvoiceCreatedResponse{ID: id})
}

func (h *handler) deleteLOCInvoice(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.backend.DeleteLOCInvoice(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ResultResponse{OK: deleted})
}

func (h *handler) listInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.backend.GetInquiries(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, inquiries)
}

func (h *handler) createInquiry(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInquiryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := h.backend.CreateInquiry(r.Context(), req.Details)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, model.InquiryCreatedResponse{ID: id})
}

func (h *handler) markInquiryAsInvoiced(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseInquiryID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "bad inquiry ID", goerr.T(model.ErrTagInvalid)))
		return
	}
	var req model.MarkInquiryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	updated, err := h.backend.MarkInquiryAsInvoiced(r.Context(), id, req.IsInvoiced)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ResultResponse{OK: updated})
}

func (h *handler) getCallerProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.backend.GetCallerUserProfile(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ProfileResponse{Profile: profile})
}

func (h *handler) saveCallerProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.UserProfile
	if !decodeBody(w, r, &profile) {
		return
	}
	if err := h.backend.SaveCallerUserProfile(r.Context(), &profile); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ResultResponse{OK: true})
}

func (h *handler) getUserProfile(w http.ResponseWriter, r *http.Request) {
	principal := types.Principal(chi.URLParam(r, "principal"))
	profile, err := h.backend.GetUserProfile(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ProfileResponse{Profile: profile})
}

func (h *handler) getCallerRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.backend.GetCallerUserRole(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.RoleResponse{Role: role, IsAdmin: role == types.UserRoleAdmin})
}

func (h *handler) assignUserRole(w http.ResponseWriter, r *http.Request) {
	var req model.AssignRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	principal := types.Principal(chi.URLParam(r, "principal"))
	if err := h.backend.AssignCallerUserRole(r.Context(), principal, req.Role); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, model.ResultResponse{OK: true})
}

func invoiceIDParam(w http.ResponseWriter, r *http.Request) (types.InvoiceID, bool) {
	id, err := types.ParseInvoiceID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "bad invoice ID", goerr.T(model.ErrTagInvalid)))
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagInvalid)))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError answers with the backend error text so clients can classify it.
// Errors that are not the caller's fault are not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = errInternal.Error()
	}
	writeJSON(w, r, status, model.ErrorResponse{Error: msg})
}

func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagUnauthenticated):
		return http.StatusUnauthorized
	case goerr.HasTag(err, model.ErrTagForbidden):
		return http.StatusForbidden
	case goerr.HasTag(err, model.ErrTagNotFound):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagInvalid):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
