package model

import (
	"strings"
	"time"

	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// LOCProjectName is the project name carried by invoices created from a LOC inquiry
const LOCProjectName = "LOC Inquiry"

// Invoice represents a billable claim
type Invoice struct {
	ID              types.InvoiceID     `json:"id"`
	Status          types.InvoiceStatus `json:"status"`
	ProjectName     string              `json:"projectName"`
	ClientName      string              `json:"clientName"`
	Owner           types.Principal     `json:"owner,omitempty"` // empty for invoices created anonymously
	DueDate         string              `json:"dueDate"`
	AmountDue       float64             `json:"amountDue"`
	PayerSource     string              `json:"payerSource,omitempty"`
	InvoiceDate     string              `json:"invoiceDate,omitempty"`
	TransactionDate string              `json:"transactionDate,omitempty"`
	SocDate         string              `json:"socDate,omitempty"`
	DischargeDate   string              `json:"dischargeDate,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// CreateInvoiceRequest holds the caller supplied fields of a new invoice
type CreateInvoiceRequest struct {
	ProjectName     string  `json:"projectName"`
	AmountDue       float64 `json:"amountDue"`
	DueDate         string  `json:"dueDate"`
	ClientName      string  `json:"clientName"`
	PayerSource     string  `json:"payerSource,omitempty"`
	InvoiceDate     string  `json:"invoiceDate,omitempty"`
	TransactionDate string  `json:"transactionDate,omitempty"`
	SocDate         string  `json:"socDate,omitempty"`
	DischargeDate   string  `json:"dischargeDate,omitempty"`
}

// Validate checks the request fields
func (r *CreateInvoiceRequest) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return goerr.New("project name is required", goerr.T(ErrTagInvalid))
	}
	if strings.TrimSpace(r.ClientName) == "" {
		return goerr.New("client name is required", goerr.T(ErrTagInvalid))
	}
	if r.AmountDue < 0 {
		return goerr.New("amount due must not be negative",
			goerr.V("amountDue", r.AmountDue),
			goerr.T(ErrTagInvalid))
	}
	return nil
}

// NewInvoice creates a pending invoice owned by owner
func NewInvoice(id types.InvoiceID, owner types.Principal, req *CreateInvoiceRequest) (*Invoice, error) {
	if id == 0 {
		return nil, goerr.New("invoice ID must be positive", goerr.T(ErrTagInvalid))
	}
	if req == nil {
		return nil, goerr.New("invoice request is nil", goerr.T(ErrTagInvalid))
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &Invoice{
		ID:              id,
		Status:          types.InvoiceStatusPending,
		ProjectName:     req.ProjectName,
		ClientName:      req.ClientName,
		Owner:           owner,
		DueDate:         req.DueDate,
		AmountDue:       req.AmountDue,
		PayerSource:     req.PayerSource,
		InvoiceDate:     req.InvoiceDate,
		TransactionDate: req.TransactionDate,
		SocDate:         req.SocDate,
		DischargeDate:   req.DischargeDate,
		CreatedAt:       time.Now(),
	}, nil
}

// IsLOCReceivable reports whether the invoice is an outstanding LOC receivable
func (i *Invoice) IsLOCReceivable() bool {
	return i.ProjectName == LOCProjectName && i.Status == types.InvoiceStatusPending
}

// HasOwner reports whether the invoice was created by an authenticated caller
func (i *Invoice) HasOwner() bool {
	return !i.Owner.IsAnonymous()
}

// MarkPaid sets the invoice status to paid
func (i *Invoice) MarkPaid() {
	i.Status = types.InvoiceStatusPaid
}
