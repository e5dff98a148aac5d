package interfaces

import (
	"context"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
)

//go:generate moq -out mocks/backend_mock.go -pkg mocks . Backend

// Backend is the billing service surface. The caller identity is taken from
// model.AuthContext in ctx. It is implemented in-process by usecase.Billing
// and remotely by client.Client.
type Backend interface {
	// Invoices
	CreateInvoice(ctx context.Context, req *model.CreateInvoiceRequest) (types.InvoiceID, error)
	GetInvoice(ctx context.Context, id types.InvoiceID) (*model.Invoice, error)
	GetAllInvoices(ctx context.Context) ([]*model.Invoice, error)
	GetInvoicesByClient(ctx context.Context, clientName string) ([]*model.Invoice, error)
	GetInvoicesByStatus(ctx context.Context, status types.InvoiceStatus) ([]*model.Invoice, error)
	GetLOCReceivables(ctx context.Context) ([]*model.Invoice, error)
	MarkInvoiceAsPaid(ctx context.Context, id types.InvoiceID) (bool, error)
	// DeleteInvoice reports false without error when nothing was deleted
	DeleteInvoice(ctx context.Context, id types.InvoiceID) (bool, error)

	// Inquiries
	CreateInquiry(ctx context.Context, details string) (types.InquiryID, error)
	GetInquiries(ctx context.Context) ([]*model.Inquiry, error)
	MarkInquiryAsInvoiced(ctx context.Context, id types.InquiryID, isInvoiced bool) (bool, error)

	// LOC inquiry
	DisplayLOCInquiry(ctx context.Context) (*model.LOCInquiry, error)
	CreateLOCInvoice(ctx context.Context, invoiceDate, transactionDate string) (types.InvoiceID, error)
	DeleteLOCInvoice(ctx context.Context) (bool, error)

	// Users
	GetCallerUserProfile(ctx context.Context) (*model.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile *model.UserProfile) error
	GetUserProfile(ctx context.Context, principal types.Principal) (*model.UserProfile, error)
	GetCallerUserRole(ctx context.Context) (types.UserRole, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignCallerUserRole(ctx context.Context, principal types.Principal, role types.UserRole) error
}
