package interfaces

import (
	"context"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Invoice operations
	PutInvoice(ctx context.Context, invoice *model.Invoice) error
	GetInvoice(ctx context.Context, id types.InvoiceID) (*model.Invoice, error)
	ListInvoices(ctx context.Context) ([]*model.Invoice, error)
	// DeleteInvoice reports false when the invoice does not exist
	DeleteInvoice(ctx context.Context, id types.InvoiceID) (bool, error)
	GetNextInvoiceID(ctx context.Context) (types.InvoiceID, error)

	// Inquiry operations
	PutInquiry(ctx context.Context, inquiry *model.Inquiry) error
	GetInquiry(ctx context.Context, id types.InquiryID) (*model.Inquiry, error)
	ListInquiries(ctx context.Context) ([]*model.Inquiry, error)
	GetNextInquiryID(ctx context.Context) (types.InquiryID, error)

	// LOC inquiry slot; GetLOCInquiry returns nil when the slot is empty
	GetLOCInquiry(ctx context.Context) (*model.LOCInquiry, error)
	PutLOCInquiry(ctx context.Context, inquiry *model.LOCInquiry) error
	ClearLOCInquiry(ctx context.Context) error

	// User operations
	SaveUserProfile(ctx context.Context, principal types.Principal, profile *model.UserProfile) error
	GetUserProfile(ctx context.Context, principal types.Principal) (*model.UserProfile, error)
	SaveUserRole(ctx context.Context, principal types.Principal, role types.UserRole) error
	// GetUserRole returns an empty role when none was assigned
	GetUserRole(ctx context.Context, principal types.Principal) (types.UserRole, error)

	// Close closes the repository connection
	Close() error
}
