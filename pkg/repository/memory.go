package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu             sync.RWMutex
	invoices       map[types.InvoiceID]*model.Invoice
	inquiries      map[types.InquiryID]*model.Inquiry
	profiles       map[types.Principal]*model.UserProfile
	roles          map[types.Principal]types.UserRole
	locInquiry     *model.LOCInquiry
	invoiceCounter types.InvoiceID
	inquiryCounter types.InquiryID
}

// NewMemory creates a new memory repository seeded with the sample LOC inquiry
func NewMemory() interfaces.Repository {
	return &Memory{
		invoices:   make(map[types.InvoiceID]*model.Invoice),
		inquiries:  make(map[types.InquiryID]*model.Inquiry),
		profiles:   make(map[types.Principal]*model.UserProfile),
		roles:      make(map[types.Principal]types.UserRole),
		locInquiry: model.DefaultLOCInquiry(),
	}
}

// PutInvoice saves an invoice to memory
func (m *Memory) PutInvoice(ctx context.Context, invoice *model.Invoice) error {
	if invoice == nil {
		return goerr.New("invoice is nil")
	}
	if invoice.ID == 0 {
		return goerr.New("invoice ID must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	invoiceCopy := *invoice
	m.invoices[invoice.ID] = &invoiceCopy
	if invoice.ID > m.invoiceCounter {
		m.invoiceCounter = invoice.ID
	}
	return nil
}

// GetInvoice retrieves an invoice by ID
func (m *Memory) GetInvoice(ctx context.Context, id types.InvoiceID) (*model.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	invoice, exists := m.invoices[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrInvoiceNotFound, "failed to get invoice", goerr.V("id", id))
	}

	invoiceCopy := *invoice
	return &invoiceCopy, nil
}

// ListInvoices lists all invoices ordered by ID
func (m *Memory) ListInvoices(ctx context.Context) ([]*model.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	invoices := make([]*model.Invoice, 0, len(m.invoices))
	for _, invoice := range m.invoices {
		invoiceCopy := *invoice
		invoices = append(invoices, &invoiceCopy)
	}

	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].ID < invoices[j].ID
	})
	return invoices, nil
}

// DeleteInvoice deletes an invoice from memory
func (m *Memory) DeleteInvoice(ctx context.Context, id types.InvoiceID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.invoices[id]; !exists {
		return false, nil
	}
	delete(m.invoices, id)
	return true, nil
}

// GetNextInvoiceID returns the next available invoice ID
func (m *Memory) GetNextInvoiceID(ctx context.Context) (types.InvoiceID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invoiceCounter++
	return m.invoiceCounter, nil
}

// PutInquiry saves an inquiry to memory
func (m *Memory) PutInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	if inquiry == nil {
		return goerr.New("inquiry is nil")
	}
	if inquiry.ID == 0 {
		return goerr.New("inquiry ID must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	inquiryCopy := *inquiry
	m.inquiries[inquiry.ID] = &inquiryCopy
	if inquiry.ID > m.inquiryCounter {
		m.inquiryCounter = inquiry.ID
	}
	return nil
}

// GetInquiry retrieves an inquiry by ID
func (m *Memory) GetInquiry(ctx context.Context, id types.InquiryID) (*model.Inquiry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inquiry, exists := m.inquiries[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrInquiryNotFound, "failed to get inquiry", goerr.V("id", id))
	}

	inquiryCopy := *inquiry
	return &inquiryCopy, nil
}

// ListInquiries lists all inquiries ordered by ID
func (m *Memory) ListInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inquiries := make([]*model.Inquiry, 0, len(m.inquiries))
	for _, inquiry := range m.inquiries {
		inquiryCopy := *inquiry
		inquiries = append(inquiries, &inquiryCopy)
	}

	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].ID < inquiries[j].ID
	})
	return inquiries, nil
}

// GetNextInquiryID returns the next available inquiry ID
func (m *Memory) GetNextInquiryID(ctx context.Context) (types.InquiryID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inquiryCounter++
	return m.inquiryCounter, nil
}

// GetLOCInquiry returns the pending LOC inquiry or nil
func (m *Memory) GetLOCInquiry(ctx context.Context) (*model.LOCInquiry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.locInquiry == nil {
		return nil, nil
	}
	inquiryCopy := *m.locInquiry
	return &inquiryCopy, nil
}

// PutLOCInquiry replaces the pending LOC inquiry
func (m *Memory) PutLOCInquiry(ctx context.Context, inquiry *model.LOCInquiry) error {
	if inquiry == nil {
		return goerr.New("LOC inquiry is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	inquiryCopy := *inquiry
	m.locInquiry = &inquiryCopy
	return nil
}

// ClearLOCInquiry empties the LOC inquiry slot
func (m *Memory) ClearLOCInquiry(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locInquiry = nil
	return nil
}

// SaveUserProfile saves a user profile to memory
func (m *Memory) SaveUserProfile(ctx context.Context, principal types.Principal, profile *model.UserProfile) error {
	if principal.IsAnonymous() {
		return goerr.New("principal is empty")
	}
	if profile == nil {
		return goerr.New("profile is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profileCopy := *profile
	m.profiles[principal] = &profileCopy
	return nil
}

// GetUserProfile retrieves a user profile by principal
func (m *Memory) GetUserProfile(ctx context.Context, principal types.Principal) (*model.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, exists := m.profiles[principal]
	if !exists {
		return nil, goerr.Wrap(model.ErrProfileNotFound, "failed to get user profile",
			goerr.V("principal", principal))
	}

	profileCopy := *profile
	return &profileCopy, nil
}

// SaveUserRole assigns a role to a principal
func (m *Memory) SaveUserRole(ctx context.Context, principal types.Principal, role types.UserRole) error {
	if principal.IsAnonymous() {
		return goerr.New("principal is empty")
	}
	if !role.IsValid() {
		return goerr.New("invalid user role", goerr.V("role", role))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.roles[principal] = role
	return nil
}

// GetUserRole returns the role assigned to a principal
func (m *Memory) GetUserRole(ctx context.Context, principal types.Principal) (types.UserRole, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.roles[principal], nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
