package usecase

import (
	"context"
	"errors"

	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Billing implements the billing backend over a repository. Authorization
// errors are returned as the bare sentinels in model so their text reaches
// remote callers unchanged.
type Billing struct {
	repo interfaces.Repository
}

var _ interfaces.Backend = (*Billing)(nil)

// NewBilling creates a new Billing backend
func NewBilling(repo interfaces.Repository) *Billing {
	return &Billing{repo: repo}
}

// caller resolves the principal in ctx and its current role
func (b *Billing) caller(ctx context.Context) (*model.AuthContext, error) {
	authCtx := model.GetOrAnonymous(ctx)
	if authCtx.Principal.IsAnonymous() {
		return model.NewAuthContext("", types.UserRoleGuest), nil
	}

	role, err := b.repo.GetUserRole(ctx, authCtx.Principal)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve caller role", goerr.V("principal", authCtx.Principal))
	}
	return model.NewAuthContext(authCtx.Principal, role), nil
}

// requireUser returns the caller when it may use user features, denied otherwise
func (b *Billing) requireUser(ctx context.Context, denied error) (*model.AuthContext, error) {
	c, err := b.caller(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.CanWrite() {
		return nil, denied
	}
	return c, nil
}

func (b *Billing) CreateInvoice(ctx context.Context, req *model.CreateInvoiceRequest) (types.InvoiceID, error) {
	c, err := b.requireUser(ctx, model.ErrOnlyUsersCreateInvoices)
	if err != nil {
		return 0, err
	}
	return b.createInvoice(ctx, c.Principal, req)
}

func (b *Billing) createInvoice(ctx context.Context, owner types.Principal, req *model.CreateInvoiceRequest) (types.InvoiceID, error) {
	id, err := b.repo.GetNextInvoiceID(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to allocate invoice ID")
	}

	invoice, err := model.NewInvoice(id, owner, req)
	if err != nil {
		return 0, err
	}
	if err := b.repo.PutInvoice(ctx, invoice); err != nil {
		return 0, goerr.Wrap(err, "failed to save invoice", goerr.V("id", id))
	}

	ctxlog.From(ctx).Info("Invoice created",
		"id", id,
		"owner", owner,
		"project", invoice.ProjectName,
	)
	return id, nil
}

func (b *Billing) GetInvoice(ctx context.Context, id types.InvoiceID) (*model.Invoice, error) {
	return b.repo.GetInvoice(ctx, id)
}

func (b *Billing) GetAllInvoices(ctx context.Context) ([]*model.Invoice, error) {
	if _, err := b.requireUser(ctx, model.ErrOnlyUsersViewInvoices); err != nil {
		return nil, err
	}
	return b.listInvoices(ctx, func(*model.Invoice) bool { return true })
}

func (b *Billing) GetInvoicesByClient(ctx context.Context, clientName string) ([]*model.Invoice, error) {
	if _, err := b.requireUser(ctx, model.ErrOnlyUsersViewInvoices); err != nil {
		return nil, err
	}
	return b.listInvoices(ctx, func(inv *model.Invoice) bool { return inv.ClientName == clientName })
}

func (b *Billing) GetInvoicesByStatus(ctx context.Context, status types.InvoiceStatus) ([]*model.Invoice, error) {
	if _, err := b.requireUser(ctx, model.ErrOnlyUsersViewInvoices); err != nil {
		return nil, err
	}
	return b.listInvoices(ctx, func(inv *model.Invoice) bool { return inv.Status == status })
}

func (b *Billing) GetLOCReceivables(ctx context.Context) ([]*model.Invoice, error) {
	return b.listInvoices(ctx, (*model.Invoice).IsLOCReceivable)
}

func (b *Billing) listInvoices(ctx context.Context, match func(*model.Invoice) bool) ([]*model.Invoice, error) {
	invoices, err := b.repo.ListInvoices(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list invoices")
	}

	result := make([]*model.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if match(inv) {
			result = append(result, inv)
		}
	}
	return result, nil
}

func (b *Billing) MarkInvoiceAsPaid(ctx context.Context, id types.InvoiceID) (bool, error) {
	if _, err := b.requireUser(ctx, model.ErrOnlyUsersUpdateInvoices); err != nil {
		return false, err
	}

	invoice, err := b.repo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrInvoiceNotFound) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get invoice", goerr.V("id", id))
	}

	invoice.MarkPaid()
	if err := b.repo.PutInvoice(ctx, invoice); err != nil {
		return false, goerr.Wrap(err, "failed to save invoice", goerr.V("id", id))
	}
	return true, nil
}

// DeleteInvoice deletes one invoice. Anonymous callers are rejected, invoices
// without an owner need an admin, and everything else needs the owner or an
// admin. A missing invoice reports false.
func (b *Billing) DeleteInvoice(ctx context.Context, id types.InvoiceID) (bool, error) {
	c, err := b.caller(ctx)
	if err != nil {
		return false, err
	}
	if c.Principal.IsAnonymous() {
		return false, model.ErrOnlyAuthenticatedDelete
	}

	invoice, err := b.repo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrInvoiceNotFound) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get invoice", goerr.V("id", id))
	}

	switch {
	case !invoice.HasOwner() && !c.IsAdmin():
		return false, model.ErrOnlyAdminsDelete
	case invoice.HasOwner() && invoice.Owner != c.Principal && !c.IsAdmin():
		return false, model.ErrNotOwner
	}

	deleted, err := b.repo.DeleteInvoice(ctx, id)
	if err != nil {
		return false, goerr.Wrap(err, "failed to delete invoice", goerr.V("id", id))
	}
	if deleted {
		ctxlog.From(ctx).Info("Invoice deleted", "id", id, "by", c.Principal)
	}
	return deleted, nil
}

func (b *Billing) CreateInquiry(ctx context.Context, details string) (types.InquiryID, error) {
	c, err := b.requireUser(ctx, model.ErrOnlyUsersInquiries)
	if err != nil {
		return 0, err
	}

	id, err := b.repo.GetNextInquiryID(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to allocate inquiry ID")
	}
	inquiry, err := model.NewInquiry(id, c.Principal, details)
	if err != nil {
		return 0, err
	}
	if err := b.repo.PutInquiry(ctx, inquiry); err != nil {
		return 0, goerr.Wrap(err, "failed to save inquiry", goerr.V("id", id))
	}
	return id, nil
}

// GetInquiries returns every inquiry to admins and the caller's own to users
func (b *Billing) GetInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	c, err := b.requireUser(ctx, model.ErrOnlyUsersInquiries)
	if err != nil {
		return nil, err
	}

	inquiries, err := b.repo.ListInquiries(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list inquiries")
	}
	if c.IsAdmin() {
		return inquiries, nil
	}

	own := make([]*model.Inquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		if inq.Owner == c.Principal {
			own = append(own, inq)
		}
	}
	return own, nil
}

func (b *Billing) MarkInquiryAsInvoiced(ctx context.Context, id types.InquiryID, isInvoiced bool) (bool, error) {
	c, err := b.requireUser(ctx, model.ErrOnlyUsersInquiries)
	if err != nil {
		return false, err
	}

	inquiry, err := b.repo.GetInquiry(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrInquiryNotFound) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get inquiry", goerr.V("id", id))
	}
	if inquiry.Owner != c.Principal && !c.IsAdmin() {
		return false, model.ErrNotInquiryOwner
	}

	inquiry.IsInvoiced = isInvoiced
	if err := b.repo.PutInquiry(ctx, inquiry); err != nil {
		return false, goerr.Wrap(err, "failed to save inquiry", goerr.V("id", id))
	}
	return true, nil
}

// DisplayLOCInquiry returns the LOC inquiry waiting to be invoiced, or nil
func (b *Billing) DisplayLOCInquiry(ctx context.Context) (*model.LOCInquiry, error) {
	inquiry, err := b.repo.GetLOCInquiry(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get LOC inquiry")
	}
	return inquiry, nil
}

// CreateLOCInvoice turns the displayed LOC inquiry into an owner-less pending
// invoice and empties the slot.
func (b *Billing) CreateLOCInvoice(ctx context.Context, invoiceDate, transactionDate string) (types.InvoiceID, error) {
	inquiry, err := b.repo.GetLOCInquiry(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get LOC inquiry")
	}
	if inquiry == nil {
		return 0, model.ErrLOCInquiryNotFound
	}

	id, err := b.createInvoice(ctx, "", inquiry.ToInvoiceRequest(invoiceDate, transactionDate))
	if err != nil {
		return 0, err
	}
	if err := b.repo.ClearLOCInquiry(ctx); err != nil {
		return 0, goerr.Wrap(err, "failed to clear LOC inquiry", goerr.V("invoice_id", id))
	}
	return id, nil
}

// DeleteLOCInvoice removes every outstanding LOC receivable and restores the
// sample LOC inquiry.
func (b *Billing) DeleteLOCInvoice(ctx context.Context) (bool, error) {
	c, err := b.caller(ctx)
	if err != nil {
		return false, err
	}
	if !c.IsAdmin() {
		return false, model.ErrOnlyAdminsReset
	}

	receivables, err := b.GetLOCReceivables(ctx)
	if err != nil {
		return false, err
	}
	for _, inv := range receivables {
		if _, err := b.repo.DeleteInvoice(ctx, inv.ID); err != nil {
			return false, goerr.Wrap(err, "failed to delete LOC receivable", goerr.V("id", inv.ID))
		}
	}
	if err := b.repo.PutLOCInquiry(ctx, model.DefaultLOCInquiry()); err != nil {
		return false, goerr.Wrap(err, "failed to restore LOC inquiry")
	}

	ctxlog.From(ctx).Info("LOC sample reset", "removed", len(receivables), "by", c.Principal)
	return true, nil
}

// GetCallerUserProfile returns the caller's profile, or nil when none was saved
func (b *Billing) GetCallerUserProfile(ctx context.Context) (*model.UserProfile, error) {
	c, err := b.requireUser(ctx, model.ErrOnlyUsersProfiles)
	if err != nil {
		return nil, err
	}
	return b.profile(ctx, c.Principal)
}

func (b *Billing) SaveCallerUserProfile(ctx context.Context, profile *model.UserProfile) error {
	c, err := b.requireUser(ctx, model.ErrOnlyUsersProfiles)
	if err != nil {
		return err
	}
	if profile == nil {
		return goerr.New("profile is nil", goerr.T(model.ErrTagInvalid))
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := b.repo.SaveUserProfile(ctx, c.Principal, profile); err != nil {
		return goerr.Wrap(err, "failed to save user profile", goerr.V("principal", c.Principal))
	}
	return nil
}

// GetUserProfile returns another principal's profile; only admins may look at
// profiles other than their own.
func (b *Billing) GetUserProfile(ctx context.Context, principal types.Principal) (*model.UserProfile, error) {
	c, err := b.caller(ctx)
	if err != nil {
		return nil, err
	}
	if principal != c.Principal && !c.IsAdmin() {
		return nil, model.ErrNotProfileOwner
	}
	return b.profile(ctx, principal)
}

func (b *Billing) profile(ctx context.Context, principal types.Principal) (*model.UserProfile, error) {
	profile, err := b.repo.GetUserProfile(ctx, principal)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get user profile", goerr.V("principal", principal))
	}
	return profile, nil
}

func (b *Billing) GetCallerUserRole(ctx context.Context) (types.UserRole, error) {
	c, err := b.caller(ctx)
	if err != nil {
		return "", err
	}
	return c.Role, nil
}

func (b *Billing) IsCallerAdmin(ctx context.Context) (bool, error) {
	c, err := b.caller(ctx)
	if err != nil {
		return false, err
	}
	return c.IsAdmin(), nil
}

func (b *Billing) AssignCallerUserRole(ctx context.Context, principal types.Principal, role types.UserRole) error {
	c, err := b.caller(ctx)
	if err != nil {
		return err
	}
	if !c.IsAdmin() {
		return model.ErrOnlyAdminsAssignRoles
	}
	if !role.IsValid() || principal.IsAnonymous() {
		return goerr.Wrap(model.ErrInvalidRole, "failed to assign role",
			goerr.V("principal", principal),
			goerr.V("role", role))
	}

	if err := b.repo.SaveUserRole(ctx, principal, role); err != nil {
		return goerr.Wrap(err, "failed to save user role", goerr.V("principal", principal))
	}
	ctxlog.From(ctx).Info("User role assigned", "principal", principal, "role", role, "by", c.Principal)
	return nil
}

// SeedRoles assigns roles without an authorization check. It is used at
// startup to bootstrap administrators.
func (b *Billing) SeedRoles(ctx context.Context, roles map[types.Principal]types.UserRole) error {
	for principal, role := range roles {
		if err := b.repo.SaveUserRole(ctx, principal, role); err != nil {
			return goerr.Wrap(err, "failed to seed user role",
				goerr.V("principal", principal),
				goerr.V("role", role))
		}
	}
	return nil
}
