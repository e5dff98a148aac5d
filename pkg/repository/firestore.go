package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	invoicesCollection  = "invoices"
	inquiriesCollection = "inquiries"
	usersCollection     = "users"
	stateCollection     = "state"
	countersCollection  = "counters"

	// Document IDs
	invoiceCounterDocID = "invoice"
	inquiryCounterDocID = "inquiry"
	locInquiryDocID     = "loc_inquiry"

	// Field names
	fieldCurrentNumber = "current_number"
)

// Firestore does not encode uint64, so records are stored through these documents.
type invoiceDoc struct {
	ID              int64     `firestore:"id"`
	Status          string    `firestore:"status"`
	ProjectName     string    `firestore:"project_name"`
	ClientName      string    `firestore:"client_name"`
	Owner           string    `firestore:"owner"`
	DueDate         string    `firestore:"due_date"`
	AmountDue       float64   `firestore:"amount_due"`
	PayerSource     string    `firestore:"payer_source"`
	InvoiceDate     string    `firestore:"invoice_date"`
	TransactionDate string    `firestore:"transaction_date"`
	SocDate         string    `firestore:"soc_date"`
	DischargeDate   string    `firestore:"discharge_date"`
	CreatedAt       time.Time `firestore:"created_at"`
}

func newInvoiceDoc(i *model.Invoice) *invoiceDoc {
	return &invoiceDoc{
		ID:              int64(i.ID),
		Status:          i.Status.String(),
		ProjectName:     i.ProjectName,
		ClientName:      i.ClientName,
		Owner:           i.Owner.String(),
		DueDate:         i.DueDate,
		AmountDue:       i.AmountDue,
		PayerSource:     i.PayerSource,
		InvoiceDate:     i.InvoiceDate,
		TransactionDate: i.TransactionDate,
		SocDate:         i.SocDate,
		DischargeDate:   i.DischargeDate,
		CreatedAt:       i.CreatedAt,
	}
}

func (d *invoiceDoc) toModel() *model.Invoice {
	return &model.Invoice{
		ID:              types.InvoiceID(d.ID),
		Status:          types.InvoiceStatus(d.Status),
		ProjectName:     d.ProjectName,
		ClientName:      d.ClientName,
		Owner:           types.Principal(d.Owner),
		DueDate:         d.DueDate,
		AmountDue:       d.AmountDue,
		PayerSource:     d.PayerSource,
		InvoiceDate:     d.InvoiceDate,
		TransactionDate: d.TransactionDate,
		SocDate:         d.SocDate,
		DischargeDate:   d.DischargeDate,
		CreatedAt:       d.CreatedAt,
	}
}

type inquiryDoc struct {
	ID         int64     `firestore:"id"`
	IsInvoiced bool      `firestore:"is_invoiced"`
	Owner      string    `firestore:"owner"`
	Details    string    `firestore:"details"`
	CreatedAt  time.Time `firestore:"created_at"`
}

type locInquiryDoc struct {
	Cleared bool              `firestore:"cleared"`
	Inquiry *model.LOCInquiry `firestore:"inquiry"`
}

type userDoc struct {
	Profile *model.UserProfile `firestore:"profile,omitempty"`
	Role    string             `firestore:"role,omitempty"`
}

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions; an empty collection is fine
	_, err = client.Collection(invoicesCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutInvoice saves an invoice to Firestore
func (f *Firestore) PutInvoice(ctx context.Context, invoice *model.Invoice) error {
	if invoice == nil {
		return goerr.New("invoice is nil")
	}
	if invoice.ID == 0 {
		return goerr.New("invoice ID must be positive")
	}

	_, err := f.client.Collection(invoicesCollection).Doc(invoice.ID.String()).Set(ctx, newInvoiceDoc(invoice))
	if err != nil {
		return goerr.Wrap(err, "failed to save invoice to firestore", goerr.V("id", invoice.ID))
	}
	return nil
}

// GetInvoice retrieves an invoice by ID
func (f *Firestore) GetInvoice(ctx context.Context, id types.InvoiceID) (*model.Invoice, error) {
	doc, err := f.client.Collection(invoicesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrInvoiceNotFound, "failed to get invoice", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get invoice from firestore", goerr.V("id", id))
	}

	var d invoiceDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode invoice")
	}
	return d.toModel(), nil
}

// ListInvoices lists all invoices ordered by ID
func (f *Firestore) ListInvoices(ctx context.Context) ([]*model.Invoice, error) {
	iter := f.client.Collection(invoicesCollection).Documents(ctx)
	defer iter.Stop()

	invoices := []*model.Invoice{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate invoices")
		}

		var d invoiceDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode invoice", goerr.V("docID", doc.Ref.ID))
		}
		invoices = append(invoices, d.toModel())
	}

	// Sorted in memory to avoid requiring an index
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].ID < invoices[j].ID
	})
	return invoices, nil
}

// DeleteInvoice deletes an invoice from Firestore
func (f *Firestore) DeleteInvoice(ctx context.Context, id types.InvoiceID) (bool, error) {
	ref := f.client.Collection(invoicesCollection).Doc(id.String())

	// Exists precondition makes deletion of a missing document fail with NotFound
	_, err := ref.Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to delete invoice from firestore", goerr.V("id", id))
	}
	return true, nil
}

// GetNextInvoiceID returns the next available invoice ID using atomic increment
func (f *Firestore) GetNextInvoiceID(ctx context.Context) (types.InvoiceID, error) {
	next, err := f.nextCounter(ctx, invoiceCounterDocID)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next invoice ID")
	}
	return types.InvoiceID(next), nil
}

// PutInquiry saves an inquiry to Firestore
func (f *Firestore) PutInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	if inquiry == nil {
		return goerr.New("inquiry is nil")
	}
	if inquiry.ID == 0 {
		return goerr.New("inquiry ID must be positive")
	}

	d := &inquiryDoc{
		ID:         int64(inquiry.ID),
		IsInvoiced: inquiry.IsInvoiced,
		Owner:      inquiry.Owner.String(),
		Details:    inquiry.Details,
		CreatedAt:  inquiry.CreatedAt,
	}
	_, err := f.client.Collection(inquiriesCollection).Doc(inquiry.ID.String()).Set(ctx, d)
	if err != nil {
		return goerr.Wrap(err, "failed to save inquiry to firestore", goerr.V("id", inquiry.ID))
	}
	return nil
}

// GetInquiry retrieves an inquiry by ID
func (f *Firestore) GetInquiry(ctx context.Context, id types.InquiryID) (*model.Inquiry, error) {
	doc, err := f.client.Collection(inquiriesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrInquiryNotFound, "failed to get inquiry", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get inquiry from firestore", goerr.V("id", id))
	}

	var d inquiryDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode inquiry")
	}
	return d.toModel(), nil
}

// ListInquiries lists all inquiries ordered by ID
func (f *Firestore) ListInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	iter := f.client.Collection(inquiriesCollection).Documents(ctx)
	defer iter.Stop()

	inquiries := []*model.Inquiry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate inquiries")
		}

		var d inquiryDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode inquiry", goerr.V("docID", doc.Ref.ID))
		}
		inquiries = append(inquiries, d.toModel())
	}

	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].ID < inquiries[j].ID
	})
	return inquiries, nil
}

// GetNextInquiryID returns the next available inquiry ID using atomic increment
func (f *Firestore) GetNextInquiryID(ctx context.Context) (types.InquiryID, error) {
	next, err := f.nextCounter(ctx, inquiryCounterDocID)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next inquiry ID")
	}
	return types.InquiryID(next), nil
}

// GetLOCInquiry returns the pending LOC inquiry. A database that never
// stored the slot serves the sample inquiry.
func (f *Firestore) GetLOCInquiry(ctx context.Context) (*model.LOCInquiry, error) {
	doc, err := f.client.Collection(stateCollection).Doc(locInquiryDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.DefaultLOCInquiry(), nil
		}
		return nil, goerr.Wrap(err, "failed to get LOC inquiry from firestore")
	}

	var d locInquiryDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode LOC inquiry")
	}
	if d.Cleared {
		return nil, nil
	}
	return d.Inquiry, nil
}

// PutLOCInquiry replaces the pending LOC inquiry
func (f *Firestore) PutLOCInquiry(ctx context.Context, inquiry *model.LOCInquiry) error {
	if inquiry == nil {
		return goerr.New("LOC inquiry is nil")
	}

	_, err := f.client.Collection(stateCollection).Doc(locInquiryDocID).Set(ctx, &locInquiryDoc{Inquiry: inquiry})
	if err != nil {
		return goerr.Wrap(err, "failed to save LOC inquiry to firestore")
	}
	return nil
}

// ClearLOCInquiry empties the LOC inquiry slot
func (f *Firestore) ClearLOCInquiry(ctx context.Context) error {
	_, err := f.client.Collection(stateCollection).Doc(locInquiryDocID).Set(ctx, &locInquiryDoc{Cleared: true})
	if err != nil {
		return goerr.Wrap(err, "failed to clear LOC inquiry in firestore")
	}
	return nil
}

// SaveUserProfile saves a user profile to Firestore
func (f *Firestore) SaveUserProfile(ctx context.Context, principal types.Principal, profile *model.UserProfile) error {
	if principal.IsAnonymous() {
		return goerr.New("principal is empty")
	}
	if profile == nil {
		return goerr.New("profile is nil")
	}

	_, err := f.client.Collection(usersCollection).Doc(principal.String()).Set(ctx, map[string]any{
		"profile": profile,
	}, firestore.MergeAll)
	if err != nil {
		return goerr.Wrap(err, "failed to save user profile to firestore", goerr.V("principal", principal))
	}
	return nil
}

// GetUserProfile retrieves a user profile by principal
func (f *Firestore) GetUserProfile(ctx context.Context, principal types.Principal) (*model.UserProfile, error) {
	d, err := f.getUserDoc(ctx, principal)
	if err != nil {
		return nil, err
	}
	if d == nil || d.Profile == nil {
		return nil, goerr.Wrap(model.ErrProfileNotFound, "failed to get user profile",
			goerr.V("principal", principal))
	}
	return d.Profile, nil
}

// SaveUserRole assigns a role to a principal
func (f *Firestore) SaveUserRole(ctx context.Context, principal types.Principal, role types.UserRole) error {
	if principal.IsAnonymous() {
		return goerr.New("principal is empty")
	}
	if !role.IsValid() {
		return goerr.New("invalid user role", goerr.V("role", role))
	}

	_, err := f.client.Collection(usersCollection).Doc(principal.String()).Set(ctx, map[string]any{
		"role": role.String(),
	}, firestore.MergeAll)
	if err != nil {
		return goerr.Wrap(err, "failed to save user role to firestore", goerr.V("principal", principal))
	}
	return nil
}

// GetUserRole returns the role assigned to a principal
func (f *Firestore) GetUserRole(ctx context.Context, principal types.Principal) (types.UserRole, error) {
	if principal.IsAnonymous() {
		return "", nil
	}
	d, err := f.getUserDoc(ctx, principal)
	if err != nil {
		return "", err
	}
	if d == nil {
		return "", nil
	}
	return types.UserRole(d.Role), nil
}

func (f *Firestore) getUserDoc(ctx context.Context, principal types.Principal) (*userDoc, error) {
	if principal.IsAnonymous() {
		return nil, nil
	}

	doc, err := f.client.Collection(usersCollection).Doc(principal.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get user from firestore", goerr.V("principal", principal))
	}

	var d userDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user")
	}
	return &d, nil
}

// nextCounter atomically increments the named counter and returns the new value
func (f *Firestore) nextCounter(ctx context.Context, name string) (int64, error) {
	counterDoc := f.client.Collection(countersCollection).Doc(name)

	var next int64
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(counterDoc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				next = 1
				return tx.Set(counterDoc, map[string]any{
					fieldCurrentNumber: next,
				})
			}
			return goerr.Wrap(err, "failed to get counter document")
		}

		current, err := doc.DataAt(fieldCurrentNumber)
		if err != nil {
			return goerr.Wrap(err, "failed to get current_number field")
		}

		switch v := current.(type) {
		case int64:
			next = v + 1
		case int:
			next = int64(v) + 1
		default:
			return goerr.New("unexpected type for current_number", goerr.V("counter", name))
		}

		return tx.Update(counterDoc, []firestore.Update{
			{Path: fieldCurrentNumber, Value: next},
		})
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (d *inquiryDoc) toModel() *model.Inquiry {
	return &model.Inquiry{
		ID:         types.InquiryID(d.ID),
		IsInvoiced: d.IsInvoiced,
		Owner:      types.Principal(d.Owner),
		Details:    d.Details,
		CreatedAt:  d.CreatedAt,
	}
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
