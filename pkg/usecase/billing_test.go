package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/careledger/careledger/pkg/repository"
	"github.com/careledger/careledger/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

const (
	alice types.Principal = "alice"
	bob   types.Principal = "bob"
	admin types.Principal = "root"
)

func as(principal types.Principal) context.Context {
	return model.WithAuthContext(context.Background(), model.NewAuthContext(principal, ""))
}

func newBilling(t *testing.T) *usecase.Billing {
	t.Helper()
	b := usecase.NewBilling(repository.NewMemory())
	gt.NoError(t, b.SeedRoles(context.Background(), map[types.Principal]types.UserRole{
		admin: types.UserRoleAdmin,
	})).Required()
	return b
}

func sampleInvoice(project string) *model.CreateInvoiceRequest {
	return &model.CreateInvoiceRequest{
		ProjectName: project,
		ClientName:  "Harold Finch",
		AmountDue:   1200,
		DueDate:     "2026-02-01",
	}
}

func TestBillingCreateInvoice(t *testing.T) {
	b := newBilling(t)

	t.Run("User creates owned invoice", func(t *testing.T) {
		id, err := b.CreateInvoice(as(alice), sampleInvoice("Hospice"))
		gt.NoError(t, err).Required()

		inv, err := b.GetInvoice(as(alice), id)
		gt.NoError(t, err).Required()
		gt.Equal(t, alice, inv.Owner)
		gt.Equal(t, types.InvoiceStatusPending, inv.Status)
	})

	t.Run("Anonymous caller is rejected", func(t *testing.T) {
		_, err := b.CreateInvoice(context.Background(), sampleInvoice("Hospice"))
		gt.Error(t, err)
		gt.Equal(t, model.ErrOnlyUsersCreateInvoices.Error(), err.Error())
		gt.True(t, goerr.HasTag(err, model.ErrTagForbidden))
	})

	t.Run("Invalid request", func(t *testing.T) {
		_, err := b.CreateInvoice(as(alice), &model.CreateInvoiceRequest{ClientName: "x"})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagInvalid))
	})
}

func TestBillingListInvoices(t *testing.T) {
	b := newBilling(t)
	_, err := b.CreateInvoice(as(alice), sampleInvoice("Hospice"))
	gt.NoError(t, err).Required()
	paidID, err := b.CreateInvoice(as(bob), &model.CreateInvoiceRequest{ProjectName: "Home", ClientName: "John Reese", AmountDue: 10})
	gt.NoError(t, err).Required()

	ok, err := b.MarkInvoiceAsPaid(as(bob), paidID)
	gt.NoError(t, err).Required()
	gt.True(t, ok)

	all, err := b.GetAllInvoices(as(alice))
	gt.NoError(t, err).Required()
	gt.A(t, all).Length(2)

	byClient, err := b.GetInvoicesByClient(as(alice), "John Reese")
	gt.NoError(t, err).Required()
	gt.A(t, byClient).Length(1)

	paid, err := b.GetInvoicesByStatus(as(alice), types.InvoiceStatusPaid)
	gt.NoError(t, err).Required()
	gt.A(t, paid).Length(1)
	gt.Equal(t, paidID, paid[0].ID)

	_, err = b.GetAllInvoices(context.Background())
	gt.True(t, errors.Is(err, model.ErrOnlyUsersViewInvoices))

	missing, err := b.MarkInvoiceAsPaid(as(bob), 999)
	gt.NoError(t, err)
	gt.False(t, missing)
}

func TestBillingDeleteInvoice(t *testing.T) {
	t.Run("Owner deletes own invoice", func(t *testing.T) {
		b := newBilling(t)
		id, err := b.CreateInvoice(as(alice), sampleInvoice("Hospice"))
		gt.NoError(t, err).Required()

		deleted, err := b.DeleteInvoice(as(alice), id)
		gt.NoError(t, err).Required()
		gt.True(t, deleted)

		again, err := b.DeleteInvoice(as(alice), id)
		gt.NoError(t, err)
		gt.False(t, again)
	})

	t.Run("Other user cannot delete", func(t *testing.T) {
		b := newBilling(t)
		id, err := b.CreateInvoice(as(alice), sampleInvoice("Hospice"))
		gt.NoError(t, err).Required()

		_, err = b.DeleteInvoice(as(bob), id)
		gt.Equal(t, "Unauthorized: Can only delete your own invoices", err.Error())
	})

	t.Run("Admin deletes any invoice", func(t *testing.T) {
		b := newBilling(t)
		id, err := b.CreateInvoice(as(alice), sampleInvoice("Hospice"))
		gt.NoError(t, err).Required()

		deleted, err := b.DeleteInvoice(as(admin), id)
		gt.NoError(t, err).Required()
		gt.True(t, deleted)
	})

	t.Run("Anonymous caller is rejected", func(t *testing.T) {
		b := newBilling(t)
		id, err := b.CreateInvoice(as(alice), sampleInvoice("Hospice"))
		gt.NoError(t, err).Required()

		_, err = b.DeleteInvoice(context.Background(), id)
		gt.True(t, errors.Is(err, model.ErrOnlyAuthenticatedDelete))
		gt.True(t, goerr.HasTag(err, model.ErrTagUnauthenticated))
	})

	t.Run("Owner-less invoice needs admin", func(t *testing.T) {
		b := newBilling(t)
		id, err := b.CreateLOCInvoice(context.Background(), "2026-02-01", "2026-02-01")
		gt.NoError(t, err).Required()

		_, err = b.DeleteInvoice(as(alice), id)
		gt.True(t, errors.Is(err, model.ErrOnlyAdminsDelete))

		deleted, err := b.DeleteInvoice(as(admin), id)
		gt.NoError(t, err).Required()
		gt.True(t, deleted)
	})
}

func TestBillingInquiries(t *testing.T) {
	b := newBilling(t)
	aliceInq, err := b.CreateInquiry(as(alice), "Need a claim for January")
	gt.NoError(t, err).Required()
	_, err = b.CreateInquiry(as(bob), "Need a claim for February")
	gt.NoError(t, err).Required()

	own, err := b.GetInquiries(as(alice))
	gt.NoError(t, err).Required()
	gt.A(t, own).Length(1)
	gt.Equal(t, alice, own[0].Owner)

	all, err := b.GetInquiries(as(admin))
	gt.NoError(t, err).Required()
	gt.A(t, all).Length(2)

	_, err = b.MarkInquiryAsInvoiced(as(bob), aliceInq, true)
	gt.True(t, errors.Is(err, model.ErrNotInquiryOwner))

	ok, err := b.MarkInquiryAsInvoiced(as(alice), aliceInq, true)
	gt.NoError(t, err).Required()
	gt.True(t, ok)

	own, err = b.GetInquiries(as(alice))
	gt.NoError(t, err).Required()
	gt.True(t, own[0].IsInvoiced)

	_, err = b.CreateInquiry(context.Background(), "anonymous")
	gt.True(t, errors.Is(err, model.ErrOnlyUsersInquiries))
}

func TestBillingLOCInquiry(t *testing.T) {
	b := newBilling(t)

	loc, err := b.DisplayLOCInquiry(context.Background())
	gt.NoError(t, err).Required()
	gt.V(t, loc).NotNil()
	gt.Equal(t, "Margaret Ellison", loc.Client)

	id, err := b.CreateLOCInvoice(context.Background(), "2026-02-01", "2026-02-02")
	gt.NoError(t, err).Required()

	inv, err := b.GetInvoice(context.Background(), id)
	gt.NoError(t, err).Required()
	gt.Equal(t, model.LOCProjectName, inv.ProjectName)
	gt.Equal(t, "01/31/2026", inv.DueDate)
	gt.False(t, inv.HasOwner())

	loc, err = b.DisplayLOCInquiry(context.Background())
	gt.NoError(t, err)
	gt.Nil(t, loc)

	_, err = b.CreateLOCInvoice(context.Background(), "2026-02-01", "2026-02-02")
	gt.True(t, errors.Is(err, model.ErrLOCInquiryNotFound))

	receivables, err := b.GetLOCReceivables(context.Background())
	gt.NoError(t, err).Required()
	gt.A(t, receivables).Length(1)

	_, err = b.DeleteLOCInvoice(as(alice))
	gt.True(t, errors.Is(err, model.ErrOnlyAdminsReset))

	reset, err := b.DeleteLOCInvoice(as(admin))
	gt.NoError(t, err).Required()
	gt.True(t, reset)

	receivables, err = b.GetLOCReceivables(context.Background())
	gt.NoError(t, err).Required()
	gt.A(t, receivables).Length(0)

	loc, err = b.DisplayLOCInquiry(context.Background())
	gt.NoError(t, err).Required()
	gt.V(t, loc).NotNil()
}

func TestBillingProfilesAndRoles(t *testing.T) {
	b := newBilling(t)

	profile, err := b.GetCallerUserProfile(as(alice))
	gt.NoError(t, err)
	gt.Nil(t, profile)

	gt.NoError(t, b.SaveCallerUserProfile(as(alice), &model.UserProfile{Name: "Alice", Email: "alice@example.com"})).Required()

	profile, err = b.GetCallerUserProfile(as(alice))
	gt.NoError(t, err).Required()
	gt.Equal(t, "Alice", profile.Name)

	_, err = b.GetUserProfile(as(bob), alice)
	gt.True(t, errors.Is(err, model.ErrNotProfileOwner))

	viewed, err := b.GetUserProfile(as(admin), alice)
	gt.NoError(t, err).Required()
	gt.Equal(t, "alice@example.com", viewed.Email)

	gt.True(t, errors.Is(b.SaveCallerUserProfile(context.Background(), &model.UserProfile{Name: "x"}), model.ErrOnlyUsersProfiles))

	role, err := b.GetCallerUserRole(context.Background())
	gt.NoError(t, err)
	gt.Equal(t, types.UserRoleGuest, role)

	role, err = b.GetCallerUserRole(as(alice))
	gt.NoError(t, err)
	gt.Equal(t, types.UserRoleUser, role)

	isAdmin, err := b.IsCallerAdmin(as(admin))
	gt.NoError(t, err)
	gt.True(t, isAdmin)

	gt.True(t, errors.Is(b.AssignCallerUserRole(as(alice), bob, types.UserRoleAdmin), model.ErrOnlyAdminsAssignRoles))
	gt.True(t, errors.Is(b.AssignCallerUserRole(as(admin), bob, "superuser"), model.ErrInvalidRole))
	gt.NoError(t, b.AssignCallerUserRole(as(admin), bob, types.UserRoleAdmin))

	isAdmin, err = b.IsCallerAdmin(as(bob))
	gt.NoError(t, err)
	gt.True(t, isAdmin)
}
