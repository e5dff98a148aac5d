package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careledger/careledger/pkg/client"
	controller "github.com/careledger/careledger/pkg/controller/http"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/careledger/careledger/pkg/repository"
	"github.com/careledger/careledger/pkg/usecase"
	"github.com/careledger/careledger/pkg/utils/message"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	billing := usecase.NewBilling(repository.NewMemory())
	gt.NoError(t, billing.SeedRoles(context.Background(), map[types.Principal]types.UserRole{
		"root": types.UserRoleAdmin,
	})).Required()

	srv := httptest.NewServer(controller.NewServer(context.Background(), "", billing).Handler)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, principal types.Principal) *client.Client {
	t.Helper()
	c, err := client.New(srv.URL, client.WithPrincipal(principal))
	gt.NoError(t, err).Required()
	return c
}

func TestNew(t *testing.T) {
	_, err := client.New("ftp://example.com")
	gt.Error(t, err)

	_, err = client.New("://broken")
	gt.Error(t, err)

	_, err = client.New("http://localhost:8080/")
	gt.NoError(t, err)
}

func TestClientInvoices(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	alice := newClient(t, srv, "alice")

	id, err := alice.CreateInvoice(ctx, &model.CreateInvoiceRequest{ProjectName: "Hospice", ClientName: "Root Groves", AmountDue: 880})
	gt.NoError(t, err).Required()

	inv, err := alice.GetInvoice(ctx, id)
	gt.NoError(t, err).Required()
	gt.Equal(t, "Root Groves", inv.ClientName)

	byClient, err := alice.GetInvoicesByClient(ctx, "Root Groves")
	gt.NoError(t, err).Required()
	gt.A(t, byClient).Length(1)

	paid, err := alice.MarkInvoiceAsPaid(ctx, id)
	gt.NoError(t, err).Required()
	gt.True(t, paid)

	byStatus, err := alice.GetInvoicesByStatus(ctx, types.InvoiceStatusPaid)
	gt.NoError(t, err).Required()
	gt.A(t, byStatus).Length(1)

	deleted, err := alice.DeleteInvoice(ctx, id)
	gt.NoError(t, err).Required()
	gt.True(t, deleted)

	deleted, err = alice.DeleteInvoice(ctx, id)
	gt.NoError(t, err)
	gt.False(t, deleted)
}

func TestClientKeepsServerErrorText(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	alice := newClient(t, srv, "alice")
	id, err := alice.CreateInvoice(ctx, &model.CreateInvoiceRequest{ProjectName: "Hospice", ClientName: "Root Groves"})
	gt.NoError(t, err).Required()

	bob := newClient(t, srv, "bob")
	_, err = bob.DeleteInvoice(ctx, id)
	gt.Error(t, err)
	gt.Equal(t, "Unauthorized: Can only delete your own invoices", err.Error())
	gt.True(t, goerr.HasTag(err, model.ErrTagForbidden))
	gt.Equal(t, message.MsgOwnInvoicesOnly, message.Normalize(err, message.Write))

	anonymous := newClient(t, srv, "")
	_, err = anonymous.DeleteInvoice(ctx, id)
	gt.True(t, goerr.HasTag(err, model.ErrTagUnauthenticated))

	_, err = anonymous.GetInvoice(ctx, 4242)
	gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := client.New(url)
	gt.NoError(t, err).Required()

	_, err = c.GetLOCReceivables(context.Background())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("network request failed")
	gt.Equal(t, message.MsgNetwork, message.Normalize(err, message.Display))
}

func TestClientBulkDelete(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	alice := newClient(t, srv, "alice")

	first, err := alice.CreateInvoice(ctx, &model.CreateInvoiceRequest{ProjectName: "Hospice", ClientName: "A"})
	gt.NoError(t, err).Required()
	second, err := alice.CreateInvoice(ctx, &model.CreateInvoiceRequest{ProjectName: "Hospice", ClientName: "B"})
	gt.NoError(t, err).Required()

	resp, err := alice.BulkDeleteInvoices(ctx, []types.InvoiceID{first, second})
	gt.NoError(t, err).Required()
	gt.Equal(t, []types.InvoiceID{first, second}, resp.Summary.SuccessfulIDs)
	gt.Equal(t, "2 invoices deleted successfully", resp.Notice.Message)
}

func TestClientLOCAndUsers(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	root := newClient(t, srv, "root")
	alice := newClient(t, srv, "alice")

	loc, err := alice.DisplayLOCInquiry(ctx)
	gt.NoError(t, err).Required()
	gt.V(t, loc).NotNil()

	id, err := alice.CreateLOCInvoice(ctx, "2026-02-01", "2026-02-01")
	gt.NoError(t, err).Required()

	receivables, err := alice.GetLOCReceivables(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, receivables).Length(1)
	gt.Equal(t, id, receivables[0].ID)

	reset, err := root.DeleteLOCInvoice(ctx)
	gt.NoError(t, err).Required()
	gt.True(t, reset)

	inqID, err := alice.CreateInquiry(ctx, "January claim")
	gt.NoError(t, err).Required()
	ok, err := alice.MarkInquiryAsInvoiced(ctx, inqID, true)
	gt.NoError(t, err).Required()
	gt.True(t, ok)
	inquiries, err := alice.GetInquiries(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, inquiries).Length(1)

	gt.NoError(t, alice.SaveCallerUserProfile(ctx, &model.UserProfile{Name: "Alice"})).Required()
	profile, err := alice.GetCallerUserProfile(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, "Alice", profile.Name)

	other, err := root.GetUserProfile(ctx, "alice")
	gt.NoError(t, err).Required()
	gt.Equal(t, "Alice", other.Name)

	role, err := alice.GetCallerUserRole(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, types.UserRoleUser, role)

	gt.NoError(t, root.AssignCallerUserRole(ctx, "alice", types.UserRoleAdmin)).Required()
	isAdmin, err := alice.IsCallerAdmin(ctx)
	gt.NoError(t, err).Required()
	gt.True(t, isAdmin)
}
