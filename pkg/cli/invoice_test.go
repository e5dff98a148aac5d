package cli

import (
	"bytes"
	"context"
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
	"github.com/urfave/cli/v3"
)

func TestPrintNotice(t *testing.T) {
	summary := model.NewBatchSummary([]model.OperationOutcome[types.InvoiceID]{
		{ID: 1, Success: true},
		{ID: 2, Error: "Unauthorized: Can only delete your own invoices"},
	})
	notice := message.Summarize(summary, 2)

	var buf bytes.Buffer
	printNotice(&buf, summary, notice)

	out := buf.String()
	gt.S(t, out).Contains("[error] Partially completed: 1 deleted, 1 failed.")
	gt.S(t, out).Contains("  2: " + message.MsgOwnInvoicesOnly)
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("  1: ")))
}

func TestPrintInvoices(t *testing.T) {
	var buf bytes.Buffer
	printInvoices(&buf, nil)
	gt.S(t, buf.String()).Contains("No outstanding receivables")

	buf.Reset()
	printInvoices(&buf, []*model.Invoice{{ID: 3, ClientName: "Margaret Ellison", PayerSource: "Medicare", AmountDue: 6240.5, DueDate: "01/31/2026"}})
	gt.Equal(t, "3\tMargaret Ellison\tMedicare\t6240.50\tdue 01/31/2026\n", buf.String())
}

func runInvoice(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.Command{
		Name:     "careledger",
		Writer:   &out,
		Commands: []*cli.Command{cmdInvoice()},
	}
	err := app.Run(context.Background(), append([]string{"careledger", "invoice"}, args...))
	return out.String(), err
}

func TestInvoiceCommands(t *testing.T) {
	ctx := context.Background()
	billing := usecase.NewBilling(repository.NewMemory())
	gt.NoError(t, billing.SeedRoles(ctx, map[types.Principal]types.UserRole{"root": types.UserRoleAdmin})).Required()
	srv := httptest.NewServer(controller.NewServer(ctx, "", billing).Handler)
	defer srv.Close()

	create := func(principal types.Principal) types.InvoiceID {
		c, err := client.New(srv.URL, client.WithPrincipal(principal))
		gt.NoError(t, err).Required()
		id, err := c.CreateInvoice(ctx, &model.CreateInvoiceRequest{
			ProjectName: model.LOCProjectName,
			ClientName:  "John Reese",
			AmountDue:   75,
		})
		gt.NoError(t, err).Required()
		return id
	}
	own := create("alice")
	other := create("bob")

	t.Run("Receivables are listed", func(t *testing.T) {
		out, err := runInvoice(t, "--backend-url", srv.URL, "--principal", "alice", "receivables")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("John Reese")
	})

	t.Run("Partial delete reports the failed invoice", func(t *testing.T) {
		out, err := runInvoice(t, "--backend-url", srv.URL, "--principal", "alice",
			"delete", "--id", own.String(), "--id", other.String())
		gt.Error(t, err)
		gt.S(t, out).Contains("Partially completed: 1 deleted, 1 failed.")
		gt.S(t, out).Contains(other.String() + ": " + message.MsgOwnInvoicesOnly)
	})

	t.Run("Server-side delete settles every id", func(t *testing.T) {
		mine := create("alice")
		theirs := create("bob")
		out, err := runInvoice(t, "--backend-url", srv.URL, "--principal", "alice",
			"delete", "--server-side", "--id", mine.String(), "--id", theirs.String())
		gt.Error(t, err)
		gt.S(t, out).Contains("Partially completed: 1 deleted, 1 failed.")
		gt.S(t, out).Contains(theirs.String() + ": " + message.MsgOwnInvoicesOnly)

		_, err = billing.GetInvoice(ctx, mine)
		gt.Error(t, err)
	})

	t.Run("Reset needs an admin", func(t *testing.T) {
		_, err := runInvoice(t, "--backend-url", srv.URL, "--principal", "alice", "reset-loc")
		gt.Error(t, err)

		out, err := runInvoice(t, "--backend-url", srv.URL, "--principal", "root", "reset-loc")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("LOC sample restored")
	})
}

func TestReportError(t *testing.T) {
	t.Run("Read failures use display wording", func(t *testing.T) {
		var buf bytes.Buffer
		err := goerr.Wrap(goerr.New("Unauthorized: Only users can view invoices"), "failed to list receivables", goerr.T(errTagRead))
		ReportError(&buf, err)
		gt.S(t, buf.String()).Contains(message.MsgLoadFailed)
		gt.S(t, buf.String()).Contains("--principal")
	})

	t.Run("Write failures use write wording", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, goerr.New("Unauthorized: Only users can create invoices"))
		gt.S(t, buf.String()).Contains(message.MsgSignIn)
	})

	t.Run("No hint for other failures", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, goerr.New("network request failed"))
		gt.Equal(t, message.MsgNetwork+"\n", buf.String())
	})

	t.Run("Nil error writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, nil)
		gt.Equal(t, 0, buf.Len())
	})
}
