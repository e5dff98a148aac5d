package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/careledger/careledger/pkg/cli/config"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/careledger/careledger/pkg/usecase"
	"github.com/careledger/careledger/pkg/utils/message"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdInvoice() *cli.Command {
	var backendCfg config.Backend

	return &cli.Command{
		Name:  "invoice",
		Usage: "Work with invoices on a careledger server",
		Flags: backendCfg.Flags(),
		Commands: []*cli.Command{
			cmdInvoiceReceivables(&backendCfg),
			cmdInvoiceDelete(&backendCfg),
			cmdInvoiceResetLOC(&backendCfg),
		},
	}
}

func newReceivables(cfg *config.Backend, opts ...usecase.ReceivablesOption) (*usecase.Receivables, error) {
	backend, err := cfg.Configure()
	if err != nil {
		return nil, err
	}
	return usecase.NewReceivables(backend, opts...)
}

func cmdInvoiceReceivables(cfg *config.Backend) *cli.Command {
	return &cli.Command{
		Name:  "receivables",
		Usage: "List outstanding LOC receivables",
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := newReceivables(cfg)
			if err != nil {
				return err
			}

			invoices, err := r.LOCReceivables(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list receivables", goerr.T(errTagRead))
			}
			printInvoices(c.Root().Writer, invoices)
			return nil
		},
	}
}

func cmdInvoiceDelete(cfg *config.Backend) *cli.Command {
	var (
		rawIDs      []string
		concurrency int
		serverSide  bool
	)

	return &cli.Command{
		Name:  "delete",
		Usage: "Delete invoices; every deletion is attempted even when some fail",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "id",
				Usage:       "Invoice ID to delete (repeatable)",
				Required:    true,
				Destination: &rawIDs,
			},
			&cli.IntFlag{
				Name:        "concurrency",
				Usage:       "Maximum concurrent deletions (0 for unlimited)",
				Destination: &concurrency,
			},
			&cli.BoolFlag{
				Name:        "server-side",
				Usage:       "Let the server run the deletions and summarize them in one request",
				Destination: &serverSide,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ids := make([]types.InvoiceID, 0, len(rawIDs))
			for _, raw := range rawIDs {
				id, err := types.ParseInvoiceID(raw)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			r, err := newReceivables(cfg, usecase.WithDeleteConcurrency(concurrency))
			if err != nil {
				return err
			}

			summary, notice := r.DeleteInvoices(ctx, ids)
			printNotice(c.Root().Writer, summary, notice)
			if !notice.IsSuccess() {
				return goerr.New("some invoices were not deleted", goerr.V("failed", notice.Selection))
			}
			return nil
		},
	}
}

func deleteInvoices(ctx context.Context, cfg *config.Backend, ids []types.InvoiceID, concurrency int, serverSide bool) (*model.BatchSummary[types.InvoiceID], *model.BatchNotice[types.InvoiceID], error) {
	if serverSide {
		backend, err := cfg.Configure()
		if err != nil {
			return nil, nil, err
		}
		resp, err := backend.BulkDeleteInvoices(ctx, ids)
		if err != nil {
			return nil, nil, err
		}
		return resp.Summary, resp.Notice, nil
	}

	r, err := newReceivables(cfg, usecase.WithDeleteConcurrency(concurrency))
	if err != nil {
		return nil, nil, err
	}
	summary, notice := r.DeleteInvoices(ctx, ids)
	return summary, notice, nil
}

func cmdInvoiceResetLOC(cfg *config.Backend) *cli.Command {
	return &cli.Command{
		Name:  "reset-loc",
		Usage: "Remove LOC receivables and restore the sample LOC inquiry (admin only)",
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := newReceivables(cfg)
			if err != nil {
				return err
			}
			if err := r.ResetLOCSample(ctx); err != nil {
				return err
			}
			fmt.Fprintln(c.Root().Writer, "LOC sample restored")
			return nil
		},
	}
}

func printInvoices(w io.Writer, invoices []*model.Invoice) {
	if len(invoices) == 0 {
		fmt.Fprintln(w, "No outstanding receivables")
		return
	}
	for _, inv := range invoices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\tdue %s\n", inv.ID, inv.ClientName, inv.PayerSource, inv.AmountDue, inv.DueDate)
	}
}

func printNotice(w io.Writer, summary *model.BatchSummary[types.InvoiceID], notice *model.BatchNotice[types.InvoiceID]) {
	fmt.Fprintf(w, "[%s] %s\n", notice.Type, notice.Message)
	for _, o := range summary.Outcomes {
		if o.Success {
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", o.ID, message.NormalizeMessage(o.Error, message.Write))
	}
}
