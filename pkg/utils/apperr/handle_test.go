package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHandle(t *testing.T) {
	t.Run("Client errors are logged as warnings", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		apperr.Handle(ctx, goerr.Wrap(model.ErrNotOwner, "delete rejected"))
		gt.S(t, buf.String()).Contains(`"level":"WARN"`)
	})

	t.Run("Other errors are logged as errors", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		apperr.Handle(ctx, goerr.New("firestore unavailable"))
		gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
	})

	t.Run("Nil error is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		apperr.Handle(ctx, nil)
		gt.Equal(t, 0, buf.Len())
	})
}

func TestIsClientError(t *testing.T) {
	gt.True(t, apperr.IsClientError(model.ErrOnlyAdminsDelete))
	gt.True(t, apperr.IsClientError(goerr.Wrap(model.ErrInvoiceNotFound, "lookup")))
	gt.False(t, apperr.IsClientError(goerr.New("boom")))
}
