package apperr

import (
	"context"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs err. Errors caused by the caller (rejected authorization,
// missing records, bad input) are logged as warnings.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	if IsClientError(err) {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}

// IsClientError reports whether err carries one of the caller-facing tags
func IsClientError(err error) bool {
	return goerr.HasTag(err, model.ErrTagUnauthenticated) ||
		goerr.HasTag(err, model.ErrTagForbidden) ||
		goerr.HasTag(err, model.ErrTagNotFound) ||
		goerr.HasTag(err, model.ErrTagInvalid)
}
