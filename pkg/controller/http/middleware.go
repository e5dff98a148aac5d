package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// PrincipalHeader carries the caller identity. Requests without it are anonymous.
const PrincipalHeader = "X-Careledger-Principal"

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			logger := ctxlog.From(ctx).With("request_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()

			// Wrap response writer to capture status
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.Query(),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}

// AuthContextMiddleware stores the caller identity from PrincipalHeader in the
// request context. The role is resolved by the backend.
func AuthContextMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := types.Principal(strings.TrimSpace(r.Header.Get(PrincipalHeader)))

			ctx := model.WithAuthContext(r.Context(), model.NewAuthContext(principal, ""))
			if !principal.IsAnonymous() {
				ctx = ctxlog.With(ctx, ctxlog.From(ctx).With("principal", principal))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
