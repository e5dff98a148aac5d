package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing backend under /api
func NewServer(ctx context.Context, addr string, backend interfaces.Backend, opts ...Option) *Server {
	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()
	h := &handler{backend: backend, deleteLimit: cfg.deleteLimit}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(AuthContextMiddleware())
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.listInvoices)
			r.Post("/", h.createInvoice)
			r.Post("/bulk-delete", h.bulkDeleteInvoices)
			r.Get("/{id}", h.getInvoice)
			r.Delete("/{id}", h.deleteInvoice)
			r.Post("/{id}/paid", h.markInvoiceAsPaid)
		})

		r.Route("/loc", func(r chi.Router) {
			r.Get("/receivables", h.listLOCReceivables)
			r.Get("/inquiry", h.displayLOCInquiry)
			r.Post("/invoice", h.createLOCInvoice)
			r.Delete("/invoice", h.deleteLOCInvoice)
		})

		r.Route("/inquiries", func(r chi.Router) {
			r.Get("/", h.listInquiries)
			r.Post("/", h.createInquiry)
			r.Post("/{id}/invoiced", h.markInquiryAsInvoiced)
		})

		r.Get("/profile", h.getCallerProfile)
		r.Put("/profile", h.saveCallerProfile)
		r.Get("/role", h.getCallerRole)
		r.Get("/users/{principal}/profile", h.getUserProfile)
		r.Put("/users/{principal}/role", h.assignUserRole)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

type serverConfig struct {
	deleteLimit int
}

// Option configures the server
type Option func(*serverConfig)

// WithDeleteConcurrency caps concurrent deletions of one bulk delete request
func WithDeleteConcurrency(n int) Option {
	return func(c *serverConfig) {
		c.deleteLimit = n
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "careledger",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
