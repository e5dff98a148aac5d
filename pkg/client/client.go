// Package client is a remote implementation of the billing backend over the
// careledger HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/careledger/careledger/pkg/domain/interfaces"
	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// PrincipalHeader must match the header read by the server
const PrincipalHeader = "X-Careledger-Principal"

// Client calls a careledger server. Transport failures are reported as
// "network request failed"; errors answered by the server keep the server's
// message verbatim.
type Client struct {
	baseURL    *url.URL
	principal  types.Principal
	httpClient *http.Client
}

var _ interfaces.Backend = (*Client)(nil)

// Option configures Client
type Option func(*Client)

// WithPrincipal sets the caller identity sent with every request
func WithPrincipal(p types.Principal) Option {
	return func(c *Client) {
		c.principal = p
	}
}

// WithTimeout sets the timeout of one request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the server at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid backend URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("backend URL must be http or https", goerr.V("url", baseURL))
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do sends one request and decodes the JSON answer into out when out is not nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL.String() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request", goerr.V("path", path))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !c.principal.IsAnonymous() {
		req.Header.Set(PrincipalHeader, c.principal.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "network request failed",
			goerr.V("method", method),
			goerr.V("path", path))
	}
	defer resp.Body.Close()

	ctxlog.From(ctx).Debug("Backend call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode))
	}
	return nil
}

// decodeError rebuilds the server error with its original text and the tag
// matching the status code.
func decodeError(resp *http.Response) error {
	var body model.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(raw))
		if body.Error == "" {
			body.Error = resp.Status
		}
	}

	opts := []goerr.Option{goerr.V("status", resp.StatusCode)}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		opts = append(opts, goerr.T(model.ErrTagUnauthenticated))
	case http.StatusForbidden:
		opts = append(opts, goerr.T(model.ErrTagForbidden))
	case http.StatusNotFound:
		opts = append(opts, goerr.T(model.ErrTagNotFound))
	case http.StatusBadRequest:
		opts = append(opts, goerr.T(model.ErrTagInvalid))
	}
	return goerr.New(body.Error, opts...)
}

func (c *Client) CreateInvoice(ctx context.Context, req *model.CreateInvoiceRequest) (types.InvoiceID, error) {
	var resp model.InvoiceCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/invoices", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) GetInvoice(ctx context.Context, id types.InvoiceID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := c.do(ctx, http.MethodGet, "/api/invoices/"+id.String(), nil, nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) listInvoices(ctx context.Context, path string, query url.Values) ([]*model.Invoice, error) {
	var invoices []*model.Invoice
	if err := c.do(ctx, http.MethodGet, path, query, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) GetAllInvoices(ctx context.Context) ([]*model.Invoice, error) {
	return c.listInvoices(ctx, "/api/invoices", nil)
}

func (c *Client) GetInvoicesByClient(ctx context.Context, clientName string) ([]*model.Invoice, error) {
	return c.listInvoices(ctx, "/api/invoices", url.Values{"client": {clientName}})
}

func (c *Client) GetInvoicesByStatus(ctx context.Context, status types.InvoiceStatus) ([]*model.Invoice, error) {
	return c.listInvoices(ctx, "/api/invoices", url.Values{"status": {status.String()}})
}

func (c *Client) GetLOCReceivables(ctx context.Context) ([]*model.Invoice, error) {
	return c.listInvoices(ctx, "/api/loc/receivables", nil)
}

func (c *Client) MarkInvoiceAsPaid(ctx context.Context, id types.InvoiceID) (bool, error) {
	var resp model.ResultResponse
	if err := c.do(ctx, http.MethodPost, "/api/invoices/"+id.String()+"/paid", nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

func (c *Client) DeleteInvoice(ctx context.Context, id types.InvoiceID) (bool, error) {
	var resp model.ResultResponse
	if err := c.do(ctx, http.MethodDelete, "/api/invoices/"+id.String(), nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// BulkDeleteInvoices lets the server settle the deletions and summarize them
func (c *Client) BulkDeleteInvoices(ctx context.Context, ids []types.InvoiceID) (*model.BulkDeleteResponse, error) {
	var resp model.BulkDeleteResponse
	if err := c.do(ctx, http.MethodPost, "/api/invoices/bulk-delete", nil, model.BulkDeleteRequest{IDs: ids}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateInquiry(ctx context.Context, details string) (types.InquiryID, error) {
	var resp model.InquiryCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/inquiries", nil, model.CreateInquiryRequest{Details: details}, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) GetInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	var inquiries []*model.Inquiry
	if err := c.do(ctx, http.MethodGet, "/api/inquiries", nil, nil, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (c *Client) MarkInquiryAsInvoiced(ctx context.Context, id types.InquiryID, isInvoiced bool) (bool, error) {
	var resp model.ResultResponse
	body := model.MarkInquiryRequest{IsInvoiced: isInvoiced}
	if err := c.do(ctx, http.MethodPost, "/api/inquiries/"+id.String()+"/invoiced", nil, body, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

func (c *Client) DisplayLOCInquiry(ctx context.Context) (*model.LOCInquiry, error) {
	var resp model.LOCInquiryResponse
	if err := c.do(ctx, http.MethodGet, "/api/loc/inquiry", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Inquiry, nil
}

func (c *Client) CreateLOCInvoice(ctx context.Context, invoiceDate, transactionDate string) (types.InvoiceID, error) {
	var resp model.InvoiceCreatedResponse
	body := model.CreateLOCInvoiceRequest{InvoiceDate: invoiceDate, TransactionDate: transactionDate}
	if err := c.do(ctx, http.MethodPost, "/api/loc/invoice", nil, body, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) DeleteLOCInvoice(ctx context.Context) (bool, error) {
	var resp model.ResultResponse
	if err := c.do(ctx, http.MethodDelete, "/api/loc/invoice", nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

func (c *Client) GetCallerUserProfile(ctx context.Context) (*model.UserProfile, error) {
	var resp model.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile *model.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/api/profile", nil, profile, nil)
}

func (c *Client) GetUserProfile(ctx context.Context, principal types.Principal) (*model.UserProfile, error) {
	var resp model.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(principal.String())+"/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}

func (c *Client) GetCallerUserRole(ctx context.Context) (types.UserRole, error) {
	var resp model.RoleResponse
	if err := c.do(ctx, http.MethodGet, "/api/role", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Role, nil
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var resp model.RoleResponse
	if err := c.do(ctx, http.MethodGet, "/api/role", nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.IsAdmin, nil
}

func (c *Client) AssignCallerUserRole(ctx context.Context, principal types.Principal, role types.UserRole) error {
	path := "/api/users/" + url.PathEscape(principal.String()) + "/role"
	return c.do(ctx, http.MethodPut, path, nil, model.AssignRoleRequest{Role: role}, nil)
}
