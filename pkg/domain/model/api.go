package model

import "github.com/careledger/careledger/pkg/domain/types"

// Request and response bodies of the HTTP API

type ErrorResponse struct {
	Error string `json:"error"`
}

type InvoiceCreatedResponse struct {
	ID types.InvoiceID `json:"id"`
}

type InquiryCreatedResponse struct {
	ID types.InquiryID `json:"id"`
}

// ResultResponse reports whether a mutation changed anything
type ResultResponse struct {
	OK bool `json:"ok"`
}

type BulkDeleteRequest struct {
	IDs []types.InvoiceID `json:"ids"`
}

type BulkDeleteResponse struct {
	Summary *BatchSummary[types.InvoiceID] `json:"summary"`
	Notice  *BatchNotice[types.InvoiceID]  `json:"notice"`
}

type CreateLOCInvoiceRequest struct {
	InvoiceDate     string `json:"invoiceDate"`
	TransactionDate string `json:"transactionDate"`
}

type CreateInquiryRequest struct {
	Details string `json:"details"`
}

type MarkInquiryRequest struct {
	IsInvoiced bool `json:"isInvoiced"`
}

// LOCInquiryResponse carries a nil inquiry once it was invoiced
type LOCInquiryResponse struct {
	Inquiry *LOCInquiry `json:"inquiry"`
}

type ProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}

type RoleResponse struct {
	Role    types.UserRole `json:"role"`
	IsAdmin bool           `json:"isAdmin"`
}

type AssignRoleRequest struct {
	Role types.UserRole `json:"role"`
}
