package model

import (
	"strings"
	"time"

	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Inquiry represents a pending billing request
type Inquiry struct {
	ID         types.InquiryID `json:"id"`
	IsInvoiced bool            `json:"isInvoiced"`
	Owner      types.Principal `json:"owner"`
	Details    string          `json:"details"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NewInquiry creates a new inquiry owned by owner
func NewInquiry(id types.InquiryID, owner types.Principal, details string) (*Inquiry, error) {
	if id == 0 {
		return nil, goerr.New("inquiry ID must be positive", goerr.T(ErrTagInvalid))
	}
	if strings.TrimSpace(details) == "" {
		return nil, goerr.New("inquiry details are required", goerr.T(ErrTagInvalid))
	}

	return &Inquiry{
		ID:        id,
		Owner:     owner,
		Details:   details,
		CreatedAt: time.Now(),
	}, nil
}

// LOCInquiry is a level-of-care inquiry waiting to be invoiced
type LOCInquiry struct {
	Client          string  `json:"client"`
	StatementPeriod string  `json:"statementPeriod"`
	MRNumber        string  `json:"mrNumber"`
	Payer           string  `json:"payer"`
	Amount          float64 `json:"amount"`
	SocDate         string  `json:"socDate,omitempty"`
	DischargeDate   string  `json:"dischargeDate,omitempty"`
}

// DefaultLOCInquiry returns the sample LOC inquiry restored on reset
func DefaultLOCInquiry() *LOCInquiry {
	return &LOCInquiry{
		Client:          "Margaret Ellison",
		StatementPeriod: "01/02/2026–01/31/2026",
		MRNumber:        "MR-204518",
		Payer:           "Medicare",
		Amount:          6240.5,
		SocDate:         "2026-01-02",
	}
}

// DueDate returns the end of the statement period. Both en dash and hyphen
// separated periods are accepted; a period without separator is returned as is.
func (q *LOCInquiry) DueDate() string {
	for _, sep := range []string{"–", "-"} {
		if parts := strings.SplitN(q.StatementPeriod, sep, 2); len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1])
		}
	}
	return q.StatementPeriod
}

// ToInvoiceRequest converts the inquiry into an invoice request
func (q *LOCInquiry) ToInvoiceRequest(invoiceDate, transactionDate string) *CreateInvoiceRequest {
	return &CreateInvoiceRequest{
		ProjectName:     LOCProjectName,
		AmountDue:       q.Amount,
		DueDate:         q.DueDate(),
		ClientName:      q.Client,
		PayerSource:     q.Payer,
		InvoiceDate:     invoiceDate,
		TransactionDate: transactionDate,
		SocDate:         q.SocDate,
		DischargeDate:   q.DischargeDate,
	}
}
