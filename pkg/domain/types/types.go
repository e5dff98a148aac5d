package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// InvoiceID represents an invoice identifier
type InvoiceID uint64

// String returns the string representation
func (id InvoiceID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseInvoiceID parses a decimal invoice identifier
func ParseInvoiceID(s string) (InvoiceID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid invoice ID", goerr.V("id", s))
	}
	return InvoiceID(v), nil
}

// InquiryID represents an inquiry identifier
type InquiryID uint64

// String returns the string representation
func (id InquiryID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseInquiryID parses a decimal inquiry identifier
func ParseInquiryID(s string) (InquiryID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid inquiry ID", goerr.V("id", s))
	}
	return InquiryID(v), nil
}

// Principal identifies a caller. The empty principal is the anonymous caller.
type Principal string

// String returns the string representation
func (p Principal) String() string {
	return string(p)
}

// IsAnonymous reports whether the principal is the anonymous caller
func (p Principal) IsAnonymous() bool {
	return p == ""
}

// UserRole represents the role granted to a principal
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
	UserRoleGuest UserRole = "guest"
)

// String returns the string representation
func (r UserRole) String() string {
	return string(r)
}

// IsValid checks if the role is one of the known roles
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleGuest:
		return true
	}
	return false
}

// CanWrite reports whether the role may create and read billing records
func (r UserRole) CanWrite() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// String returns the string representation
func (s InvoiceStatus) String() string {
	return string(s)
}

// QueryKey identifies a cached listing
type QueryKey string

const (
	QueryKeyInvoices       QueryKey = "invoices"
	QueryKeyInquiries      QueryKey = "inquiries"
	QueryKeyLOCInquiry     QueryKey = "locInquiry"
	QueryKeyLOCReceivables QueryKey = "locReceivables"
)

// String returns the string representation
func (k QueryKey) String() string {
	return string(k)
}
