package model

import "github.com/m-mizutani/goerr/v2"

// Error tags used to map failures to transport status codes
var (
	ErrTagUnauthenticated = goerr.NewTag("unauthenticated")
	ErrTagForbidden       = goerr.NewTag("forbidden")
	ErrTagNotFound        = goerr.NewTag("not_found")
	ErrTagInvalid         = goerr.NewTag("invalid")
)

// Sentinel errors for billing operations. Their text is what remote callers
// receive and classify, so wording changes are breaking changes.
var (
	ErrBackendUnavailable = goerr.New("Backend connection not available")
	ErrDeleteRejected     = goerr.New("Failed to delete invoice")

	ErrInvoiceNotFound    = goerr.New("invoice not found", goerr.T(ErrTagNotFound))
	ErrInquiryNotFound    = goerr.New("inquiry not found", goerr.T(ErrTagNotFound))
	ErrLOCInquiryNotFound = goerr.New("no LOC inquiry available", goerr.T(ErrTagNotFound))
	ErrProfileNotFound    = goerr.New("user profile not found", goerr.T(ErrTagNotFound))

	ErrOnlyUsersCreateInvoices = goerr.New("Unauthorized: Only users can create invoices", goerr.T(ErrTagForbidden))
	ErrOnlyUsersViewInvoices   = goerr.New("Unauthorized: Only users can view invoices", goerr.T(ErrTagForbidden))
	ErrOnlyUsersUpdateInvoices = goerr.New("Unauthorized: Only users can update invoices", goerr.T(ErrTagForbidden))
	ErrOnlyUsersInquiries      = goerr.New("Unauthorized: Only users can manage inquiries", goerr.T(ErrTagForbidden))
	ErrOnlyUsersProfiles       = goerr.New("Unauthorized: Only users can save profiles", goerr.T(ErrTagForbidden))
	ErrOnlyAdminsDelete        = goerr.New("Unauthorized: Only admins can delete invoices without an owner", goerr.T(ErrTagForbidden))
	ErrOnlyAdminsReset         = goerr.New("Unauthorized: Only admins can reset the LOC sample", goerr.T(ErrTagForbidden))
	ErrOnlyAdminsAssignRoles   = goerr.New("Unauthorized: Only admins can assign user roles", goerr.T(ErrTagForbidden))
	ErrOnlyAuthenticatedDelete = goerr.New("Unauthorized: Only authenticated users can delete invoices", goerr.T(ErrTagUnauthenticated))
	ErrNotOwner                = goerr.New("Unauthorized: Can only delete your own invoices", goerr.T(ErrTagForbidden))
	ErrNotInquiryOwner         = goerr.New("Unauthorized: Can only update your own inquiries", goerr.T(ErrTagForbidden))
	ErrNotProfileOwner         = goerr.New("Unauthorized: Can only view your own profile", goerr.T(ErrTagForbidden))
	ErrInvalidRole             = goerr.New("invalid user role", goerr.T(ErrTagInvalid))
)
