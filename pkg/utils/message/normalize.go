// Package message turns backend failures and batch results into short,
// user facing English sentences. All functions are pure: the same input
// always yields the same output.
package message

import (
	"fmt"
	"regexp"
	"strings"
)

// Context tells whether a failure happened while loading or while writing data
type Context int

const (
	Write Context = iota
	Display
)

// String returns the string representation
func (c Context) String() string {
	if c == Display {
		return "display"
	}
	return "write"
}

// Category is the classification of a raw failure message
type Category int

const (
	CategoryUnknown Category = iota
	CategoryConnectionUnavailable
	CategoryUnauthorized
	CategoryTrap
	CategoryNetwork
	CategoryValidationFailure
)

// String returns the string representation
func (c Category) String() string {
	switch c {
	case CategoryConnectionUnavailable:
		return "connection_unavailable"
	case CategoryUnauthorized:
		return "unauthorized"
	case CategoryTrap:
		return "trap"
	case CategoryNetwork:
		return "network"
	case CategoryValidationFailure:
		return "validation_failure"
	default:
		return "unknown"
	}
}

// Fixed user facing sentences
const (
	MsgConnectionUnavailable = "Unable to connect to the backend. Please refresh the page and try again."
	MsgLoadFailed            = "Unable to load data. Please try again."
	MsgSignIn                = "Please sign in to access this feature."
	MsgAdminRequired         = "This action requires administrator privileges."
	MsgSignInToDelete        = "Please sign in to delete invoices."
	MsgOwnInvoicesOnly       = "You can only delete invoices you created."
	MsgPermissionDenied      = "You do not have permission to perform this action."
	MsgAuthRequired          = "Authentication required. Please sign in to continue."
	MsgLoadError             = "An error occurred while loading data. Please try again."
	MsgAuthorizationError    = "An authorization error occurred. Please try signing in again."
	MsgNetwork               = "Network error. Please check your connection and try again."
	MsgSomeNotDeleted        = "Some invoices could not be deleted. Please try again or contact support."
	MsgGeneric               = "An error occurred. Please try again."
)

const maxVerbatimLength = 100

var deleteCountPattern = regexp.MustCompile(`Failed to delete (\d+)`)

// Classify returns the category of msg. Checks run in a fixed priority
// order and the first match wins.
func Classify(msg string) Category {
	switch {
	case strings.Contains(msg, "Backend connection not available") || strings.Contains(msg, "Actor not available"):
		return CategoryConnectionUnavailable
	case strings.Contains(msg, "Unauthorized"):
		return CategoryUnauthorized
	case strings.Contains(msg, "trap") || strings.Contains(msg, "Reject"):
		return CategoryTrap
	case strings.Contains(msg, "fetch") || strings.Contains(msg, "network"):
		return CategoryNetwork
	case strings.Contains(msg, "Failed to delete"):
		return CategoryValidationFailure
	default:
		return CategoryUnknown
	}
}

// Normalize converts err into a user facing sentence. A nil error yields MsgGeneric.
func Normalize(err error, c Context) string {
	if err == nil {
		return MsgGeneric
	}
	return NormalizeMessage(err.Error(), c)
}

// NormalizeMessage converts a raw failure message into a user facing sentence.
// Multi-line or overly long messages are never returned verbatim.
func NormalizeMessage(msg string, c Context) string {
	switch Classify(msg) {
	case CategoryConnectionUnavailable:
		return MsgConnectionUnavailable

	case CategoryUnauthorized:
		return unauthorizedMessage(msg, c)

	case CategoryTrap:
		if strings.Contains(strings.ToLower(msg), "unauthorized") {
			return byContext(c, MsgLoadFailed, MsgAuthRequired)
		}
		return byContext(c, MsgLoadError, MsgAuthorizationError)

	case CategoryNetwork:
		return MsgNetwork

	case CategoryValidationFailure:
		if m := deleteCountPattern.FindStringSubmatch(msg); m != nil {
			return fmt.Sprintf("Unable to delete %s %s. Please try again.", m[1], pluralize(m[1] == "1"))
		}
		return MsgSomeNotDeleted
	}

	firstLine, _, _ := strings.Cut(msg, "\n")
	if len(firstLine) > maxVerbatimLength {
		return MsgGeneric
	}
	return firstLine
}

func unauthorizedMessage(msg string, c Context) string {
	switch {
	case strings.Contains(msg, "Only users can"):
		return byContext(c, MsgLoadFailed, MsgSignIn)
	case strings.Contains(msg, "Only admins can"):
		return MsgAdminRequired
	case strings.Contains(msg, "Only authenticated users can delete"):
		return MsgSignInToDelete
	case strings.Contains(msg, "Can only delete your own invoices"):
		return MsgOwnInvoicesOnly
	}
	return byContext(c, MsgLoadFailed, MsgPermissionDenied)
}

// IsAuthError reports whether err looks like an authentication or authorization failure
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Unauthorized") ||
		strings.Contains(msg, "trap") ||
		strings.Contains(strings.ToLower(msg), "permission")
}

func byContext(c Context, display, write string) string {
	if c == Display {
		return display
	}
	return write
}

func pluralize(singular bool) string {
	if singular {
		return "invoice"
	}
	return "invoices"
}
