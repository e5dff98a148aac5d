package model

// Disposition is the coarse outcome shown to the user
type Disposition string

const (
	DispositionSuccess Disposition = "success"
	DispositionError   Disposition = "error"
)

// Notice is a user facing status line
type Notice struct {
	Type    Disposition `json:"type"`
	Message string      `json:"message"`
}

// IsSuccess reports whether the notice reports success
func (n Notice) IsSuccess() bool {
	return n.Type == DispositionSuccess
}

// BatchNotice is the notice for a batch plus the identifiers that stay
// selected for retry. Selection is empty on success and equals the failed
// identifiers otherwise.
type BatchNotice[K comparable] struct {
	Notice
	Selection []K `json:"selection"`
}
