package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// UserProfile is the profile saved by a caller
type UserProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// Validate checks the profile fields
func (p *UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return goerr.New("profile name is required", goerr.T(ErrTagInvalid))
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return goerr.New("invalid email address",
			goerr.V("email", p.Email),
			goerr.T(ErrTagInvalid))
	}
	return nil
}
