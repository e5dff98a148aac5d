package model

import (
	"context"

	"github.com/careledger/careledger/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	authContextKey contextKey = "authContext"
)

// AuthContext identifies the caller of a backend operation
type AuthContext struct {
	Principal types.Principal `json:"principal,omitempty"`
	Role      types.UserRole  `json:"role,omitempty"`
}

// NewAuthContext creates an AuthContext. An empty role is resolved from the principal.
func NewAuthContext(principal types.Principal, role types.UserRole) *AuthContext {
	if role == "" {
		role = types.UserRoleUser
		if principal.IsAnonymous() {
			role = types.UserRoleGuest
		}
	}
	return &AuthContext{Principal: principal, Role: role}
}

// IsAdmin reports whether the caller is an administrator
func (a *AuthContext) IsAdmin() bool {
	return a != nil && a.Role == types.UserRoleAdmin
}

// Clone creates a copy of the AuthContext
func (a *AuthContext) Clone() *AuthContext {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// WithAuthContext adds AuthContext to the context
func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	if authCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext retrieves AuthContext from the context
func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*AuthContext)
	return authCtx, ok
}

// GetOrAnonymous retrieves AuthContext from context or returns the anonymous guest caller
func GetOrAnonymous(ctx context.Context) *AuthContext {
	if authCtx, ok := GetAuthContext(ctx); ok && authCtx != nil {
		return authCtx
	}
	return NewAuthContext("", types.UserRoleGuest)
}
