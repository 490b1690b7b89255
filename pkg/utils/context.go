package utils

import (
	"context"
	"slices"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
	TokenKey     contextKey = "token"
)

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Principal is the authenticated caller as carried by the bearer token.
type Principal struct {
	Username string
	Roles    []string
	Token    string
}

func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if slices.Contains(p.Roles, role) {
			return true
		}
	}
	return false
}

func SetPrincipalContext(ctx context.Context, principal Principal) context.Context {
	ctx = context.WithValue(ctx, PrincipalKey, principal)
	return SetTokenContext(ctx, principal.Token)
}

func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(Principal)
	return principal, ok
}

// GetTokenFromContext returns the raw bearer token forwarded to downstream services.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
