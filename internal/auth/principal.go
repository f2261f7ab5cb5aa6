package auth

import (
	"context"
	"slices"
	"strings"
)

// Principal описывает аутентифицированного вызывающего.
type Principal struct {
	Email string
	Roles []string
}

// HasRole сообщает, есть ли у вызывающего роль role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// Authenticator превращает bearer-токен в Principal.
// Любой валидный токен даёт ROLE_USER; email из adminEmails дополнительно получает ROLE_ADMIN.
type Authenticator struct {
	tokens      *JWTService
	adminEmails map[string]struct{}
}

// NewAuthenticator создаёт аутентификатор. Сравнение email регистронезависимое.
func NewAuthenticator(tokens *JWTService, adminEmails []string) *Authenticator {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(e)] = struct{}{}
	}
	return &Authenticator{tokens: tokens, adminEmails: admins}
}

// Authenticate проверяет токен и собирает роли вызывающего.
func (a *Authenticator) Authenticate(token string) (Principal, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return Principal{}, err
	}

	p := Principal{Email: claims.Email}
	p.addRole(RoleUser)
	for _, r := range claims.Roles {
		p.addRole(r)
	}
	if _, ok := a.adminEmails[strings.ToLower(claims.Email)]; ok {
		p.addRole(RoleAdmin)
	}
	return p, nil
}

func (p *Principal) addRole(role string) {
	if role != "" && !p.HasRole(role) {
		p.Roles = append(p.Roles, role)
	}
}

type principalKey struct{}

// WithPrincipal кладёт вызывающего в контекст запроса.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext достаёт вызывающего из контекста.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
