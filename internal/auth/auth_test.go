package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helprequest-service/internal/auth"
)

const secret = "test-secret-0123456789"

func TestJWTService_RoundTrip(t *testing.T) {
	svc := auth.NewJWTService(secret, time.Hour)

	token, err := svc.Generate("cgaucho@ucsb.edu", []string{auth.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "cgaucho@ucsb.edu", claims.Email)
	assert.Equal(t, "cgaucho@ucsb.edu", claims.Subject)
	assert.Equal(t, []string{auth.RoleAdmin}, claims.Roles)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := auth.NewJWTService(secret, time.Hour)

	expired, err := svc.GenerateWithTTL("cgaucho@ucsb.edu", nil, -time.Minute)
	require.NoError(t, err)

	foreign, err := auth.NewJWTService("another-secret-0123456789", time.Hour).Generate("cgaucho@ucsb.edu", nil)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "x@ucsb.edu"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noEmail, err := svc.Generate("", nil)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":         "",
		"garbage":       "not.a.token",
		"expired":       expired,
		"wrong secret":  foreign,
		"alg none":      noneAlg,
		"missing email": noEmail,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestAuthenticator_Roles(t *testing.T) {
	tokens := auth.NewJWTService(secret, time.Hour)
	authn := auth.NewAuthenticator(tokens, []string{"PHTCON@ucsb.edu"})

	tests := []struct {
		name      string
		email     string
		roles     []string
		wantRoles []string
	}{
		{
			name:      "Plain user",
			email:     "cgaucho@ucsb.edu",
			wantRoles: []string{auth.RoleUser},
		},
		{
			name:      "Admin from token, user role not duplicated",
			email:     "ldelplaya@ucsb.edu",
			roles:     []string{auth.RoleUser, auth.RoleAdmin},
			wantRoles: []string{auth.RoleUser, auth.RoleAdmin},
		},
		{
			name:      "Admin from configured email list",
			email:     "phtcon@ucsb.edu",
			wantRoles: []string{auth.RoleUser, auth.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Generate(tt.email, tt.roles)
			require.NoError(t, err)

			p, err := authn.Authenticate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.email, p.Email)
			assert.Equal(t, tt.wantRoles, p.Roles)
		})
	}

	_, err := authn.Authenticate("broken")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthorizer_Allowed(t *testing.T) {
	authz, err := auth.NewAuthorizer()
	require.NoError(t, err)

	user := auth.Principal{Email: "u@ucsb.edu", Roles: []string{auth.RoleUser}}
	admin := auth.Principal{Email: "a@ucsb.edu", Roles: []string{auth.RoleAdmin}}
	nobody := auth.Principal{Email: "n@ucsb.edu"}

	tests := []struct {
		name      string
		principal auth.Principal
		action    string
		want      bool
	}{
		{"user reads", user, auth.ActionRead, true},
		{"user cannot write", user, auth.ActionWrite, false},
		{"admin writes", admin, auth.ActionWrite, true},
		{"admin inherits read", admin, auth.ActionRead, true},
		{"no roles cannot read", nobody, auth.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := authz.Allowed(tt.principal, auth.ResourceHelpRequests, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	ok, err := authz.Allowed(admin, "articles", auth.ActionRead)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrincipalContext(t *testing.T) {
	_, ok := auth.PrincipalFromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithPrincipal(context.Background(), auth.Principal{Email: "u@ucsb.edu"})
	p, ok := auth.PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u@ucsb.edu", p.Email)
}
