package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/librarium/backend/pkg/auth"
)

func TestTokenManager_IssueParse(t *testing.T) {
	t.Parallel()
	m := auth.NewTokenManager(auth.Config{SigningKey: "test-key", TokenTTL: time.Hour})

	token, err := m.Issue("alice", auth.RoleCustomer, 42, "b5c7dd3e-1111-2222-3333-444455556666")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Profile.Username)
	require.Equal(t, auth.RoleCustomer, claims.Profile.Role)
	require.Equal(t, 42, claims.Profile.CustomerID)
	require.Equal(t, "b5c7dd3e-1111-2222-3333-444455556666", claims.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()
	m := auth.NewTokenManager(auth.Config{SigningKey: "test-key", TokenTTL: -time.Minute})

	token, err := m.Issue("alice", auth.RoleCustomer, 1, "id")
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Tampered(t *testing.T) {
	t.Parallel()
	m := auth.NewTokenManager(auth.Config{SigningKey: "test-key", TokenTTL: time.Hour})

	token, err := m.Issue("alice", auth.RoleCustomer, 1, "id")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = m.Parse(tampered)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_WrongKey(t *testing.T) {
	t.Parallel()
	issuer := auth.NewTokenManager(auth.Config{SigningKey: "old-key", TokenTTL: time.Hour})
	verifier := auth.NewTokenManager(auth.Config{SigningKey: "new-key", TokenTTL: time.Hour})

	token, err := issuer.Issue("alice", auth.RoleRoot, 1, "id")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	identity := auth.Identity{Username: "bob", Role: auth.RoleLibrarian, CustomerID: 7, TokenID: "tid"}

	ctx := auth.SetAuthContext(context.Background(), identity)
	got, ok := auth.FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, identity, got)

	_, ok = auth.FromContext(context.Background())
	require.False(t, ok)

	require.True(t, got.IsStaff())
	require.False(t, auth.Identity{Role: auth.RoleCustomer}.IsStaff())
}
