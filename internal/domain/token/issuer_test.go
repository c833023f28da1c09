package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_Issue(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	subject := uuid.New()

	pair, err := issuer.Issue(subject)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	got, err := ParseSubject(pair.AccessToken, []byte("access-secret"))
	require.NoError(t, err)
	assert.Equal(t, subject, got)

	got, err = ParseSubject(pair.RefreshToken, []byte("refresh-secret"))
	require.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestIssuer_Issue_IndependentSecrets(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	pair, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	// Each token verifies only against its own secret.
	_, err = ParseSubject(pair.AccessToken, []byte("refresh-secret"))
	assert.Error(t, err)
	_, err = ParseSubject(pair.RefreshToken, []byte("access-secret"))
	assert.Error(t, err)
}

func TestIssuer_Issue_Expirations(t *testing.T) {
	accessTTL := 15 * time.Minute
	refreshTTL := 24 * time.Hour
	issuer := NewIssuer("access-secret", "refresh-secret", accessTTL, refreshTTL)

	before := time.Now()
	pair, err := issuer.Issue(uuid.New())
	require.NoError(t, err)
	after := time.Now()

	accessClaims := parseClaims(t, pair.AccessToken, "access-secret")
	refreshClaims := parseClaims(t, pair.RefreshToken, "refresh-secret")

	assert.WithinRange(t, accessClaims.ExpiresAt.Time, before.Add(accessTTL), after.Add(accessTTL))
	assert.WithinRange(t, refreshClaims.ExpiresAt.Time, before.Add(refreshTTL), after.Add(refreshTTL))

	assert.Empty(t, accessClaims.ID)
	assert.NotEmpty(t, refreshClaims.ID, "refresh token carries a JTI")
}

func TestParseSubject_Expired(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	pair, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = ParseSubject(pair.AccessToken, []byte("access-secret"))
	assert.Error(t, err)
}

func TestParseSubject_Garbage(t *testing.T) {
	_, err := ParseSubject("not-a-token", []byte("access-secret"))
	assert.Error(t, err)
}

func parseClaims(t *testing.T, raw, secret string) *jwt.RegisteredClaims {
	t.Helper()

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	return claims
}
