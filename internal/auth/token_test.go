package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", "admin", "s3cret", time.Hour)
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, expiresAt, err := svc.Issue("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestIssueRejectsBadCredentials(t *testing.T) {
	svc := NewTokenService("test-secret", "admin", "s3cret", time.Hour)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "s3cret"},
		{"both wrong", "root", "nope"},
		{"prefix of password", "admin", "s3cre"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Issue(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", "admin", "s3cret", time.Hour)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	token, _, err := svc.Issue("admin", "s3cret")
	require.NoError(t, err)

	now = now.Add(time.Hour + time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService("other-secret", "admin", "s3cret", time.Hour)
	token, _, err := issuer.Issue("admin", "s3cret")
	require.NoError(t, err)

	verifier := NewTokenService("test-secret", "admin", "s3cret", time.Hour)
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := NewTokenService("test-secret", "admin", "s3cret", time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", "admin", "s3cret", time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestCredentialRotationKeepsIssuedTokens(t *testing.T) {
	before := NewTokenService("test-secret", "admin", "old-pass", time.Hour)
	token, _, err := before.Issue("admin", "old-pass")
	require.NoError(t, err)

	after := NewTokenService("test-secret", "admin", "new-pass", time.Hour)
	claims, err := after.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}
