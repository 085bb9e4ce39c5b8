package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("volunteerhub_test_secret_1234567890")

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("68b1c2d3e4f5a6b7c8d9e0f1", "alice", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifyToken(tok, testSecret)
	require.NoError(t, err)
	require.Equal(t, "68b1c2d3e4f5a6b7c8d9e0f1", claims.UserID)
	require.Equal(t, "alice", claims.Username)

	remaining := time.Until(claims.ExpiresAt.Time)
	require.Greater(t, remaining, TokenTTL-time.Minute)
	require.LessOrEqual(t, remaining, TokenTTL)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", "alice", []byte("right-secret"))
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("wrong-secret"))
	require.Error(t, err)
	require.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestVerifyTokenTampered(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", "alice", testSecret)
	require.NoError(t, err)

	// Swap the payload for one from a token signed with another secret.
	forged, err := GenerateToken("u2", "mallory", []byte("attacker-secret"))
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	forgedParts := strings.Split(forged, ".")
	require.Len(t, parts, 3)
	require.Len(t, forgedParts, 3)

	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]
	_, err = VerifyToken(tampered, testSecret)
	require.Error(t, err)
}

func TestVerifyTokenMalformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not.a.jwt", testSecret)
	require.Error(t, err)

	_, err = VerifyToken("", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

// issueAt signs a token as if it had been issued at the given time, keeping
// the standard 7-day validity.
func issueAt(t *testing.T, issued time.Time) string {
	t.Helper()

	claims := Claims{
		UserID:   "u1",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(TokenTTL)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return tok
}

func TestVerifyTokenExpiryWindow(t *testing.T) {
	t.Parallel()

	// Issued six days ago: one day of validity left.
	claims, err := VerifyToken(issueAt(t, time.Now().Add(-6*24*time.Hour)), testSecret)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)

	// Issued eight days ago: expired one day ago.
	_, err = VerifyToken(issueAt(t, time.Now().Add(-8*24*time.Hour)), testSecret)
	require.Error(t, err)
	require.True(t, errors.Is(err, jwt.ErrTokenExpired))
}
