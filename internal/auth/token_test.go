package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestTokenService_ExpiryFromDefaultTTL(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	before := time.Now()
	token, err := svc.Issue("alice")
	require.NoError(t, err)
	after := time.Now()

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	expiry := claims.ExpiresAt.Time
	require.False(t, expiry.Before(before.Add(30*time.Minute).Truncate(time.Second)))
	require.False(t, expiry.After(after.Add(30*time.Minute)))
	require.NotEmpty(t, claims.ID)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	token, err := svc.IssueFor("alice", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	right, err := NewTokenService("right-secret", "HS256", time.Hour)
	require.NoError(t, err)
	wrong, err := NewTokenService("wrong-secret", "HS256", time.Hour)
	require.NoError(t, err)

	token, err := right.Issue("alice")
	require.NoError(t, err)

	_, err = wrong.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Tampered(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	tampered := []byte(token)
	if tampered[len(tampered)-1] == 'x' {
		tampered[len(tampered)-1] = 'y'
	} else {
		tampered[len(tampered)-1] = 'x'
	}

	_, err = svc.Verify(string(tampered))
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Verify(token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	token, err := svc.IssueFor("", time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_AlgorithmMismatchRejected(t *testing.T) {
	t.Parallel()

	hs512, err := NewTokenService("test-secret", "HS512", time.Hour)
	require.NoError(t, err)

	token, err := hs512.Issue("alice")
	require.NoError(t, err)

	hs256 := newTestTokenService(t)
	_, err = hs256.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenService_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("", "HS256", time.Hour)
	require.Error(t, err)

	_, err = NewTokenService("secret", "RS256", time.Hour)
	require.Error(t, err)

	svc, err := NewTokenService("secret", "", 0)
	require.NoError(t, err)
	require.Equal(t, DefaultTokenTTL, svc.TTL())
}
