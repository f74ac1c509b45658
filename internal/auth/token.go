package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the token lifetime applied when no override is configured.
const DefaultTokenTTL = 30 * time.Minute

var (
	// ErrTokenInvalid indicates a token whose signature, structure or claims
	// do not check out.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired indicates a correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// TokenService issues and verifies HMAC signed bearer tokens carrying a
// subject claim. The signing secret is fixed for the process lifetime;
// rotating it invalidates every previously issued token.
type TokenService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenService builds a token service for the given secret and algorithm
// identifier (HS256, HS384 or HS512). A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("signing secret is required")
	}
	method, err := signingMethod(algorithm)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue mints a token for subject with the service's default lifetime.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueFor(subject, s.ttl)
}

// IssueFor mints a token for subject expiring after ttl.
func (s *TokenService) IssueFor(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject claim.
// Expired tokens yield ErrTokenExpired; everything else that fails to parse
// or validate yields ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// TTL returns the default token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != s.method.Alg() {
		return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
	}
	return s.secret, nil
}

func signingMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
}
