package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window of issued tokens when none is
// configured.
const DefaultTTL = 15 * 24 * time.Hour

const minSecretLen = 32

// Verification failures. The auth gate distinguishes them for logging
// even though clients receive the same response for all three.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrBadSignature   = errors.New("invalid token signature")
	ErrTokenMalformed = errors.New("malformed token")
)

// Config errors (server-side configuration)
var (
	ErrSecretRequired = errors.New("signing secret is required")
	ErrSecretTooShort = errors.New("signing secret too short")
)

// Claims is the signed content of a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Codec signs and verifies session tokens with a symmetric secret.
//
// Verification is stateless: no session table, no revocation list. The
// cost is that logout cannot invalidate a still-valid token before its
// natural expiry; logout is purely advisory (the cookie is cleared).
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates a Codec. The secret must be present and long enough to
// resist brute force; token operations never run with an empty secret.
func New(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, minSecretLen)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the validity window of issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token embedding userID, issued now and expiring TTL from
// now.
func (c *Codec) Issue(userID string) (string, error) {
	now := c.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
	})

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature integrity and expiry and returns the embedded
// user ID. Only HS256 is accepted; a token claiming any other algorithm
// fails with ErrBadSignature.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrBadSignature
	default:
		return "", ErrTokenMalformed
	}

	if !t.Valid || claims.UserID == "" {
		return "", ErrTokenMalformed
	}
	return claims.UserID, nil
}
