package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token cannot be trusted: broken,
// signed with another key, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Issuer mints and verifies access tokens.
//
// Tokens are JWTs signed with HMAC-SHA256, carrying the username as the
// subject claim.
type Issuer struct {
	secret []byte
	expiry time.Duration
	clock  func() time.Time
}

type Option func(*Issuer)

// WithClock replaces time.Now. For tests.
func WithClock(clock func() time.Time) Option {
	return func(i *Issuer) {
		i.clock = clock
	}
}

func New(secret []byte, expiry time.Duration, opts ...Option) *Issuer {
	i := &Issuer{secret: secret, expiry: expiry, clock: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue mints a token for username.
func (i *Issuer) Issue(username string) (string, error) {
	now := i.clock()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify resolves a token back to the username it was issued for.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	t, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithTimeFunc(i.clock),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !t.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
