// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/lendit/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenDuration is the lifetime of an access token when none is
// configured.
const DefaultTokenDuration = 30 * time.Minute

// Reasons a token fails verification. They are distinct for logging; the
// HTTP boundary collapses all of them to a single "Invalid token".
var (
	ErrTokenMalformed         = errors.New("token is malformed")
	ErrTokenSignatureInvalid  = errors.New("token signature is invalid")
	ErrTokenAlgorithmMismatch = errors.New("token signing algorithm mismatch")
	ErrTokenExpired           = errors.New("token is expired")
	ErrTokenMissingClaims     = errors.New("token is missing required claims")
	ErrTokenIssuerMismatch    = errors.New("token issuer mismatch")
	ErrTokenInvalid           = errors.New("token is invalid")
)

// Errors returned while building or using the codec itself.
var (
	ErrEmptyTokenSignKey   = errors.New("token sign key is empty")
	ErrInvalidTokenSubject = errors.New("invalid token subject")
)

var signingMethod = jwt.SigningMethodHS256

// TokenCodec issues and verifies HS256-signed access tokens.
//
// A codec is immutable after construction and safe for concurrent use. It
// never exposes its sign key.
type TokenCodec struct {
	signKey  []byte
	issuer   string
	duration time.Duration
	now      func() time.Time
}

// NewTokenCodec builds a codec signing with signKey. An empty key is an
// error: there is no fallback secret. A non-positive duration falls back to
// [DefaultTokenDuration]. An empty issuer disables the "iss" check.
func NewTokenCodec(signKey, issuer string, duration time.Duration) (*TokenCodec, error) {
	if signKey == "" {
		return nil, ErrEmptyTokenSignKey
	}
	if duration <= 0 {
		duration = DefaultTokenDuration
	}

	return &TokenCodec{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
		now:      time.Now,
	}, nil
}

// WithClock returns a copy of the codec that reads the current time from
// now. Used to test expiry boundaries.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	clone := *c
	clone.now = now
	return &clone
}

// Duration returns the default token lifetime.
func (c *TokenCodec) Duration() time.Duration {
	return c.duration
}

// Issue creates a signed token for the subject (userID, email) that expires
// ttl after now. A non-positive ttl uses the codec's default duration.
// "exp" has whole-second precision: a sub-second issue time is truncated,
// so the token may expire up to one second before now+ttl.
//
// The token carries "sub" (decimal userID), "email", "iat", "exp" and, when
// configured, "iss".
func (c *TokenCodec) Issue(userID int64, email string, ttl time.Duration) (models.Token, error) {
	if email == "" {
		return models.Token{}, fmt.Errorf("%w: empty email", ErrInvalidTokenSubject)
	}
	if ttl <= 0 {
		ttl = c.duration
	}

	now := c.now()
	claims := models.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: tokenString,
		UserID:       userID,
		Email:        email,
	}, nil
}

// Verify checks tokenString and returns its decoded claims.
//
// A token is valid iff it is well-formed, signed with HS256 and the codec's
// key, carries "sub" and "email", matches the configured issuer and the
// current time is strictly before "exp". Each failure maps to one of the
// ErrToken* reasons. Verify has no side effects.
func (c *TokenCodec) Verify(tokenString string) (models.Token, error) {
	claims := &models.Claims{}

	opts := []jwt.ParserOption{
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc, opts...)
	if err != nil {
		return models.Token{}, classifyJWTError(err)
	}
	if !token.Valid {
		return models.Token{}, ErrTokenInvalid
	}

	if claims.Subject == "" || claims.Email == "" {
		return models.Token{}, ErrTokenMissingClaims
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: subject is not a user id: %w", ErrTokenMissingClaims, err)
	}

	return models.Token{
		Token:        token,
		Claims:       *claims,
		SignedString: tokenString,
		UserID:       userID,
		Email:        claims.Email,
	}, nil
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (any, error) {
	if token.Method == nil || token.Method.Alg() != signingMethod.Alg() {
		return nil, ErrTokenAlgorithmMismatch
	}
	return c.signKey, nil
}

// classifyJWTError maps jwt/v5 parse errors onto the codec's reasons.
// Order matters: keyfunc failures are wrapped in ErrTokenUnverifiable.
func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, ErrTokenAlgorithmMismatch):
		return ErrTokenAlgorithmMismatch
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		// unknown "alg" header
		return fmt.Errorf("%w: %w", ErrTokenAlgorithmMismatch, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrTokenIssuerMismatch
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ErrTokenMissingClaims
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	default:
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}
