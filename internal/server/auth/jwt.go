// Package auth provides the cryptographic building blocks of the
// authentication flow: JWT issuance/verification, password hashing and the
// session cookie carrier.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/acquisitions/internal/common"
)

// Claims is the set of JWT claims carried by a session token: the standard
// registered claims plus the user's identity attributes.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenIssuer signs and verifies session tokens with a process-wide HMAC
// secret. The secret and validity are injected at construction, never read
// from ambient state.
type TokenIssuer struct {
	secretKey        []byte
	validityDuration time.Duration
}

func NewTokenIssuer(secretKey []byte, validityDuration time.Duration) *TokenIssuer {
	return &TokenIssuer{secretKey: secretKey, validityDuration: validityDuration}
}

// ValiditySeconds returns the configured token lifetime in whole seconds.
// The session cookie MaxAge is derived from this value so that the token and
// its carrier always expire together.
func (i *TokenIssuer) ValiditySeconds() int {
	return int(i.validityDuration.Seconds())
}

// Issue signs a token carrying the given identity claims with an expiration
// of now + the configured validity.
func (i *TokenIssuer) Issue(userID, email, role string) (string, error) {
	if len(i.secretKey) == 0 {
		return "", common.ErrSigning
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validityDuration)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", common.ErrSigning
	}

	return tokenString, nil
}

// Verify parses and validates a token string and returns its claims.
// Expired tokens yield common.ErrTokenExpired; any other defect yields
// common.ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
