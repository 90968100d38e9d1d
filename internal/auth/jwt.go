package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptyToken is returned for an empty token string.
var ErrEmptyToken = errors.New("token is empty")

// TokenParser reads identity claims from provider-issued access tokens.
// With a secret, HS256 signatures and expiry are verified. Without one the
// claims are decoded unverified and treated as advisory.
type TokenParser struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenParser creates a parser. secret may be empty.
func NewTokenParser(secret string) *TokenParser {
	p := &TokenParser{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
	if secret != "" {
		p.secret = []byte(secret)
	}
	return p
}

// Verifies reports whether signatures are checked.
func (p *TokenParser) Verifies() bool {
	return p.secret != nil
}

// accessClaims are the claims the auth provider puts in its access tokens.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Parse extracts the identity from tokenString.
func (p *TokenParser) Parse(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrEmptyToken
	}

	claims := &accessClaims{}
	verified := p.secret != nil

	if verified {
		token, err := p.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return p.secret, nil
		})
		if err != nil {
			return Identity{}, fmt.Errorf("parse token: %w", err)
		}
		if !token.Valid {
			return Identity{}, fmt.Errorf("invalid token claims")
		}
	} else {
		if _, _, err := p.parser.ParseUnverified(tokenString, claims); err != nil {
			return Identity{}, fmt.Errorf("parse token: %w", err)
		}
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	id := Identity{
		UserID:   userID,
		Email:    claims.Email,
		Role:     claims.Role,
		Verified: verified,
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}
