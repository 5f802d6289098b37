package cryptography

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the payload of the session cookie
type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// jwtSigner struct that implements the TokenSigner interface with HS256
type jwtSigner struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// NewJWTSigner creates a TokenSigner keyed with the application secret
func NewJWTSigner(secretKey, issuer string) (sessions.TokenSigner, error) {
	if len(secretKey) < 16 {
		return nil, fmt.Errorf("secret key must be at least 16 bytes")
	}
	return &jwtSigner{
		key:    []byte(secretKey),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Sign issues a token naming sessionID that expires with the session
func (s *jwtSigner) Sign(sessionID string, expiresAt time.Time) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("session id cannot be empty")
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID: sessionID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Verify checks signature, issuer and expiry and returns the session id
func (s *jwtSigner) Verify(token string) (string, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || claims.SessionID == "" {
		return "", sessions.ErrInvalidToken
	}
	return claims.SessionID, nil
}
