package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT session tokens.
// Tokens are stateless: verified by signature and expiry only, never
// persisted or revoked server-side.
type JWTService interface {
	// GenerateToken creates a signed session token encoding the user's
	// ID with a seven-day expiry window from issuance.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts
	// the claims. Returns the claims if and only if the signature is
	// valid and the token unexpired; any malformed, expired, or
	// tampered token yields one of the sentinel errors in this package.
	// Callers must treat every error as "unauthenticated", not as a
	// system failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the session tokens.
// It extends standard JWT registered claims with application-specific
// fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
