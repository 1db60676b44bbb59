package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing session tokens.
//
// Tokens are stateless and signature-based: they encode the user identity
// and nothing else, and carry no expiry. The missing expiry is a known
// security gap inherited from the reference system, kept deliberately;
// adding expiry or a revocation list is a conscious deviation, not a
// requirement of the current contract.
type JWTService interface {
	// GenerateToken creates a signed session token binding the given user
	// identity. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies signature integrity and structure of the
	// provided token string and extracts the claims. Returns
	// ErrInvalidToken if signature verification fails, the structure is
	// malformed, or the embedded identity is absent.
	//
	// Validation does not confirm the user still exists; a token
	// referencing a deleted user resolves here and fails identity lookup
	// downstream with ErrUnknownUser.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for session tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject  string    `json:"sub,omitempty"`
	IssuedAt time.Time `json:"iat,omitempty"`
	ID       string    `json:"jti,omitempty"`
}
