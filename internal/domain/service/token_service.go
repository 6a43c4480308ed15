package service

import (
	"roster/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in access tokens.
// The role reflects the user's role at issuance time; a later role change
// takes effect only on the next issued token.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed access token for a given user and role.
	Generate(userID uuid.UUID, role entity.Role) (string, error)

	// Validate checks signature and expiry of a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
