// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"github.com/google/uuid"
)

// Caller is the authenticated identity of the requester, decoded from the
// access token by the delivery layer before a protected usecase runs.
type Caller struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// CanAccess reports whether the caller may act on the given user record:
// admins always, everyone else only on their own record.
func (c Caller) CanAccess(targetID uuid.UUID) bool {
	return c.IsAdmin() || c.UserID.String() == targetID.String()
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Role     entity.Role // Empty defaults to RoleUser.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Age      *int
	Password *string
}

// --- Output DTOs ---

// AuthOutput returns the user and a freshly minted access token after a
// successful registration or login.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	ListUsers(ctx context.Context, filter repository.ListFilter) ([]*entity.User, error)
	GetUser(ctx context.Context, caller Caller, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, caller Caller, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
