// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a single account.
// PasswordHash only ever holds the one-way bcrypt hash; the plaintext
// password never leaves the usecase layer after hashing.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the store on creation.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // Salted bcrypt hash of the password.
	Age          int       // Plain numeric attribute, no invariant beyond being a number.
	Role         Role      // Authorization role, one of the closed Role set.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
