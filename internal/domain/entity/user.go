// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. A user owns zero or more posts and
// authenticates with an email and a bcrypt-hashed password. The record is
// immutable after registration.
type User struct {
	ID           uint64    // Auto-incremented primary key.
	Email        string    // Globally unique login identifier.
	PasswordHash string    // bcrypt hash of the password. Plaintext is never stored.
	CreatedAt    time.Time // Timestamp of registration.
}
