// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record for an account. The password hash never leaves
// the persistence and usecase layers; delivery maps User to a response DTO
// without it.
type User struct {
	ID           uint      // Numeric primary identifier.
	Email        string    // Unique contact email, checked first on registration.
	Username     string    // Unique login identifier, also the token subject.
	PasswordHash string    // Salted bcrypt digest of the password.
	IsActive     bool      // Defaults to true on registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
