// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate rules that don't naturally fit within a single
// entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm (bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password. Two calls
	// with the same plaintext yield different digests.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest. The comparison does
	// not leak where a mismatch occurs; a malformed digest reports false
	// rather than panicking.
	Check(password, hash string) bool
}
