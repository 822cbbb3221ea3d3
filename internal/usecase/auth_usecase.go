// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stepwise/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the credential pair supplied at login. It is never
// persisted; the password is discarded after verification.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// AuthUsecase defines the authentication operations the delivery layer
// depends on.
type AuthUsecase interface {
	// Register creates a new account. Email uniqueness is checked before
	// username; the password is stored only as a digest.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a bearer token. An unknown
	// username and a wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Resolve maps a bearer token back to the user it was issued for. Every
	// failure mode surfaces as ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (*entity.User, error)
}
