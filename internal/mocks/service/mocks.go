// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"stepwise/internal/domain/service"
)

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenCodec is a testify mock for service.TokenCodec.
type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	args := m.Called(subject, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenCodec) Decode(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenCodec) TokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
