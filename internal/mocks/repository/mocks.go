// Package repository contains testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stepwise/internal/domain/entity"
	"stepwise/internal/domain/repository"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockProblemRepository is a testify mock for repository.ProblemRepository.
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) List(ctx context.Context, skip, limit int) ([]*entity.Problem, error) {
	args := m.Called(ctx, skip, limit)
	if problems, ok := args.Get(0).([]*entity.Problem); ok {
		return problems, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProblemRepository) FindByID(ctx context.Context, id uint) (*entity.Problem, error) {
	args := m.Called(ctx, id)
	if problem, ok := args.Get(0).(*entity.Problem); ok {
		return problem, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProblemRepository) Create(ctx context.Context, problem *entity.Problem) error {
	args := m.Called(ctx, problem)

	return args.Error(0)
}

func (m *MockProblemRepository) AddPrerequisite(ctx context.Context, problemID, prerequisiteID uint) error {
	args := m.Called(ctx, problemID, prerequisiteID)

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) ProblemRepo() repository.ProblemRepository {
	args := m.Called()

	return args.Get(0).(repository.ProblemRepository)
}

// StubTransactionManager runs the callback against a fixed factory without a
// real transaction, so tests exercise the same code path as production.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}
