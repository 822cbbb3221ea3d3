package repository

import (
	"context"
	"errors"

	"stepwise/internal/domain/entity"
)

// ErrProblemNotFound is returned when a lookup matches no problem row.
var ErrProblemNotFound = errors.New("problem not found")

// ProblemRepository defines the operations for problem catalog persistence.
type ProblemRepository interface {
	// List retrieves problems with offset/limit pagination, preloading steps,
	// hints and prerequisite edges.
	List(ctx context.Context, skip, limit int) ([]*entity.Problem, error)

	// FindByID retrieves a single problem with its associations.
	FindByID(ctx context.Context, id uint) (*entity.Problem, error)

	// Create persists a problem together with its steps and hints.
	Create(ctx context.Context, problem *entity.Problem) error

	// AddPrerequisite records a prerequisite edge between two problems.
	AddPrerequisite(ctx context.Context, problemID, prerequisiteID uint) error
}
