package usecase

import (
	"context"

	"stepwise/internal/domain/entity"
)

// StepInput is one ordered step supplied at problem creation.
type StepInput struct {
	Order   int    `json:"order"`
	Content string `json:"content"`
}

// HintInput is one ordered hint supplied at problem creation.
type HintInput struct {
	Order   int    `json:"order"`
	Content string `json:"content"`
}

// CreateProblemInput defines the data required to create a catalog problem.
type CreateProblemInput struct {
	Title           string      `json:"title" validate:"required"`
	Subject         string      `json:"subject" validate:"required"`
	Difficulty      int         `json:"difficulty"`
	Description     string      `json:"description"`
	Solution        string      `json:"solution"`
	Steps           []StepInput `json:"steps"`
	Hints           []HintInput `json:"hints"`
	PrerequisiteIDs []uint      `json:"prerequisite_ids"`
}

// ProblemUsecase defines the problem catalog operations.
type ProblemUsecase interface {
	// ListProblems lists problems with offset/limit pagination.
	ListProblems(ctx context.Context, skip, limit int) ([]*entity.Problem, error)

	// GetProblem retrieves one problem; absent ids fail with
	// ErrProblemNotFound.
	GetProblem(ctx context.Context, id uint) (*entity.Problem, error)

	// CreateProblem creates a problem with its steps, hints and prerequisite
	// edges in one transaction. Unknown prerequisite ids are skipped.
	CreateProblem(ctx context.Context, input *CreateProblemInput) (*entity.Problem, error)
}
