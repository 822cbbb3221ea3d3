package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"stepwise/internal/domain/entity"
	"stepwise/internal/domain/repository"
	"stepwise/internal/infra/persistence/model"
)

// problemRepository implements the domain's ProblemRepository interface
// using GORM.
type problemRepository struct {
	db *gorm.DB
}

// NewProblemRepository is the constructor for problemRepository.
func NewProblemRepository(db *gorm.DB) repository.ProblemRepository {
	return &problemRepository{db: db}
}

// List retrieves problems with pagination, preloading steps, hints and the
// prerequisite edges. Prerequisites load one level deep only.
func (repo *problemRepository) List(ctx context.Context, skip, limit int) ([]*entity.Problem, error) {
	var problemMs []*model.ProblemModel
	err := repo.db.WithContext(ctx).
		Preload("Steps", orderSteps).
		Preload("Hints", orderHints).
		Preload("Prerequisites").
		Offset(skip).
		Limit(limit).
		Find(&problemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list problems")
	}

	problems := make([]*entity.Problem, 0, len(problemMs))
	for _, problemM := range problemMs {
		problems = append(problems, toProblemDomain(problemM))
	}

	return problems, nil
}

// FindByID retrieves a single problem with its associations.
func (repo *problemRepository) FindByID(ctx context.Context, id uint) (*entity.Problem, error) {
	var problemM model.ProblemModel
	err := repo.db.WithContext(ctx).
		Preload("Steps", orderSteps).
		Preload("Hints", orderHints).
		Preload("Prerequisites").
		First(&problemM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProblemNotFound
		}

		return nil, errors.Wrap(err, "failed to find problem by id")
	}

	return toProblemDomain(&problemM), nil
}

// Create persists a problem together with its steps and hints. GORM inserts
// the associations alongside the parent row.
func (repo *problemRepository) Create(ctx context.Context, problem *entity.Problem) error {
	problemM := fromProblemDomain(problem)

	if err := repo.db.WithContext(ctx).Create(problemM).Error; err != nil {
		return errors.Wrap(err, "failed to create problem")
	}

	problem.ID = problemM.ID
	problem.CreatedAt = problemM.CreatedAt
	problem.UpdatedAt = problemM.UpdatedAt
	for i := range problemM.Steps {
		problem.Steps[i].ID = problemM.Steps[i].ID
		problem.Steps[i].ProblemID = problemM.ID
	}
	for i := range problemM.Hints {
		problem.Hints[i].ID = problemM.Hints[i].ID
		problem.Hints[i].ProblemID = problemM.ID
	}

	return nil
}

// AddPrerequisite records a prerequisite edge between two existing problems.
func (repo *problemRepository) AddPrerequisite(ctx context.Context, problemID, prerequisiteID uint) error {
	parent := model.ProblemModel{ID: problemID}
	edge := model.ProblemModel{ID: prerequisiteID}

	err := repo.db.WithContext(ctx).
		Model(&parent).
		Association("Prerequisites").
		Append(&edge)
	if err != nil {
		return errors.Wrap(err, "failed to add prerequisite edge")
	}

	return nil
}

func orderSteps(db *gorm.DB) *gorm.DB {
	return db.Order("steps.step_order ASC")
}

func orderHints(db *gorm.DB) *gorm.DB {
	return db.Order("hints.hint_order ASC")
}

// toProblemDomain maps the persistence model to a pure domain entity.
func toProblemDomain(problemM *model.ProblemModel) *entity.Problem {
	problem := &entity.Problem{
		ID:          problemM.ID,
		Title:       problemM.Title,
		Subject:     problemM.Subject,
		Difficulty:  problemM.Difficulty,
		Description: problemM.Description,
		Solution:    problemM.Solution,
		CreatedAt:   problemM.CreatedAt,
		UpdatedAt:   problemM.UpdatedAt,
	}

	for _, stepM := range problemM.Steps {
		problem.Steps = append(problem.Steps, entity.Step{
			ID:        stepM.ID,
			ProblemID: stepM.ProblemID,
			Order:     stepM.Order,
			Content:   stepM.Content,
		})
	}
	for _, hintM := range problemM.Hints {
		problem.Hints = append(problem.Hints, entity.Hint{
			ID:        hintM.ID,
			ProblemID: hintM.ProblemID,
			Order:     hintM.Order,
			Content:   hintM.Content,
		})
	}
	for _, prereqM := range problemM.Prerequisites {
		problem.Prerequisites = append(problem.Prerequisites, entity.Problem{
			ID:          prereqM.ID,
			Title:       prereqM.Title,
			Subject:     prereqM.Subject,
			Difficulty:  prereqM.Difficulty,
			Description: prereqM.Description,
			Solution:    prereqM.Solution,
		})
	}

	return problem
}

// fromProblemDomain maps a domain entity to the persistence model. The
// prerequisite edges are attached separately via AddPrerequisite so unknown
// ids can be skipped.
func fromProblemDomain(problem *entity.Problem) *model.ProblemModel {
	problemM := &model.ProblemModel{
		ID:          problem.ID,
		Title:       problem.Title,
		Subject:     problem.Subject,
		Difficulty:  problem.Difficulty,
		Description: problem.Description,
		Solution:    problem.Solution,
	}

	for _, step := range problem.Steps {
		problemM.Steps = append(problemM.Steps, model.StepModel{
			Order:   step.Order,
			Content: step.Content,
		})
	}
	for _, hint := range problem.Hints {
		problemM.Hints = append(problemM.Hints, model.HintModel{
			Order:   hint.Order,
			Content: hint.Content,
		})
	}

	return problemM
}
