package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "stepwise/internal/delivery/context"
	"stepwise/internal/domain/entity"
	domainerrors "stepwise/internal/domain/errors"
	"stepwise/internal/domain/repository"
	"stepwise/internal/usecase"
)

const defaultProblemListLimit = 100

// problemService implements the ProblemUsecase interface.
type problemService struct {
	txManager   repository.TransactionManager
	problemRepo repository.ProblemRepository
	logger      *slog.Logger
}

// ProblemServiceParams holds dependencies for ProblemService, injected by Fx.
type ProblemServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProblemRepo repository.ProblemRepository
	Logger      *slog.Logger
}

// NewProblemService is the constructor for problemService.
func NewProblemService(params ProblemServiceParams) usecase.ProblemUsecase {
	return &problemService{
		txManager:   params.TxManager,
		problemRepo: params.ProblemRepo,
		logger:      params.Logger,
	}
}

func (srv *problemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProblems lists problems with pagination. Limit defaults to 100 and
// skip clamps at zero.
func (srv *problemService) ListProblems(ctx context.Context, skip, limit int) ([]*entity.Problem, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultProblemListLimit
	}

	problems, err := srv.problemRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list problems")
	}

	return problems, nil
}

// GetProblem retrieves one problem by id.
func (srv *problemService) GetProblem(ctx context.Context, id uint) (*entity.Problem, error) {
	problem, err := srv.problemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProblemNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProblemNotFound)
		}

		return nil, errors.Wrap(err, "failed to get problem")
	}

	return problem, nil
}

// CreateProblem creates a problem with its steps, hints and prerequisite
// edges in one transaction. Prerequisite ids that match no existing problem
// are skipped rather than failing the whole creation.
func (srv *problemService) CreateProblem(ctx context.Context, input *usecase.CreateProblemInput) (*entity.Problem, error) {
	srv.log(ctx).Debug("Creating problem", slog.String("title", input.Title))

	newProblem := &entity.Problem{
		Title:       input.Title,
		Subject:     input.Subject,
		Difficulty:  input.Difficulty,
		Description: input.Description,
		Solution:    input.Solution,
	}
	for _, step := range input.Steps {
		newProblem.Steps = append(newProblem.Steps, entity.Step{Order: step.Order, Content: step.Content})
	}
	for _, hint := range input.Hints {
		newProblem.Hints = append(newProblem.Hints, entity.Hint{Order: hint.Order, Content: hint.Content})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		problemRepo := repoFactory.ProblemRepo()

		if err := problemRepo.Create(ctx, newProblem); err != nil {
			return errors.Wrap(err, "failed to create problem")
		}

		for _, prereqID := range input.PrerequisiteIDs {
			prereq, err := problemRepo.FindByID(ctx, prereqID)
			if err != nil {
				if errors.Is(err, repository.ErrProblemNotFound) {
					srv.log(ctx).Warn("Skipping unknown prerequisite", slog.Uint64("prerequisiteID", uint64(prereqID)))

					continue
				}

				return errors.Wrap(err, "failed to look up prerequisite")
			}

			if err := problemRepo.AddPrerequisite(ctx, newProblem.ID, prereq.ID); err != nil {
				return errors.Wrap(err, "failed to attach prerequisite")
			}

			newProblem.Prerequisites = append(newProblem.Prerequisites, *prereq)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute problem creation transaction", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Problem created", slog.Uint64("problemID", uint64(newProblem.ID)))

	return newProblem, nil
}
