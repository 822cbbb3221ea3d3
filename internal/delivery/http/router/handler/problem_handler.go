package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"stepwise/internal/delivery/http/response"
	domainerrors "stepwise/internal/domain/errors"
	"stepwise/internal/usecase"
)

// ProblemHandler holds dependencies for the problem catalog endpoints.
type ProblemHandler struct {
	uc     usecase.ProblemUsecase
	logger *slog.Logger
}

// NewProblemHandler is the constructor for ProblemHandler, injected by Fx.
func NewProblemHandler(uc usecase.ProblemUsecase, logger *slog.Logger) *ProblemHandler {
	return &ProblemHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns a page of catalog problems. Unparseable pagination parameters
// fall back to the defaults.
func (h *ProblemHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	problems, err := h.uc.ListProblems(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProblemList(problems))
}

// Get returns one problem with its steps, hints and prerequisites.
func (h *ProblemHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("problem id must be a positive integer")
	}

	problem, err := h.uc.GetProblem(c.Request().Context(), uint(id))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProblem(problem))
}

// Create adds a problem to the catalog.
func (h *ProblemHandler) Create(c echo.Context) error {
	var input usecase.CreateProblemInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid problem input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	problem, err := h.uc.CreateProblem(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewProblem(problem))
}
