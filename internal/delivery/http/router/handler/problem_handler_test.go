package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stepwise/internal/delivery/http/middleware"
	"stepwise/internal/delivery/http/validator"
	"stepwise/internal/domain/entity"
	"stepwise/internal/domain/repository"
	mockRepo "stepwise/internal/mocks/repository"
	"stepwise/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProblemTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockProblemRepository) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	problemRepo := &mockRepo.MockProblemRepository{}
	factory := &mockRepo.MockRepositoryFactory{}
	factory.On("ProblemRepo").Return(problemRepo).Maybe()

	problemUC := impl.NewProblemService(impl.ProblemServiceParams{
		TxManager:   &mockRepo.StubTransactionManager{Factory: factory},
		ProblemRepo: problemRepo,
		Logger:      logger,
	})

	problemHandler := NewProblemHandler(problemUC, logger)
	errorMw := middleware.NewErrorMiddleware(logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorMw.HandleHTTPError
	e.GET("/problems", problemHandler.List)
	e.GET("/problems/:id", problemHandler.Get)
	e.POST("/problems", problemHandler.Create)

	return e, problemRepo
}

func TestProblemHandler_List(t *testing.T) {
	e, problemRepo := newProblemTestServer(t)

	problems := []*entity.Problem{
		{ID: 1, Title: "Limits", Subject: "calculus", Difficulty: 1},
		{ID: 2, Title: "Chain rule", Subject: "calculus", Difficulty: 2},
	}
	problemRepo.On("List", mock.Anything, 0, 100).Return(problems, nil)

	req := httptest.NewRequest(http.MethodGet, "/problems", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Limits", listed[0]["title"])
	assert.Equal(t, "Chain rule", listed[1]["title"])
}

func TestProblemHandler_List_Pagination(t *testing.T) {
	e, problemRepo := newProblemTestServer(t)

	problemRepo.On("List", mock.Anything, 5, 2).Return([]*entity.Problem{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/problems?skip=5&limit=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	problemRepo.AssertExpectations(t)
}

func TestProblemHandler_Get(t *testing.T) {
	e, problemRepo := newProblemTestServer(t)

	problem := &entity.Problem{
		ID:         3,
		Title:      "Quadratic equations",
		Subject:    "algebra",
		Difficulty: 2,
		Steps: []entity.Step{
			{ID: 1, ProblemID: 3, Order: 1, Content: "Move everything to one side"},
		},
		Hints: []entity.Hint{
			{ID: 1, ProblemID: 3, Order: 1, Content: "Remember the discriminant"},
		},
		Prerequisites: []entity.Problem{{ID: 1, Title: "Linear equations", Subject: "algebra"}},
	}
	problemRepo.On("FindByID", mock.Anything, uint(3)).Return(problem, nil)

	req := httptest.NewRequest(http.MethodGet, "/problems/3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Quadratic equations", got["title"])
	assert.Len(t, got["steps"], 1)
	assert.Len(t, got["hints"], 1)
	assert.Len(t, got["prerequisites"], 1)
}

func TestProblemHandler_Get_NotFound(t *testing.T) {
	e, problemRepo := newProblemTestServer(t)

	problemRepo.On("FindByID", mock.Anything, uint(999)).Return(nil, repository.ErrProblemNotFound)

	req := httptest.NewRequest(http.MethodGet, "/problems/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Problem not found"}`, rec.Body.String())
}

func TestProblemHandler_Get_BadID(t *testing.T) {
	e, _ := newProblemTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/problems/not-a-number", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail": "Invalid request payload"}`, rec.Body.String())
}

func TestProblemHandler_Create(t *testing.T) {
	e, problemRepo := newProblemTestServer(t)

	problemRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Problem")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Problem).ID = 10
		}).
		Return(nil)
	problemRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&entity.Problem{ID: 1, Title: "Limits"}, nil)
	problemRepo.On("FindByID", mock.Anything, uint(999)).
		Return(nil, repository.ErrProblemNotFound)
	problemRepo.On("AddPrerequisite", mock.Anything, uint(10), uint(1)).Return(nil)

	payload := `{
		"title": "Derivatives",
		"subject": "calculus",
		"difficulty": 2,
		"description": "Differentiate polynomials.",
		"solution": "Apply the power rule.",
		"steps": [{"order": 1, "content": "Bring down the exponent"}],
		"hints": [{"order": 1, "content": "Think power rule"}],
		"prerequisite_ids": [1, 999]
	}`

	req := httptest.NewRequest(http.MethodPost, "/problems", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, float64(10), created["id"])
	assert.Len(t, created["steps"], 1)

	// The unknown prerequisite id is skipped, not an error.
	assert.Len(t, created["prerequisites"], 1)
	problemRepo.AssertNotCalled(t, "AddPrerequisite", mock.Anything, uint(10), uint(999))
}

func TestProblemHandler_Create_MissingTitle(t *testing.T) {
	e, _ := newProblemTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/problems", strings.NewReader(`{"subject": "algebra"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail": "Invalid request payload"}`, rec.Body.String())
}
