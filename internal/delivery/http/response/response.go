// Package response defines the wire-level response bodies. Success bodies are
// plain resource DTOs; every error body is {"detail": message}.
package response

import (
	"github.com/labstack/echo/v4"

	"stepwise/internal/domain/entity"
)

// Detail is the uniform error body.
type Detail struct {
	Detail string `json:"detail"`
}

// Error writes an error body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Detail{Detail: message})
}

// User is the caller-visible account representation. The password hash is
// deliberately absent; nothing in this package can render it.
type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

// NewUser maps a domain user onto its response form.
func NewUser(user *entity.User) User {
	return User{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		IsActive: user.IsActive,
	}
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Step is one rendered problem step.
type Step struct {
	ID        uint   `json:"id"`
	ProblemID uint   `json:"problem_id"`
	Order     int    `json:"order"`
	Content   string `json:"content"`
}

// Hint is one rendered problem hint.
type Hint struct {
	ID        uint   `json:"id"`
	ProblemID uint   `json:"problem_id"`
	Order     int    `json:"order"`
	Content   string `json:"content"`
}

// Problem is the rendered catalog problem. Prerequisites are rendered one
// level deep; their own prerequisite lists are always empty.
type Problem struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	Difficulty    int       `json:"difficulty"`
	Description   string    `json:"description"`
	Solution      string    `json:"solution"`
	Steps         []Step    `json:"steps"`
	Hints         []Hint    `json:"hints"`
	Prerequisites []Problem `json:"prerequisites"`
}

// NewProblem maps a domain problem onto its response form.
func NewProblem(problem *entity.Problem) Problem {
	resp := Problem{
		ID:            problem.ID,
		Title:         problem.Title,
		Subject:       problem.Subject,
		Difficulty:    problem.Difficulty,
		Description:   problem.Description,
		Solution:      problem.Solution,
		Steps:         make([]Step, 0, len(problem.Steps)),
		Hints:         make([]Hint, 0, len(problem.Hints)),
		Prerequisites: make([]Problem, 0, len(problem.Prerequisites)),
	}

	for _, step := range problem.Steps {
		resp.Steps = append(resp.Steps, Step{
			ID:        step.ID,
			ProblemID: step.ProblemID,
			Order:     step.Order,
			Content:   step.Content,
		})
	}
	for _, hint := range problem.Hints {
		resp.Hints = append(resp.Hints, Hint{
			ID:        hint.ID,
			ProblemID: hint.ProblemID,
			Order:     hint.Order,
			Content:   hint.Content,
		})
	}
	for i := range problem.Prerequisites {
		resp.Prerequisites = append(resp.Prerequisites, NewProblem(&problem.Prerequisites[i]))
	}

	return resp
}

// NewProblemList maps a slice of domain problems.
func NewProblemList(problems []*entity.Problem) []Problem {
	resp := make([]Problem, 0, len(problems))
	for _, problem := range problems {
		resp = append(resp, NewProblem(problem))
	}

	return resp
}
