package entity

import "time"

// Problem is a step-by-step learning exercise in the catalog.
type Problem struct {
	ID            uint
	Title         string
	Subject       string
	Difficulty    int
	Description   string
	Solution      string
	Steps         []Step
	Hints         []Hint
	Prerequisites []Problem // Adjacency over the problem_prerequisites table, never loaded recursively.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Step is one ordered unit of work inside a problem.
type Step struct {
	ID        uint
	ProblemID uint
	Order     int
	Content   string
}

// Hint is an ordered nudge attached to a problem.
type Hint struct {
	ID        uint
	ProblemID uint
	Order     int
	Content   string
}
