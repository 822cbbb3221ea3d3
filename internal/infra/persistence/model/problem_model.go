package model

import "time"

// ProblemModel mirrors the 'problems' table. Prerequisites are a
// self-referencing many-to-many over the problem_prerequisites join table.
type ProblemModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null;index"`
	Subject     string `gorm:"type:varchar(100);index"`
	Difficulty  int
	Description string `gorm:"type:text"`
	Solution    string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Steps         []StepModel     `gorm:"foreignKey:ProblemID"`
	Hints         []HintModel     `gorm:"foreignKey:ProblemID"`
	Prerequisites []*ProblemModel `gorm:"many2many:problem_prerequisites;joinForeignKey:ProblemID;joinReferences:PrerequisiteID"`
}

// TableName explicitly sets the table name for GORM.
func (ProblemModel) TableName() string {
	return "problems"
}

// StepModel mirrors the 'steps' table.
type StepModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProblemID uint   `gorm:"not null;index"`
	Order     int    `gorm:"column:step_order;not null"`
	Content   string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (StepModel) TableName() string {
	return "steps"
}

// HintModel mirrors the 'hints' table.
type HintModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProblemID uint   `gorm:"not null;index"`
	Order     int    `gorm:"column:hint_order;not null"`
	Content   string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (HintModel) TableName() string {
	return "hints"
}
