package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a unique-constraint
// rejection from the store. GORM translates PostgreSQL's 23505 into
// ErrDuplicatedKey; the message fallback covers drivers that don't.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

// violatedConstraintMentions reports whether the constraint named in a
// unique-violation error message mentions the given column. PostgreSQL
// includes the constraint name in the message, e.g.
// `duplicate key value violates unique constraint "uni_users_email"`.
func violatedConstraintMentions(err error, column string) bool {
	return strings.Contains(strings.ToLower(err.Error()), column)
}
