package mysql

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for MySQL error checking. GORM's TranslateError maps driver
// error codes (1062, 1452) onto its sentinel errors; the message checks cover
// drivers that bypass translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate entry") ||
		strings.Contains(errMsg, "error 1062")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "error 1452")
}
