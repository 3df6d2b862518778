package dao

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrConstraintViolated marks a write rejected by a schema-level invariant
// (unique, not-null, foreign key, check). The enclosing transaction has
// already been rolled back when this is returned.
var ErrConstraintViolated = errors.New("constraint violated")

// MySQL error numbers for duplicate key, NOT NULL, FK and CHECK failures.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrColumnNull      = 1048
	mysqlErrNoReferencedRow = 1452
	mysqlErrCheckViolated   = 3819
)

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%w: %v", ErrConstraintViolated, err)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry, mysqlErrColumnNull, mysqlErrNoReferencedRow, mysqlErrCheckViolated:
			return fmt.Errorf("%w: %v", ErrConstraintViolated, err)
		}
	}
	return err
}
