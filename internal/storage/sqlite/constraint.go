package sqlite

import (
	stderrors "errors"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

// Constraint classifies a SQLite constraint failure
type Constraint int

// Constraint kinds
const (
	ConstraintNone Constraint = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
	ConstraintNotNull
)

// ClassifyConstraint reports which constraint, if any, err violated
func ClassifyConstraint(err error) Constraint {
	if err == nil {
		return ConstraintNone
	}

	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return ConstraintUnique
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ConstraintForeignKey
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
			return ConstraintCheck
		case sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
			return ConstraintNotNull
		}
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "unique constraint failed"):
		return ConstraintUnique
	case strings.Contains(message, "foreign key constraint failed"):
		return ConstraintForeignKey
	case strings.Contains(message, "check constraint failed"):
		return ConstraintCheck
	case strings.Contains(message, "not null constraint failed"):
		return ConstraintNotNull
	}
	return ConstraintNone
}

// NullString maps "" to NULL for optional text columns
func NullString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// WriteError maps a failed insert or update to a coded error. Unique
// violations become AlreadyExists, broken references and CHECK or NOT NULL
// violations become InvalidArgument.
func WriteError(err error, message string) error {
	switch ClassifyConstraint(err) {
	case ConstraintUnique:
		return errors.WrapWithCode(err, errors.CodeAlreadyExists, message)
	case ConstraintForeignKey, ConstraintCheck, ConstraintNotNull:
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, message)
	}
	return errors.WrapWithCode(err, errors.CodeInternal, message)
}

// DeleteError maps a failed delete. A row still referenced by another
// table is a FailedPrecondition.
func DeleteError(err error, message string) error {
	if ClassifyConstraint(err) == ConstraintForeignKey {
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, message)
	}
	return errors.WrapWithCode(err, errors.CodeInternal, message)
}
