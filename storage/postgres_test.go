package storage

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	c := qt.New(t)

	c.Assert(isUniqueViolation(&pgconn.PgError{Code: "23505"}), qt.IsTrue)
	c.Assert(isUniqueViolation(gorm.ErrDuplicatedKey), qt.IsTrue)

	// a race loser gets the driver error wrapped
	wrapped := errors.Join(errors.New("create user"), &pgconn.PgError{Code: "23505"})
	c.Assert(isUniqueViolation(wrapped), qt.IsTrue)

	c.Assert(isUniqueViolation(&pgconn.PgError{Code: "23503"}), qt.IsFalse)
	c.Assert(isUniqueViolation(gorm.ErrRecordNotFound), qt.IsFalse)
	c.Assert(isUniqueViolation(errors.New("connection refused")), qt.IsFalse)
}
