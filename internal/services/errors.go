package services

import (
	"errors"

	"github.com/lib/pq"
	"github.com/tobias-homewood/jobly/internal/apperr"
)

// Postgres unique_violation.
const uniqueViolation = "23505"

// duplicateAsBadRequest maps a unique-constraint violation to a 400 with the
// given message. Services check for duplicates before inserting, so this only
// fires when two requests race on the same key.
func duplicateAsBadRequest(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return apperr.BadRequest(message)
	}
	return err
}
