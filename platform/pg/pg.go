package pg

import (
	"errors"

	"github.com/lib/pq"
)

// URLTest is the connection template used by integration tests.
const URLTest = "postgres://%s@127.0.0.1:5432/hitbadge_test?sslmode=disable&connect_timeout=5"

// ErrRelationNotFound is returned as equivalent to the Postgres error.
var ErrRelationNotFound = errors.New("relation not found")

// IsRelationNotFound indicates if err is ErrRelationNotFound.
func IsRelationNotFound(err error) bool {
	return err == ErrRelationNotFound
}

// WrapError checks the given error if it indicates that the relation wasn't
// present, otherwise returns the original error.
func WrapError(err error) error {
	if err, ok := err.(*pq.Error); ok && err.Code == "42P01" {
		return ErrRelationNotFound
	}

	return err
}
