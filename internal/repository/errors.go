// Package repository defines error values shared across the venue, artist
// and show repositories.  Sentinels let handlers map failures onto HTTP
// statuses without string matching.  Classify additionally discriminates
// MySQL persistence failures by error number, so a duplicate key is
// distinguishable from a broken reference or a connectivity problem.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrVenueNotFound indicates that a venue was not located in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound indicates that an artist was not located in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint.  Handlers should translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate record")

// ErrReference is returned when a mutation violates a foreign key
// constraint, e.g. a show pointing at a deleted venue.  Handlers should
// translate this into an HTTP 400 response.
var ErrReference = errors.New("invalid reference")

// MySQL server error numbers for the constraint classes we care about.
const (
	mysqlErrDuplicateEntry  uint16 = 1062
	mysqlErrNoReferencedRow uint16 = 1452
)

// classify wraps a raw driver error in the matching sentinel so callers can
// use errors.Is.  Errors that are not recognizable constraint violations
// pass through unchanged and surface as generic persistence failures.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrDuplicateEntry:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		case mysqlErrNoReferencedRow:
			return fmt.Errorf("%w: %v", ErrReference, err)
		}
	}
	return err
}
