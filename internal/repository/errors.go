// Package repository contains the data access layer. Repositories take an
// injected *sql.DB, keep transactional boundaries for multi-row writes, and
// surface failures as sentinel errors so handlers can map them to HTTP
// statuses without inspecting driver internals.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrSuiteNotFound is returned when a suite cannot be found.
var ErrSuiteNotFound = errors.New("suite not found")

// ErrAmenityNotFound is returned when an amenity cannot be found.
var ErrAmenityNotFound = errors.New("amenity not found")

// ErrUserNotFound is returned when a user cannot be found.
var ErrUserNotFound = errors.New("user not found")

// ErrNameTaken is returned when an insert or update hits the unique name
// index of suites or amenities. Handlers translate it into HTTP 409.
var ErrNameTaken = errors.New("name already in use")

// ErrEmailExists is returned when a registration hits the unique email
// index. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrLinkExists is returned when a suite↔amenity link is created twice.
var ErrLinkExists = errors.New("link already exists")

// ErrLinkNotFound is returned when removing a suite↔amenity link that does
// not exist.
var ErrLinkNotFound = errors.New("link not found")

// ErrLinkParentMissing is returned when a link insert hits a foreign key
// violation, meaning the suite or amenity was deleted after the existence
// checks passed. Handlers translate it into HTTP 404.
var ErrLinkParentMissing = errors.New("suite or amenity no longer exists")

// isDuplicateKey reports whether err is a MySQL duplicate-key violation
// (error 1062). The unique index is the final authority for uniqueness; the
// application-level existence checks are only a fast path, so every write
// that can conflict funnels through this check.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "1062")
}

// isForeignKeyViolation reports whether err is a MySQL foreign key failure
// on insert (error 1452), i.e. a referenced parent row is gone.
func isForeignKeyViolation(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1452
	}
	return err != nil && strings.Contains(err.Error(), "1452")
}
