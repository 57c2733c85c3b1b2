// The db package defines the storage contract the rest of the application
// depends on. The sqlite implementation lives in db/impl; tests substitute
// generated mocks.
package db

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal storage error")
)

type DB interface {
	Account
	Comment
	Content
}
