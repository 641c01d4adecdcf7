package catalog

import "errors"

// Catalog errors. Callers match them with errors.Is.
var (
	// ErrNotFound is returned when an id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a label name collides case-insensitively.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrNotRemovable is returned when an edit session removes a label in use.
	ErrNotRemovable = errors.New("label is in use and cannot be removed")
	// ErrLabelInUse is returned when a committed label list drops a label
	// that a book still references.
	ErrLabelInUse = errors.New("label still referenced by a book")
	// ErrInvalid is returned for input that fails validation.
	ErrInvalid = errors.New("invalid input")
	// ErrSessionClosed is returned by a label session after Commit or Cancel.
	ErrSessionClosed = errors.New("edit session closed")
)
