package types

import "errors"

// Service-level error taxonomy. Each error maps to a distinct failure
// mode at the delivery boundary and must never be collapsed into a
// generic response.
var (
	// ErrLibraryUnavailable means the puzzle library is missing, empty
	// or unreadable. Fatal for the request, no retry.
	ErrLibraryUnavailable = errors.New("puzzle library is unavailable")

	// ErrPersistenceFailed means the assignment history could not be
	// loaded or durably saved. A selection made in the same call may
	// still be served, but a restart can re-select for the same day.
	ErrPersistenceFailed = errors.New("assignment history persistence failed")

	// ErrInconsistentHistory means the history references a puzzle ID
	// that no longer exists in the library. Never auto-healed: deleting
	// the entry could change a puzzle already shown for that day.
	ErrInconsistentHistory = errors.New("assignment history references unknown puzzle")
)
