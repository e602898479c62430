package services

import "errors"

var (
	// ErrAccessDenied is returned for any admin operation invoked by an
	// identity outside the allowlist. Deliberately carries no detail.
	ErrAccessDenied = errors.New("access denied")

	// ErrForeignContact means the shared contact card belongs to someone
	// other than the sender.
	ErrForeignContact = errors.New("contact does not belong to sender")

	// ErrEmptyCode rejects a blank or whitespace-only access code.
	ErrEmptyCode = errors.New("access code must not be empty")

	// ErrNotPending means free text arrived from an admin who never
	// requested a code change. Callers treat it as a no-op.
	ErrNotPending = errors.New("no code change pending")

	// ErrCodeUnset means the settings store was never seeded. Should not
	// happen after bootstrap.
	ErrCodeUnset = errors.New("access code not initialized")
)
