package services

import "errors"

// Engine errors. Callers match these with errors.Is and decide the
// user-facing response; the engine never recovers a validation error
// internally.
var (
	// ErrInvalidDate is returned for a date string that is not YYYY-MM-DD.
	// The input is never coerced to "today" or skipped.
	ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

	// ErrInvalidRange is returned when a rollup range has start after end.
	ErrInvalidRange = errors.New("invalid range: start date is after end date")

	// ErrNotFound is returned when a referenced alert or student does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when creating a student whose id or number
	// is already taken.
	ErrDuplicateID = errors.New("duplicate id")
)
