package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCategoryInUse is returned when deleting a weight category still
	// referenced by at least one stamp (matched by name).
	ErrCategoryInUse = errors.New("category in use by stamps")
	// ErrDuplicateTracking is returned when a unique tracking number
	// already exists on another parcel.
	ErrDuplicateTracking = errors.New("tracking number already exists")
)
