package core

import "errors"

var (
	// ErrNotFound is returned by repositories when an entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned by repositories when a unique key is already taken.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrConcurrencyConflict is returned when an entity was changed by someone else
	// between loading and saving it.
	ErrConcurrencyConflict = errors.New("concurrency conflict: entity was modified concurrently")
)
