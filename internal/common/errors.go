// Package common defines sentinel errors and collection keys shared by the
// store, state and cli layers. Callers should use errors.Is to match the
// error values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// Intent errors.
	ErrValidation = errors.New("validation failed")

	// Session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoSession    = errors.New("no active session")

	// ErrCorrupt marks persisted data that could not be decoded.
	ErrCorrupt = errors.New("corrupt data")
)
