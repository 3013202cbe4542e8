// Package mutations holds the pure collection transforms behind every portal
// operation.
//
// Each function takes the current collection(s) and an intent and returns new
// slices. Inputs are never modified, so a caller that fails to persist the
// result can simply keep the old collections. Unknown ids are reported as
// common.ErrNotFound and duplicates as common.ErrConflict; nothing is ever
// silently skipped.
package mutations
