// Package store is the persistence boundary of the portal.
//
// # Overview
//
// A Store maps a key to an opaque byte blob. The portal uses three keys (see
// internal/common): users, admin-events and suggestions, each holding the
// whole collection as one JSON array. There is no schema validation at this
// level and no partial update: every mutation rewrites the full collection.
//
// # Implementations
//
//   - Memory: map-backed, used by tests and the "memory" driver
//   - sqlstore.Store: SQLite or PostgreSQL key/value table
//   - filestore.Store: one JSON file per key
//   - s3store.Store: one object per key in an S3-compatible bucket
//
// # Atomicity
//
// A single Save is all-or-nothing in every implementation. Stores that can
// also write several keys atomically implement BatchSaver; SaveItems uses it
// when available and otherwise falls back to sequential writes, in which case
// a failure part-way leaves earlier keys written.
package store
