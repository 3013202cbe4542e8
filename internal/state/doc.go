// Package state owns the portal's in-memory AppState and the Session that
// applies operations to it.
//
// Every Session operation validates its intent, runs the pure transform from
// internal/mutations, persists each changed collection and only then swaps
// in the new AppState. If persisting fails, the previous state stays in
// place.
package state
