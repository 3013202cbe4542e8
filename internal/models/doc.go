// Package models defines the records persisted by the portal: volunteers
// (User) with their achievements, certificates and event history, events
// posted by the admin with their registrations, and suggestions.
//
// JSON field names are the persisted wire names; a collection written by one
// version must load unchanged in the next. Timestamps are Unix milliseconds,
// calendar dates are "YYYY-MM-DD" strings.
//
// The validate tags are evaluated by internal/validation before an intent is
// applied.
package models
