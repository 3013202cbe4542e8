package common

// Storage keys of the three persisted collections. Each key holds one JSON
// array and is written wholesale on every mutation of that collection.
const (
	KeyUsers       = "users"
	KeyAdminEvents = "admin-events"
	KeySuggestions = "suggestions"
)

// DefaultAdminName is stamped as approver/verifier/reviewer unless configured.
const DefaultAdminName = "admin"

// DateLayout is the calendar-date format used for join dates, event dates and
// registration dates.
const DateLayout = "2006-01-02"
