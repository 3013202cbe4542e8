package state

import (
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/nav"
)

// AppState is an immutable snapshot of the portal. Its With* methods return
// modified copies. Collections are shared between snapshots and must be
// treated as read-only.
type AppState struct {
	Users       []models.User
	Events      []models.AdminEvent
	Suggestions []models.Suggestion
	Router      nav.Router

	// CurrentUser is the session user; DisplayUser is a portfolio being
	// viewed without a session. Either may be nil.
	CurrentUser *models.User
	DisplayUser *models.User
	LoggedIn    bool
}

// NewAppState returns an empty state at the landing view.
func NewAppState() AppState {
	return AppState{
		Users:       []models.User{},
		Events:      []models.AdminEvent{},
		Suggestions: []models.Suggestion{},
		Router:      nav.NewRouter(),
	}
}

func (a AppState) View() nav.View { return a.Router.Current() }

func (a AppState) WithUsers(users []models.User) AppState {
	a.Users = users
	return a.refreshUsers()
}

func (a AppState) WithEvents(events []models.AdminEvent) AppState {
	a.Events = events
	return a
}

func (a AppState) WithSuggestions(sugs []models.Suggestion) AppState {
	a.Suggestions = sugs
	return a
}

func (a AppState) WithRouter(r nav.Router) AppState {
	a.Router = r
	return a
}

// WithSession makes u the logged-in session user.
func (a AppState) WithSession(u models.User) AppState {
	a.CurrentUser = userPtr(u)
	a.LoggedIn = true
	return a
}

func (a AppState) WithDisplay(u models.User) AppState {
	a.DisplayUser = userPtr(u)
	return a
}

// WithoutSession clears the session user.
func (a AppState) WithoutSession() AppState {
	a.CurrentUser = nil
	a.LoggedIn = false
	return a
}

func (a AppState) WithoutDisplay() AppState {
	a.DisplayUser = nil
	return a
}

// Copy returns a with its user pointers detached, so the caller cannot reach
// into the session's own records.
func (a AppState) Copy() AppState {
	if a.CurrentUser != nil {
		a.CurrentUser = userPtr(*a.CurrentUser)
	}
	if a.DisplayUser != nil {
		a.DisplayUser = userPtr(*a.DisplayUser)
	}
	return a
}

// refreshUsers re-points the session and display users at their records in
// a.Users so they never go stale after a users write.
func (a AppState) refreshUsers() AppState {
	if a.CurrentUser != nil {
		if u, ok := findByID(a.Users, a.CurrentUser.ID); ok {
			a.CurrentUser = userPtr(u)
		}
	}
	if a.DisplayUser != nil {
		if u, ok := findByID(a.Users, a.DisplayUser.ID); ok {
			a.DisplayUser = userPtr(u)
		}
	}
	return a
}

func findByID(users []models.User, id string) (models.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func userPtr(u models.User) *models.User {
	c := u.Clone()
	return &c
}
