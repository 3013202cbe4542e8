// Package nav implements the portal's view router: a current view plus a
// stack of previously visited views.
package nav

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nssportal/internal/common"
)

type View string

const (
	Landing        View = "landing"
	Registration   View = "registration"
	Portfolio      View = "portfolio"
	Login          View = "login"
	Admin          View = "admin"
	Events         View = "events"
	Display        View = "display"
	ForgotPassword View = "forgot-password"
)

// Views lists every view in a stable order.
var Views = []View{Landing, Registration, Portfolio, Login, Admin, Events, Display, ForgotPassword}

func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// ParseView maps a name such as "forgot-password" to its View.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("view %q: %w", s, common.ErrValidation)
	}
	return v, nil
}

// Router is a value type; every transition returns a new Router and leaves
// the receiver untouched.
type Router struct {
	current View
	history []View
}

// NewRouter starts at Landing with Landing as the only history entry.
func NewRouter() Router {
	return Router{current: Landing, history: []View{Landing}}
}

func (r Router) Current() View {
	if r.current == "" {
		return Landing
	}
	return r.current
}

// History returns a copy of the stack, oldest first.
func (r Router) History() []View {
	return append([]View(nil), r.history...)
}

// NavigateTo pushes the current view and switches to v.
func (r Router) NavigateTo(v View) Router {
	h := make([]View, 0, len(r.history)+1)
	h = append(h, r.history...)
	h = append(h, r.Current())
	return Router{current: v, history: h}
}

// Back pops the most recent history entry and switches to it. With an empty
// history the router falls back to Landing.
func (r Router) Back() Router {
	if len(r.history) == 0 {
		return Router{current: Landing}
	}
	last := len(r.history) - 1
	return Router{
		current: r.history[last],
		history: append([]View(nil), r.history[:last]...),
	}
}

// Reset returns to Landing with Landing as the only history entry.
func (r Router) Reset() Router {
	return NewRouter()
}
