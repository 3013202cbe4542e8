package state

import "github.com/dmitrijs2005/nssportal/internal/nav"

func (s *Session) navigate(v nav.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithRouter(s.state.Router.NavigateTo(v))
}

func (s *Session) GoToRegistration()   { s.navigate(nav.Registration) }
func (s *Session) GoToLogin()          { s.navigate(nav.Login) }
func (s *Session) GoToAdmin()          { s.navigate(nav.Admin) }
func (s *Session) GoToEvents()         { s.navigate(nav.Events) }
func (s *Session) GoToForgotPassword() { s.navigate(nav.ForgotPassword) }

// GoToLanding resets navigation and clears both the session and display
// users.
func (s *Session) GoToLanding() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithoutSession().WithoutDisplay().WithRouter(s.state.Router.Reset())
}

// NavigateBack returns to the previous view, or landing when there is none.
func (s *Session) NavigateBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithRouter(s.state.Router.Back())
}
