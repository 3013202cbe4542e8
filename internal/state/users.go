package state

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/cryptox"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/mutations"
	"github.com/dmitrijs2005/nssportal/internal/nav"
	"github.com/dmitrijs2005/nssportal/internal/validation"
)

// RollNumberTaken reports whether some user already holds roll.
func (s *Session) RollNumberTaken(roll string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := mutations.FindUserByRoll(s.state.Users, roll)
	return ok
}

// RegisterUser stores u as a new pending volunteer with a hashed password,
// makes them the session user and opens their portfolio.
func (s *Session) RegisterUser(ctx context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = s.newID()
	}
	if err := validation.Struct(u); err != nil {
		return models.User{}, err
	}
	hashed, err := cryptox.HashPassword(u.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.Password = hashed

	users, stored, err := mutations.RegisterUser(s.state.Users, u, s.now())
	if err != nil {
		return models.User{}, err
	}

	next := s.state.WithUsers(users).
		WithSession(stored).
		WithRouter(s.state.Router.NavigateTo(nav.Portfolio))
	if err := s.commit(ctx, next, common.KeyUsers); err != nil {
		return models.User{}, err
	}

	s.log.Info(ctx, "user registered", "id", stored.ID, "roll", stored.RollNumber)
	return stored, nil
}

// UpdateUser replaces the stored record with u. A password that differs from
// the stored one is treated as a new password and hashed before it is written.
func (s *Session) UpdateUser(ctx context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Struct(u); err != nil {
		return err
	}
	cur, err := mutations.FindUser(s.state.Users, u.ID)
	if err != nil {
		return err
	}
	if u.Password != cur.Password {
		hashed, err := cryptox.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.Password = hashed
	}

	users, err := mutations.UpdateUser(s.state.Users, u)
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithUsers(users), common.KeyUsers)
}

func (s *Session) ApproveUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := mutations.ApproveUser(s.state.Users, id, s.admin, s.now())
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithUsers(users), common.KeyUsers)
}

// RejectUser rejects the user with reason, or a default reason when empty.
func (s *Session) RejectUser(ctx context.Context, id, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := mutations.RejectUser(s.state.Users, id, s.admin, reason, s.now())
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithUsers(users), common.KeyUsers)
}

// Login authenticates roll/password and opens the user's portfolio.
//
// Records still holding a plaintext password are accepted once, logged, and
// rewritten with a hash.
func (s *Session) Login(ctx context.Context, roll, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := mutations.FindUserByRoll(s.state.Users, roll)
	if !ok {
		return models.User{}, fmt.Errorf("login %q: %w", roll, common.ErrUnauthorized)
	}

	users := s.state.Users
	upgraded := false
	if cryptox.IsHashed(u.Password) {
		match, err := cryptox.VerifyPassword(u.Password, password)
		if err != nil {
			return models.User{}, fmt.Errorf("login %q: %w", roll, err)
		}
		if !match {
			return models.User{}, fmt.Errorf("login %q: %w", roll, common.ErrUnauthorized)
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
			return models.User{}, fmt.Errorf("login %q: %w", roll, common.ErrUnauthorized)
		}
		s.log.Warn(ctx, "plaintext password found, upgrading to hash", "id", u.ID)

		hashed, err := cryptox.HashPassword(password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		u.Password = hashed
		if users, err = mutations.UpdateUser(users, u); err != nil {
			return models.User{}, err
		}
		upgraded = true
	}

	next := s.state.WithUsers(users).
		WithSession(u).
		WithRouter(s.state.Router.NavigateTo(nav.Portfolio))

	if upgraded {
		if err := s.commit(ctx, next, common.KeyUsers); err != nil {
			return models.User{}, err
		}
	} else {
		s.state = next
	}

	s.log.Info(ctx, "user logged in", "id", u.ID)
	return u, nil
}

// Logout clears the session user and resets navigation to landing.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentUser != nil {
		s.log.Info(ctx, "user logged out", "id", s.state.CurrentUser.ID)
	}
	s.state = s.state.WithoutSession().WithRouter(s.state.Router.Reset())
}

// DisplayPortfolio shows userID's portfolio read-only, without a session.
func (s *Session) DisplayPortfolio(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := mutations.FindUser(s.state.Users, userID)
	if err != nil {
		return err
	}
	s.state = s.state.WithDisplay(u).WithRouter(s.state.Router.NavigateTo(nav.Display))
	return nil
}
