package state

import (
	"context"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/mutations"
	"github.com/dmitrijs2005/nssportal/internal/validation"
)

func (s *Session) AddAchievement(ctx context.Context, userID string, a models.Achievement) (models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = s.newID()
	}
	if err := validation.Struct(a); err != nil {
		return models.Achievement{}, err
	}
	users, err := mutations.AddAchievement(s.state.Users, userID, a)
	if err != nil {
		return models.Achievement{}, err
	}
	if err := s.commit(ctx, s.state.WithUsers(users), common.KeyUsers); err != nil {
		return models.Achievement{}, err
	}
	return a, nil
}

func (s *Session) UpdateAchievement(ctx context.Context, userID, achID string, a models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = achID
	if err := validation.Struct(a); err != nil {
		return err
	}
	users, err := mutations.UpdateAchievement(s.state.Users, userID, achID, a)
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithUsers(users), common.KeyUsers)
}

func (s *Session) VerifyAchievement(ctx context.Context, userID, achID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := mutations.VerifyAchievement(s.state.Users, userID, achID, s.admin, s.now())
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithUsers(users), common.KeyUsers)
}

func (s *Session) AddCertificate(ctx context.Context, userID string, c models.Certificate) (models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = s.newID()
	}
	if err := validation.Struct(c); err != nil {
		return models.Certificate{}, err
	}
	users, err := mutations.AddCertificate(s.state.Users, userID, c, s.now())
	if err != nil {
		return models.Certificate{}, err
	}
	if err := s.commit(ctx, s.state.WithUsers(users), common.KeyUsers); err != nil {
		return models.Certificate{}, err
	}
	return c, nil
}

func (s *Session) VerifyCertificate(ctx context.Context, userID, certID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := mutations.VerifyCertificate(s.state.Users, userID, certID, s.admin, s.now())
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithUsers(users), common.KeyUsers)
}

// UpdateEventStatus moves a user's participation in eventID forward.
func (s *Session) UpdateEventStatus(ctx context.Context, userID, eventID string, status models.EventStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := mutations.UpdateEventStatus(s.state.Users, userID, eventID, status, s.now())
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithUsers(users), common.KeyUsers)
}
