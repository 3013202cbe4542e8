package state

import (
	"context"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/mutations"
	"github.com/dmitrijs2005/nssportal/internal/validation"
)

// SaveAdminEvent publishes a new event. The id and timestamp are assigned
// when empty.
func (s *Session) SaveAdminEvent(ctx context.Context, e models.AdminEvent) (models.AdminEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = s.newID()
	}
	if e.Timestamp == 0 {
		e.Timestamp = s.now().UnixMilli()
	}
	events, stored, err := mutations.SaveAdminEvent(s.state.Events, e)
	if err != nil {
		return models.AdminEvent{}, err
	}
	if err := validation.Struct(stored); err != nil {
		return models.AdminEvent{}, err
	}

	if err := s.commit(ctx, s.state.WithEvents(events), common.KeyAdminEvents); err != nil {
		return models.AdminEvent{}, err
	}
	return stored, nil
}

func (s *Session) ApproveEventRegistration(ctx context.Context, eventID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := mutations.ApproveEventRegistration(s.state.Events, eventID, userID, s.admin, s.now())
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithEvents(events), common.KeyAdminEvents)
}

// RegisterForEvent signs userID up for eventID. Both the events and users
// collections change; they are written in one batch when the store supports
// it.
func (s *Session) RegisterForEvent(ctx context.Context, eventID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, users, err := mutations.RegisterForEvent(s.state.Events, s.state.Users, eventID, userID, s.now())
	if err != nil {
		return err
	}
	next := s.state.WithEvents(events).WithUsers(users)
	return s.commit(ctx, next, common.KeyAdminEvents, common.KeyUsers)
}
