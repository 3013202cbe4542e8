package state

import (
	"context"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/mutations"
	"github.com/dmitrijs2005/nssportal/internal/validation"
)

// SaveSuggestion files sg. When a user is logged in and sg names no author,
// the session user is recorded as the author.
func (s *Session) SaveSuggestion(ctx context.Context, sg models.Suggestion) (models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sg.ID == "" {
		sg.ID = s.newID()
	}
	if sg.Timestamp == 0 {
		sg.Timestamp = s.now().UnixMilli()
	}
	if cu := s.state.CurrentUser; cu != nil && sg.UserID == "" {
		sg.UserID = cu.ID
		sg.UserName = cu.FullName
		sg.UserRollNumber = cu.RollNumber
	}

	sugs, stored, err := mutations.SaveSuggestion(s.state.Suggestions, sg)
	if err != nil {
		return models.Suggestion{}, err
	}
	if err := validation.Struct(stored); err != nil {
		return models.Suggestion{}, err
	}
	if err := s.commit(ctx, s.state.WithSuggestions(sugs), common.KeySuggestions); err != nil {
		return models.Suggestion{}, err
	}
	return stored, nil
}

func (s *Session) UpdateSuggestion(ctx context.Context, sg models.Suggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Struct(sg); err != nil {
		return err
	}
	sugs, err := mutations.UpdateSuggestion(s.state.Suggestions, sg)
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithSuggestions(sugs), common.KeySuggestions)
}

// ReviewSuggestion records the admin's status and response for id.
func (s *Session) ReviewSuggestion(ctx context.Context, id string, status models.SuggestionStatus, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Var("status", string(status), "oneof=pending reviewed implemented rejected"); err != nil {
		return err
	}
	sugs, err := mutations.ReviewSuggestion(s.state.Suggestions, id, status, response, s.admin, s.now())
	if err != nil {
		return err
	}
	return s.commit(ctx, s.state.WithSuggestions(sugs), common.KeySuggestions)
}
