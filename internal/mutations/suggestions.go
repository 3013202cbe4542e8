package mutations

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
)

func indexSuggestion(sugs []models.Suggestion, id string) int {
	for i := range sugs {
		if sugs[i].ID == id {
			return i
		}
	}
	return -1
}

// SaveSuggestion appends s. An empty status becomes pending and an empty
// category becomes general.
func SaveSuggestion(sugs []models.Suggestion, s models.Suggestion) ([]models.Suggestion, models.Suggestion, error) {
	if indexSuggestion(sugs, s.ID) >= 0 {
		return nil, models.Suggestion{}, fmt.Errorf("suggestion %q: %w", s.ID, common.ErrConflict)
	}
	if s.Status == "" {
		s.Status = models.SuggestionPending
	}
	if s.Category == "" {
		s.Category = models.CategoryGeneral
	}

	out := make([]models.Suggestion, 0, len(sugs)+1)
	out = append(out, sugs...)
	out = append(out, s)
	return out, s, nil
}

// UpdateSuggestion replaces the suggestion with s.ID wholesale.
func UpdateSuggestion(sugs []models.Suggestion, s models.Suggestion) ([]models.Suggestion, error) {
	i := indexSuggestion(sugs, s.ID)
	if i < 0 {
		return nil, fmt.Errorf("suggestion %q: %w", s.ID, common.ErrNotFound)
	}
	out := make([]models.Suggestion, len(sugs))
	copy(out, sugs)
	out[i] = s
	return out, nil
}

// ReviewSuggestion records the admin's decision on a suggestion.
func ReviewSuggestion(sugs []models.Suggestion, id string, status models.SuggestionStatus, response, by string, now time.Time) ([]models.Suggestion, error) {
	i := indexSuggestion(sugs, id)
	if i < 0 {
		return nil, fmt.Errorf("suggestion %q: %w", id, common.ErrNotFound)
	}
	s := sugs[i]
	s.Status = status
	s.Response = response
	s.ReviewedBy = by
	s.ReviewedAt = now.UnixMilli()
	return UpdateSuggestion(sugs, s)
}
