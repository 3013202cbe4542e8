package mutations

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
)

func indexEvent(events []models.AdminEvent, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

// SaveAdminEvent appends e. Unset start and end dates default to e.Date.
func SaveAdminEvent(events []models.AdminEvent, e models.AdminEvent) ([]models.AdminEvent, models.AdminEvent, error) {
	if indexEvent(events, e.ID) >= 0 {
		return nil, models.AdminEvent{}, fmt.Errorf("event %q: %w", e.ID, common.ErrConflict)
	}

	e = e.Clone()
	if e.StartDate == "" {
		e.StartDate = e.Date
	}
	if e.EndDate == "" {
		e.EndDate = e.Date
	}
	if e.Registrations == nil {
		e.Registrations = []models.EventRegistration{}
	}

	out := make([]models.AdminEvent, 0, len(events)+1)
	out = append(out, events...)
	out = append(out, e)
	return out, e, nil
}

// ApproveEventRegistration approves userID's registration for eventID.
func ApproveEventRegistration(events []models.AdminEvent, eventID, userID, by string, now time.Time) ([]models.AdminEvent, error) {
	i := indexEvent(events, eventID)
	if i < 0 {
		return nil, fmt.Errorf("event %q: %w", eventID, common.ErrNotFound)
	}

	e := events[i].Clone()
	found := false
	for j := range e.Registrations {
		if e.Registrations[j].UserID == userID {
			e.Registrations[j].IsApproved = true
			e.Registrations[j].ApprovedBy = by
			e.Registrations[j].ApprovedAt = now.UnixMilli()
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("registration of %q for event %q: %w", userID, eventID, common.ErrNotFound)
	}

	out := make([]models.AdminEvent, len(events))
	copy(out, events)
	out[i] = e
	return out, nil
}

// RegisterForEvent signs userID up for eventID. It is the one transform that
// touches two collections: the event gains an unapproved registration and the
// user gains a "registered" history entry snapshotting the event.
func RegisterForEvent(events []models.AdminEvent, users []models.User, eventID, userID string, now time.Time) ([]models.AdminEvent, []models.User, error) {
	ei := indexEvent(events, eventID)
	if ei < 0 {
		return nil, nil, fmt.Errorf("event %q: %w", eventID, common.ErrNotFound)
	}
	user, err := FindUser(users, userID)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := events[ei].Registration(userID); ok {
		return nil, nil, fmt.Errorf("user %q already registered for event %q: %w", userID, eventID, common.ErrConflict)
	}

	e := events[ei].Clone()
	e.Registrations = append(e.Registrations, models.EventRegistration{
		UserID:         user.ID,
		UserRollNumber: user.RollNumber,
		UserName:       user.FullName,
		RegisteredAt:   now.UnixMilli(),
	})

	newUsers, err := replaceUser(users, userID, func(u *models.User) error {
		u.EventHistory = append(u.EventHistory, models.EventHistory{
			EventID:          e.ID,
			EventTitle:       e.Title,
			StartDate:        e.StartDate,
			EndDate:          e.EndDate,
			Status:           models.EventRegistered,
			RegistrationDate: Date(now),
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	newEvents := make([]models.AdminEvent, len(events))
	copy(newEvents, events)
	newEvents[ei] = e
	return newEvents, newUsers, nil
}
