package mutations

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
)

func indexAchievement(list []models.Achievement, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func indexCertificate(list []models.Certificate, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// AddAchievement appends a to the user's achievements; a duplicate id is a conflict.
func AddAchievement(users []models.User, userID string, a models.Achievement) ([]models.User, error) {
	return replaceUser(users, userID, func(u *models.User) error {
		if indexAchievement(u.Achievements, a.ID) >= 0 {
			return fmt.Errorf("achievement %q: %w", a.ID, common.ErrConflict)
		}
		u.Achievements = append(u.Achievements, a)
		return nil
	})
}

// UpdateAchievement replaces achievement achID of the user. The replacement
// keeps achID as its id.
func UpdateAchievement(users []models.User, userID, achID string, a models.Achievement) ([]models.User, error) {
	return replaceUser(users, userID, func(u *models.User) error {
		i := indexAchievement(u.Achievements, achID)
		if i < 0 {
			return fmt.Errorf("achievement %q: %w", achID, common.ErrNotFound)
		}
		a.ID = achID
		u.Achievements[i] = a
		return nil
	})
}

// VerifyAchievement stamps achievement achID as verified by `by` at now.
func VerifyAchievement(users []models.User, userID, achID, by string, now time.Time) ([]models.User, error) {
	return replaceUser(users, userID, func(u *models.User) error {
		i := indexAchievement(u.Achievements, achID)
		if i < 0 {
			return fmt.Errorf("achievement %q: %w", achID, common.ErrNotFound)
		}
		u.Achievements[i].IsVerified = true
		u.Achievements[i].VerifiedBy = by
		u.Achievements[i].VerifiedAt = now.UnixMilli()
		return nil
	})
}

// AddCertificate appends c to the user's certificates. An unset upload date
// becomes today.
func AddCertificate(users []models.User, userID string, c models.Certificate, now time.Time) ([]models.User, error) {
	return replaceUser(users, userID, func(u *models.User) error {
		if indexCertificate(u.Certificates, c.ID) >= 0 {
			return fmt.Errorf("certificate %q: %w", c.ID, common.ErrConflict)
		}
		if c.UploadDate == "" {
			c.UploadDate = Date(now)
		}
		u.Certificates = append(u.Certificates, c)
		return nil
	})
}

// VerifyCertificate stamps certificate certID as verified by `by` at now.
func VerifyCertificate(users []models.User, userID, certID, by string, now time.Time) ([]models.User, error) {
	return replaceUser(users, userID, func(u *models.User) error {
		i := indexCertificate(u.Certificates, certID)
		if i < 0 {
			return fmt.Errorf("certificate %q: %w", certID, common.ErrNotFound)
		}
		u.Certificates[i].IsVerified = true
		u.Certificates[i].VerifiedBy = by
		u.Certificates[i].VerifiedAt = now.UnixMilli()
		return nil
	})
}

// UpdateEventStatus moves the user's history entry for eventID forward to
// status and stamps the matching date. Moving backwards is rejected;
// repeating the current status is a no-op.
func UpdateEventStatus(users []models.User, userID, eventID string, status models.EventStatus, now time.Time) ([]models.User, error) {
	if status.Rank() == 0 {
		return nil, fmt.Errorf("event status %q: %w", status, common.ErrValidation)
	}
	return replaceUser(users, userID, func(u *models.User) error {
		for i := range u.EventHistory {
			h := &u.EventHistory[i]
			if h.EventID != eventID {
				continue
			}
			if status.Rank() < h.Status.Rank() {
				return fmt.Errorf("event status %s -> %s: %w", h.Status, status, common.ErrValidation)
			}
			today := Date(now)
			if status.Rank() >= models.EventAttended.Rank() && h.AttendanceDate == "" {
				h.AttendanceDate = today
			}
			if status == models.EventCompleted && h.CompletionDate == "" {
				h.CompletionDate = today
			}
			h.Status = status
			return nil
		}
		return fmt.Errorf("event history %q: %w", eventID, common.ErrNotFound)
	})
}
