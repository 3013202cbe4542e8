package mutations

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
)

// DefaultRejectionReason is stored when a user is rejected without a reason.
const DefaultRejectionReason = "No reason provided"

// Date renders t as a calendar date in UTC.
func Date(t time.Time) string {
	return t.UTC().Format(common.DateLayout)
}

func indexUser(users []models.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

// FindUserByRoll returns the user holding roll, if any.
func FindUserByRoll(users []models.User, roll string) (models.User, bool) {
	for _, u := range users {
		if u.RollNumber == roll {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUser returns the user with the given id.
func FindUser(users []models.User, id string) (models.User, error) {
	i := indexUser(users, id)
	if i < 0 {
		return models.User{}, fmt.Errorf("user %q: %w", id, common.ErrNotFound)
	}
	return users[i], nil
}

// replaceUser copies users and applies fn to a private copy of the user with
// the given id.
func replaceUser(users []models.User, id string, fn func(u *models.User) error) ([]models.User, error) {
	i := indexUser(users, id)
	if i < 0 {
		return nil, fmt.Errorf("user %q: %w", id, common.ErrNotFound)
	}
	u := users[i].Clone()
	if err := fn(&u); err != nil {
		return nil, err
	}
	out := make([]models.User, len(users))
	copy(out, users)
	out[i] = u
	return out, nil
}

// RegisterUser appends u as a new, pending volunteer. Missing lists become
// empty and an unset join date becomes today. The stored record is returned
// alongside the new collection.
func RegisterUser(users []models.User, u models.User, now time.Time) ([]models.User, models.User, error) {
	if _, taken := FindUserByRoll(users, u.RollNumber); taken {
		return nil, models.User{}, fmt.Errorf("roll number %q: %w", u.RollNumber, common.ErrConflict)
	}
	if indexUser(users, u.ID) >= 0 {
		return nil, models.User{}, fmt.Errorf("user %q: %w", u.ID, common.ErrConflict)
	}

	u = u.Clone()
	u.IsApproved = false
	u.IsRejected = false
	u.ApprovedBy, u.ApprovedAt = "", 0
	u.RejectedBy, u.RejectedAt, u.RejectionReason = "", 0, ""
	if u.JoinDate == "" {
		u.JoinDate = Date(now)
	}
	if u.Timestamp == 0 {
		u.Timestamp = now.UnixMilli()
	}
	if u.Achievements == nil {
		u.Achievements = []models.Achievement{}
	}
	if u.Certificates == nil {
		u.Certificates = []models.Certificate{}
	}
	if u.EventHistory == nil {
		u.EventHistory = []models.EventHistory{}
	}
	if u.EventPhotos == nil {
		u.EventPhotos = []models.EventPhoto{}
	}

	out := make([]models.User, 0, len(users)+1)
	out = append(out, users...)
	out = append(out, u)
	return out, u, nil
}

// UpdateUser replaces the record with u.ID. A roll number already held by a
// different user is a conflict.
//
// The approval decision is owned by ApproveUser and RejectUser, so the stored
// decision fields are kept and whatever u carries for them is ignored.
func UpdateUser(users []models.User, u models.User) ([]models.User, error) {
	if other, taken := FindUserByRoll(users, u.RollNumber); taken && other.ID != u.ID {
		return nil, fmt.Errorf("roll number %q: %w", u.RollNumber, common.ErrConflict)
	}
	return replaceUser(users, u.ID, func(cur *models.User) error {
		next := u.Clone()
		next.IsApproved, next.IsRejected = cur.IsApproved, cur.IsRejected
		next.ApprovedBy, next.ApprovedAt = cur.ApprovedBy, cur.ApprovedAt
		next.RejectedBy, next.RejectedAt = cur.RejectedBy, cur.RejectedAt
		next.RejectionReason = cur.RejectionReason
		*cur = next
		return nil
	})
}

// ApproveUser marks the user approved by `by`. Any earlier rejection is
// cleared; calling it again just restamps the decision.
func ApproveUser(users []models.User, id, by string, now time.Time) ([]models.User, error) {
	return replaceUser(users, id, func(u *models.User) error {
		u.IsApproved = true
		u.IsRejected = false
		u.ApprovedBy = by
		u.ApprovedAt = now.UnixMilli()
		u.RejectedBy, u.RejectedAt, u.RejectionReason = "", 0, ""
		return nil
	})
}

// RejectUser marks the user rejected by `by` with reason, or
// DefaultRejectionReason when reason is empty. Any earlier approval is cleared.
func RejectUser(users []models.User, id, by, reason string, now time.Time) ([]models.User, error) {
	if reason == "" {
		reason = DefaultRejectionReason
	}
	return replaceUser(users, id, func(u *models.User) error {
		u.IsApproved = false
		u.IsRejected = true
		u.RejectedBy = by
		u.RejectedAt = now.UnixMilli()
		u.RejectionReason = reason
		u.ApprovedBy, u.ApprovedAt = "", 0
		return nil
	})
}
