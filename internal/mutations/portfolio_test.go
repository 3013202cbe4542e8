package mutations

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers(t *testing.T) []models.User {
	t.Helper()
	users, _, err := RegisterUser(nil, newUser("u1", "CS101"), now)
	require.NoError(t, err)
	return users
}

func TestAchievements(t *testing.T) {
	users := seedUsers(t)
	a := models.Achievement{ID: "a1", Title: "Best Volunteer", Level: models.LevelState}

	out, err := AddAchievement(users, "u1", a)
	require.NoError(t, err)
	require.Len(t, out[0].Achievements, 1)
	assert.Empty(t, users[0].Achievements)

	_, err = AddAchievement(out, "u1", a)
	assert.ErrorIs(t, err, common.ErrConflict)

	_, err = AddAchievement(out, "ghost", a)
	assert.ErrorIs(t, err, common.ErrNotFound)

	upd := models.Achievement{ID: "other", Title: "Best Volunteer 2024", Level: models.LevelNational}
	out2, err := UpdateAchievement(out, "u1", "a1", upd)
	require.NoError(t, err)
	assert.Equal(t, "a1", out2[0].Achievements[0].ID)
	assert.Equal(t, models.LevelNational, out2[0].Achievements[0].Level)
	assert.Equal(t, "Best Volunteer", out[0].Achievements[0].Title)

	_, err = UpdateAchievement(out, "u1", "missing", upd)
	assert.ErrorIs(t, err, common.ErrNotFound)

	out3, err := VerifyAchievement(out2, "u1", "a1", "admin", now)
	require.NoError(t, err)
	assert.True(t, out3[0].Achievements[0].IsVerified)
	assert.Equal(t, "admin", out3[0].Achievements[0].VerifiedBy)
	assert.False(t, out2[0].Achievements[0].IsVerified)

	_, err = VerifyAchievement(out2, "u1", "missing", "admin", now)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCertificates(t *testing.T) {
	users := seedUsers(t)

	out, err := AddCertificate(users, "u1", models.Certificate{ID: "c1", Title: "Camp"}, now)
	require.NoError(t, err)
	require.Len(t, out[0].Certificates, 1)
	assert.Equal(t, "2024-03-09", out[0].Certificates[0].UploadDate)

	_, err = AddCertificate(out, "u1", models.Certificate{ID: "c1", Title: "Dup"}, now)
	assert.ErrorIs(t, err, common.ErrConflict)

	out, err = VerifyCertificate(out, "u1", "c1", "admin", now)
	require.NoError(t, err)
	assert.True(t, out[0].Certificates[0].IsVerified)

	_, err = VerifyCertificate(out, "u1", "c2", "admin", now)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateEventStatus(t *testing.T) {
	users := seedUsers(t)
	events, _, err := SaveAdminEvent(nil, models.AdminEvent{ID: "e1", Title: "Blood Drive", Date: "2024-04-01"})
	require.NoError(t, err)
	_, users, err = RegisterForEvent(events, users, "e1", "u1", now)
	require.NoError(t, err)

	later := now.Add(48 * time.Hour)

	out, err := UpdateEventStatus(users, "u1", "e1", models.EventCompleted, later)
	require.NoError(t, err)
	h := out[0].EventHistory[0]
	assert.Equal(t, models.EventCompleted, h.Status)
	assert.Equal(t, "2024-03-11", h.AttendanceDate)
	assert.Equal(t, "2024-03-11", h.CompletionDate)
	assert.Equal(t, models.EventRegistered, users[0].EventHistory[0].Status)

	_, err = UpdateEventStatus(out, "u1", "e1", models.EventAttended, later)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = UpdateEventStatus(out, "u1", "e1", "cancelled", later)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = UpdateEventStatus(out, "u1", "e9", models.EventAttended, later)
	assert.ErrorIs(t, err, common.ErrNotFound)

	same, err := UpdateEventStatus(out, "u1", "e1", models.EventCompleted, later.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, h, same[0].EventHistory[0])
}
