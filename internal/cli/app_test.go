package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/nssportal/internal/logging"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/nav"
	"github.com/dmitrijs2005/nssportal/internal/state"
	"github.com/dmitrijs2005/nssportal/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, script ...string) (*App, *state.Session, *bytes.Buffer) {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	n := 0
	s, err := state.Open(context.Background(), store.NewMemory(),
		state.WithClock(func() time.Time { return time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC) }),
		state.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	require.NoError(t, err)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	return NewApp(s, in, &out, logging.Nop()), s, &out
}

func TestApp_VolunteerJourney(t *testing.T) {
	lines := capturePrintln(t)

	app, s, out := newTestApp(t,
		"register", "Asha", "CS101", "CSE", "s3cret",
		"approve id-1",
		"addevent", "Blood Drive", "Collecting blood", "", "2024-04-01", "", "",
		"signup id-2",
		"approvereg id-2 id-1",
		"achieve", "Camp lead", "Led the winter camp", "", "district", "2024-04-02",
		"suggest", "More camps", "event", "Quarterly rural camps", "",
		"suggestions",
		"show id-1",
		"logout",
		"login", "CS101", "s3cret",
		"exit",
	)
	app.Run(context.Background())

	for _, l := range *lines {
		assert.NotContains(t, l, "Error:")
	}

	text := out.String()
	assert.Contains(t, text, "Registered Asha (id id-1)")
	assert.Contains(t, text, `Published "Blood Drive" (id id-2) 2024-04-01..2024-04-01`)
	assert.Contains(t, text, "Signed up for id-2")
	assert.Contains(t, text, "Added achievement id-3")
	assert.Contains(t, text, "Suggestion id-4 recorded")
	assert.Contains(t, text, "Asha (CS101, CSE)")
	assert.Contains(t, text, "Welcome, Asha (approved)")

	st := s.State()
	require.Len(t, st.Users, 1)
	assert.True(t, st.Users[0].IsApproved)
	require.Len(t, st.Events, 1)
	assert.True(t, st.Events[0].Registrations[0].IsApproved)
	require.Len(t, st.Users[0].Achievements, 1)
	assert.Equal(t, models.LevelDistrict, st.Users[0].Achievements[0].Level)
	require.Len(t, st.Suggestions, 1)
	assert.Equal(t, "id-1", st.Suggestions[0].UserID)
	assert.Equal(t, models.CategoryEvent, st.Suggestions[0].Category)

	assert.True(t, st.LoggedIn)
	assert.Equal(t, nav.Portfolio, st.View())
}

func TestApp_ErrorsAreReported(t *testing.T) {
	lines := capturePrintln(t)

	app, s, _ := newTestApp(t,
		"signup e1",
		"approve",
		"approve ghost",
		"login", "CS404", "nope",
		"register", "Ravi", "", "ME", "pw",
		"review",
		"exit",
	)
	app.Run(context.Background())

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Error: log in first")
	assert.Contains(t, out, "Error: usage: approve <userID>")
	assert.Contains(t, out, `Error: user "ghost": not found`)
	assert.Contains(t, out, "unauthorized")
	assert.Contains(t, out, "RollNumber is required")
	assert.Contains(t, out, "Error: usage: review")

	st := s.State()
	assert.Empty(t, st.Users)
	assert.Equal(t, nav.Landing, st.View(), "failed login and registration step back")
}

func TestApp_RegisterDuplicateRoll(t *testing.T) {
	lines := capturePrintln(t)

	app, s, _ := newTestApp(t,
		"register", "Asha", "CS101", "CSE", "pw1",
		"logout",
		"register", "Asha Again", "CS101", "CSE", "pw2",
		"exit",
	)
	app.Run(context.Background())

	assert.Contains(t, strings.Join(*lines, "\n"), "roll number CS101 is already registered")
	assert.Len(t, s.State().Users, 1)
}

func TestApp_StatusAndNavigation(t *testing.T) {
	capturePrintln(t)

	app, s, out := newTestApp(t)
	assert.Equal(t, "(landing)", app.status())

	require.NoError(t, app.Events(context.Background()))
	assert.Equal(t, nav.Events, s.View())
	assert.Contains(t, out.String(), "No events published yet")

	require.NoError(t, app.Users(context.Background()))
	assert.Equal(t, "(admin)", app.status())

	require.NoError(t, app.ForgotPassword(context.Background()))
	assert.Contains(t, out.String(), `Contact "admin"`)

	require.NoError(t, app.Back(context.Background()))
	assert.Equal(t, nav.Admin, s.View())
	require.NoError(t, app.Home(context.Background()))
	assert.Equal(t, nav.Landing, s.View())
}
