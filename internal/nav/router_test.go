package nav

import (
	"testing"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, Landing, r.Current())
	assert.Equal(t, []View{Landing}, r.History())

	var zero Router
	assert.Equal(t, Landing, zero.Current())
}

func TestNavigateTo_PushesCurrent(t *testing.T) {
	r := NewRouter().NavigateTo(Registration).NavigateTo(Portfolio)
	assert.Equal(t, Portfolio, r.Current())
	assert.Equal(t, []View{Landing, Landing, Registration}, r.History())
}

func TestBack(t *testing.T) {
	r := NewRouter().NavigateTo(Events).NavigateTo(Display)

	back := r.Back()
	assert.Equal(t, Events, back.Current())
	assert.Len(t, back.History(), len(r.History())-1)

	assert.Equal(t, Display, r.Current(), "receiver must not change")
}

func TestBack_EmptyHistoryFallsBackToLanding(t *testing.T) {
	r := Router{current: Admin}
	back := r.Back()
	assert.Equal(t, Landing, back.Current())
	assert.Empty(t, back.History())

	// Draining the initial stack lands on Landing and stays there.
	r = NewRouter().NavigateTo(Login).Back().Back().Back()
	assert.Equal(t, Landing, r.Current())
	assert.Empty(t, r.History())
}

func TestReset(t *testing.T) {
	r := NewRouter().NavigateTo(Login).NavigateTo(Portfolio).Reset()
	assert.Equal(t, Landing, r.Current())
	assert.Equal(t, []View{Landing}, r.History())
}

func TestHistoryIsACopy(t *testing.T) {
	r := NewRouter().NavigateTo(Admin)
	h := r.History()
	h[0] = Display
	assert.Equal(t, Landing, r.History()[0])
}

func TestParseView(t *testing.T) {
	for _, v := range Views {
		got, err := ParseView(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseView("  Forgot-Password ")
	require.NoError(t, err)
	assert.Equal(t, ForgotPassword, got)

	_, err = ParseView("settings")
	assert.ErrorIs(t, err, common.ErrValidation)
}
