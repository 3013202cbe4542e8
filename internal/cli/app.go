package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/logging"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/state"
)

// Indirections over the input helpers, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

type App struct {
	session *state.Session
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

func NewApp(s *state.Session, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{session: s, reader: bufio.NewReader(in), out: out, log: log}
}

// Run prints a greeting and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the NSS volunteer portal (type 'help' for commands)")
	a.log.Debug(ctx, "repl started")
	runREPL(ctx, a, a.status, a.reader)
	a.log.Debug(ctx, "repl stopped")
}

func (a *App) isLoggedIn() bool {
	return a.session.State().LoggedIn
}

// status renders "(view user)" for the prompt.
func (a *App) status() string {
	st := a.session.State()
	s := string(st.View())
	if st.CurrentUser != nil {
		s += " " + st.CurrentUser.FullName
	}
	return "(" + s + ")"
}

func (a *App) prompt(label string) (string, error) {
	return getSimpleText(a.reader, label, a.out)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) currentUser() (models.User, error) {
	cu := a.session.State().CurrentUser
	if cu == nil {
		return models.User{}, fmt.Errorf("log in first: %w", common.ErrNoSession)
	}
	return *cu, nil
}

// targetUser returns args[0] when given, otherwise the session user's id.
func (a *App) targetUser(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	u, err := a.currentUser()
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

func usage(s string) error {
	return fmt.Errorf("usage: %s", s)
}

func (a *App) Back(context.Context) error {
	a.session.NavigateBack()
	return nil
}

func (a *App) Home(context.Context) error {
	a.session.GoToLanding()
	return nil
}
