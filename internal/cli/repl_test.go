package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	failOn   string

	calls []string
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if f.failOn == name {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) ForgotPassword(context.Context) error { return f.record("forgot") }
func (f *fakeExec) Profile(context.Context) error        { return f.record("profile") }
func (f *fakeExec) Users(context.Context) error          { return f.record("users") }
func (f *fakeExec) Approve(_ context.Context, a []string) error {
	return f.record("approve", a...)
}
func (f *fakeExec) Reject(_ context.Context, a []string) error { return f.record("reject", a...) }
func (f *fakeExec) Events(context.Context) error              { return f.record("events") }
func (f *fakeExec) AddEvent(context.Context) error            { return f.record("addevent") }
func (f *fakeExec) Signup(_ context.Context, a []string) error {
	return f.record("signup", a...)
}
func (f *fakeExec) ApproveRegistration(_ context.Context, a []string) error {
	return f.record("approvereg", a...)
}
func (f *fakeExec) EventStatus(_ context.Context, a []string) error {
	return f.record("eventstatus", a...)
}
func (f *fakeExec) Achieve(_ context.Context, a []string) error { return f.record("achieve", a...) }
func (f *fakeExec) VerifyAchievement(_ context.Context, a []string) error {
	return f.record("verifyach", a...)
}
func (f *fakeExec) Certificate(_ context.Context, a []string) error { return f.record("cert", a...) }
func (f *fakeExec) VerifyCertificate(_ context.Context, a []string) error {
	return f.record("verifycert", a...)
}
func (f *fakeExec) Suggest(context.Context) error     { return f.record("suggest") }
func (f *fakeExec) Suggestions(context.Context) error { return f.record("suggestions") }
func (f *fakeExec) Review(_ context.Context, a []string) error {
	return f.record("review", a...)
}
func (f *fakeExec) Show(_ context.Context, a []string) error { return f.record("show", a...) }
func (f *fakeExec) Back(context.Context) error               { return f.record("back") }
func (f *fakeExec) Home(context.Context) error               { return f.record("home") }

// capturePrintln swaps printlnFn for a recorder until the test ends.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"register",
		"login",
		"",
		"users",
		"approve u1",
		"reject u1 missing documents",
		"events",
		"addevent",
		"signup e1",
		"approvereg e1 u1",
		"eventstatus u1 e1 attended",
		"achieve",
		"verifyach u1 a1",
		"cert u1",
		"verifycert u1 c1",
		"suggest",
		"suggestions",
		"review s1 reviewed thanks a lot",
		"show u1",
		"back",
		"home",
		"profile",
		"forgot",
		"logout",
		"exit",
		"users",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(landing)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"register",
		"login",
		"users",
		"approve u1",
		"reject u1 missing documents",
		"events",
		"addevent",
		"signup e1",
		"approvereg e1 u1",
		"eventstatus u1 e1 attended",
		"achieve",
		"verifyach u1 a1",
		"cert u1",
		"verifycert u1 c1",
		"suggest",
		"suggestions",
		"review s1 reviewed thanks a lot",
		"show u1",
		"back",
		"home",
		"profile",
		"forgot",
		"logout",
	}, exec.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\nquit\n")))

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, helpGuest)
	assert.Contains(t, out, helpMember)
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_ReportsErrorsAndUnknown(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{failOn: "signup"}
	runREPL(context.Background(), exec, func() string { return "(events)" }, bufio.NewReader(strings.NewReader("signup e1\nfoobar\nevents")))

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "nss (events)> ")
	assert.Contains(t, out, "Error: signup failed")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Equal(t, []string{"signup e1", "events"}, exec.calls, "loop continues after an error and reads a final unterminated line")
}
