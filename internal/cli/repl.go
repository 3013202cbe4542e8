package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a recording stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Profile(ctx context.Context) error

	Users(ctx context.Context) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error

	Events(ctx context.Context) error
	AddEvent(ctx context.Context) error
	Signup(ctx context.Context, args []string) error
	ApproveRegistration(ctx context.Context, args []string) error
	EventStatus(ctx context.Context, args []string) error

	Achieve(ctx context.Context, args []string) error
	VerifyAchievement(ctx context.Context, args []string) error
	Certificate(ctx context.Context, args []string) error
	VerifyCertificate(ctx context.Context, args []string) error

	Suggest(ctx context.Context) error
	Suggestions(ctx context.Context) error
	Review(ctx context.Context, args []string) error

	Show(ctx context.Context, args []string) error
	Back(ctx context.Context) error
	Home(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, forgot, events, suggest, show <userID>, users, back, home, exit"
	helpMember = "Available commands: profile, events, signup <eventID>, achieve, cert, suggest, suggestions, show <userID>, back, home, logout, exit"
	helpAdmin  = "Admin commands: users, approve <userID>, reject <userID> [reason], addevent, approvereg <eventID> <userID>, " +
		"eventstatus <userID> <eventID> <status>, verifyach <userID> <achID>, verifycert <userID> <certID>, review <id> <status> [response]"
)

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. The prompt shows statusFn(). Command errors are
// reported and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nss %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpMember)
		} else {
			printlnFn(helpGuest)
		}
		printlnFn(helpAdmin)
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "forgot":
		return a.ForgotPassword(ctx)
	case "profile":
		return a.Profile(ctx)

	case "users":
		return a.Users(ctx)
	case "approve":
		return a.Approve(ctx, args)
	case "reject":
		return a.Reject(ctx, args)

	case "events":
		return a.Events(ctx)
	case "addevent":
		return a.AddEvent(ctx)
	case "signup":
		return a.Signup(ctx, args)
	case "approvereg":
		return a.ApproveRegistration(ctx, args)
	case "eventstatus":
		return a.EventStatus(ctx, args)

	case "achieve":
		return a.Achieve(ctx, args)
	case "verifyach":
		return a.VerifyAchievement(ctx, args)
	case "cert":
		return a.Certificate(ctx, args)
	case "verifycert":
		return a.VerifyCertificate(ctx, args)

	case "suggest":
		return a.Suggest(ctx)
	case "suggestions":
		return a.Suggestions(ctx)
	case "review":
		return a.Review(ctx, args)

	case "show":
		return a.Show(ctx, args)
	case "back":
		return a.Back(ctx)
	case "home":
		return a.Home(ctx)
	}

	printlnFn("Unknown command:", cmd)
	return nil
}
