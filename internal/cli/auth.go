package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/models"
)

// Register prompts for the volunteer's details and password and creates the
// account. The new volunteer is logged in and lands on their portfolio,
// pending approval.
func (a *App) Register(ctx context.Context) error {
	a.session.GoToRegistration()

	u, err := a.readRegistration()
	if err == nil {
		if a.session.RollNumberTaken(u.RollNumber) {
			err = fmt.Errorf("roll number %s is already registered: %w", u.RollNumber, common.ErrConflict)
		} else {
			u, err = a.session.RegisterUser(ctx, u)
		}
	}
	if err != nil {
		a.session.NavigateBack()
		return err
	}

	a.printf("Registered %s (id %s). Your account is pending approval.\n", u.FullName, u.ID)
	return nil
}

func (a *App) readRegistration() (models.User, error) {
	var (
		u   models.User
		err error
	)
	if u.FullName, err = a.prompt("Full name"); err != nil {
		return u, err
	}
	if u.RollNumber, err = a.prompt("Roll number"); err != nil {
		return u, err
	}
	if u.Branch, err = a.prompt("Branch"); err != nil {
		return u, err
	}
	if u.Password, err = getPassword(a.reader, a.out); err != nil {
		return u, err
	}
	return u, nil
}

// Login prompts for roll number and password.
func (a *App) Login(ctx context.Context) error {
	a.session.GoToLogin()

	roll, err := a.prompt("Roll number")
	if err != nil {
		a.session.NavigateBack()
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		a.session.NavigateBack()
		return err
	}

	u, err := a.session.Login(ctx, roll, password)
	if err != nil {
		a.session.NavigateBack()
		return err
	}

	a.printf("Welcome, %s (%s)\n", u.FullName, u.Approval())
	if u.IsRejected {
		a.printf("Registration rejected: %s\n", u.RejectionReason)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return fmt.Errorf("not logged in: %w", common.ErrNoSession)
	}
	a.session.Logout(ctx)
	a.printf("Logged out\n")
	return nil
}

// ForgotPassword shows how to get a password reset.
func (a *App) ForgotPassword(context.Context) error {
	a.session.GoToForgotPassword()
	a.printf("Passwords are reset by the NSS coordinator. Contact %q with your roll number.\n", a.session.AdminName())
	return nil
}

// Profile edits the session user's name, branch and password. Empty answers
// keep the current value.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}

	name, err := a.prompt(fmt.Sprintf("Full name [%s]", u.FullName))
	if err != nil {
		return err
	}
	branch, err := a.prompt(fmt.Sprintf("Branch [%s]", u.Branch))
	if err != nil {
		return err
	}
	a.printf("New password (empty to keep)\n")
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if name != "" {
		u.FullName = name
	}
	if branch != "" {
		u.Branch = branch
	}
	if password != "" {
		u.Password = password
	}
	if err := a.session.UpdateUser(ctx, u); err != nil {
		return err
	}
	a.printf("Profile updated\n")
	return nil
}
