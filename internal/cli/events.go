package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/nav"
)

// Events lists published events and who signed up.
func (a *App) Events(context.Context) error {
	if a.session.View() != nav.Events {
		a.session.GoToEvents()
	}

	events := a.session.State().Events
	if len(events) == 0 {
		a.printf("No events published yet\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tFROM\tTO\tREGISTERED")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", e.ID, e.Title, e.StartDate, e.EndDate, len(e.Registrations))
		for _, r := range e.Registrations {
			approval := "pending"
			if r.IsApproved {
				approval = "approved"
			}
			fmt.Fprintf(tw, "\t  %s %s (%s)\t\t\t%s\n", r.UserRollNumber, r.UserName, r.UserID, approval)
		}
	}
	return tw.Flush()
}

// AddEvent publishes a new event. Start and end dates default to the event
// date when left empty.
func (a *App) AddEvent(ctx context.Context) error {
	var (
		e   models.AdminEvent
		err error
	)
	if e.Title, err = a.prompt("Title"); err != nil {
		return err
	}
	if e.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if e.Date, err = a.prompt("Date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if e.StartDate, err = a.prompt("Start date (empty for same day)"); err != nil {
		return err
	}
	if e.EndDate, err = a.prompt("End date (empty for same day)"); err != nil {
		return err
	}

	stored, err := a.session.SaveAdminEvent(ctx, e)
	if err != nil {
		return err
	}
	a.printf("Published %q (id %s) %s..%s\n", stored.Title, stored.ID, stored.StartDate, stored.EndDate)
	return nil
}

// Signup registers the session user for an event.
func (a *App) Signup(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("signup <eventID>")
	}
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	if err := a.session.RegisterForEvent(ctx, args[0], u.ID); err != nil {
		return err
	}
	a.printf("Signed up for %s; awaiting approval\n", args[0])
	return nil
}
