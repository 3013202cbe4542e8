package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/nssportal/internal/models"
)

// Achieve adds an achievement to args[0], or to the session user.
func (a *App) Achieve(ctx context.Context, args []string) error {
	userID, err := a.targetUser(args)
	if err != nil {
		return err
	}

	var ach models.Achievement
	if ach.Title, err = a.prompt("Title"); err != nil {
		return err
	}
	if ach.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	level, err := a.prompt("Level (national/state/district)")
	if err != nil {
		return err
	}
	ach.Level = models.AchievementLevel(level)
	if ach.Date, err = a.prompt("Date (YYYY-MM-DD)"); err != nil {
		return err
	}

	stored, err := a.session.AddAchievement(ctx, userID, ach)
	if err != nil {
		return err
	}
	a.printf("Added achievement %s\n", stored.ID)
	return nil
}

// Certificate attaches a certificate to args[0], or to the session user.
func (a *App) Certificate(ctx context.Context, args []string) error {
	userID, err := a.targetUser(args)
	if err != nil {
		return err
	}

	var c models.Certificate
	if c.Title, err = a.prompt("Title"); err != nil {
		return err
	}
	if c.Description, err = a.prompt("Description"); err != nil {
		return err
	}
	if c.FileURL, err = a.prompt("File URL"); err != nil {
		return err
	}

	stored, err := a.session.AddCertificate(ctx, userID, c)
	if err != nil {
		return err
	}
	a.printf("Added certificate %s\n", stored.ID)
	return nil
}

// Show prints a portfolio. With a user id it opens that portfolio read-only;
// without one it prints the session user's own.
func (a *App) Show(_ context.Context, args []string) error {
	if len(args) > 1 {
		return usage("show [userID]")
	}
	if len(args) == 0 {
		u, err := a.currentUser()
		if err != nil {
			return err
		}
		return writePortfolio(a.out, u)
	}

	if err := a.session.DisplayPortfolio(args[0]); err != nil {
		return err
	}
	return writePortfolio(a.out, *a.session.State().DisplayUser)
}

func writePortfolio(w io.Writer, u models.User) error {
	fmt.Fprintf(w, "%s (%s, %s)\n", u.FullName, u.RollNumber, u.Branch)
	fmt.Fprintf(w, "Status: %s", u.Approval())
	if u.IsRejected && u.RejectionReason != "" {
		fmt.Fprintf(w, " - %s", u.RejectionReason)
	}
	fmt.Fprintf(w, "\nMember since: %s\n", u.JoinDate)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(u.Achievements) > 0 {
		fmt.Fprintln(tw, "\nACHIEVEMENT\tLEVEL\tDATE\tVERIFIED")
		for _, ach := range u.Achievements {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", ach.Title, ach.Level, ach.Date, ach.IsVerified)
		}
	}
	if len(u.Certificates) > 0 {
		fmt.Fprintln(tw, "\nCERTIFICATE\tUPLOADED\tVERIFIED")
		for _, c := range u.Certificates {
			fmt.Fprintf(tw, "%s\t%s\t%t\n", c.Title, c.UploadDate, c.IsVerified)
		}
	}
	if len(u.EventHistory) > 0 {
		fmt.Fprintln(tw, "\nEVENT\tFROM\tTO\tSTATUS")
		for _, h := range u.EventHistory {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", h.EventTitle, h.StartDate, h.EndDate, h.Status)
		}
	}
	return tw.Flush()
}
