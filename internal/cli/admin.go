package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/nav"
)

// Users lists every registered volunteer with their approval state.
func (a *App) Users(context.Context) error {
	if a.session.View() != nav.Admin {
		a.session.GoToAdmin()
	}

	users := a.session.State().Users
	if len(users) == 0 {
		a.printf("No volunteers registered yet\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROLL\tNAME\tBRANCH\tSTATUS\tJOINED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.RollNumber, u.FullName, u.Branch, u.Approval(), u.JoinDate)
	}
	return tw.Flush()
}

func (a *App) Approve(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("approve <userID>")
	}
	if err := a.session.ApproveUser(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Approved %s\n", args[0])
	return nil
}

func (a *App) Reject(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usage("reject <userID> [reason]")
	}
	if err := a.session.RejectUser(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.printf("Rejected %s\n", args[0])
	return nil
}

func (a *App) ApproveRegistration(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("approvereg <eventID> <userID>")
	}
	if err := a.session.ApproveEventRegistration(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printf("Approved registration of %s for %s\n", args[1], args[0])
	return nil
}

func (a *App) EventStatus(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usage("eventstatus <userID> <eventID> <registered|attended|completed>")
	}
	if err := a.session.UpdateEventStatus(ctx, args[0], args[1], models.EventStatus(args[2])); err != nil {
		return err
	}
	a.printf("Marked %s as %s for %s\n", args[0], args[2], args[1])
	return nil
}

func (a *App) VerifyAchievement(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("verifyach <userID> <achievementID>")
	}
	if err := a.session.VerifyAchievement(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printf("Verified achievement %s\n", args[1])
	return nil
}

func (a *App) VerifyCertificate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("verifycert <userID> <certificateID>")
	}
	if err := a.session.VerifyCertificate(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printf("Verified certificate %s\n", args[1])
	return nil
}

func (a *App) Review(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("review <suggestionID> <pending|reviewed|implemented|rejected> [response]")
	}
	status := models.SuggestionStatus(args[1])
	if err := a.session.ReviewSuggestion(ctx, args[0], status, strings.Join(args[2:], " ")); err != nil {
		return err
	}
	a.printf("Suggestion %s marked %s\n", args[0], status)
	return nil
}
