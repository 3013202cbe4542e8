package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/nssportal/internal/models"
)

// Suggest files a suggestion, attributed to the session user when logged in.
func (a *App) Suggest(ctx context.Context) error {
	var (
		s   models.Suggestion
		err error
	)
	if s.Title, err = a.prompt("Title"); err != nil {
		return err
	}
	category, err := a.prompt("Category (general/event/system/achievement, empty for general)")
	if err != nil {
		return err
	}
	s.Category = models.SuggestionCategory(category)
	if s.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}

	stored, err := a.session.SaveSuggestion(ctx, s)
	if err != nil {
		return err
	}
	a.printf("Thanks! Suggestion %s recorded\n", stored.ID)
	return nil
}

func (a *App) Suggestions(context.Context) error {
	sugs := a.session.State().Suggestions
	if len(sugs) == 0 {
		a.printf("No suggestions yet\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tSTATUS\tFROM\tRESPONSE")
	for _, s := range sugs {
		from := s.UserName
		if from == "" {
			from = "anonymous"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Title, s.Category, s.Status, from, s.Response)
	}
	return tw.Flush()
}
