package cli

import (
	"context"
	"fmt"

	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// Matches lists the current user's matches.
func (a *App) Matches(ctx context.Context) error {
	matches, err := a.api.Matches(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load matches: %s\n", err)
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No matches yet")
		return nil
	}

	fmt.Fprintln(a.out, "Your matches:")
	for i, m := range matches {
		fmt.Fprintf(a.out, "  %d. %s (matched %s)\n",
			i+1, counterpartName(m), m.MatchedAt.Format("2006-01-02"))
	}
	return nil
}

func counterpartName(m models.Match) string {
	if m.User.Name != "" {
		return m.User.Name
	}
	return m.User.ID
}
