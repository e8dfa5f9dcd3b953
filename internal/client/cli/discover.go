package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/me22abd/campusconnect-client/internal/client/discover"
	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// Discover runs the interactive like/pass loop over the candidate queue.
func (a *App) Discover(ctx context.Context) error {
	if err := a.queue.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to load profiles: %s\n", err)
		return err
	}

	for {
		profile, ok := a.queue.Current()
		if !ok {
			fmt.Fprintln(a.out, "You've seen everyone! Reloading...")
			if err := a.queue.Load(ctx); err != nil {
				fmt.Fprintf(a.out, "Failed to load profiles: %s\n", err)
				return err
			}
			if _, ok = a.queue.Current(); !ok {
				fmt.Fprintln(a.out, "No more profiles, check back later")
				return nil
			}
			continue
		}

		a.printProfileCard(profile)

		choice, err := getSimpleText(a.reader, "(l)ike / (p)ass / (q)uit", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "l", "like":
			if _, err := a.queue.Decide(ctx, discover.ActionLike); err != nil {
				fmt.Fprintf(a.out, "Like failed: %s\n", err)
			}
		case "p", "pass":
			if _, err := a.queue.Decide(ctx, discover.ActionPass); err != nil {
				fmt.Fprintf(a.out, "%s\n", err)
			}
		case "q", "quit":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown choice:", choice)
		}
	}
}

func (a *App) printProfileCard(p models.Profile) {
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "--- %s", p.DisplayName())
	if p.Age > 0 {
		fmt.Fprintf(a.out, ", %d", p.Age)
	}
	fmt.Fprintln(a.out, " ---")
	if p.University != "" {
		fmt.Fprintf(a.out, "University: %s\n", p.University)
	}
	if p.Location != "" {
		fmt.Fprintf(a.out, "Location:   %s\n", p.Location)
	}
	if p.Education != "" {
		fmt.Fprintf(a.out, "Education:  %s\n", p.Education)
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(a.out, "Interests:  %s\n", strings.Join(p.Interests, ", "))
	}
}
