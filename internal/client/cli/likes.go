package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Likes shows the received-likes list and lets the user like back.
func (a *App) Likes(ctx context.Context) error {
	if err := a.inbox.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to load likes: %s\n", err)
		return err
	}

	for {
		items := a.inbox.Items()
		if len(items) == 0 {
			fmt.Fprintln(a.out, "No likes yet. Keep swiping!")
			return nil
		}

		fmt.Fprintln(a.out, "People who liked you:")
		for i, l := range items {
			name := l.Name
			if name == "" {
				name = l.ID
			}
			fmt.Fprintf(a.out, "  %d. %s", i+1, name)
			if l.Age > 0 {
				fmt.Fprintf(a.out, ", %d", l.Age)
			}
			if l.University != "" {
				fmt.Fprintf(a.out, " (%s)", l.University)
			}
			fmt.Fprintln(a.out)
		}

		choice, err := getSimpleText(a.reader, "Number to like back (empty to go back)", a.out)
		if err != nil {
			return err
		}
		if choice == "" {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(items) {
			fmt.Fprintln(a.out, "Invalid choice:", choice)
			continue
		}

		match, err := a.inbox.LikeBack(ctx, items[n-1].ID)
		if err != nil {
			fmt.Fprintf(a.out, "Like failed: %s\n", err)
			continue
		}
		if match == nil {
			fmt.Fprintln(a.out, "You liked them back!")
		}
	}
}
