package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/me22abd/campusconnect-client/internal/client/chat"
	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// Chat picks a match and enters the conversation loop for it.
func (a *App) Chat(ctx context.Context) error {
	matches, err := a.api.Matches(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load matches: %s\n", err)
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No matches to chat with yet")
		return nil
	}

	for i, m := range matches {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, counterpartName(m))
	}
	choice, err := getSimpleText(a.reader, "Chat with (number)", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(matches) {
		fmt.Fprintln(a.out, "Invalid choice:", choice)
		return nil
	}

	return a.runThread(ctx, matches[n-1])
}

func (a *App) runThread(ctx context.Context, m models.Match) error {
	th := chat.NewThread(a.api, m.ID)
	if err := th.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to load messages: %s\n", err)
		return err
	}
	a.printThread(th)

	for {
		line, err := getSimpleText(a.reader, "Message (/refresh, /quit)", a.out)
		if err != nil {
			return err
		}

		switch line {
		case "":
			continue
		case "/quit":
			return nil
		case "/refresh":
			if err := th.Load(ctx); err != nil {
				fmt.Fprintf(a.out, "Refresh failed: %s\n", err)
				continue
			}
			a.printThread(th)
		default:
			th.SetDraft(line)
			if err := th.Send(ctx); err != nil {
				// the draft is preserved inside the thread for a retry
				fmt.Fprintf(a.out, "Send failed: %s\n", err)
				continue
			}
			a.printThread(th)
		}
	}
}

func (a *App) printThread(th *chat.Thread) {
	msgs := th.Messages()
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No messages yet. Start the conversation!")
		return
	}
	me := a.session.User()
	for _, msg := range msgs {
		name := msg.SenderName
		if me != nil && msg.SenderID == me.ID {
			name = "you"
		}
		fmt.Fprintf(a.out, "[%s] %s: %s\n", msg.CreatedAt.Local().Format("15:04"), name, msg.Content)
	}
}
