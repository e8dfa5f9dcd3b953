// Package chat manages one conversation: the ordered message history for a
// match and the draft being typed. History is always rebuilt from the server
// after a send, so ordering stays authoritative; nothing is merged locally.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/me22abd/campusconnect-client/internal/client/api"
	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// ErrEmptyMessage is returned by Send for an empty or whitespace-only draft.
// No network call is made.
var ErrEmptyMessage = errors.New("message is empty")

// Thread is the message view for a single match.
type Thread struct {
	api     api.Client
	matchID string

	messages []models.Message
	draft    string
}

func NewThread(apiClient api.Client, matchID string) *Thread {
	return &Thread{api: apiClient, matchID: matchID}
}

func (t *Thread) MatchID() string { return t.matchID }

// Load replaces the local history with the full server-side list, ordered
// ascending by creation time. Safe to call repeatedly; used for manual
// refresh as well.
func (t *Thread) Load(ctx context.Context) error {
	msgs, err := t.api.Messages(ctx, t.matchID)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	t.messages = msgs
	return nil
}

// Messages returns the current history in server order.
func (t *Thread) Messages() []models.Message {
	return t.messages
}

// SetDraft replaces the input buffer.
func (t *Thread) SetDraft(s string) { t.draft = s }

// Draft returns the input buffer contents.
func (t *Thread) Draft() string { return t.draft }

// Send submits the draft. The buffer is cleared optimistically before the
// request resolves, but the message itself is never inserted locally: on
// success a full reload fetches the authoritative order with the
// server-assigned id and timestamp. On failure the buffer is restored to the
// exact draft present when Send was invoked and the error is surfaced.
func (t *Thread) Send(ctx context.Context) error {
	prev := t.draft
	content := strings.TrimSpace(prev)
	if content == "" {
		return ErrEmptyMessage
	}

	t.draft = ""

	if _, err := t.api.SendMessage(ctx, t.matchID, content); err != nil {
		t.draft = prev
		return err
	}

	return t.Load(ctx)
}
