// Package discover holds the in-memory candidate queue for the discovery
// flow: a positional list of profiles and a cursor over not-yet-decided
// candidates.
package discover

import (
	"context"
	"errors"
	"fmt"

	"github.com/me22abd/campusconnect-client/internal/client/api"
	"github.com/me22abd/campusconnect-client/internal/client/likes"
	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// Action is a decision on the candidate under the cursor.
type Action int

const (
	ActionPass Action = iota
	ActionLike
)

// ErrNoCandidates means a reload produced an empty queue; there is nobody
// left to decide on right now.
var ErrNoCandidates = errors.New("no candidates available")

// Queue holds candidates in server order with a cursor. Invariant:
// 0 <= cursor <= len(items); cursor == len(items) means exhausted. The list
// is replaced, never merged, on reload so stale entries cannot resurface.
type Queue struct {
	api   api.Client
	coord *likes.Coordinator
	self  func() *models.Profile

	items  []models.Profile
	cursor int
}

// NewQueue builds a queue. self supplies the current user so their own
// profile can be filtered out defensively; the server should already exclude
// it, but the client must not assume that.
func NewQueue(apiClient api.Client, coord *likes.Coordinator, self func() *models.Profile) *Queue {
	return &Queue{api: apiClient, coord: coord, self: self}
}

// Load fetches a fresh candidate list, replaces the queue wholesale, and
// resets the cursor.
func (q *Queue) Load(ctx context.Context) error {
	users, err := q.api.Discover(ctx)
	if err != nil {
		return fmt.Errorf("load candidates: %w", err)
	}

	var selfID string
	if me := q.self(); me != nil {
		selfID = me.ID
	}
	filtered := users[:0:0]
	for _, u := range users {
		if selfID != "" && u.ID == selfID {
			continue
		}
		filtered = append(filtered, u)
	}

	q.items = filtered
	q.cursor = 0
	return nil
}

// Current returns the candidate under the cursor, if any.
func (q *Queue) Current() (models.Profile, bool) {
	if q.cursor >= len(q.items) {
		return models.Profile{}, false
	}
	return q.items[q.cursor], true
}

// Remaining reports how many candidates are left, including the current one.
func (q *Queue) Remaining() int {
	return len(q.items) - q.cursor
}

// Decide acts on the candidate under the cursor. An exhausted queue is
// replenished first. Pass advances locally with no network call. Like goes
// through the coordinator; the cursor advances whether the like was recorded,
// matched, or failed, so a failed like never re-offers the same candidate —
// the error is still returned for display. A like rejected because another
// is in flight dispatches nothing and does not advance.
func (q *Queue) Decide(ctx context.Context, action Action) (*models.Match, error) {
	if q.cursor >= len(q.items) {
		if err := q.Load(ctx); err != nil {
			return nil, err
		}
		if len(q.items) == 0 {
			return nil, ErrNoCandidates
		}
	}

	target := q.items[q.cursor]

	switch action {
	case ActionPass:
		q.cursor++
		return nil, nil
	case ActionLike:
		match, err := q.coord.Like(ctx, target.ID)
		if errors.Is(err, likes.ErrLikeInFlight) {
			return nil, err
		}
		q.cursor++
		return match, err
	default:
		return nil, fmt.Errorf("unknown action %d", action)
	}
}
