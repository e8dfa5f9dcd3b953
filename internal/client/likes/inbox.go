package likes

import (
	"context"
	"errors"

	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// ErrNotInInbox is returned by LikeBack for a user id not present in the
// loaded list.
var ErrNotInInbox = errors.New("user not in received likes")

// Inbox is the received-likes view: users who liked the current user, with
// like-back going through the coordinator. Contents are replaced wholesale on
// every Load; there is no client-side merging.
type Inbox struct {
	coord *Coordinator
	items []models.ReceivedLike
}

func NewInbox(coord *Coordinator) *Inbox {
	return &Inbox{coord: coord}
}

func (i *Inbox) Load(ctx context.Context) error {
	likes, err := i.coord.api.ReceivedLikes(ctx)
	if err != nil {
		return err
	}
	i.items = likes
	return nil
}

// Items returns the current list in server order.
func (i *Inbox) Items() []models.ReceivedLike {
	return i.items
}

// LikeBack likes userID in return. The entry is removed from the list only
// after the like succeeds; on failure it stays actionable and the error is
// surfaced to the caller.
func (i *Inbox) LikeBack(ctx context.Context, userID string) (*models.Match, error) {
	found := false
	for _, l := range i.items {
		if l.ID == userID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotInInbox
	}

	match, err := i.coord.Like(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := i.items[:0:0]
	for _, l := range i.items {
		if l.ID != userID {
			kept = append(kept, l)
		}
	}
	i.items = kept
	return match, nil
}
