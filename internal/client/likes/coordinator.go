// Package likes coordinates like/unlike actions against the backend and
// interprets their responses for mutual matches.
package likes

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/me22abd/campusconnect-client/internal/client/api"
	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// ErrLikeInFlight is returned when a like is requested while another one is
// still outstanding. No network call is dispatched in that case.
var ErrLikeInFlight = errors.New("another like is already in flight")

// Coordinator serializes like traffic: at most one like/like-back request may
// be outstanding globally at a time. The UI is expected to disable the
// triggering control while busy, but the coordinator guards re-entrancy
// itself so correctness does not depend on the presentation layer.
type Coordinator struct {
	api    api.Client
	busy   atomic.Bool
	notify func(models.Match)
}

// NewCoordinator builds a Coordinator. notify, when non-nil, is invoked for
// every mutual match before Like returns.
func NewCoordinator(apiClient api.Client, notify func(models.Match)) *Coordinator {
	return &Coordinator{api: apiClient, notify: notify}
}

// Busy reports whether a like request is currently outstanding.
func (c *Coordinator) Busy() bool {
	return c.busy.Load()
}

// Like records a like on targetID. Returns the resulting match, if the like
// completed a mutual pair, and nil otherwise. A call made while another like
// is outstanding fails with ErrLikeInFlight without touching the network.
func (c *Coordinator) Like(ctx context.Context, targetID string) (*models.Match, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrLikeInFlight
	}
	defer c.busy.Store(false)

	res, err := c.api.LikeUser(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if res.Match != nil && c.notify != nil {
		c.notify(*res.Match)
	}
	return res.Match, nil
}

// Unlike removes a previously recorded like. It shares the single-request
// guard with Like.
func (c *Coordinator) Unlike(ctx context.Context, targetID string) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrLikeInFlight
	}
	defer c.busy.Store(false)

	return c.api.UnlikeUser(ctx, targetID)
}
