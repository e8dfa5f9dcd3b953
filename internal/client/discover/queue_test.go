package discover

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/me22abd/campusconnect-client/internal/client/api"
	"github.com/me22abd/campusconnect-client/internal/client/likes"
	"github.com/me22abd/campusconnect-client/internal/client/models"
)

type fakeAPI struct {
	discoverCalls atomic.Int32
	discoverRes   []models.Profile
	discoverErr   error

	likeCalls atomic.Int32
	likeTo    []string
	likeRes   map[string]*api.LikeResult
	likeErr   error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) SetToken(string) {}
func (f *fakeAPI) ClearToken()     {}
func (f *fakeAPI) Close() error    { return nil }

func (f *fakeAPI) Register(context.Context, api.RegisterRequest) (*api.AuthResult, error) {
	return nil, nil
}
func (f *fakeAPI) Login(context.Context, string, string) (*api.AuthResult, error) { return nil, nil }
func (f *fakeAPI) CurrentUser(context.Context) (*models.Profile, error)           { return nil, nil }

func (f *fakeAPI) Discover(context.Context) ([]models.Profile, error) {
	f.discoverCalls.Add(1)
	if f.discoverErr != nil {
		return nil, f.discoverErr
	}
	return f.discoverRes, nil
}

func (f *fakeAPI) LikeUser(ctx context.Context, userID string) (*api.LikeResult, error) {
	f.likeCalls.Add(1)
	f.likeTo = append(f.likeTo, userID)
	if f.likeErr != nil {
		return nil, f.likeErr
	}
	if r, ok := f.likeRes[userID]; ok {
		return r, nil
	}
	return &api.LikeResult{Like: models.Like{ID: "l", ToUserID: userID}}, nil
}

func (f *fakeAPI) UnlikeUser(context.Context, string) error { return nil }
func (f *fakeAPI) ReceivedLikes(context.Context) ([]models.ReceivedLike, error) {
	return nil, nil
}
func (f *fakeAPI) Matches(context.Context) ([]models.Match, error) { return nil, nil }
func (f *fakeAPI) Messages(context.Context, string) ([]models.Message, error) {
	return nil, nil
}
func (f *fakeAPI) SendMessage(context.Context, string, string) (*models.Message, error) {
	return nil, nil
}

func profiles(ids ...string) []models.Profile {
	out := make([]models.Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Profile{ID: id, Name: "user-" + id})
	}
	return out
}

func me() *models.Profile { return &models.Profile{ID: "me"} }

func newQueue(a *fakeAPI) *Queue {
	return NewQueue(a, likes.NewCoordinator(a, nil), me)
}

func TestQueue_LoadFiltersSelfAndResetsCursor(t *testing.T) {
	a := &fakeAPI{discoverRes: profiles("u1", "me", "u2")}
	q := newQueue(a)

	require.NoError(t, q.Load(context.Background()))
	require.Equal(t, 2, q.Remaining())

	cur, ok := q.Current()
	require.True(t, ok)
	require.Equal(t, "u1", cur.ID)
}

func TestQueue_PassAdvancesWithoutNetwork(t *testing.T) {
	a := &fakeAPI{discoverRes: profiles("u1", "u2", "u3")}
	q := newQueue(a)
	require.NoError(t, q.Load(context.Background()))

	_, err := q.Decide(context.Background(), ActionPass)
	require.NoError(t, err)
	require.Equal(t, 2, q.Remaining())
	require.Zero(t, a.likeCalls.Load())

	cur, _ := q.Current()
	require.Equal(t, "u2", cur.ID)
}

// Consuming the whole queue with passes must trigger the automatic reload
// exactly once: on the first decision after exhaustion, never before.
func TestQueue_ExhaustionReloadsExactlyOnce(t *testing.T) {
	a := &fakeAPI{discoverRes: profiles("u1", "u2")}
	q := newQueue(a)
	require.NoError(t, q.Load(context.Background()))
	require.EqualValues(t, 1, a.discoverCalls.Load())

	for i := 0; i < 2; i++ {
		_, err := q.Decide(context.Background(), ActionPass)
		require.NoError(t, err)
	}
	// queue is exhausted, but no reload has happened yet
	require.EqualValues(t, 1, a.discoverCalls.Load())
	require.Equal(t, 0, q.Remaining())

	a.discoverRes = profiles("u3")
	_, err := q.Decide(context.Background(), ActionPass)
	require.NoError(t, err)
	require.EqualValues(t, 2, a.discoverCalls.Load())
	require.Equal(t, 0, q.Remaining()) // u3 was decided right away
}

func TestQueue_ReloadEmptyReportsNoCandidates(t *testing.T) {
	a := &fakeAPI{discoverRes: nil}
	q := newQueue(a)

	_, err := q.Decide(context.Background(), ActionPass)
	require.ErrorIs(t, err, ErrNoCandidates)
	require.EqualValues(t, 1, a.discoverCalls.Load())
}

func TestQueue_ReloadFailurePropagates(t *testing.T) {
	a := &fakeAPI{discoverErr: api.ErrUnavailable}
	q := newQueue(a)

	_, err := q.Decide(context.Background(), ActionLike)
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.Zero(t, a.likeCalls.Load())
}

// Spec scenario: queue [A, B], like on A returns a match, cursor moves to B,
// pass on B exhausts the queue and the next decision reloads.
func TestQueue_LikeMatchScenario(t *testing.T) {
	match := models.Match{ID: "m1", User: models.Counterpart{ID: "A", Name: "user-A"}}
	a := &fakeAPI{
		discoverRes: profiles("A", "B"),
		likeRes:     map[string]*api.LikeResult{"A": {Like: models.Like{ID: "l1"}, Match: &match}},
	}
	q := newQueue(a)
	require.NoError(t, q.Load(context.Background()))

	got, err := q.Decide(context.Background(), ActionLike)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "A", got.User.ID)
	require.Equal(t, []string{"A"}, a.likeTo)

	cur, ok := q.Current()
	require.True(t, ok)
	require.Equal(t, "B", cur.ID)

	_, err = q.Decide(context.Background(), ActionPass)
	require.NoError(t, err)
	require.Equal(t, 0, q.Remaining())

	a.discoverRes = profiles("C")
	_, err = q.Decide(context.Background(), ActionPass)
	require.NoError(t, err)
	require.EqualValues(t, 2, a.discoverCalls.Load())
}

func TestQueue_FailedLikeStillAdvances(t *testing.T) {
	a := &fakeAPI{
		discoverRes: profiles("u1", "u2"),
		likeErr:     &api.APIError{Status: 500, Message: "boom"},
	}
	q := newQueue(a)
	require.NoError(t, q.Load(context.Background()))

	_, err := q.Decide(context.Background(), ActionLike)
	require.Error(t, err)

	// the failed candidate is not re-offered
	cur, ok := q.Current()
	require.True(t, ok)
	require.Equal(t, "u2", cur.ID)
}

func TestQueue_ReplacedNotMerged(t *testing.T) {
	a := &fakeAPI{discoverRes: profiles("u1", "u2")}
	q := newQueue(a)
	require.NoError(t, q.Load(context.Background()))
	_, err := q.Decide(context.Background(), ActionPass)
	require.NoError(t, err)

	a.discoverRes = profiles("u9")
	require.NoError(t, q.Load(context.Background()))

	require.Equal(t, 1, q.Remaining())
	cur, _ := q.Current()
	require.Equal(t, "u9", cur.ID)
}
