// Package api is the single chokepoint for talking to the CampusConnect
// backend. It owns the bearer token: the token is attached to every outgoing
// request, and a 401 from any endpoint clears it and fires the registered
// invalidation hook before the error is propagated.
package api

import (
	"context"

	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// RegisterRequest is the payload for account creation. Name and DateOfBirth
// are optional.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	Token string
	User  models.Profile
}

// LikeResult is the outcome of a like call. Match is non-nil only when the
// like completed a mutual pair.
type LikeResult struct {
	Like  models.Like
	Match *models.Match
}

// Client defines every backend operation the core uses. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	SetToken(token string)
	ClearToken()
	Close() error

	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context) (*models.Profile, error)

	Discover(ctx context.Context) ([]models.Profile, error)

	LikeUser(ctx context.Context, userID string) (*LikeResult, error)
	UnlikeUser(ctx context.Context, userID string) error
	ReceivedLikes(ctx context.Context) ([]models.ReceivedLike, error)

	Matches(ctx context.Context) ([]models.Match, error)

	Messages(ctx context.Context, matchID string) ([]models.Message, error)
	SendMessage(ctx context.Context, matchID, content string) (*models.Message, error)
}
