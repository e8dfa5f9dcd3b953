// Package models holds the data types exchanged with the CampusConnect
// backend. All of them are immutable snapshots: the client never mutates a
// profile or a message in place, it replaces whole collections from fresh
// server responses.
package models

import "time"

// Profile is a user as returned by the backend. Discover responses omit
// private fields (email, date of birth), so most attributes are optional.
type Profile struct {
	ID              string   `json:"id"`
	Email           string   `json:"email,omitempty"`
	Name            string   `json:"name,omitempty"`
	DateOfBirth     string   `json:"dateOfBirth,omitempty"`
	Age             int      `json:"age,omitempty"`
	ProfileComplete bool     `json:"profileComplete,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Height          string   `json:"height,omitempty"`
	Education       string   `json:"education,omitempty"`
	University      string   `json:"university,omitempty"`
	Location        string   `json:"location,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	Interests       []string `json:"interests,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

// DisplayName returns something printable even for incomplete profiles.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Like is one recorded like edge between two users.
type Like struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReceivedLike is a user who liked the current user, as returned by the
// received-likes endpoint. ID is the liker's user id.
type ReceivedLike struct {
	ID              string    `json:"id"`
	Name            string    `json:"name,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Age             int       `json:"age,omitempty"`
	University      string    `json:"university,omitempty"`
	LikedAt         time.Time `json:"likedAt"`
}
