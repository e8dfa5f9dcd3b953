package models

import "time"

// Counterpart is the partial profile of the other side of a match.
type Counterpart struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Age             int    `json:"age,omitempty"`
	University      string `json:"university,omitempty"`
	Location        string `json:"location,omitempty"`
}

// Match is created when two users have both liked each other. It is held
// transiently by the UI; authoritative match lists are always re-fetched.
type Match struct {
	ID        string      `json:"id"`
	User      Counterpart `json:"user"`
	MatchedAt time.Time   `json:"matchedAt"`
}

// Message is one chat message inside a match conversation. The id and
// timestamp are server-assigned; the client never fabricates them.
type Message struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"matchId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
