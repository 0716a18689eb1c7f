package models

import "strings"

// Subscription is a ticker the user follows. The server owns it; the client
// only keeps the list fetched for the current view.
type Subscription struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id,omitempty"`
	Ticker    string     `json:"ticker"`
	CreatedAt Timestamp  `json:"created_at"`
	UpdatedAt *Timestamp `json:"updated_at,omitempty"`
}

// String renders the subscription as a list row.
func (s Subscription) String() string {
	return s.Ticker
}

// NewSubscription is the body of POST /subscriptions.
type NewSubscription struct {
	Ticker string `json:"ticker"`
}

// DeleteResult is returned by DELETE /subscriptions/{ticker}.
type DeleteResult struct {
	Deleted int `json:"deleted"`
}

// NormalizeTicker trims surrounding space and upper-cases a ticker symbol.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
