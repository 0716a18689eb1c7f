// Package models defines the client-side data types: the persisted session,
// backend payloads for auth and subscriptions, and transient form input.
package models

// User is the identity kept in the session.
//
// Email comes from the credentials typed at login, not from the backend. ID
// is the token's user_id claim when the token can be decoded; it is empty for
// opaque tokens.
type User struct {
	Email string `json:"email"`
	ID    string `json:"id,omitempty"`
}

// Session couples the current user with its bearer token. Both are set
// together on login and cleared together on logout.
type Session struct {
	User  *User
	Token string
}

// Authenticated reports whether the session has a user.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// Anonymous is the zero session.
var Anonymous = Session{}
