package models

import "time"

// Session is a locally persisted sign-in: who is signed in and the access
// token the API issued. At most one session is kept at a time; a new login
// replaces the previous row.
type Session struct {
	// SessionID is the internal identifier of the row at the
	// persistence layer. It is not exposed via JSON.
	SessionID int64 `json:"-"`

	// Email is the login the session was opened with.
	Email string `json:"email"`

	// Nickname is the display name of the signed-in user, when known.
	// Registration knows it; plain login does not.
	Nickname string `json:"nickname"`

	// AccessToken is the opaque token the API issued. It is attached
	// verbatim to authenticated requests and never parsed locally.
	AccessToken string `json:"-"`

	// CreatedAt is the local timestamp of when the session was saved.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
