package models

// User represents a Grustnogram account as the API serializes it inside
// post payloads. The wire shape is denormalized: alongside the identity
// fields the API reuses a comment text field and a comment timestamp, and
// this struct preserves that shape verbatim rather than papering over it.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Nickname is the public display name, unique across the service.
	Nickname string `json:"nickname"`

	// Comment is the text of the user's comment in the payload this
	// user object arrived in. The API embeds it here as-is.
	Comment string `json:"comment"`

	// CreatedAt is the creation timestamp of that same comment,
	// in Unix seconds.
	CreatedAt int64 `json:"created_at"`
}
