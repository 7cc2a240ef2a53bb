package models

// Comment is a single comment under a post, in the exact shape the API
// returns from the comment listing and creation endpoints.
type Comment struct {
	// ID is the unique identifier of the comment.
	ID int64 `json:"id"`

	// Nickname is the display name of the comment author.
	Nickname string `json:"nickname"`

	// Comment is the comment text.
	Comment string `json:"comment"`

	// CreatedAt is the creation timestamp in Unix seconds.
	CreatedAt int64 `json:"created_at"`
}
