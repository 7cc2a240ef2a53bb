package models

// Post is a feed entry with its author and counters. No operation in this
// module creates posts; the type exists so responses that embed posts can
// be decoded without losing fields.
type Post struct {
	// ID is the unique identifier of the post.
	ID int64 `json:"id"`

	// URL is the canonical link to the post.
	URL string `json:"url"`

	// Media is the address of the attached media file, if any.
	Media string `json:"media"`

	// Text is the post body.
	Text string `json:"text"`

	// User is the author together with the API's denormalized
	// comment fields.
	User User `json:"user"`

	// LikesCount is the number of likes at response time.
	LikesCount int64 `json:"likes_count"`

	// CommentsCount is the number of comments at response time.
	CommentsCount int64 `json:"comments_count"`

	// CreatedAt is the creation timestamp in Unix seconds.
	CreatedAt int64 `json:"created_at"`
}
