package models

// SessionRequest is the body of POST /sessions. The API names the login
// field "email" even though it accepts a nickname there as well.
type SessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /users, the first registration step.
// PasswordConfirm must repeat Password byte for byte.
type RegisterRequest struct {
	Nickname        string `json:"nickname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// CallMeRequest is the body of POST /callme, the second registration step.
// PhoneKey is the opaque key issued by POST /users; sending it together
// with the phone number triggers the verification call.
type CallMeRequest struct {
	PhoneKey string `json:"phone_key"`
	Phone    string `json:"phone"`
}

// PhoneActivateRequest is the body of POST /phoneactivate, the final
// registration step. Code is the digits dictated by the verification call.
type PhoneActivateRequest struct {
	Code  string `json:"code"`
	Phone string `json:"phone"`
}

// CommentRequest is the body of POST /posts/{id}/comments.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// CommentsPageRequest is the body of GET /posts/{id}/comments. The API
// reads the page window from the request body even though the method is
// GET; both fields are always sent.
type CommentsPageRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ComplaintRequest is the body of POST /posts/{id}/complaint. Text is a
// pointer without omitempty so that an absent complaint text is serialized
// as an explicit JSON null, exactly as the API expects.
type ComplaintRequest struct {
	Type ComplaintType `json:"type"`
	Text *string       `json:"text"`
}
