package models

// SessionData is the data payload of a successful POST /sessions or
// POST /phoneactivate response. AccessToken is the opaque credential the
// client attaches to every authenticated request.
type SessionData struct {
	AccessToken string `json:"access_token"`
}

// PhoneKeyData is the data payload of a successful POST /users response.
// PhoneKey identifies the pending registration in the follow-up
// POST /callme request.
type PhoneKeyData struct {
	PhoneKey string `json:"phone_key"`
}
