package grustnotest

import (
	"fmt"
	"time"
)

// Seeding helpers and probes for test setup and assertions. Seeders panic
// on impossible wiring (a comment under a missing post, a session for an
// unknown user): that is always a defect in the test itself.

// SeedUser adds an activated account with the given credentials. Seeding
// an email twice replaces the account.
func (h *Handler) SeedUser(nickname, email, password string) {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	h.state.users[email] = &userRecord{
		email:    email,
		nickname: nickname,
		hash:     hashPassword(password),
	}
	h.state.nicknames[nickname] = email
}

// SeedPost adds a post owned by authorEmail and returns its ID.
func (h *Handler) SeedPost(authorEmail, text string) int64 {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if _, ok := h.state.users[authorEmail]; !ok {
		panic(fmt.Sprintf("grustnotest: seed post for unknown user %q", authorEmail))
	}

	id := h.state.nextIdentifier()
	h.state.posts[id] = &postRecord{
		id:      id,
		author:  authorEmail,
		text:    text,
		likes:   make(map[string]struct{}),
		created: time.Now().Unix(),
	}
	return id
}

// SeedComment adds a comment by authorEmail under postID and returns its ID.
func (h *Handler) SeedComment(postID int64, authorEmail, text string) int64 {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	p, ok := h.state.posts[postID]
	if !ok {
		panic(fmt.Sprintf("grustnotest: seed comment for unknown post %d", postID))
	}
	u, ok := h.state.users[authorEmail]
	if !ok {
		panic(fmt.Sprintf("grustnotest: seed comment for unknown user %q", authorEmail))
	}

	id := h.state.nextIdentifier()
	c := &commentRecord{
		id:      id,
		postID:  postID,
		author:  authorEmail,
		nick:    u.nickname,
		text:    text,
		likes:   make(map[string]struct{}),
		created: time.Now().Unix(),
	}
	h.state.comments[id] = c
	p.comments = append(p.comments, id)
	return id
}

// SeedSession issues an access token for an existing account, bypassing
// the login endpoint.
func (h *Handler) SeedSession(email string) string {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if _, ok := h.state.users[email]; !ok {
		panic(fmt.Sprintf("grustnotest: seed session for unknown user %q", email))
	}

	token := newAccessToken()
	h.state.tokens[token] = email
	return token
}

// ActivationCode returns the code the last verification call for phone
// would have dictated, or an empty string if no call was requested.
func (h *Handler) ActivationCode(phone string) string {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return h.state.codes[phone]
}

// Complaints returns the complaints recorded against postID in arrival
// order.
func (h *Handler) Complaints(postID int64) []Complaint {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	out := make([]Complaint, len(h.state.complaints[postID]))
	copy(out, h.state.complaints[postID])
	return out
}

// PostLikes returns the number of distinct users currently liking postID.
func (h *Handler) PostLikes(postID int64) int {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if p, ok := h.state.posts[postID]; ok {
		return len(p.likes)
	}
	return 0
}

// CommentLikes returns the number of distinct users currently liking
// commentID.
func (h *Handler) CommentLikes(commentID int64) int {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if c, ok := h.state.comments[commentID]; ok {
		return len(c.likes)
	}
	return 0
}

// HasPost reports whether postID still exists.
func (h *Handler) HasPost(postID int64) bool {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	_, ok := h.state.posts[postID]
	return ok
}

// HasComment reports whether commentID still exists.
func (h *Handler) HasComment(commentID int64) bool {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	_, ok := h.state.comments[commentID]
	return ok
}

// HasUser reports whether an activated account exists for email.
func (h *Handler) HasUser(email string) bool {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	_, ok := h.state.users[email]
	return ok
}
