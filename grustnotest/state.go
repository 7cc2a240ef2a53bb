package grustnotest

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/grustnolabs/go-grustnogram/models"
)

// State-level sentinels. The handlers translate them into envelope error
// codes; tests may also match them directly.
var (
	errEmailTaken       = errors.New("email already registered")
	errLoginTaken       = errors.New("nickname already registered")
	errUserNotFound     = errors.New("no such user")
	errBadPassword      = errors.New("password mismatch")
	errBadPhoneKey      = errors.New("unknown phone key")
	errBadCode          = errors.New("wrong activation code")
	errNotFound         = errors.New("no such entity")
	errNotYours         = errors.New("entity belongs to another user")
	errBadComplaintType = errors.New("complaint type out of range")
)

// Complaint is a recorded post complaint, exposed for test assertions.
// Text is nil when the reporter sent no comment, mirroring the wire shape.
type Complaint struct {
	PostID int64
	Type   models.ComplaintType
	Text   *string
}

type userRecord struct {
	email    string
	nickname string
	hash     []byte
}

type pendingRecord struct {
	nickname string
	email    string
	hash     []byte
	phone    string
}

type postRecord struct {
	id       int64
	author   string // email
	text     string
	likes    map[string]struct{}
	comments []int64 // insertion order
	created  int64
}

type commentRecord struct {
	id      int64
	postID  int64
	author  string // email
	nick    string
	text    string
	likes   map[string]struct{}
	created int64
}

// state is the whole in-memory world of the stub: accounts, content,
// pending registrations and issued tokens. All access goes through the
// mutex; methods return copies, never internal pointers.
type state struct {
	mu sync.Mutex

	users      map[string]*userRecord // by email
	nicknames  map[string]string      // nickname -> email
	tokens     map[string]string      // access token -> email
	pending    map[string]*pendingRecord
	codes      map[string]string // phone -> activation code
	posts      map[int64]*postRecord
	comments   map[int64]*commentRecord
	complaints map[int64][]Complaint

	nextID int64
}

func newState() *state {
	return &state{
		users:      make(map[string]*userRecord),
		nicknames:  make(map[string]string),
		tokens:     make(map[string]string),
		pending:    make(map[string]*pendingRecord),
		codes:      make(map[string]string),
		posts:      make(map[int64]*postRecord),
		comments:   make(map[int64]*commentRecord),
		complaints: make(map[int64][]Complaint),
	}
}

// nextIdentifier hands out post and comment IDs from one shared counter.
// Callers must hold mu.
func (s *state) nextIdentifier() int64 {
	s.nextID++
	return s.nextID
}

func hashPassword(password string) []byte {
	// MinCost keeps stub startup and registration cheap in test runs.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err) // only possible with an oversized password
	}
	return hash
}

// ── registration flow ──

func (s *state) registerPending(nickname, email, password, phoneKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.users[email]; taken {
		return errEmailTaken
	}
	if _, taken := s.nicknames[nickname]; taken {
		return errLoginTaken
	}
	for _, p := range s.pending {
		if p.email == email {
			return errEmailTaken
		}
		if p.nickname == nickname {
			return errLoginTaken
		}
	}

	s.pending[phoneKey] = &pendingRecord{
		nickname: nickname,
		email:    email,
		hash:     hashPassword(password),
	}
	return nil
}

func (s *state) requestCall(phoneKey, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[phoneKey]
	if !ok {
		return errBadPhoneKey
	}

	p.phone = phone
	s.codes[phone] = code
	return nil
}

func (s *state) activate(phone, code string) (*userRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, ok := s.codes[phone]
	if !ok || want != code {
		return nil, errBadCode
	}

	for key, p := range s.pending {
		if p.phone != phone {
			continue
		}

		user := &userRecord{email: p.email, nickname: p.nickname, hash: p.hash}
		s.users[user.email] = user
		s.nicknames[user.nickname] = user.email
		delete(s.pending, key)
		delete(s.codes, phone)
		return user, nil
	}

	return nil, errBadCode
}

// ── sessions ──

// findUser resolves login as an email first, then as a nickname, the same
// lookup the production sessions endpoint performs.
func (s *state) findUser(login string) (*userRecord, bool) {
	if u, ok := s.users[login]; ok {
		return u, true
	}
	if email, ok := s.nicknames[login]; ok {
		return s.users[email], true
	}
	return nil, false
}

func (s *state) login(login, password, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.findUser(login)
	if !ok {
		return errUserNotFound
	}
	if bcrypt.CompareHashAndPassword(u.hash, []byte(password)) != nil {
		return errBadPassword
	}

	s.tokens[token] = u.email
	return nil
}

func (s *state) issueToken(email, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = email
}

func (s *state) callerByToken(token string) (userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.tokens[token]
	if !ok {
		return userRecord{}, false
	}
	u, ok := s.users[email]
	if !ok {
		return userRecord{}, false
	}
	return *u, true
}

// ── posts and comments ──

func (s *state) likePost(email string, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return errNotFound
	}
	p.likes[email] = struct{}{}
	return nil
}

func (s *state) dislikePost(email string, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return errNotFound
	}
	delete(p.likes, email)
	return nil
}

func (s *state) likeComment(email string, commentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return errNotFound
	}
	c.likes[email] = struct{}{}
	return nil
}

func (s *state) dislikeComment(email string, commentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return errNotFound
	}
	delete(c.likes, email)
	return nil
}

func (s *state) addComment(email string, postID int64, text string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return models.Comment{}, errNotFound
	}

	c := &commentRecord{
		id:      s.nextIdentifier(),
		postID:  postID,
		author:  email,
		nick:    s.users[email].nickname,
		text:    text,
		likes:   make(map[string]struct{}),
		created: time.Now().Unix(),
	}
	s.comments[c.id] = c
	p.comments = append(p.comments, c.id)

	return c.toModel(), nil
}

func (s *state) pageComments(postID int64, limit, offset int) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return nil, errNotFound
	}

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(p.comments) {
		return []models.Comment{}, nil
	}

	end := offset + limit
	if end > len(p.comments) {
		end = len(p.comments)
	}

	page := make([]models.Comment, 0, end-offset)
	for _, id := range p.comments[offset:end] {
		page = append(page, s.comments[id].toModel())
	}
	return page, nil
}

func (s *state) deleteComment(email string, commentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return errNotFound
	}
	if c.author != email {
		return errNotYours
	}

	delete(s.comments, commentID)
	if p, ok := s.posts[c.postID]; ok {
		for i, id := range p.comments {
			if id == commentID {
				p.comments = append(p.comments[:i], p.comments[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (s *state) addComplaint(postID int64, kind models.ComplaintType, text *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !kind.Valid() {
		return errBadComplaintType
	}
	if _, ok := s.posts[postID]; !ok {
		return errNotFound
	}

	s.complaints[postID] = append(s.complaints[postID], Complaint{PostID: postID, Type: kind, Text: text})
	return nil
}

func (s *state) deletePost(email string, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return errNotFound
	}
	if p.author != email {
		return errNotYours
	}

	for _, id := range p.comments {
		delete(s.comments, id)
	}
	delete(s.posts, postID)
	return nil
}

func (c *commentRecord) toModel() models.Comment {
	return models.Comment{
		ID:        c.id,
		Nickname:  c.nick,
		Comment:   c.text,
		CreatedAt: c.created,
	}
}
