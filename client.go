// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package grustnogram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/grustnolabs/go-grustnogram/internal/utils"
	"github.com/grustnolabs/go-grustnogram/models"
)

// DefaultBaseURL is the production Grustnogram API endpoint.
const DefaultBaseURL = "https://api.grustnogram.ru"

const (
	defaultUserAgent     = "go-grustnogram"
	defaultCommentsLimit = 10

	headerAccessToken = "access-token"
)

// CodeFunc supplies the digits dictated by the verification call during
// registration. It is invoked after the call has been placed, may block
// while prompting the user, and should honor ctx cancellation. Returning
// an error aborts the whole registration flow.
type CodeFunc func(ctx context.Context) (string, error)

// Config carries the knobs for constructing a [Client]. The zero value is
// usable and points at the production API.
type Config struct {
	// BaseURL is the API root. Empty means [DefaultBaseURL]. A bare
	// host:port gets an https:// scheme prepended.
	BaseURL string

	// UserAgent is sent in the User-Agent header of every request.
	// Empty means "go-grustnogram".
	UserAgent string

	// RequestTimeout bounds each request. Zero leaves the transport
	// defaults in place; the client imposes no timeout of its own.
	RequestTimeout time.Duration

	// Logger receives debug-level request logging. Nil disables logging.
	Logger *zerolog.Logger
}

// Client talks to the Grustnogram API. One Client holds at most one
// session: Login and Register store the issued access token and every
// authenticated call attaches it.
//
// The token field is written by Login, Register and SetToken and read by
// every authenticated call without synchronization. Concurrent logins on
// the same Client race and the last write wins; wrap the Client if you
// need stricter ordering.
type Client struct {
	client *utils.HTTPClient
	token  string

	logger zerolog.Logger
}

// NewClient constructs a [Client] from cfg. It normalizes and validates
// the base URL and configures the underlying HTTP client with the headers
// the API expects on every request.
//
// The content-type header is application/x-www-form-urlencoded even though
// all request bodies are JSON; the production API was built that way and
// rejects nothing, so the client reproduces it byte for byte.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAllowGetMethodPayload(true).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("User-Agent", cfg.UserAgent)

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	log.Debug().Str("base_url", baseURL).Msg("grustnogram client configured")

	return &Client{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [API]. It stores token (whitespace-trimmed) for use
// in the access-token header of all subsequent authenticated requests.
// Call it with a persisted token to resume an earlier session.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token implements [API]. It returns the access token currently held by
// the client, or an empty string if no session is open.
func (c *Client) Token() string {
	return c.token
}

// Login implements [API]. It opens a session via POST /sessions and stores
// the issued access token on the client. The login parameter is sent in
// the body's email field; the API accepts a nickname there as well.
// Returns the token so callers can persist it.
func (c *Client) Login(ctx context.Context, login, password string) (string, error) {
	body, err := json.Marshal(models.SessionRequest{Email: login, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	resp, err := c.request(ctx).SetBody(body).Post("/sessions")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	data, err := decodeEnvelope(resp)
	if err != nil {
		return "", err
	}

	var session models.SessionData
	if err = json.Unmarshal(data, &session); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	c.SetToken(session.AccessToken)
	c.logger.Debug().Str("login", login).Msg("session opened")
	return session.AccessToken, nil
}

// Register implements [API]. It runs the three-step registration flow:
// POST /users creates the account and returns a phone key, POST /callme
// triggers the verification call, and POST /phoneactivate submits the
// digits obtained from code. On success the issued access token is stored
// on the client and returned.
//
// Any failed step aborts the flow with no partial recovery: rerunning
// Register restarts from the first step. A nil code yields
// [ErrCodeFuncRequired] before any request is made.
func (c *Client) Register(ctx context.Context, reg models.Registration, code CodeFunc) (string, error) {
	if code == nil {
		return "", ErrCodeFuncRequired
	}

	body, err := json.Marshal(models.RegisterRequest{
		Nickname:        reg.Nickname,
		Email:           reg.Email,
		Password:        reg.Password,
		PasswordConfirm: reg.Password,
	})
	if err != nil {
		return "", fmt.Errorf("encode register request: %w", err)
	}

	resp, err := c.request(ctx).SetBody(body).Post("/users")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	data, err := decodeEnvelope(resp)
	if err != nil {
		return "", err
	}

	var phoneKey models.PhoneKeyData
	if err = json.Unmarshal(data, &phoneKey); err != nil {
		return "", fmt.Errorf("decode register response: %w", err)
	}

	body, err = json.Marshal(models.CallMeRequest{PhoneKey: phoneKey.PhoneKey, Phone: reg.Phone})
	if err != nil {
		return "", fmt.Errorf("encode callme request: %w", err)
	}

	resp, err = c.request(ctx).SetBody(body).Post("/callme")
	if err != nil {
		return "", fmt.Errorf("callme request: %w", err)
	}
	if _, err = decodeEnvelope(resp); err != nil {
		return "", err
	}

	digits, err := code(ctx)
	if err != nil {
		return "", fmt.Errorf("obtain phone code: %w", err)
	}

	body, err = json.Marshal(models.PhoneActivateRequest{Code: digits, Phone: reg.Phone})
	if err != nil {
		return "", fmt.Errorf("encode phone activate request: %w", err)
	}

	resp, err = c.request(ctx).SetBody(body).Post("/phoneactivate")
	if err != nil {
		return "", fmt.Errorf("phone activate request: %w", err)
	}
	data, err = decodeEnvelope(resp)
	if err != nil {
		return "", err
	}

	var session models.SessionData
	if err = json.Unmarshal(data, &session); err != nil {
		return "", fmt.Errorf("decode phone activate response: %w", err)
	}

	c.SetToken(session.AccessToken)
	c.logger.Debug().Str("nickname", reg.Nickname).Msg("account registered")
	return session.AccessToken, nil
}

// LikePost implements [API]. It likes the post via POST /posts/{id}/like.
func (c *Client) LikePost(ctx context.Context, postID int64) error {
	resp, err := c.authedRequest(ctx).Post(fmt.Sprintf("/posts/%d/like", postID))
	if err != nil {
		return fmt.Errorf("like post request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// DislikePost implements [API]. It removes the like via
// DELETE /posts/{id}/like.
func (c *Client) DislikePost(ctx context.Context, postID int64) error {
	resp, err := c.authedRequest(ctx).Delete(fmt.Sprintf("/posts/%d/like", postID))
	if err != nil {
		return fmt.Errorf("dislike post request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// LikeComment implements [API]. It likes the comment via
// POST /comments/{id}/like.
func (c *Client) LikeComment(ctx context.Context, commentID int64) error {
	resp, err := c.authedRequest(ctx).Post(fmt.Sprintf("/comments/%d/like", commentID))
	if err != nil {
		return fmt.Errorf("like comment request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// DislikeComment implements [API]. It removes the like via
// DELETE /comments/{id}/like.
func (c *Client) DislikeComment(ctx context.Context, commentID int64) error {
	resp, err := c.authedRequest(ctx).Delete(fmt.Sprintf("/comments/%d/like", commentID))
	if err != nil {
		return fmt.Errorf("dislike comment request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// CommentPost implements [API]. It leaves a comment under the post via
// POST /posts/{id}/comments and returns the created comment as the API
// echoed it back.
func (c *Client) CommentPost(ctx context.Context, postID int64, text string) (models.Comment, error) {
	body, err := json.Marshal(models.CommentRequest{Comment: text})
	if err != nil {
		return models.Comment{}, fmt.Errorf("encode comment request: %w", err)
	}

	resp, err := c.authedRequest(ctx).SetBody(body).Post(fmt.Sprintf("/posts/%d/comments", postID))
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment post request: %w", err)
	}

	data, err := decodeEnvelope(resp)
	if err != nil {
		return models.Comment{}, err
	}

	var comment models.Comment
	if err = json.Unmarshal(data, &comment); err != nil {
		return models.Comment{}, fmt.Errorf("decode comment response: %w", err)
	}

	return comment, nil
}

// GetComments implements [API]. It fetches one page of comments via
// GET /posts/{id}/comments, passing the page window in the request body
// the way the API demands. limit values below one fall back to the
// documented default of 10; offset is passed through untouched. Comments
// come back in server order.
func (c *Client) GetComments(ctx context.Context, postID int64, limit, offset int) ([]models.Comment, error) {
	if limit <= 0 {
		limit = defaultCommentsLimit
	}

	body, err := json.Marshal(models.CommentsPageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("encode comments page request: %w", err)
	}

	resp, err := c.authedRequest(ctx).SetBody(body).Get(fmt.Sprintf("/posts/%d/comments", postID))
	if err != nil {
		return nil, fmt.Errorf("get comments request: %w", err)
	}

	data, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err = json.Unmarshal(data, &comments); err != nil {
		return nil, fmt.Errorf("decode comments response: %w", err)
	}

	return comments, nil
}

// DeleteComment implements [API]. It deletes the comment via
// DELETE /posts/comment/{id}; the API routes comment deletion under
// /posts/comment, not /comments.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	resp, err := c.authedRequest(ctx).Delete(fmt.Sprintf("/posts/comment/%d", commentID))
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// Complain implements [API]. It reports the post via
// POST /posts/{id}/complaint. An empty text is sent as an explicit JSON
// null, matching the wire shape of a complaint without a comment. The
// reason value is sent as-is; the server validates it.
func (c *Client) Complain(ctx context.Context, postID int64, reason models.ComplaintType, text string) error {
	req := models.ComplaintRequest{Type: reason}
	if text != "" {
		req.Text = &text
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode complaint request: %w", err)
	}

	resp, err := c.authedRequest(ctx).SetBody(body).Post(fmt.Sprintf("/posts/%d/complaint", postID))
	if err != nil {
		return fmt.Errorf("complaint request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// DeletePost implements [API]. It deletes the post via DELETE /posts/{id}.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	resp, err := c.authedRequest(ctx).Delete(fmt.Sprintf("/posts/%d", postID))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.request(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader(headerAccessToken, token)
	}
	return req
}
