// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package grustnogram

import (
	"context"

	"github.com/grustnolabs/go-grustnogram/models"
)

//go:generate mockgen -source=interfaces.go -destination=internal/mock/api_mock.go -package=mock

// API is the full Grustnogram operation set, implemented by [*Client].
// Application code should depend on this interface so that tests can
// substitute the generated mock from internal/mock.
type API interface {
	// SetToken stores an access token for all subsequent authenticated
	// requests. Use it to resume a previously persisted session.
	SetToken(token string)

	// Token returns the access token currently held, or an empty string
	// if no session is open.
	Token() string

	// Login opens a session with an existing account and returns the
	// issued access token. The login value may be an email or a nickname.
	Login(ctx context.Context, login, password string) (string, error)

	// Register creates an account through the three-step phone
	// verification flow and returns the issued access token. code is
	// called after the verification call has been placed and must return
	// the dictated digits.
	Register(ctx context.Context, reg models.Registration, code CodeFunc) (string, error)

	// LikePost likes the given post.
	LikePost(ctx context.Context, postID int64) error

	// DislikePost removes a like from the given post.
	DislikePost(ctx context.Context, postID int64) error

	// LikeComment likes the given comment.
	LikeComment(ctx context.Context, commentID int64) error

	// DislikeComment removes a like from the given comment.
	DislikeComment(ctx context.Context, commentID int64) error

	// CommentPost leaves a comment under the given post and returns the
	// created comment.
	CommentPost(ctx context.Context, postID int64, text string) (models.Comment, error)

	// GetComments fetches one page of the post's comments. A limit below
	// one falls back to the server default of 10.
	GetComments(ctx context.Context, postID int64, limit, offset int) ([]models.Comment, error)

	// DeleteComment deletes one of the caller's comments.
	DeleteComment(ctx context.Context, commentID int64) error

	// Complain reports the post for the given reason. An empty text sends
	// a complaint without a comment.
	Complain(ctx context.Context, postID int64, reason models.ComplaintType, text string) error

	// DeletePost deletes one of the caller's posts.
	DeletePost(ctx context.Context, postID int64) error
}
