package grustnotest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/internal/utils"
	"github.com/grustnolabs/go-grustnogram/models"
)

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// caller returns the authenticated email stored by withSession. The false
// case means the middleware chain was bypassed, so handlers answer it with
// the auth-required envelope.
func caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := utils.GetCallerEmailFromContext(r.Context())
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, []int{codeAuthRequired}, nil)
	}
	return email, ok
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	email, ok := caller(w, r)
	if !ok {
		return
	}
	postID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	if err := h.state.likePost(email, postID); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, nil)
}

func (h *Handler) dislikePost(w http.ResponseWriter, r *http.Request) {
	email, ok := caller(w, r)
	if !ok {
		return
	}
	postID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	if err := h.state.dislikePost(email, postID); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, nil)
}

func (h *Handler) likeComment(w http.ResponseWriter, r *http.Request) {
	email, ok := caller(w, r)
	if !ok {
		return
	}
	commentID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	if err := h.state.likeComment(email, commentID); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, nil)
}

func (h *Handler) dislikeComment(w http.ResponseWriter, r *http.Request) {
	email, ok := caller(w, r)
	if !ok {
		return
	}
	commentID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	if err := h.state.dislikeComment(email, commentID); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, nil)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := caller(w, r)
	if !ok {
		return
	}
	postID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid comment request body")
		writeEnvelope(w, http.StatusBadRequest, []int{codeBadRequest}, nil)
		return
	}

	comment, err := h.state.addComment(email, postID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, comment)
}

// listComments reads the page window from the body of a GET request, the
// way the production API does. A missing body falls back to the server
// defaults (limit 10, offset 0).
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, ok := caller(w, r); !ok {
		return
	}
	postID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	var req models.CommentsPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid comments page request body")
		writeEnvelope(w, http.StatusBadRequest, []int{codeBadRequest}, nil)
		return
	}

	comments, err := h.state.pageComments(postID, req.Limit, req.Offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, comments)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	email, ok := caller(w, r)
	if !ok {
		return
	}
	commentID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	if err := h.state.deleteComment(email, commentID); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, nil)
}

func (h *Handler) complain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, ok := caller(w, r); !ok {
		return
	}
	postID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	var req models.ComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid complaint request body")
		writeEnvelope(w, http.StatusBadRequest, []int{codeBadRequest}, nil)
		return
	}

	if err := h.state.addComplaint(postID, req.Type, req.Text); err != nil {
		writeError(w, err)
		return
	}

	log.Info().Int64("post_id", postID).Stringer("type", req.Type).Msg("complaint recorded")
	writeData(w, nil)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	email, ok := caller(w, r)
	if !ok {
		return
	}
	postID, err := pathID(r)
	if err != nil {
		writeError(w, errNotFound)
		return
	}

	if err := h.state.deletePost(email, postID); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, nil)
}
