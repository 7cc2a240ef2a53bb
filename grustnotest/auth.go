package grustnotest

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	mrand "math/rand/v2"
	"net/http"

	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/internal/utils"
	"github.com/grustnolabs/go-grustnogram/models"
)

// withSession guards the authenticated routes. It resolves the
// access-token header against the issued tokens and stores the caller's
// email in the request context under [utils.CallerEmailCtxKey].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := r.Header.Get("access-token")
		if token == "" {
			log.Warn().Msg("request without access token")
			writeEnvelope(w, http.StatusUnauthorized, []int{codeAuthRequired}, nil)
			return
		}

		caller, ok := h.state.callerByToken(token)
		if !ok {
			log.Warn().Msg("unknown access token")
			writeEnvelope(w, http.StatusUnauthorized, []int{codeAuthRequired}, nil)
			return
		}

		ctx := context.WithValue(r.Context(), utils.CallerEmailCtxKey, caller.email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid session request body")
		writeEnvelope(w, http.StatusBadRequest, []int{codeBadRequest}, nil)
		return
	}

	token := newAccessToken()
	if err := h.state.login(req.Email, req.Password, token); err != nil {
		log.Warn().Err(err).Str("login", req.Email).Msg("session rejected")
		writeError(w, err)
		return
	}

	log.Info().Str("login", req.Email).Msg("session opened")
	writeData(w, models.SessionData{AccessToken: token})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid register request body")
		writeEnvelope(w, http.StatusBadRequest, []int{codeBadRequest}, nil)
		return
	}

	if req.Password == "" || req.Password != req.PasswordConfirm {
		log.Warn().Str("nickname", req.Nickname).Msg("password confirmation mismatch")
		writeEnvelope(w, http.StatusUnprocessableEntity, []int{codeBadPassword}, nil)
		return
	}

	phoneKey := h.uuids.Generate()
	if err := h.state.registerPending(req.Nickname, req.Email, req.Password, phoneKey); err != nil {
		log.Warn().Err(err).Str("nickname", req.Nickname).Msg("registration rejected")
		writeError(w, err)
		return
	}

	log.Info().Str("nickname", req.Nickname).Msg("registration pending phone verification")
	writeData(w, models.PhoneKeyData{PhoneKey: phoneKey})
}

func (h *Handler) callMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CallMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid callme request body")
		writeEnvelope(w, http.StatusBadRequest, []int{codeBadRequest}, nil)
		return
	}

	code := newActivationCode()
	if err := h.state.requestCall(req.PhoneKey, req.Phone, code); err != nil {
		log.Warn().Err(err).Msg("verification call rejected")
		writeError(w, err)
		return
	}

	// No call is placed; the code is logged so a human driving the dev
	// server can finish the flow.
	log.Info().Str("phone", req.Phone).Str("code", code).Msg("verification call placed")
	writeData(w, nil)
}

func (h *Handler) phoneActivate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PhoneActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid phone activate request body")
		writeEnvelope(w, http.StatusBadRequest, []int{codeBadRequest}, nil)
		return
	}

	user, err := h.state.activate(req.Phone, req.Code)
	if err != nil {
		log.Warn().Err(err).Str("phone", req.Phone).Msg("activation rejected")
		writeError(w, err)
		return
	}

	token := newAccessToken()
	h.state.issueToken(user.email, token)

	log.Info().Str("nickname", user.nickname).Msg("account activated")
	writeData(w, models.SessionData{AccessToken: token})
}

func newAccessToken() string {
	buf := make([]byte, 20)
	_, _ = rand.Read(buf) // crypto/rand never fails
	return hex.EncodeToString(buf)
}

func newActivationCode() string {
	return fmt.Sprintf("%04d", mrand.IntN(10000))
}
