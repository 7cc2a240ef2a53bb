package grustnotest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/internal/utils"
)

// Handler implements the Grustnogram API surface against an in-memory
// state. It backs both the [Server] used in tests and the standalone
// development server binary.
type Handler struct {
	state *state
	uuids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler constructs a Handler with empty state. Pass [logger.Nop] to
// silence request logging.
func NewHandler(log *logger.Logger) *Handler {
	return &Handler{
		state:  newState(),
		uuids:  utils.NewUUIDGenerator(),
		logger: log,
	}
}

// Routes assembles the chi router with every endpoint of the API and the
// trace/logging middleware chain.
func (h *Handler) Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/sessions", h.login)
		r.Post("/users", h.register)
		r.Post("/callme", h.callMe)
		r.Post("/phoneactivate", h.phoneActivate)
	})

	// routes behind an access token
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/posts/{id}/like", h.likePost)
		r.Delete("/posts/{id}/like", h.dislikePost)
		r.Post("/comments/{id}/like", h.likeComment)
		r.Delete("/comments/{id}/like", h.dislikeComment)
		r.Post("/posts/{id}/comments", h.createComment)
		r.Get("/posts/{id}/comments", h.listComments)
		r.Delete("/posts/comment/{id}", h.deleteComment)
		r.Post("/posts/{id}/complaint", h.complain)
		r.Delete("/posts/{id}", h.deletePost)
	})

	return router
}
