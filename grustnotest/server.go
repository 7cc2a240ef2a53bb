package grustnotest

import (
	"net/http/httptest"

	"github.com/grustnolabs/go-grustnogram/internal/logger"
)

// Server runs the stub API on a loopback listener for end-to-end client
// tests. Seeding helpers and state probes are promoted from the embedded
// [Handler].
type Server struct {
	*Handler

	httpSrv *httptest.Server
}

// NewServer starts a stub API server with empty state and silent logging.
// Callers own its lifetime and must Close it.
func NewServer() *Server {
	h := NewHandler(logger.Nop())
	return &Server{Handler: h, httpSrv: httptest.NewServer(h.Routes())}
}

// URL returns the base URL of the running stub, ready to be passed as the
// client's BaseURL.
func (s *Server) URL() string {
	return s.httpSrv.URL
}

// Close shuts the listener down.
func (s *Server) Close() {
	s.httpSrv.Close()
}
