package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/grustnolabs/go-grustnogram/internal/config"
	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handler := http.NewServeMux()
	log := logger.Nop()

	t.Run("с адресом сервер создаётся", func(t *testing.T) {
		cfg := &config.ServerConfig{Address: "localhost:0", RequestTimeout: time.Second}

		srv, err := NewServer(handler, cfg, log)
		require.NoError(t, err)
		require.NotNil(t, srv)

		inner, ok := srv.(*server)
		require.True(t, ok)
		assert.Equal(t, cfg.Address, inner.httpServer.server.Addr)
		assert.Equal(t, cfg.RequestTimeout, inner.httpServer.server.ReadTimeout)
		assert.Equal(t, cfg.RequestTimeout, inner.httpServer.server.WriteTimeout)
	})

	t.Run("без адреса возвращается ошибка", func(t *testing.T) {
		cfg := &config.ServerConfig{RequestTimeout: time.Second}

		srv, err := NewServer(handler, cfg, log)
		assert.ErrorIs(t, err, errNoServerCreated)
		assert.Nil(t, srv)
	})
}
