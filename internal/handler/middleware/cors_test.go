//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parking-api/internal/handler/middleware"
	"parking-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty origin list is rejected", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowOrigins = nil

		mw, err := middleware.NewCORSMiddleware(cfg, discardLogger())

		require.Error(t, err)
		assert.Nil(t, mw)
	})

	t.Run("origin without scheme is rejected", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowOrigins = []string{"localhost:3000"}

		_, err := middleware.NewCORSMiddleware(cfg, discardLogger())

		require.Error(t, err)
	})

	t.Run("preflight allows the idempotency header even when unlisted", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowHeaders = []string{"Origin"}

		mw, err := middleware.NewCORSMiddleware(cfg, discardLogger())
		require.NoError(t, err)

		engine := gin.New()
		engine.Use(mw)
		engine.POST("/api/payments", func(c *gin.Context) { c.Status(http.StatusCreated) })

		req := httptest.NewRequest(http.MethodOptions, "/api/payments", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", middleware.IdempotencyKeyHeader)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), middleware.IdempotencyKeyHeader)
	})
}
