//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"testing"

	"parking-api/internal/handler"
	"parking-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_RejectsEmptyCORSOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.CORS.AllowOrigins = nil
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := handler.NewRouter(gin.New(), cfg, logger, handler.Handlers{}, nil)

	require.ErrorContains(t, err, "invalid CORS configuration")
}
