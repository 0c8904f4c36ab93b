package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/duowire/duochat-server/internal/config"
	"github.com/duowire/duochat-server/internal/core"
)

// NewServer builds the HTTP server: health check, stats API, and the
// WebSocket endpoint.
func NewServer(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/api/stats", statsHandler(hub))
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.ClientBufferSize, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

func statsHandler(hub *core.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		stats, err := hub.Stats(ctx)
		if err != nil {
			c.JSON(stdhttp.StatusServiceUnavailable, gin.H{"error": "hub unavailable"})
			return
		}
		c.JSON(stdhttp.StatusOK, stats)
	}
}
