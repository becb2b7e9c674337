// Package server exposes the HTTP surface: the push-notification webhook,
// token-guarded cron endpoints, and a health probe.
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clip_collector/internal/domain"
	"clip_collector/internal/signature"
)

// maxWebhookBody caps notification payloads; real feed deliveries are a
// few kilobytes.
const maxWebhookBody = 1 << 20

// Enqueuer accepts a verified notification body for background processing.
type Enqueuer interface {
	Enqueue(body []byte) bool
}

// DiscoveryRunner executes one catalog discovery pass.
type DiscoveryRunner interface {
	Run(ctx context.Context) (*domain.DiscoveryStats, error)
}

// SyncRunner executes playlist syncs and retention cleanup.
type SyncRunner interface {
	SyncAll(ctx context.Context) (*domain.SyncStats, error)
	CleanupInactive(ctx context.Context) (*domain.CleanupStats, error)
}

type Server struct {
	verifier   *signature.Verifier
	queue      Enqueuer
	discovery  DiscoveryRunner
	syncer     SyncRunner
	cronSecret string
	logger     *slog.Logger
}

func New(
	verifier *signature.Verifier,
	queue Enqueuer,
	discovery DiscoveryRunner,
	syncer SyncRunner,
	cronSecret string,
	logger *slog.Logger,
) *Server {
	return &Server{
		verifier:   verifier,
		queue:      queue,
		discovery:  discovery,
		syncer:     syncer,
		cronSecret: cronSecret,
		logger:     logger.With("component", "server"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.handleHealth)
	router.GET("/webhook", s.handleHubChallenge)
	router.POST("/webhook", s.handleNotification)

	cron := router.Group("/cron", s.requireCronSecret)
	cron.POST("/sync", s.handleCronSync)
	cron.POST("/discover", s.handleCronDiscover)
	cron.POST("/cleanup", s.handleCronCleanup)

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleHubChallenge answers hub subscription verification. The hub
// expects the challenge echoed back verbatim as plain text.
func (s *Server) handleHubChallenge(c *gin.Context) {
	mode := c.Query("hub.mode")
	challenge := c.Query("hub.challenge")
	if challenge == "" || (mode != "subscribe" && mode != "unsubscribe") {
		c.String(http.StatusBadRequest, "bad verification request")
		return
	}
	s.logger.Info("hub verification", "mode", mode, "topic", c.Query("hub.topic"))
	c.String(http.StatusOK, challenge)
}

func (s *Server) handleNotification(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if !s.verified(c.Request, body) {
		s.logger.Warn("rejected notification with bad signature",
			"remote_addr", c.ClientIP(),
		)
		c.Status(http.StatusForbidden)
		return
	}

	if !s.queue.Enqueue(body) {
		s.logger.Warn("notification dropped, queue unavailable")
	}
	// The hub only needs the acknowledgment; processing happens async.
	c.Status(http.StatusNoContent)
}

func (s *Server) verified(r *http.Request, body []byte) bool {
	if sig := r.Header.Get("X-Hub-Signature"); sig != "" {
		return s.verifier.VerifyHub(body, sig)
	}
	if sig := r.Header.Get("Upstash-Signature"); sig != "" {
		return s.verifier.VerifyBroker(body, sig)
	}
	return false
}

func (s *Server) requireCronSecret(c *gin.Context) {
	if s.cronSecret == "" || c.GetHeader("Authorization") != "Bearer "+s.cronSecret {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

func (s *Server) handleCronSync(c *gin.Context) {
	stats, err := s.syncer.SyncAll(c.Request.Context())
	if err != nil {
		s.logger.Error("cron sync failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"channels":   stats.Channels,
		"pages":      stats.Pages,
		"new_videos": stats.NewVideos,
		"new_shorts": stats.NewShorts,
		"errors":     stats.Errors,
		"duration":   stats.Duration.String(),
	})
}

func (s *Server) handleCronDiscover(c *gin.Context) {
	stats, err := s.discovery.Run(c.Request.Context())
	if err != nil {
		s.logger.Error("cron discovery failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"keywords":         stats.Keywords,
		"pages_searched":   stats.PagesSearched,
		"channels_found":   stats.ChannelsFound,
		"channels_matched": stats.ChannelsMatched,
		"skipped":          stats.Skipped,
		"errors":           stats.Errors,
		"quota_used":       stats.QuotaUsed,
		"duration":         stats.Duration.String(),
	})
}

func (s *Server) handleCronCleanup(c *gin.Context) {
	stats, err := s.syncer.CleanupInactive(c.Request.Context())
	if err != nil {
		s.logger.Error("cron cleanup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted":  stats.Deleted,
		"duration": stats.Duration.String(),
	})
}
