package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sleepstars/deepgate/internal/gateway"
	"github.com/sleepstars/deepgate/internal/models"
	"go.uber.org/zap"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) chat(c *gin.Context) {
	var input models.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.gateway.Chat(c.Request.Context(), &input)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) chatStream(c *gin.Context) {
	var input models.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := s.gateway.ChatStream(c.Request.Context(), &input)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, body); err != nil {
		s.logger.Warn("Stream copy interrupted", zap.Error(err))
	}
}

func (s *Server) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": s.gateway.Models(c.Request.Context())})
}

// statusForError maps the gateway error taxonomy onto HTTP statuses
func statusForError(err error) int {
	var chatErr *gateway.ChatError
	if !errors.As(err, &chatErr) {
		return http.StatusInternalServerError
	}

	switch chatErr.Kind {
	case gateway.KindValidation:
		return http.StatusBadRequest
	case gateway.KindInvalidCredential:
		return http.StatusUnauthorized
	case gateway.KindRateLimited:
		return http.StatusTooManyRequests
	case gateway.KindUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
