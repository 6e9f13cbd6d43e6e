package server

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sleepstars/deepgate/internal/config"
	"github.com/sleepstars/deepgate/internal/models"
	"go.uber.org/zap"
)

// ChatService is the gateway surface consumed by the HTTP layer
type ChatService interface {
	Chat(ctx context.Context, input *models.ChatInput) (*models.ChatResult, error)
	ChatStream(ctx context.Context, input *models.ChatInput) (io.ReadCloser, error)
	Models(ctx context.Context) []models.ModelInfo
}

// Server is the HTTP entry point in front of the gateway
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	router  *gin.Engine
	gateway ChatService
}

// New creates a server wired to the given gateway service
func New(cfg *config.Config, gateway ChatService, logger *zap.Logger) *Server {
	gin.SetMode(cfg.Server.Mode)

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		router:  gin.New(),
		gateway: gateway,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Router returns the gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestIDMiddleware())
	s.router.Use(s.loggerMiddleware())
	s.router.Use(s.corsMiddleware())
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	api := s.router.Group("/api")
	{
		api.POST("/chat", s.chat)
		api.POST("/chat/stream", s.chatStream)
		api.GET("/models", s.listModels)
	}
}
