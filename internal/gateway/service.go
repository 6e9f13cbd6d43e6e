package gateway

import (
	"context"
	"io"

	"github.com/sleepstars/deepgate/internal/clients"
	"github.com/sleepstars/deepgate/internal/models"
	"go.uber.org/zap"
)

// defaultModels is returned when the upstream model catalog is unreachable
var defaultModels = []models.ModelInfo{
	{ID: "deepseek-chat", OwnedBy: "deepseek"},
	{ID: "deepseek-reasoner", OwnedBy: "deepseek"},
}

// ClientFactory builds an upstream client for a single call
type ClientFactory func(cfg clients.ClientConfig) clients.CompletionClient

// Service is the chat request gateway. It holds no per-call state; every
// invocation constructs its own upstream client from the configured
// credential and base URL.
type Service struct {
	apiKey    string
	baseURL   string
	newClient ClientFactory
	logger    *zap.Logger
}

// NewService creates a gateway service for the given credential and base URL
func NewService(apiKey, baseURL string, logger *zap.Logger) *Service {
	return &Service{
		apiKey:  apiKey,
		baseURL: baseURL,
		newClient: func(cfg clients.ClientConfig) clients.CompletionClient {
			return clients.NewDeepSeekClient(cfg)
		},
		logger: logger,
	}
}

// SetClientFactory substitutes the upstream client constructor, used by tests
func (s *Service) SetClientFactory(factory ClientFactory) {
	s.newClient = factory
}

// Chat runs one chat call: normalize, invoke upstream, map the response.
// Every failure is translated into a ChatError with a stable message.
func (s *Service) Chat(ctx context.Context, input *models.ChatInput) (*models.ChatResult, error) {
	if s.apiKey == "" {
		return nil, Translate(&ConfigurationError{Reason: "missing API credential"}, s.apiKey)
	}

	req, err := BuildCompletionRequest(input)
	if err != nil {
		return nil, Translate(err, s.apiKey)
	}

	s.logger.Debug("Forwarding chat request",
		zap.String("model", req.Model),
		zap.Int("messages", len(req.Messages)),
	)

	client := s.newClient(clients.ClientConfig{BaseURL: s.baseURL, APIKey: s.apiKey})

	resp, err := client.Complete(ctx, req)
	if err != nil {
		chatErr := Translate(err, s.apiKey)
		s.logger.Error("Chat call failed", zap.String("reason", chatErr.Message))
		return nil, chatErr
	}

	result, err := mapResponse(input, resp)
	if err != nil {
		return nil, Translate(err, s.apiKey)
	}

	s.logger.Info("Chat call completed",
		zap.String("id", result.ID),
		zap.String("model", result.Model),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)
	return result, nil
}

// ChatStream runs one streaming chat call and returns the raw upstream
// body. No response mapping is applied on this path; the caller owns the
// returned ReadCloser.
func (s *Service) ChatStream(ctx context.Context, input *models.ChatInput) (io.ReadCloser, error) {
	if s.apiKey == "" {
		return nil, Translate(&ConfigurationError{Reason: "missing API credential"}, s.apiKey)
	}

	req, err := BuildCompletionRequest(input)
	if err != nil {
		return nil, Translate(err, s.apiKey)
	}

	client := s.newClient(clients.ClientConfig{BaseURL: s.baseURL, APIKey: s.apiKey})

	body, err := client.CompleteStream(ctx, req)
	if err != nil {
		return nil, Translate(err, s.apiKey)
	}
	return body, nil
}

// Models returns the upstream model catalog, degrading to a static default
// list when the upstream query fails. This is the only non-fatal
// degradation in the gateway.
func (s *Service) Models(ctx context.Context) []models.ModelInfo {
	if s.apiKey == "" {
		return defaultModels
	}

	client := s.newClient(clients.ClientConfig{BaseURL: s.baseURL, APIKey: s.apiKey})

	list, err := client.ListModels(ctx)
	if err != nil {
		s.logger.Warn("Model listing failed, using default list", zap.Error(err))
		return defaultModels
	}
	return list
}
