package clients

import (
	"context"
	"io"

	"github.com/sleepstars/deepgate/internal/models"
)

// CompletionClient defines the interface for upstream completion clients
type CompletionClient interface {
	// Complete sends a completion request and parses the response
	Complete(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error)

	// CompleteStream sends a streaming completion request and returns the
	// raw response body without parsing it
	CompleteStream(ctx context.Context, req *models.ChatCompletionRequest) (io.ReadCloser, error)

	// ListModels returns the models offered by the upstream service
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
}

// ClientConfig contains configuration for upstream clients
type ClientConfig struct {
	BaseURL string
	APIKey  string
}
