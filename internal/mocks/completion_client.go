package mocks

import (
	"context"
	"io"
	"strings"

	"github.com/sleepstars/deepgate/internal/models"
)

// MockCompletionClient implements CompletionClient for testing
type MockCompletionClient struct {
	CompleteFunc       func(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error)
	CompleteStreamFunc func(ctx context.Context, req *models.ChatCompletionRequest) (io.ReadCloser, error)
	ListModelsFunc     func(ctx context.Context) ([]models.ModelInfo, error)
}

func (m *MockCompletionClient) Complete(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return &models.ChatCompletionResponse{}, nil
}

func (m *MockCompletionClient) CompleteStream(ctx context.Context, req *models.ChatCompletionRequest) (io.ReadCloser, error) {
	if m.CompleteStreamFunc != nil {
		return m.CompleteStreamFunc(ctx, req)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (m *MockCompletionClient) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, nil
}
