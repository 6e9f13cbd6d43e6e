package gateway

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sleepstars/deepgate/internal/clients"
	"github.com/sleepstars/deepgate/internal/mocks"
	"github.com/sleepstars/deepgate/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService(client clients.CompletionClient) (*Service, *int) {
	calls := 0
	svc := NewService("sk-test", "http://upstream", zap.NewNop())
	svc.SetClientFactory(func(cfg clients.ClientConfig) clients.CompletionClient {
		calls++
		return client
	})
	return svc, &calls
}

func TestService_Chat(t *testing.T) {
	client := &mocks.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
			assert.Equal(t, "deepseek-chat", req.Model)
			return &models.ChatCompletionResponse{
				ID:    "chatcmpl-1",
				Model: req.Model,
				Choices: []models.ChatCompletionChoice{
					{
						Message:      &models.ChatMessage{Role: models.RoleAssistant, Content: "hello"},
						FinishReason: "stop",
					},
				},
				Usage: &models.Usage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3},
			}, nil
		},
	}
	svc, _ := newTestService(client)

	result, err := svc.Chat(context.Background(), &models.ChatInput{Message: "hi"})

	assert.NoError(t, err)
	assert.Equal(t, "hello", result.Message)
	assert.Equal(t, "chatcmpl-1", result.ConversationID)
	assert.Equal(t, 3, result.Usage.TotalTokens)
}

func TestService_Chat_ValidationSkipsNetwork(t *testing.T) {
	svc, calls := newTestService(&mocks.MockCompletionClient{})

	_, err := svc.Chat(context.Background(), &models.ChatInput{Message: "   "})

	var chatErr *ChatError
	assert.ErrorAs(t, err, &chatErr)
	assert.Equal(t, KindValidation, chatErr.Kind)
	assert.Equal(t, 0, *calls, "no upstream client should be constructed")
}

func TestService_Chat_MissingCredential(t *testing.T) {
	calls := 0
	svc := NewService("", "http://upstream", zap.NewNop())
	svc.SetClientFactory(func(cfg clients.ClientConfig) clients.CompletionClient {
		calls++
		return &mocks.MockCompletionClient{}
	})

	_, err := svc.Chat(context.Background(), &models.ChatInput{Message: "hi"})

	var chatErr *ChatError
	assert.ErrorAs(t, err, &chatErr)
	assert.Equal(t, KindConfiguration, chatErr.Kind)
	assert.Equal(t, 0, calls)
}

func TestService_Chat_UpstreamUnauthorized(t *testing.T) {
	client := &mocks.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
			return nil, &clients.UpstreamError{StatusCode: 401, Body: "invalid key sk-test"}
		},
	}
	svc, _ := newTestService(client)

	_, err := svc.Chat(context.Background(), &models.ChatInput{Message: "hi"})

	var chatErr *ChatError
	assert.ErrorAs(t, err, &chatErr)
	assert.Equal(t, KindInvalidCredential, chatErr.Kind)
	assert.NotContains(t, chatErr.Message, "sk-test")
}

func TestService_Chat_MalformedResponse(t *testing.T) {
	client := &mocks.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
			return &models.ChatCompletionResponse{ID: "chatcmpl-1"}, nil
		},
	}
	svc, _ := newTestService(client)

	_, err := svc.Chat(context.Background(), &models.ChatInput{Message: "hi"})

	var chatErr *ChatError
	assert.ErrorAs(t, err, &chatErr)
	assert.Equal(t, KindChatFailed, chatErr.Kind)
}

func TestService_Chat_Idempotent(t *testing.T) {
	client := &mocks.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
			return &models.ChatCompletionResponse{
				ID:    "chatcmpl-fixed",
				Model: req.Model,
				Choices: []models.ChatCompletionChoice{
					{
						Message:      &models.ChatMessage{Role: models.RoleAssistant, Content: "same"},
						FinishReason: "stop",
					},
				},
			}, nil
		},
	}
	svc, _ := newTestService(client)
	input := &models.ChatInput{Message: "hi", ConversationID: "conv-9"}

	first, err := svc.Chat(context.Background(), input)
	assert.NoError(t, err)
	second, err := svc.Chat(context.Background(), input)
	assert.NoError(t, err)

	// Identical except for the generated timestamp
	second.Timestamp = first.Timestamp
	assert.Equal(t, first, second)
}

func TestService_ChatStream_ReturnsRawBody(t *testing.T) {
	client := &mocks.MockCompletionClient{
		CompleteStreamFunc: func(ctx context.Context, req *models.ChatCompletionRequest) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("data: chunk\n\n")), nil
		},
	}
	svc, _ := newTestService(client)

	body, err := svc.ChatStream(context.Background(), &models.ChatInput{Message: "hi"})
	assert.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Equal(t, "data: chunk\n\n", string(raw))
}

func TestService_Models_FallsBackOnError(t *testing.T) {
	client := &mocks.MockCompletionClient{
		ListModelsFunc: func(ctx context.Context) ([]models.ModelInfo, error) {
			return nil, errors.New("upstream down")
		},
	}
	svc, _ := newTestService(client)

	list := svc.Models(context.Background())

	assert.Equal(t, defaultModels, list)
}

func TestService_Models(t *testing.T) {
	want := []models.ModelInfo{{ID: "deepseek-chat", OwnedBy: "deepseek"}}
	client := &mocks.MockCompletionClient{
		ListModelsFunc: func(ctx context.Context) ([]models.ModelInfo, error) {
			return want, nil
		},
	}
	svc, _ := newTestService(client)

	assert.Equal(t, want, svc.Models(context.Background()))
}
