package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sleepstars/deepgate/internal/models"
)

// DefaultBaseURL is the DeepSeek API endpoint used when no override is given
const DefaultBaseURL = "https://api.deepseek.com/v1"

// UpstreamError is returned for any non-2xx status or network-level failure.
// StatusCode is zero when the request never produced an HTTP response.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// DeepSeekClient implements CompletionClient against a DeepSeek-compatible API
type DeepSeekClient struct {
	config ClientConfig
	client *http.Client
}

// NewDeepSeekClient creates a new client for the given credential and base URL
func NewDeepSeekClient(config ClientConfig) *DeepSeekClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &DeepSeekClient{
		config: config,
		client: &http.Client{},
	}
}

func (c *DeepSeekClient) newRequest(ctx context.Context, path string, body []byte) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	return httpReq, nil
}

func (c *DeepSeekClient) Complete(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := c.newRequest(ctx, "/chat/completions", body)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	var result models.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}

// CompleteStream sets the stream flag and hands back the raw response body.
// The caller owns the returned ReadCloser.
func (c *DeepSeekClient) CompleteStream(ctx context.Context, req *models.ChatCompletionRequest) (io.ReadCloser, error) {
	streamReq := *req
	streamReq.Stream = true

	body, err := json.Marshal(&streamReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := c.newRequest(ctx, "/chat/completions", body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	return resp.Body, nil
}

// ListModels queries the upstream model catalog through the go-openai client
func (c *DeepSeekClient) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	clientConfig := openai.DefaultConfig(c.config.APIKey)
	clientConfig.BaseURL = c.config.BaseURL

	list, err := openai.NewClientWithConfig(clientConfig).ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	result := make([]models.ModelInfo, len(list.Models))
	for i, m := range list.Models {
		result[i] = models.ModelInfo{ID: m.ID, OwnedBy: m.OwnedBy}
	}
	return result, nil
}
