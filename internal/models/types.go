package models

// Message roles accepted by the completion API
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatInput is the public request shape consumed by the gateway.
// Optional numeric fields are pointers so that an omitted value can be
// distinguished from an explicit zero.
type ChatInput struct {
	Message        string   `json:"message"`
	Model          string   `json:"model,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
	MaxTokens      *int     `json:"maxTokens,omitempty"`
	ConversationID string   `json:"conversationId,omitempty"`
	SystemPrompt   string   `json:"systemPrompt,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body sent to the upstream completion API
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream,omitempty"`
}

// ChatCompletionChoice represents a completion choice. Message is a
// pointer so a structurally missing field can be told apart from an
// empty completion.
type ChatCompletionChoice struct {
	Index        int          `json:"index"`
	Message      *ChatMessage `json:"message,omitempty"`
	FinishReason string       `json:"finish_reason"`
}

// Usage carries the upstream token accounting
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletionResponse is the raw body returned by the upstream API
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   *Usage                 `json:"usage,omitempty"`
}

// TokenUsage is the normalized usage triple returned to callers
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// ChatResult is the normalized response returned to callers
type ChatResult struct {
	ID             string     `json:"id"`
	Message        string     `json:"message"`
	Model          string     `json:"model"`
	Usage          TokenUsage `json:"usage"`
	ConversationID string     `json:"conversationId"`
	Timestamp      string     `json:"timestamp"`
	FinishReason   string     `json:"finishReason,omitempty"`
}

// ModelInfo describes a model offered by the upstream service
type ModelInfo struct {
	ID      string `json:"id"`
	OwnedBy string `json:"ownedBy,omitempty"`
}
