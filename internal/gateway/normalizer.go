package gateway

import (
	"strings"

	"github.com/sleepstars/deepgate/internal/models"
)

// Defaults and bounds applied to incoming chat input
const (
	DefaultModel       = "deepseek-chat"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000

	MinTemperature = 0.0
	MaxTemperature = 1.0
	MinMaxTokens   = 1
	MaxMaxTokens   = 4000
)

// BuildCompletionRequest validates a ChatInput and assembles the upstream
// request. It fails before any network I/O when the message is empty.
// Out-of-range temperature and maxTokens values are clamped to the nearest
// bound rather than rejected.
func BuildCompletionRequest(input *models.ChatInput) (*models.ChatCompletionRequest, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, &ValidationError{Reason: "message content must not be empty"}
	}

	model := input.Model
	if model == "" {
		model = DefaultModel
	}

	temperature := DefaultTemperature
	if input.Temperature != nil {
		temperature = clampFloat(*input.Temperature, MinTemperature, MaxTemperature)
	}

	maxTokens := DefaultMaxTokens
	if input.MaxTokens != nil {
		maxTokens = clampInt(*input.MaxTokens, MinMaxTokens, MaxMaxTokens)
	}

	var messages []models.ChatMessage
	if prompt := strings.TrimSpace(input.SystemPrompt); prompt != "" {
		messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: prompt})
	}
	messages = append(messages, models.ChatMessage{Role: models.RoleUser, Content: message})

	return &models.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
