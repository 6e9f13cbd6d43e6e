package gateway

import (
	"time"

	"github.com/sleepstars/deepgate/internal/models"
)

// mapResponse normalizes a raw upstream response into a ChatResult.
// The timestamp is generated here rather than taken from the upstream
// created field, so it reflects when this gateway produced the result.
func mapResponse(input *models.ChatInput, resp *models.ChatCompletionResponse) (*models.ChatResult, error) {
	if len(resp.Choices) == 0 {
		return nil, &MalformedResponseError{Reason: "no choices returned"}
	}

	choice := resp.Choices[0]
	if choice.Message == nil {
		return nil, &MalformedResponseError{Reason: "first choice has no message"}
	}

	usage := models.TokenUsage{}
	if resp.Usage != nil {
		usage.PromptTokens = resp.Usage.PromptTokens
		usage.CompletionTokens = resp.Usage.CompletionTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	}

	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = resp.ID
	}

	return &models.ChatResult{
		ID:             resp.ID,
		Message:        choice.Message.Content,
		Model:          resp.Model,
		Usage:          usage,
		ConversationID: conversationID,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		FinishReason:   choice.FinishReason,
	}, nil
}
