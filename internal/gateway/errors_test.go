package gateway

import (
	"errors"
	"testing"

	"github.com/sleepstars/deepgate/internal/clients"
	"github.com/stretchr/testify/assert"
)

func TestTranslate_ValidationPassesThrough(t *testing.T) {
	chatErr := Translate(&ValidationError{Reason: "message content must not be empty"}, "sk-secret")

	assert.Equal(t, KindValidation, chatErr.Kind)
	assert.Equal(t, "message content must not be empty", chatErr.Message)
}

func TestTranslate_ConfigurationPassesThrough(t *testing.T) {
	chatErr := Translate(&ConfigurationError{Reason: "missing API credential"}, "")

	assert.Equal(t, KindConfiguration, chatErr.Kind)
	assert.Equal(t, "missing API credential", chatErr.Message)
}

func TestTranslate_StatusClasses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		kind    ErrorKind
		message string
	}{
		{"unauthorized", 401, KindInvalidCredential, "invalid API credential"},
		{"rate limited", 429, KindRateLimited, "rate limited by upstream, retry later"},
		{"server error", 500, KindUpstreamUnavailable, "upstream service temporarily unavailable"},
		{"bad gateway", 503, KindUpstreamUnavailable, "upstream service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatErr := Translate(&clients.UpstreamError{StatusCode: tt.status, Body: "upstream detail"}, "sk-secret")
			assert.Equal(t, tt.kind, chatErr.Kind)
			assert.Equal(t, tt.message, chatErr.Message)
		})
	}
}

func TestTranslate_OtherStatusWrapsDetail(t *testing.T) {
	chatErr := Translate(&clients.UpstreamError{StatusCode: 418, Body: "teapot"}, "sk-secret")

	assert.Equal(t, KindChatFailed, chatErr.Kind)
	assert.Contains(t, chatErr.Message, "chat request failed:")
	assert.Contains(t, chatErr.Message, "418")
}

func TestTranslate_NetworkFailure(t *testing.T) {
	chatErr := Translate(&clients.UpstreamError{Err: errors.New("connection refused")}, "sk-secret")

	assert.Equal(t, KindChatFailed, chatErr.Kind)
	assert.Contains(t, chatErr.Message, "connection refused")
}

func TestTranslate_MalformedResponse(t *testing.T) {
	chatErr := Translate(&MalformedResponseError{Reason: "no choices returned"}, "sk-secret")

	assert.Equal(t, KindChatFailed, chatErr.Kind)
	assert.Contains(t, chatErr.Message, "no choices returned")
}

func TestTranslate_ScrubsCredential(t *testing.T) {
	secret := "sk-verysecret"
	upstreamErr := &clients.UpstreamError{StatusCode: 418, Body: "bad key sk-verysecret rejected"}

	chatErr := Translate(upstreamErr, secret)

	assert.NotContains(t, chatErr.Message, secret)
	assert.Contains(t, chatErr.Message, "***")
}

func TestTranslate_AlreadyTranslated(t *testing.T) {
	original := &ChatError{Kind: KindRateLimited, Message: "rate limited by upstream, retry later"}

	assert.Same(t, original, Translate(original, "sk-secret"))
}
