package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sleepstars/deepgate/internal/clients"
)

// ErrorKind classifies the user-facing failure classes of the gateway
type ErrorKind int

const (
	// KindValidation marks a caller input defect, raised before any network I/O
	KindValidation ErrorKind = iota
	// KindConfiguration marks a missing credential, raised before any network I/O
	KindConfiguration
	// KindInvalidCredential marks an upstream 401
	KindInvalidCredential
	// KindRateLimited marks an upstream 429
	KindRateLimited
	// KindUpstreamUnavailable marks an upstream 5xx
	KindUpstreamUnavailable
	// KindChatFailed wraps every other failure
	KindChatFailed
)

// ChatError is the single error type surfaced to callers
type ChatError struct {
	Kind    ErrorKind
	Message string
}

func (e *ChatError) Error() string { return e.Message }

// ValidationError is raised when the caller input is unusable
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConfigurationError is raised when the gateway is missing its credential
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

// MalformedResponseError is raised when a 2xx upstream body is structurally unusable
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed upstream response: %s", e.Reason)
}

// Translate rewrites any internal failure into a ChatError with a stable
// message. Upstream failures are classified by status code, not by message
// text. The credential value is scrubbed from the detail before it leaves
// the gateway.
func Translate(err error, credential string) *ChatError {
	var chatErr *ChatError
	if errors.As(err, &chatErr) {
		return chatErr
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return &ChatError{Kind: KindValidation, Message: validationErr.Reason}
	}

	var configErr *ConfigurationError
	if errors.As(err, &configErr) {
		return &ChatError{Kind: KindConfiguration, Message: configErr.Reason}
	}

	var upstreamErr *clients.UpstreamError
	if errors.As(err, &upstreamErr) {
		switch {
		case upstreamErr.StatusCode == 401:
			return &ChatError{Kind: KindInvalidCredential, Message: "invalid API credential"}
		case upstreamErr.StatusCode == 429:
			return &ChatError{Kind: KindRateLimited, Message: "rate limited by upstream, retry later"}
		case upstreamErr.StatusCode >= 500:
			return &ChatError{Kind: KindUpstreamUnavailable, Message: "upstream service temporarily unavailable"}
		}
	}

	return &ChatError{
		Kind:    KindChatFailed,
		Message: fmt.Sprintf("chat request failed: %s", scrub(err.Error(), credential)),
	}
}

// scrub removes the credential value from detail text
func scrub(detail, credential string) string {
	if credential == "" {
		return detail
	}
	return strings.ReplaceAll(detail, credential, "***")
}
