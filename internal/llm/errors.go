package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no usable Gemini API key is configured.
	ErrMissingAPIKey = errors.New("gemini API key is required")

	// ErrEmptyGeneration is returned when the model produced no text content.
	ErrEmptyGeneration = errors.New("no content generated from model")

	// ErrMalformedResponse is returned when the model output contains no
	// parsable JSON object.
	ErrMalformedResponse = errors.New("no valid JSON found in model response")

	// ErrTimeout is returned when a generation call exceeded its deadline.
	ErrTimeout = errors.New("generation request timed out")
)

// UpstreamError carries the status and message of a failed upstream API call.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini API error: %s (status %d)", e.Message, e.Status)
}
