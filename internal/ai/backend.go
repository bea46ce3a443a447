package ai

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// Cost units reported when a provider does not return token accounting.
const (
	costTranscription   = 1000
	costCompletionGuess = 500
)

// Backend is one configured credential/endpoint pair. A backend either
// fulfils a capability or returns an error; the orchestrator treats any
// error as "try the next backend".
type Backend interface {
	Name() string
	Supports(capability domain.Capability) bool

	// Complete sends a prompt and returns the generated text with its
	// token cost.
	Complete(ctx context.Context, prompt string) (text string, cost int64, err error)

	// Transcribe converts audio to text. Backends without a speech model
	// return an error unconditionally.
	Transcribe(ctx context.Context, filename string, audio []byte) (text string, cost int64, err error)
}
