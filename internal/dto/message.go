package dto

import "github.com/finflowhq/finflow_bot/internal/core/domain"

// MessageRequest is an inbound text event from the chat transport.
type MessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// IngestResult reports what a text or voice ingestion produced.
type IngestResult struct {
	Entries    []domain.LedgerEntry `json:"entries"`
	Transcript string               `json:"transcript,omitempty"`
	TokensUsed int64                `json:"tokensUsed"`
	// Reply is the formatted text the transport should deliver to the user.
	Reply string `json:"reply"`
	// Analyzed is false when every configured backend failed, in which
	// case Reply carries the "could not analyze" message and nothing was
	// persisted.
	Analyzed bool `json:"analyzed"`
}
