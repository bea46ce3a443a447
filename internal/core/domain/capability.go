package domain

import "github.com/shopspring/decimal"

// Capability is one of the AI task kinds the orchestrator can fulfil via
// interchangeable backends.
type Capability string

const (
	CapabilityTranscription Capability = "transcription"
	CapabilityExtraction    Capability = "extraction"
	CapabilityAnalysis      Capability = "analysis"
)

// ExtractedTransaction is one structured transaction recovered from a
// provider's extraction response.
type ExtractedTransaction struct {
	Direction   EntryDirection  `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}
