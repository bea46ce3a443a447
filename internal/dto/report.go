package dto

import (
	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// ReportKind selects a periodic report.
type ReportKind string

const (
	ReportWeekly  ReportKind = "weekly"
	ReportMonthly ReportKind = "monthly"
)

// Report is a periodic summary with an optional AI narrative.
type Report struct {
	Kind       ReportKind        `json:"kind"`
	Statistics domain.Statistics `json:"statistics"`
	Narrative  string            `json:"narrative,omitempty"`
	TokensUsed int64             `json:"tokensUsed"`
	// Reply is the formatted report text for the chat transport.
	Reply string `json:"reply"`
}

// StatisticsResponse pairs the raw aggregate with a formatted summary and
// the most recent entries.
type StatisticsResponse struct {
	Statistics domain.Statistics    `json:"statistics"`
	Recent     []domain.LedgerEntry `json:"recent"`
	Reply      string               `json:"reply"`
}
