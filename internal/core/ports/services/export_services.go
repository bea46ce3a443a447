package services

import "context"

// ExportArtifact is a downloadable report file.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportSvc renders an account's ledger as a downloadable artifact.
type ExportSvc interface {
	ExcelReport(ctx context.Context, accountID int64) (ExportArtifact, error)
	CSVExport(ctx context.Context, accountID int64) (ExportArtifact, error)
}
