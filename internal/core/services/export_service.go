package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// exportEntryCap bounds one export; the ledger is read newest-first.
const exportEntryCap = 5000

type exportService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.AccountRepository
}

func NewExportService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.AccountRepository) portssvc.ExportSvc {
	return &exportService{ledgerRepo: ledgerRepo, accountRepo: accountRepo}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) ExcelReport(ctx context.Context, accountID int64) (portssvc.ExportArtifact, error) {
	entries, currency, err := s.loadEntries(ctx, accountID)
	if err != nil {
		return portssvc.ExportArtifact{}, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Hisobot"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return portssvc.ExportArtifact{}, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Sana", "Turi", "Summa", "Kategoriya", "Tavsif"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return portssvc.ExportArtifact{}, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return portssvc.ExportArtifact{}, fmt.Errorf("failed to style header: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for i, entry := range entries {
		row := i + 2
		direction := "Chiqim"
		if entry.Direction == domain.DirectionIncome {
			direction = "Kirim"
			totalIncome = totalIncome.Add(entry.Amount)
		} else {
			totalExpense = totalExpense.Add(entry.Amount)
		}

		values := []any{
			utils.FormatDate(entry.OccurredOn),
			direction,
			entry.Amount.InexactFloat64(),
			entry.Category,
			entry.Description,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return portssvc.ExportArtifact{}, fmt.Errorf("failed to write entry row: %w", err)
			}
		}
	}

	summaryRow := len(entries) + 3
	summary := [][2]any{
		{"Jami kirim:", utils.FormatCurrency(totalIncome, currency)},
		{"Jami chiqim:", utils.FormatCurrency(totalExpense, currency)},
		{"Balans:", utils.FormatCurrency(totalIncome.Sub(totalExpense), currency)},
	}
	for i, pair := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, summaryRow+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, summaryRow+i)
		_ = f.SetCellValue(sheet, labelCell, pair[0])
		_ = f.SetCellValue(sheet, valueCell, pair[1])
	}

	_ = f.SetColWidth(sheet, "A", "E", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return portssvc.ExportArtifact{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return portssvc.ExportArtifact{
		Filename:    fmt.Sprintf("hisobot_%s.xlsx", time.Now().UTC().Format("2006-01-02")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

func (s *exportService) CSVExport(ctx context.Context, accountID int64) (portssvc.ExportArtifact, error) {
	entries, _, err := s.loadEntries(ctx, accountID)
	if err != nil {
		return portssvc.ExportArtifact{}, err
	}

	var buf bytes.Buffer
	// UTF-8 BOM so spreadsheet apps render the Uzbek text correctly.
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Sana", "Turi", "Summa", "Kategoriya", "Tavsif"}); err != nil {
		return portssvc.ExportArtifact{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, entry := range entries {
		direction := "Chiqim"
		if entry.Direction == domain.DirectionIncome {
			direction = "Kirim"
		}
		record := []string{
			utils.FormatDate(entry.OccurredOn),
			direction,
			entry.Amount.String(),
			entry.Category,
			entry.Description,
		}
		if err := w.Write(record); err != nil {
			return portssvc.ExportArtifact{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return portssvc.ExportArtifact{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return portssvc.ExportArtifact{
		Filename:    fmt.Sprintf("hisobot_%s.csv", time.Now().UTC().Format("2006-01-02")),
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

func (s *exportService) loadEntries(ctx context.Context, accountID int64) ([]domain.LedgerEntry, string, error) {
	entries, err := s.ledgerRepo.FindEntries(ctx, accountID, domain.LedgerFilter{Limit: exportEntryCap})
	if err != nil {
		return nil, "", err
	}

	currency := "UZS"
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err == nil {
		currency = account.Currency
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Currency lookup failed", "account_id", accountID)
	}
	return entries, currency, nil
}
