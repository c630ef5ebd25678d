package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/xuri/excelize/v2"
)

const errorSheetName = "Errors"

// Service renders import artifacts as downloadable tabular files: the error
// log of a finished run and the blank upload templates operators fill in.
// Rendering is synchronous and in-memory; callers stream the bytes out.
type Service struct{}

// NewService creates a new export service.
func NewService() *Service {
	return &Service{}
}

// ErrorLogCSV renders row errors as a CSV file keyed by the original
// spreadsheet row number, so operators can correct and re-upload only the
// failing rows.
func (s *Service) ErrorLogCSV(errors []domain.RowError) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Row", "Message"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rowError := range errors {
		record := []string{strconv.Itoa(rowError.Row), rowError.Message}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ErrorLogXLSX renders row errors as an xlsx workbook.
func (s *Service) ErrorLogXLSX(errors []domain.RowError) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, errorSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(errorSheetName, "A1", &[]any{"Row", "Message"}); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for idx, rowError := range errors {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(errorSheetName, cell, &[]any{rowError.Row, rowError.Message}); err != nil {
			return nil, fmt.Errorf("failed to write error row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// TemplateWorkbook renders an xlsx workbook whose first sheet carries the
// given ordered header list and nothing else.
func (s *Service) TemplateWorkbook(sheetName string, headers []string) ([]byte, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("no headers for template")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	cells := make([]any, len(headers))
	for i, header := range headers {
		cells[i] = header
	}
	if err := f.SetSheetRow(sheetName, "A1", &cells); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
