package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat is returned when an uploaded file is not supported.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptySheet is returned when the first sheet holds no data rows.
	ErrEmptySheet = errors.New("no data rows found in file")

	byteOrderMark = []byte{0xEF, 0xBB, 0xBF}
)

// Row is one parsed spreadsheet row. SourceRow is the 1-based row number in
// the original file, header row included, so the first data row is 2 or
// later. Cells are keyed by the trimmed header text.
type Row struct {
	SourceRow int
	Cells     map[string]string
}

// Get returns the cell under the given column name, matched
// case-insensitively, trimmed.
func (r Row) Get(column string) string {
	if v, ok := r.Cells[column]; ok {
		return strings.TrimSpace(v)
	}
	for name, v := range r.Cells {
		if strings.EqualFold(name, column) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Has reports whether the column holds a non-blank value.
func (r Row) Has(column string) bool {
	return r.Get(column) != ""
}

// Parse turns workbook bytes into an ordered list of rows. CSV and XLSX are
// supported; XLSX always reads the first sheet.
func Parse(fileName string, payload []byte) ([]Row, error) {
	if len(payload) == 0 {
		return nil, errors.New("file is empty")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return parseCSV(payload)
	case ".xlsx":
		return parseExcel(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func parseCSV(payload []byte) ([]Row, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return buildRows(records)
}

func parseExcel(payload []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}

	return buildRows(records)
}

// buildRows takes the raw record grid, locates the header row (first
// non-empty row) and maps every following non-empty row into a Row keyed by
// the header cells.
func buildRows(records [][]string) ([]Row, error) {
	var headers []string
	headerIndex := -1

	for idx, record := range records {
		if isBlank(record) {
			continue
		}
		headers = sanitizeHeaders(record)
		headerIndex = idx
		break
	}

	if headers == nil {
		return nil, errors.New("header row could not be detected")
	}

	var rows []Row
	for idx := headerIndex + 1; idx < len(records); idx++ {
		record := records[idx]
		if isBlank(record) {
			continue
		}

		cells := make(map[string]string, len(headers))
		for col, header := range headers {
			if header == "" {
				continue
			}
			if col < len(record) {
				cells[header] = record[col]
			} else {
				cells[header] = ""
			}
		}

		rows = append(rows, Row{
			SourceRow: idx + 1,
			Cells:     cells,
		})
	}

	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	return rows, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func sanitizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int)

	for idx, value := range raw {
		name := strings.TrimSpace(value)
		base := name
		count := seen[base]
		if count > 0 && base != "" {
			name = fmt.Sprintf("%s_%d", base, count+1)
		}
		seen[base] = count + 1
		headers[idx] = name
	}

	return headers
}
