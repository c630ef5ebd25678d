package tabular

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSVNumbersRowsFromHeader(t *testing.T) {
	data := []byte("Name,City\nAlice,Recife\nBob,Natal\n")

	rows, err := Parse("people.csv", data)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].SourceRow != 2 || rows[1].SourceRow != 3 {
		t.Fatalf("unexpected source rows: %d, %d", rows[0].SourceRow, rows[1].SourceRow)
	}
	if rows[0].Get("Name") != "Alice" {
		t.Fatalf("expected Alice, got %q", rows[0].Get("Name"))
	}
	if rows[1].Get("City") != "Natal" {
		t.Fatalf("expected Natal, got %q", rows[1].Get("City"))
	}
}

func TestParseCSVStripsByteOrderMark(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Name\nAlice\n")...)

	rows, err := Parse("people.csv", data)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if rows[0].Get("Name") != "Alice" {
		t.Fatalf("expected Alice, got %q", rows[0].Get("Name"))
	}
}

func TestParseSkipsBlankRowsButKeepsNumbering(t *testing.T) {
	data := []byte("Name\nAlice\n,\n\nBob\n")

	rows, err := Parse("people.csv", data)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Get("Name") != "Bob" {
		t.Fatalf("expected Bob, got %q", rows[1].Get("Name"))
	}
	if rows[1].SourceRow != 5 {
		t.Fatalf("expected Bob on source row 5, got %d", rows[1].SourceRow)
	}
}

func TestParseXLSXReadsFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]any{"Name", "Plate"})
	_ = f.SetSheetRow(sheet, "A2", &[]any{"Truck 1", "ABC1234"})
	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}

	rows, err := Parse("fleet.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Get("Plate") != "ABC1234" {
		t.Fatalf("expected ABC1234, got %q", rows[0].Get("Plate"))
	}
}

func TestParseRejectsUnsupportedFormat(t *testing.T) {
	_, err := Parse("notes.txt", []byte("hello"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestParseRejectsHeaderOnlySheet(t *testing.T) {
	_, err := Parse("people.csv", []byte("Name,City\n"))
	if !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("expected empty sheet error, got %v", err)
	}
}

func TestRowGetMatchesCaseInsensitively(t *testing.T) {
	row := Row{SourceRow: 2, Cells: map[string]string{"PlateNumber": " abc1234 "}}

	if got := row.Get("platenumber"); got != "abc1234" {
		t.Fatalf("expected abc1234, got %q", got)
	}
	if !row.Has("PLATENUMBER") {
		t.Fatalf("expected Has to match case-insensitively")
	}
	if row.Has("Missing") {
		t.Fatalf("did not expect a value for Missing")
	}
}
