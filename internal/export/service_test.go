package export

import (
	"bytes"
	"testing"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

	"github.com/xuri/excelize/v2"
)

func TestErrorLogCSV(t *testing.T) {
	service := NewService()

	payload, err := service.ErrorLogCSV([]domain.RowError{
		{Row: 3, Message: "Name: Name is required"},
		{Row: 7, Message: "driver with CPF already registered"},
	})
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	want := "Row,Message\n" +
		"3,Name: Name is required\n" +
		"7,driver with CPF already registered\n"
	if string(payload) != want {
		t.Fatalf("unexpected csv:\n%s", payload)
	}
}

func TestErrorLogCSVEmpty(t *testing.T) {
	service := NewService()

	payload, err := service.ErrorLogCSV(nil)
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if string(payload) != "Row,Message\n" {
		t.Fatalf("expected header only, got:\n%s", payload)
	}
}

func TestErrorLogXLSX(t *testing.T) {
	service := NewService()

	payload, err := service.ErrorLogXLSX([]domain.RowError{
		{Row: 2, Message: "TaxId must have 14 digits, got 4"},
	})
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("rendered workbook does not open: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Errors")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	if rows[1][0] != "2" || rows[1][1] != "TaxId must have 14 digits, got 4" {
		t.Fatalf("unexpected row: %+v", rows[1])
	}
}

func TestTemplateWorkbook(t *testing.T) {
	service := NewService()

	payload, err := service.TemplateWorkbook("Drivers", []string{"Name", "NationalId", "Role"})
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("rendered workbook does not open: %v", err)
	}
	defer func() { _ = f.Close() }()

	if f.GetSheetName(0) != "Drivers" {
		t.Fatalf("unexpected sheet name %q", f.GetSheetName(0))
	}
	rows, err := f.GetRows("Drivers")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
	want := []string{"Name", "NationalId", "Role"}
	for i, header := range want {
		if rows[0][i] != header {
			t.Fatalf("expected header %q at column %d, got %q", header, i, rows[0][i])
		}
	}
}

func TestTemplateWorkbookRejectsEmptyHeaders(t *testing.T) {
	service := NewService()

	if _, err := service.TemplateWorkbook("Drivers", nil); err == nil {
		t.Fatalf("expected error for empty header list")
	}
}
