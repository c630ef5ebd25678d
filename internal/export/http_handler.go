package export

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/repository"

	"github.com/google/uuid"
)

// TemplateColumnsFunc supplies the ordered header list for an import kind.
type TemplateColumnsFunc func(kind domain.ImportKind) []string

// Handler exposes template downloads and persisted error-log exports.
type Handler struct {
	service         *Service
	logs            repository.ImportLogRepository
	templateColumns TemplateColumnsFunc
}

// NewHTTPHandler creates the export handler.
func NewHTTPHandler(service *Service, logs repository.ImportLogRepository, templateColumns TemplateColumnsFunc) *Handler {
	return &Handler{
		service:         service,
		logs:            logs,
		templateColumns: templateColumns,
	}
}

// Template serves the blank upload workbook for a kind.
func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	kind := domain.ImportKind(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("kind"))))
	if !kind.Valid() {
		http.Error(w, fmt.Sprintf("invalid kind %q", kind), http.StatusBadRequest)
		return
	}

	headers := h.templateColumns(kind)
	payload, err := h.service.TemplateWorkbook(sheetNameFor(kind), headers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("%s_import_template.xlsx", kind)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	_, _ = w.Write(payload)
}

func sheetNameFor(kind domain.ImportKind) string {
	name := string(kind)
	if name == "" {
		return "Sheet1"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ErrorLog serves the persisted error log of previous runs as CSV or xlsx.
func (h *Handler) ErrorLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()

	orgID, err := uuid.Parse(strings.TrimSpace(query.Get("organizationId")))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid organization id: %v", err), http.StatusBadRequest)
		return
	}

	kind := domain.ImportKind(strings.ToLower(strings.TrimSpace(query.Get("kind"))))
	if !kind.Valid() {
		http.Error(w, fmt.Sprintf("invalid kind %q", kind), http.StatusBadRequest)
		return
	}

	fileName := strings.TrimSpace(query.Get("fileName"))

	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid limit: %v", err), http.StatusBadRequest)
			return
		}
	}

	entries, err := h.logs.List(r.Context(), orgID, kind, fileName, limit, 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rowErrors := make([]domain.RowError, 0, len(entries))
	for _, entry := range entries {
		rowNumber := 0
		if entry.RowNumber != nil {
			rowNumber = *entry.RowNumber
		}
		rowErrors = append(rowErrors, domain.RowError{Row: rowNumber, Message: entry.Message})
	}

	format := strings.ToLower(strings.TrimSpace(query.Get("format")))
	switch format {
	case "", "csv":
		payload, err := h.service.ErrorLogCSV(rowErrors)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="import_errors.csv"`)
		_, _ = w.Write(payload)
	case "xlsx":
		payload, err := h.service.ErrorLogXLSX(rowErrors)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="import_errors.xlsx"`)
		_, _ = w.Write(payload)
	default:
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
	}
}
