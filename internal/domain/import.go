package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportKind selects which entity an uploaded spreadsheet describes.
type ImportKind string

const (
	KindDriver   ImportKind = "driver"
	KindCustomer ImportKind = "customer"
	KindVehicle  ImportKind = "vehicle"
)

// Valid reports whether the kind is one of the supported entities.
func (k ImportKind) Valid() bool {
	switch k {
	case KindDriver, KindCustomer, KindVehicle:
		return true
	}
	return false
}

// Problem is a field-level validation issue found before import. Row matches
// the source spreadsheet row (1-based, header included) so UI and logs agree.
type Problem struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OutcomeStatus is the terminal state of one imported row.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
)

// Outcome is the immutable per-row result of an import attempt. A successful
// row may still carry warnings: address enrichment failures do not undo the
// already-created primary entity.
type Outcome struct {
	Row      int           `json:"row"`
	Status   OutcomeStatus `json:"status"`
	EntityID int64         `json:"entity_id,omitempty"`
	Errors   []string      `json:"errors,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
}

// RowError is one flattened error-log line, keyed by source row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Summary aggregates the outcomes of one import run.
type Summary struct {
	Total     int        `json:"total"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
	Outcomes  []Outcome  `json:"outcomes"`
	Errors    []RowError `json:"errors"`
}

// ImportLogEntry captures row-level issues persisted for operator review.
type ImportLogEntry struct {
	ID             int64      `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Kind           ImportKind `json:"kind"`
	FileName       string     `json:"file_name"`
	RowNumber      *int       `json:"row_number,omitempty"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
}
