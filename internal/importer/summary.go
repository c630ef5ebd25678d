package importer

import "github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

// Summarize aggregates per-row outcomes into run totals and a flattened
// error log tagged by source row. Warnings on successful rows are included
// in the error log so operators see enrichment failures too.
func Summarize(outcomes []domain.Outcome) domain.Summary {
	summary := domain.Summary{
		Total:    len(outcomes),
		Outcomes: outcomes,
		Errors:   []domain.RowError{},
	}

	for _, outcome := range outcomes {
		switch outcome.Status {
		case domain.OutcomeSuccess:
			summary.Succeeded++
		case domain.OutcomeFailed:
			summary.Failed++
		}

		for _, message := range outcome.Errors {
			summary.Errors = append(summary.Errors, domain.RowError{Row: outcome.Row, Message: message})
		}
		for _, message := range outcome.Warnings {
			summary.Errors = append(summary.Errors, domain.RowError{Row: outcome.Row, Message: message})
		}
	}

	return summary
}
