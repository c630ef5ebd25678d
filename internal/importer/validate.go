package importer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/tabular"
)

// Validate inspects every row for the given kind and returns all field-level
// problems found. It is a pure function: no storage calls, no mutation. A
// row with at least one problem must not be imported.
func Validate(rows []tabular.Row, kind domain.ImportKind) []domain.Problem {
	var problems []domain.Problem
	for _, row := range rows {
		switch kind {
		case domain.KindDriver:
			_, rowProblems := parseDriverRow(row)
			problems = append(problems, rowProblems...)
		case domain.KindCustomer:
			_, rowProblems := parseCustomerRow(row)
			problems = append(problems, rowProblems...)
		case domain.KindVehicle:
			_, rowProblems := parseVehicleRow(row)
			problems = append(problems, rowProblems...)
		}
	}
	return problems
}

// parseDriverRow coerces one raw row into a typed driver record and reports
// every validation problem found. A record accompanied by problems must be
// discarded.
func parseDriverRow(row tabular.Row) (driverRecord, []domain.Problem) {
	var problems []domain.Problem

	record := driverRecord{
		Row:          row.SourceRow,
		Name:         row.Get(colName),
		CPF:          digits(row.Get(colNationalID)),
		Email:        row.Get(colEmail),
		Phone:        digits(row.Get(colPhone)),
		BirthDate:    ToCalendarDate(row.Get(colBirthDate)),
		Gender:       row.Get(colGender),
		Plate:        alphanumeric(row.Get(colPlateNumber)),
		VehicleClass: row.Get(colVehicleClass),
	}

	if record.Name == "" {
		problems = append(problems, missing(row, colName))
	}

	if record.CPF == "" {
		problems = append(problems, missing(row, colNationalID))
	} else if len(record.CPF) != 11 {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colNationalID,
			Message: fmt.Sprintf("%s must have 11 digits, got %d", colNationalID, len(record.CPF)),
		})
	}

	role, roleOK := parseRole(row.Get(colRole))
	if !roleOK {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colRole,
			Message: fmt.Sprintf("%s must be %s or %s", colRole, domain.RoleDriver, domain.RoleAffiliated),
		})
	}
	record.Role = role
	if roleOK && role == domain.RoleAffiliated && record.Plate == "" {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colPlateNumber,
			Message: fmt.Sprintf("%s is required for affiliated drivers", colPlateNumber),
		})
	}

	address, addressProblems := parseAddressFields(row)
	record.Address = address
	problems = append(problems, addressProblems...)

	return record, problems
}

// parseAddressFields enforces the conditional address chain: any address
// field present requires city and state, and a street additionally requires
// a neighborhood. A blank neighborhood without a street falls back to the
// default label; the substitution happens here so the import step never
// revisits raw cells.
func parseAddressFields(row tabular.Row) (*addressRecord, []domain.Problem) {
	hasAny := row.Has(colStreet) || row.Has(colNeighborhood) || row.Has(colCity)
	if !hasAny {
		return nil, nil
	}

	var problems []domain.Problem
	if !row.Has(colCity) {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colCity,
			Message: fmt.Sprintf("%s is required when address fields are filled", colCity),
		})
	}
	if !row.Has(colState) {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colState,
			Message: fmt.Sprintf("%s is required when address fields are filled", colState),
		})
	}
	if row.Has(colStreet) && !row.Has(colNeighborhood) {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colNeighborhood,
			Message: fmt.Sprintf("%s is required when %s is filled", colNeighborhood, colStreet),
		})
	}

	address := &addressRecord{
		Street:       row.Get(colStreet),
		Number:       row.Get(colNumber),
		Complement:   row.Get(colComplement),
		Neighborhood: row.Get(colNeighborhood),
		City:         row.Get(colCity),
		State:        row.Get(colState),
		PostalCode:   digits(row.Get(colPostalCode)),
	}
	if address.Neighborhood == "" {
		address.Neighborhood = defaultNeighborhood
	}

	return address, problems
}

func parseCustomerRow(row tabular.Row) (customerRecord, []domain.Problem) {
	var problems []domain.Problem

	record := customerRecord{
		Row:   row.SourceRow,
		Name:  row.Get(colName),
		CNPJ:  digits(row.Get(colTaxID)),
		Email: row.Get(colEmail),
		Phone: digits(row.Get(colPhone)),
	}

	if record.Name == "" {
		problems = append(problems, missing(row, colName))
	}

	if record.CNPJ == "" {
		problems = append(problems, missing(row, colTaxID))
	} else if len(record.CNPJ) != 14 {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colTaxID,
			Message: fmt.Sprintf("%s must have 14 digits, got %d", colTaxID, len(record.CNPJ)),
		})
	}

	return record, problems
}

func parseVehicleRow(row tabular.Row) (vehicleRecord, []domain.Problem) {
	var problems []domain.Problem

	record := vehicleRecord{
		Row:          row.SourceRow,
		Plate:        alphanumeric(row.Get(colPlateNumber)),
		VehicleClass: row.Get(colVehicleClass),
	}

	if record.Plate == "" {
		problems = append(problems, missing(row, colPlateNumber))
	} else if len(record.Plate) > 7 {
		problems = append(problems, domain.Problem{
			Row:     row.SourceRow,
			Field:   colPlateNumber,
			Message: fmt.Sprintf("%s must have at most 7 characters, got %d", colPlateNumber, len(record.Plate)),
		})
	}

	if record.VehicleClass == "" {
		problems = append(problems, missing(row, colVehicleClass))
	}

	return record, problems
}

func missing(row tabular.Row, field string) domain.Problem {
	return domain.Problem{
		Row:     row.SourceRow,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// parseRole maps the raw cell to a driver role. A blank cell defaults to the
// plain driver role; anything unrecognized is rejected.
func parseRole(raw string) (domain.DriverRole, bool) {
	switch {
	case raw == "":
		return domain.RoleDriver, true
	case strings.EqualFold(raw, string(domain.RoleDriver)):
		return domain.RoleDriver, true
	case strings.EqualFold(raw, string(domain.RoleAffiliated)):
		return domain.RoleAffiliated, true
	}
	return "", false
}

// digits strips everything but decimal digits.
func digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// alphanumeric strips everything but letters and digits and uppercases the
// result, the canonical form for plates.
func alphanumeric(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
