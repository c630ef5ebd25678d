package importer

import "github.com/Field-devs/CentralDeAuto-sub000/internal/domain"

// Canonical spreadsheet column names. Template downloads expose these and
// the validator matches uploaded headers against them case-insensitively.
const (
	colName         = "Name"
	colNationalID   = "NationalId"
	colTaxID        = "TaxId"
	colEmail        = "Email"
	colPhone        = "Phone"
	colBirthDate    = "BirthDate"
	colGender       = "Gender"
	colRole         = "Role"
	colPlateNumber  = "PlateNumber"
	colVehicleClass = "VehicleClass"
	colStreet       = "Street"
	colNumber       = "Number"
	colComplement   = "Complement"
	colNeighborhood = "Neighborhood"
	colCity         = "City"
	colState        = "State"
	colPostalCode   = "PostalCode"
)

// defaultNeighborhood substitutes a blank neighborhood before street
// resolution.
const defaultNeighborhood = "Centro"

var templateColumns = map[domain.ImportKind][]string{
	domain.KindDriver: {
		colName, colNationalID, colEmail, colPhone, colBirthDate, colGender,
		colRole, colPlateNumber, colVehicleClass,
		colStreet, colNumber, colComplement, colNeighborhood, colCity, colState, colPostalCode,
	},
	domain.KindCustomer: {
		colName, colTaxID, colEmail, colPhone,
	},
	domain.KindVehicle: {
		colPlateNumber, colVehicleClass,
	},
}

// TemplateColumns returns the fixed ordered header list operators should use
// when preparing an upload for the given kind.
func TemplateColumns(kind domain.ImportKind) []string {
	columns := templateColumns[kind]
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}
