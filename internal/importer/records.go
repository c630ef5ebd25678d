package importer

import (
	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
)

// Typed row records produced by the parse step right after ingestion. Raw
// cell maps do not travel past this boundary: coercion (digit stripping,
// date normalization, plate canonicalization) happens exactly once, here,
// and the import step works on these fields only.

type driverRecord struct {
	Row          int
	Name         string
	CPF          string
	Email        string
	Phone        string
	BirthDate    string
	Gender       string
	Role         domain.DriverRole
	Plate        string
	VehicleClass string
	Address      *addressRecord
}

type addressRecord struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
}

type customerRecord struct {
	Row   int
	Name  string
	CNPJ  string
	Email string
	Phone string
}

type vehicleRecord struct {
	Row          int
	Plate        string
	VehicleClass string
}
