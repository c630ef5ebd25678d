package importer

import (
	"testing"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/tabular"
)

func driverRow(sourceRow int, cells map[string]string) tabular.Row {
	base := map[string]string{
		colName:       "João Silva",
		colNationalID: "529.982.247-25",
	}
	for k, v := range cells {
		base[k] = v
	}
	return tabular.Row{SourceRow: sourceRow, Cells: base}
}

func problemFields(problems []domain.Problem) map[string]bool {
	fields := make(map[string]bool, len(problems))
	for _, p := range problems {
		fields[p.Field] = true
	}
	return fields
}

func TestValidateDriverAcceptsCompleteRow(t *testing.T) {
	rows := []tabular.Row{driverRow(2, nil)}

	problems := Validate(rows, domain.KindDriver)
	if len(problems) != 0 {
		t.Fatalf("expected no problems, got %+v", problems)
	}
}

func TestValidateDriverRequiredFields(t *testing.T) {
	rows := []tabular.Row{{
		SourceRow: 4,
		Cells:     map[string]string{colName: "", colNationalID: ""},
	}}

	problems := Validate(rows, domain.KindDriver)
	fields := problemFields(problems)
	if !fields[colName] || !fields[colNationalID] {
		t.Fatalf("expected problems for %s and %s, got %+v", colName, colNationalID, problems)
	}
	for _, p := range problems {
		if p.Row != 4 {
			t.Fatalf("expected problems on row 4, got %+v", p)
		}
	}
}

func TestValidateDriverNationalIDLength(t *testing.T) {
	rows := []tabular.Row{driverRow(2, map[string]string{colNationalID: "12345"})}

	problems := Validate(rows, domain.KindDriver)
	if len(problems) != 1 || problems[0].Field != colNationalID {
		t.Fatalf("expected one %s problem, got %+v", colNationalID, problems)
	}
}

func TestValidateDriverRejectsUnknownRole(t *testing.T) {
	rows := []tabular.Row{driverRow(2, map[string]string{colRole: "Manager"})}

	problems := Validate(rows, domain.KindDriver)
	if len(problems) != 1 || problems[0].Field != colRole {
		t.Fatalf("expected one %s problem, got %+v", colRole, problems)
	}
}

func TestValidateAffiliatedDriverRequiresPlate(t *testing.T) {
	rows := []tabular.Row{driverRow(2, map[string]string{colRole: "Affiliated"})}

	problems := Validate(rows, domain.KindDriver)
	if len(problems) != 1 || problems[0].Field != colPlateNumber {
		t.Fatalf("expected one %s problem, got %+v", colPlateNumber, problems)
	}

	rows = []tabular.Row{driverRow(2, map[string]string{colRole: "affiliated", colPlateNumber: "ABC1234"})}
	if problems := Validate(rows, domain.KindDriver); len(problems) != 0 {
		t.Fatalf("expected no problems with plate present, got %+v", problems)
	}
}

func TestValidateDriverAddressChain(t *testing.T) {
	// Any address field pulls in city and state.
	rows := []tabular.Row{driverRow(2, map[string]string{colNeighborhood: "Centro"})}
	fields := problemFields(Validate(rows, domain.KindDriver))
	if !fields[colCity] || !fields[colState] {
		t.Fatalf("expected city and state problems, got %+v", fields)
	}

	// A street additionally requires a neighborhood.
	rows = []tabular.Row{driverRow(2, map[string]string{
		colStreet: "Rua das Flores",
		colCity:   "Recife",
		colState:  "PE",
	})}
	problems := Validate(rows, domain.KindDriver)
	if len(problems) != 1 || problems[0].Field != colNeighborhood {
		t.Fatalf("expected one %s problem, got %+v", colNeighborhood, problems)
	}

	// Complete chain passes.
	rows = []tabular.Row{driverRow(2, map[string]string{
		colStreet:       "Rua das Flores",
		colNeighborhood: "Boa Vista",
		colCity:         "Recife",
		colState:        "PE",
	})}
	if problems := Validate(rows, domain.KindDriver); len(problems) != 0 {
		t.Fatalf("expected no problems, got %+v", problems)
	}
}

func TestValidateCustomer(t *testing.T) {
	rows := []tabular.Row{{
		SourceRow: 2,
		Cells:     map[string]string{colName: "Transportes Ltda", colTaxID: "12.345.678/0001-95"},
	}}
	if problems := Validate(rows, domain.KindCustomer); len(problems) != 0 {
		t.Fatalf("expected no problems, got %+v", problems)
	}

	rows = []tabular.Row{{
		SourceRow: 3,
		Cells:     map[string]string{colName: "Transportes Ltda", colTaxID: "1234"},
	}}
	problems := Validate(rows, domain.KindCustomer)
	if len(problems) != 1 || problems[0].Field != colTaxID {
		t.Fatalf("expected one %s problem, got %+v", colTaxID, problems)
	}
}

func TestValidateVehicle(t *testing.T) {
	rows := []tabular.Row{{
		SourceRow: 2,
		Cells:     map[string]string{colPlateNumber: "ABC-1234", colVehicleClass: "Truck"},
	}}
	if problems := Validate(rows, domain.KindVehicle); len(problems) != 0 {
		t.Fatalf("expected no problems, got %+v", problems)
	}

	rows = []tabular.Row{{
		SourceRow: 3,
		Cells:     map[string]string{colPlateNumber: "ABCD-12345", colVehicleClass: "Truck"},
	}}
	problems := Validate(rows, domain.KindVehicle)
	if len(problems) != 1 || problems[0].Field != colPlateNumber {
		t.Fatalf("expected one %s problem, got %+v", colPlateNumber, problems)
	}

	rows = []tabular.Row{{
		SourceRow: 4,
		Cells:     map[string]string{colPlateNumber: "ABC1234"},
	}}
	problems = Validate(rows, domain.KindVehicle)
	if len(problems) != 1 || problems[0].Field != colVehicleClass {
		t.Fatalf("expected one %s problem, got %+v", colVehicleClass, problems)
	}
}
