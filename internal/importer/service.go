package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/address"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/repository"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/tabular"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service imports spreadsheets of drivers, customers and vehicles.
//
// Rows are processed strictly in file order, one at a time. The address
// resolver's find-or-create has no unique index or transaction backing it,
// so sequential processing is the mechanism that keeps natural keys unique;
// parallelizing a run would reintroduce the duplicate-creation race.
type Service struct {
	organizations   repository.OrganizationRepository
	drivers         repository.DriverRepository
	customers       repository.CustomerRepository
	vehicles        repository.VehicleRepository
	driverAddresses repository.DriverAddressRepository
	resolver        *address.Resolver
	logs            repository.ImportLogRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewService creates a new import service.
func NewService(
	organizations repository.OrganizationRepository,
	drivers repository.DriverRepository,
	customers repository.CustomerRepository,
	vehicles repository.VehicleRepository,
	driverAddresses repository.DriverAddressRepository,
	resolver *address.Resolver,
	logs repository.ImportLogRepository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		organizations:   organizations,
		drivers:         drivers,
		customers:       customers,
		vehicles:        vehicles,
		driverAddresses: driverAddresses,
		resolver:        resolver,
		logs:            logs,
		logger:          logger,
		now:             time.Now,
	}
}

// Request describes one import run.
type Request struct {
	OrganizationID uuid.UUID
	Kind           domain.ImportKind
	FileName       string
	Data           io.Reader
}

// Import runs the full pipeline for one uploaded workbook. Only
// ingestion-time failures (unparseable workbook, empty sheet) abort the run;
// every row-level failure is captured in its Outcome and the remaining rows
// still execute.
func (s *Service) Import(ctx context.Context, req Request) (domain.Summary, error) {
	if req.OrganizationID == uuid.Nil {
		return domain.Summary{}, errors.New("organization id is required")
	}
	if !req.Kind.Valid() {
		return domain.Summary{}, fmt.Errorf("unsupported import kind %q", req.Kind)
	}
	if req.Data == nil {
		return domain.Summary{}, errors.New("data reader is required")
	}

	// Every imported record is scoped to the organization; an unknown id
	// aborts before any row is read.
	if _, err := s.organizations.GetByID(ctx, req.OrganizationID); err != nil {
		return domain.Summary{}, err
	}

	payload, err := io.ReadAll(req.Data)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to read upload: %w", err)
	}

	rows, err := tabular.Parse(req.FileName, payload)
	if err != nil {
		return domain.Summary{}, err
	}

	outcomes := make([]domain.Outcome, 0, len(rows))
	for _, row := range rows {
		outcome := s.importRow(ctx, req.OrganizationID, row, req.Kind)
		s.logOutcome(ctx, req, outcome)
		outcomes = append(outcomes, outcome)
	}

	summary := Summarize(outcomes)
	s.logger.Info("import completed",
		zap.String("kind", string(req.Kind)),
		zap.String("file", req.FileName),
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// importRow parses one raw row into its typed record and imports it. A row
// that fails validation never reaches the store. It never returns an error:
// every failure is captured in the row's Outcome.
func (s *Service) importRow(ctx context.Context, organizationID uuid.UUID, row tabular.Row, kind domain.ImportKind) domain.Outcome {
	switch kind {
	case domain.KindDriver:
		record, problems := parseDriverRow(row)
		if len(problems) > 0 {
			return failedOutcome(row.SourceRow, problems)
		}
		return s.importDriver(ctx, organizationID, record)
	case domain.KindCustomer:
		record, problems := parseCustomerRow(row)
		if len(problems) > 0 {
			return failedOutcome(row.SourceRow, problems)
		}
		return s.importCustomer(ctx, organizationID, record)
	case domain.KindVehicle:
		record, problems := parseVehicleRow(row)
		if len(problems) > 0 {
			return failedOutcome(row.SourceRow, problems)
		}
		return s.importVehicle(ctx, organizationID, record)
	}
	return domain.Outcome{
		Row:    row.SourceRow,
		Status: domain.OutcomeFailed,
		Errors: []string{fmt.Sprintf("unsupported import kind %q", kind)},
	}
}

func (s *Service) importDriver(ctx context.Context, organizationID uuid.UUID, record driverRecord) domain.Outcome {
	outcome := domain.Outcome{Row: record.Row, Status: domain.OutcomeSuccess}

	created, err := s.drivers.Create(ctx, domain.Driver{
		OrganizationID: organizationID,
		Name:           record.Name,
		CPF:            record.CPF,
		Email:          record.Email,
		Phone:          record.Phone,
		BirthDate:      record.BirthDate,
		Gender:         record.Gender,
		Role:           record.Role,
		Status:         domain.DriverStatusActive,
		CreatedAt:      s.now(),
	})
	if err != nil {
		outcome.Status = domain.OutcomeFailed
		outcome.Errors = append(outcome.Errors, err.Error())
		return outcome
	}
	outcome.EntityID = created.ID

	// Address is enrichment, not a precondition: the driver already exists,
	// so a resolution failure becomes a warning on a successful outcome.
	if record.Address != nil {
		if err := s.attachAddress(ctx, organizationID, created.ID, *record.Address); err != nil {
			outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("address not linked: %v", err))
		}
	}

	if record.Role == domain.RoleAffiliated && record.Plate != "" {
		_, err := s.vehicles.Create(ctx, domain.Vehicle{
			OrganizationID: organizationID,
			Plate:          record.Plate,
			VehicleClass:   record.VehicleClass,
			DriverID:       created.ID,
			CreatedAt:      s.now(),
		})
		if err != nil {
			// The driver record stays; there is no compensating rollback.
			outcome.Status = domain.OutcomeFailed
			outcome.Errors = append(outcome.Errors, err.Error())
		}
	}

	return outcome
}

func (s *Service) attachAddress(ctx context.Context, organizationID uuid.UUID, driverID int64, record addressRecord) error {
	streetID, err := s.resolver.ResolveStreet(
		ctx,
		organizationID,
		record.State,
		record.City,
		record.Neighborhood,
		record.Street,
		record.PostalCode,
	)
	if err != nil {
		return err
	}

	_, err = s.driverAddresses.Create(ctx, domain.DriverAddress{
		DriverID:   driverID,
		StreetID:   streetID,
		Number:     record.Number,
		Complement: record.Complement,
	})
	return err
}

func (s *Service) importCustomer(ctx context.Context, organizationID uuid.UUID, record customerRecord) domain.Outcome {
	outcome := domain.Outcome{Row: record.Row, Status: domain.OutcomeSuccess}

	created, err := s.customers.Create(ctx, domain.Customer{
		OrganizationID: organizationID,
		Name:           record.Name,
		CNPJ:           record.CNPJ,
		Email:          record.Email,
		Phone:          record.Phone,
		CreatedAt:      s.now(),
	})
	if err != nil {
		outcome.Status = domain.OutcomeFailed
		outcome.Errors = append(outcome.Errors, err.Error())
		return outcome
	}

	outcome.EntityID = created.ID
	return outcome
}

// importVehicle registers a standalone fleet vehicle. It never creates an
// owning driver.
func (s *Service) importVehicle(ctx context.Context, organizationID uuid.UUID, record vehicleRecord) domain.Outcome {
	outcome := domain.Outcome{Row: record.Row, Status: domain.OutcomeSuccess}

	created, err := s.vehicles.Create(ctx, domain.Vehicle{
		OrganizationID: organizationID,
		Plate:          record.Plate,
		VehicleClass:   record.VehicleClass,
		CreatedAt:      s.now(),
	})
	if err != nil {
		outcome.Status = domain.OutcomeFailed
		outcome.Errors = append(outcome.Errors, err.Error())
		return outcome
	}

	outcome.EntityID = created.ID
	return outcome
}

func failedOutcome(row int, problems []domain.Problem) domain.Outcome {
	messages := make([]string, len(problems))
	for i, problem := range problems {
		messages[i] = fmt.Sprintf("%s: %s", problem.Field, problem.Message)
	}
	return domain.Outcome{
		Row:    row,
		Status: domain.OutcomeFailed,
		Errors: messages,
	}
}

// logOutcome persists every error and warning of the row for later review.
// Logging failures are swallowed; they must not affect the import itself.
func (s *Service) logOutcome(ctx context.Context, req Request, outcome domain.Outcome) {
	if s.logs == nil {
		return
	}

	messages := make([]string, 0, len(outcome.Errors)+len(outcome.Warnings))
	messages = append(messages, outcome.Errors...)
	messages = append(messages, outcome.Warnings...)
	if len(messages) == 0 {
		return
	}

	rowNumber := outcome.Row
	for _, message := range messages {
		entry := domain.ImportLogEntry{
			OrganizationID: req.OrganizationID,
			Kind:           req.Kind,
			FileName:       req.FileName,
			RowNumber:      &rowNumber,
			Message:        message,
		}
		if err := s.logs.Record(ctx, entry); err != nil {
			s.logger.Warn("failed to record import log",
				zap.Int("row", outcome.Row),
				zap.Error(err),
			)
		}
	}

	if outcome.Status == domain.OutcomeFailed {
		s.logger.Debug("row import failed",
			zap.Int("row", outcome.Row),
			zap.String("errors", strings.Join(outcome.Errors, "; ")),
		)
	}
}
