package service

import (
	"errors"
	"fmt"
	"strings"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/repository"
	"go-clinic-staff/internal/ws"
	"go-clinic-staff/pkg/logger"
	"go-clinic-staff/pkg/validator"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrValidation    = errors.New("Validation failed")
	ErrInvalidDate   = errors.New("invalid date format, use YYYY-MM-DD")
)

type StaffService interface {
	ListStaff(q ListQuery) (*StaffList, error)
	GetStaffByID(id uuid.UUID) (*model.Staff, error)
	CreateStaff(req *CreateStaffRequest, creatorID string) (*model.Staff, error)
	UpdateStaff(id uuid.UUID, req *UpdateStaffRequest, updaterID string) (*model.Staff, error)
	DeleteStaff(id uuid.UUID, deleterID string) error
	AssignedPatients(id uuid.UUID) ([]model.Patient, error)
	GetPatients() ([]model.Patient, error)
}

type staffService struct {
	staffRepo   repository.StaffRepository
	patientRepo repository.PatientRepository
	wsHub       *ws.Hub
	log         *logger.Logger
}

// NewStaffService wires the service. hub may be nil to disable change events.
func NewStaffService(staffRepo repository.StaffRepository, patientRepo repository.PatientRepository, hub *ws.Hub, log *logger.Logger) StaffService {
	return &staffService{
		staffRepo:   staffRepo,
		patientRepo: patientRepo,
		wsHub:       hub,
		log:         log,
	}
}

func (s *staffService) ListStaff(q ListQuery) (*StaffList, error) {
	all, err := s.staffRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return &StaffList{
		Items:      FilterStaff(all, q),
		TotalStaff: len(all),
	}, nil
}

func (s *staffService) GetStaffByID(id uuid.UUID) (*model.Staff, error) {
	staff, err := s.staffRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) CreateStaff(req *CreateStaffRequest, creatorID string) (*model.Staff, error) {
	// 1. Normalize blanks to absent, then validate
	req.Normalize()
	if err := validationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Parse dates
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}
	licenseExpiry, err := parseOptionalDate(req.LicenseExpiry)
	if err != nil {
		return nil, err
	}

	status := model.StatusActive
	if req.Status != "" {
		status = model.StaffStatus(req.Status)
	}

	// 3. Build record
	staff := &model.Staff{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Position:              req.Position,
		Status:                status,
		HireDate:              hireDate,
		Email:                 req.Email,
		Phone:                 req.Phone,
		LoginEmail:            req.LoginEmail,
		LicenseNumber:         req.LicenseNumber,
		LicenseExpiry:         licenseExpiry,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Notes:                 req.Notes,
		AssignedPatientIDs:    pq.StringArray{},
	}
	staff.CreatedBy = creatorID
	staff.UpdatedBy = creatorID

	if req.Password != nil {
		if err := staff.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	// 4. Persist
	if err := s.staffRepo.Create(staff); err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}

	s.log.WithStaff(staff.ID.String(), creatorID).WithField("position", staff.Position).Info("staff created")
	s.publish("staff_created", staff, creatorID, fmt.Sprintf("%s added %s", creatorID, staff.FullName()))

	return staff, nil
}

func (s *staffService) UpdateStaff(id uuid.UUID, req *UpdateStaffRequest, updaterID string) (*model.Staff, error) {
	// 1. Normalize and validate the staged buffer
	req.Normalize()
	if err := validationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing record
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return nil, err
	}

	// 3. Legacy positions may be kept as-is, new ones must come from the taxonomy
	if !model.IsValidPosition(req.Position) && req.Position != staff.Position {
		return nil, fmt.Errorf("%w: Field '%s' failed on tag '%s'", ErrValidation, "UpdateStaffRequest.Position", "staff_position")
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}
	licenseExpiry, err := parseOptionalDate(req.LicenseExpiry)
	if err != nil {
		return nil, err
	}

	// 4. Overwrite every staged field
	staff.FirstName = req.FirstName
	staff.LastName = req.LastName
	staff.Position = req.Position
	staff.Status = model.StaffStatus(req.Status)
	staff.HireDate = hireDate
	staff.Email = req.Email
	staff.Phone = req.Phone
	staff.LoginEmail = req.LoginEmail
	staff.LicenseNumber = req.LicenseNumber
	staff.LicenseExpiry = licenseExpiry
	staff.EmergencyContactName = req.EmergencyContactName
	staff.EmergencyContactPhone = req.EmergencyContactPhone
	staff.Notes = req.Notes
	staff.AssignedPatientIDs = pq.StringArray(req.AssignedPatientIDs)
	staff.UpdatedBy = updaterID

	// 5. Only a non-blank new password replaces the stored one
	passwordChanged := false
	if strings.TrimSpace(req.NewPassword) != "" {
		if err := staff.SetPassword(req.NewPassword); err != nil {
			return nil, errors.New("failed to hash password")
		}
		passwordChanged = true
	}

	// 6. Save, then reload
	if err := s.staffRepo.Update(staff); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("update staff: %w", err)
	}

	updated, err := s.GetStaffByID(id)
	if err != nil {
		return nil, err
	}

	s.log.WithStaff(id.String(), updaterID).WithField("password_changed", passwordChanged).Info("staff updated")
	s.publish("staff_updated", updated, updaterID, fmt.Sprintf("%s updated %s", updaterID, updated.FullName()))

	return updated, nil
}

func (s *staffService) DeleteStaff(id uuid.UUID, deleterID string) error {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return err
	}

	if err := s.staffRepo.Delete(id, deleterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("delete staff: %w", err)
	}

	entry := s.log.WithStaff(id.String(), deleterID)
	if len(staff.AssignedPatientIDs) > 0 {
		entry = entry.WithField("assigned_patients", len(staff.AssignedPatientIDs))
	}
	entry.Info("staff deleted")
	s.publish("staff_deleted", map[string]string{"id": id.String()}, deleterID, fmt.Sprintf("%s removed %s", deleterID, staff.FullName()))

	return nil
}

// AssignedPatients returns the patients assigned to a staff member in assignment
// order. Ids of patients that no longer exist are skipped. Positions that cannot
// hold patients always yield an empty list.
func (s *staffService) AssignedPatients(id uuid.UUID) ([]model.Patient, error) {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return nil, err
	}
	if !model.CanHaveAssignedPatients(staff.Position) {
		return []model.Patient{}, nil
	}
	patients, err := s.patientRepo.FindByIDs(staff.AssignedPatientIDs)
	if err != nil {
		return nil, fmt.Errorf("assigned patients: %w", err)
	}
	return patients, nil
}

func (s *staffService) GetPatients() ([]model.Patient, error) {
	patients, err := s.patientRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *staffService) publish(action string, data interface{}, actor, message string) {
	if staff, ok := data.(*model.Staff); ok {
		data = staff.ToResponse()
	}
	s.wsHub.Publish(ws.Event{
		Type:    "staff_update",
		Action:  action,
		Data:    data,
		Actor:   actor,
		Message: message,
	})
}

func validationError(errs []*validator.ErrorResponse) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return fmt.Errorf("%w: Field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
}
