package service

import (
	"strings"
	"time"

	"go-clinic-staff/internal/model"
)

// CreateStaffRequest is the creation form payload.
type CreateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Position  string `json:"position" validate:"required,staff_position"`
	Status    string `json:"status" validate:"omitempty,staff_status"`
	HireDate  string `json:"hire_date" validate:"required"` // YYYY-MM-DD

	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`

	LoginEmail *string `json:"login_email"`
	Password   *string `json:"password"`

	LicenseNumber *string `json:"license_number"`
	LicenseExpiry *string `json:"license_expiry"` // YYYY-MM-DD

	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	Notes *string `json:"notes"`
}

// Normalize trims required text and turns blank optional values into absent ones.
// Non-blank optional values are stored as typed.
func (r *CreateStaffRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.HireDate = strings.TrimSpace(r.HireDate)
	r.Email = optional(r.Email)
	r.Phone = optional(r.Phone)
	r.LoginEmail = optional(r.LoginEmail)
	r.Password = optionalSecret(r.Password)
	r.LicenseNumber = optional(r.LicenseNumber)
	r.LicenseExpiry = optional(r.LicenseExpiry)
	r.EmergencyContactName = optional(r.EmergencyContactName)
	r.EmergencyContactPhone = optional(r.EmergencyContactPhone)
	r.Notes = optional(r.Notes)
}

// UpdateStaffRequest is a staged edit buffer: every field overwrites the record.
// NewPassword is transient; blank leaves the stored password untouched.
type UpdateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Status    string `json:"status" validate:"required,staff_status"`
	HireDate  string `json:"hire_date" validate:"required"`

	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`

	LoginEmail  *string `json:"login_email"`
	NewPassword string  `json:"new_password"`

	LicenseNumber *string `json:"license_number"`
	LicenseExpiry *string `json:"license_expiry"`

	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	Notes *string `json:"notes"`

	AssignedPatientIDs []string `json:"assigned_patient_ids"`
}

// Normalize mirrors CreateStaffRequest.Normalize and de-duplicates patient ids.
func (r *UpdateStaffRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.HireDate = strings.TrimSpace(r.HireDate)
	r.Email = optional(r.Email)
	r.Phone = optional(r.Phone)
	r.LoginEmail = optional(r.LoginEmail)
	r.LicenseNumber = optional(r.LicenseNumber)
	r.LicenseExpiry = optional(r.LicenseExpiry)
	r.EmergencyContactName = optional(r.EmergencyContactName)
	r.EmergencyContactPhone = optional(r.EmergencyContactPhone)
	r.Notes = optional(r.Notes)
	r.AssignedPatientIDs = uniqueIDs(r.AssignedPatientIDs)
}

// optional treats whitespace-only values as absent and keeps everything else verbatim.
func optional(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

// optionalSecret keeps the value verbatim; only the empty string is absent.
func optionalSecret(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := parseDate(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
