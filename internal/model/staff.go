package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// StaffStatus is the employment status of a staff member.
type StaffStatus string

const (
	StatusActive   StaffStatus = "Active"
	StatusOnLeave  StaffStatus = "On leave"
	StatusInactive StaffStatus = "Inactive"
)

// StaffStatuses lists the valid statuses in display order.
var StaffStatuses = []StaffStatus{StatusActive, StatusOnLeave, StatusInactive}

// IsValidStatus reports whether s is one of the three literal statuses.
func IsValidStatus(s string) bool {
	for _, status := range StaffStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Staff is a clinic employee. Nil optional fields are "absent" and render as Placeholder.
type Staff struct {
	BaseModel
	FirstName string      `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string      `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Position  string      `gorm:"type:varchar(100);not null;index" json:"position"`
	Status    StaffStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	HireDate  time.Time   `gorm:"type:date;not null" json:"hire_date"`

	Email *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone *string `gorm:"type:varchar(50)" json:"phone,omitempty"`

	// Login credential. Password holds a bcrypt hash and is never serialized.
	LoginEmail *string `gorm:"type:varchar(255);index" json:"login_email,omitempty"`
	Password   *string `gorm:"type:varchar(255)" json:"-"`

	LicenseNumber *string    `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	LicenseExpiry *time.Time `gorm:"type:date" json:"license_expiry,omitempty"`

	EmergencyContactName  *string `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `gorm:"type:varchar(50)" json:"emergency_contact_phone,omitempty"`

	Notes *string `gorm:"type:text" json:"notes,omitempty"`

	// Ordered set of patient ids; only meaningful for assignable positions.
	AssignedPatientIDs pq.StringArray `gorm:"type:text[]" json:"assigned_patient_ids"`
}

// TableName specifies the table name for GORM
func (Staff) TableName() string {
	return "staff"
}

// FullName returns "First Last".
func (s *Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// SetPassword hashes and stores password.
func (s *Staff) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hashed)
	s.Password = &h
	return nil
}

// CheckPassword verifies password against the stored hash.
func (s *Staff) CheckPassword(password string) bool {
	if s.Password == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*s.Password), []byte(password)) == nil
}

// HasPassword reports whether a login password has been set.
func (s *Staff) HasPassword() bool {
	return s.Password != nil && *s.Password != ""
}

// Clone returns a deep copy; the copy shares no pointers or slices with s.
func (s *Staff) Clone() *Staff {
	c := *s
	c.Email = cloneString(s.Email)
	c.Phone = cloneString(s.Phone)
	c.LoginEmail = cloneString(s.LoginEmail)
	c.Password = cloneString(s.Password)
	c.LicenseNumber = cloneString(s.LicenseNumber)
	c.EmergencyContactName = cloneString(s.EmergencyContactName)
	c.EmergencyContactPhone = cloneString(s.EmergencyContactPhone)
	c.Notes = cloneString(s.Notes)
	if s.LicenseExpiry != nil {
		t := *s.LicenseExpiry
		c.LicenseExpiry = &t
	}
	if s.AssignedPatientIDs != nil {
		c.AssignedPatientIDs = append(pq.StringArray{}, s.AssignedPatientIDs...)
	}
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Display returns the value of an optional field or Placeholder when absent.
func Display(v *string) string {
	if v == nil {
		return Placeholder
	}
	return *v
}

// DisplayDate formats an optional date or returns Placeholder.
func DisplayDate(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format(DateLayout)
}

// StaffResponse is used for API responses (no credentials)
type StaffResponse struct {
	ID                      uuid.UUID   `json:"id"`
	FirstName               string      `json:"first_name"`
	LastName                string      `json:"last_name"`
	Position                string      `json:"position"`
	PositionGroup           string      `json:"position_group,omitempty"`
	Status                  StaffStatus `json:"status"`
	HireDate                string      `json:"hire_date"`
	Email                   *string     `json:"email"`
	Phone                   *string     `json:"phone"`
	LoginEmail              *string     `json:"login_email"`
	HasPassword             bool        `json:"has_password"`
	LicenseNumber           *string     `json:"license_number"`
	LicenseExpiry           *string     `json:"license_expiry"`
	EmergencyContactName    *string     `json:"emergency_contact_name"`
	EmergencyContactPhone   *string     `json:"emergency_contact_phone"`
	Notes                   *string     `json:"notes"`
	AssignedPatientIDs      []string    `json:"assigned_patient_ids"`
	CanHaveAssignedPatients bool        `json:"can_have_assigned_patients"`
	CanDeleteCharts         bool        `json:"can_delete_charts"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
	CreatedBy               string      `json:"created_by"`
	UpdatedBy               string      `json:"updated_by"`
}

// ToResponse converts Staff to StaffResponse
func (s *Staff) ToResponse() StaffResponse {
	resp := StaffResponse{
		ID:                      s.ID,
		FirstName:               s.FirstName,
		LastName:                s.LastName,
		Position:                s.Position,
		PositionGroup:           GroupOf(s.Position),
		Status:                  s.Status,
		HireDate:                s.HireDate.Format(DateLayout),
		Email:                   s.Email,
		Phone:                   s.Phone,
		LoginEmail:              s.LoginEmail,
		HasPassword:             s.HasPassword(),
		LicenseNumber:           s.LicenseNumber,
		EmergencyContactName:    s.EmergencyContactName,
		EmergencyContactPhone:   s.EmergencyContactPhone,
		Notes:                   s.Notes,
		AssignedPatientIDs:      append([]string{}, s.AssignedPatientIDs...),
		CanHaveAssignedPatients: CanHaveAssignedPatients(s.Position),
		CanDeleteCharts:         CanDeleteCharts(s.Position),
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
		CreatedBy:               s.CreatedBy,
		UpdatedBy:               s.UpdatedBy,
	}
	if s.LicenseExpiry != nil {
		expiry := s.LicenseExpiry.Format(DateLayout)
		resp.LicenseExpiry = &expiry
	}
	return resp
}
