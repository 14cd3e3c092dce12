package staffview

import (
	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/service"
)

// Field identifies one editable staff form field.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldPosition
	FieldStatus
	FieldHireDate
	FieldEmail
	FieldPhone
	FieldLoginEmail
	FieldLicenseNumber
	FieldLicenseExpiry
	FieldEmergencyContactName
	FieldEmergencyContactPhone
	FieldNotes
)

// Fields lists the form fields in display order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldPosition,
	FieldStatus,
	FieldHireDate,
	FieldEmail,
	FieldPhone,
	FieldLoginEmail,
	FieldLicenseNumber,
	FieldLicenseExpiry,
	FieldEmergencyContactName,
	FieldEmergencyContactPhone,
	FieldNotes,
}

var fieldLabels = map[Field]string{
	FieldFirstName:             "First name",
	FieldLastName:              "Last name",
	FieldPosition:              "Position",
	FieldStatus:                "Status",
	FieldHireDate:              "Hire date",
	FieldEmail:                 "Email",
	FieldPhone:                 "Phone",
	FieldLoginEmail:            "Login email / username",
	FieldLicenseNumber:         "License number",
	FieldLicenseExpiry:         "License expiry",
	FieldEmergencyContactName:  "Emergency contact",
	FieldEmergencyContactPhone: "Emergency phone",
	FieldNotes:                 "Notes",
}

func (f Field) String() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return "unknown"
}

// Required reports whether the creation form insists on a value.
func (f Field) Required() bool {
	switch f {
	case FieldFirstName, FieldLastName, FieldPosition, FieldHireDate:
		return true
	}
	return false
}

// Draft is an edit buffer: raw form values, detached from any stored record.
type Draft struct {
	FirstName             string
	LastName              string
	Position              string
	Status                string
	HireDate              string
	Email                 string
	Phone                 string
	LoginEmail            string
	LicenseNumber         string
	LicenseExpiry         string
	EmergencyContactName  string
	EmergencyContactPhone string
	Notes                 string
	AssignedPatientIDs    []string
}

// NewDraft returns the blank creation form (status preselected as Active).
func NewDraft() *Draft {
	return &Draft{Status: string(model.StatusActive)}
}

// DraftFromStaff copies a record into a buffer; absent values become "".
func DraftFromStaff(s *model.Staff) *Draft {
	d := &Draft{
		FirstName:             s.FirstName,
		LastName:              s.LastName,
		Position:              s.Position,
		Status:                string(s.Status),
		HireDate:              s.HireDate.Format(model.DateLayout),
		Email:                 deref(s.Email),
		Phone:                 deref(s.Phone),
		LoginEmail:            deref(s.LoginEmail),
		LicenseNumber:         deref(s.LicenseNumber),
		EmergencyContactName:  deref(s.EmergencyContactName),
		EmergencyContactPhone: deref(s.EmergencyContactPhone),
		Notes:                 deref(s.Notes),
		AssignedPatientIDs:    append([]string{}, s.AssignedPatientIDs...),
	}
	if s.LicenseExpiry != nil {
		d.LicenseExpiry = s.LicenseExpiry.Format(model.DateLayout)
	}
	return d
}

func (d *Draft) ptr(f Field) *string {
	switch f {
	case FieldFirstName:
		return &d.FirstName
	case FieldLastName:
		return &d.LastName
	case FieldPosition:
		return &d.Position
	case FieldStatus:
		return &d.Status
	case FieldHireDate:
		return &d.HireDate
	case FieldEmail:
		return &d.Email
	case FieldPhone:
		return &d.Phone
	case FieldLoginEmail:
		return &d.LoginEmail
	case FieldLicenseNumber:
		return &d.LicenseNumber
	case FieldLicenseExpiry:
		return &d.LicenseExpiry
	case FieldEmergencyContactName:
		return &d.EmergencyContactName
	case FieldEmergencyContactPhone:
		return &d.EmergencyContactPhone
	case FieldNotes:
		return &d.Notes
	}
	return nil
}

// Get returns the staged value of f.
func (d *Draft) Get(f Field) string {
	if p := d.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set stages value for f only.
func (d *Draft) Set(f Field, value string) error {
	p := d.ptr(f)
	if p == nil {
		return ErrUnknownField
	}
	*p = value
	return nil
}

// TogglePatient appends id when missing, otherwise removes it; other ids keep their order.
func (d *Draft) TogglePatient(id string) {
	for i, existing := range d.AssignedPatientIDs {
		if existing == id {
			d.AssignedPatientIDs = append(d.AssignedPatientIDs[:i:i], d.AssignedPatientIDs[i+1:]...)
			return
		}
	}
	d.AssignedPatientIDs = append(d.AssignedPatientIDs, id)
}

// Request turns the buffer into an update. Blank optional values are sent as
// "" and normalized to absent by the service.
func (d *Draft) Request(newPassword string) *service.UpdateStaffRequest {
	return &service.UpdateStaffRequest{
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		Position:              d.Position,
		Status:                d.Status,
		HireDate:              d.HireDate,
		Email:                 strPtr(d.Email),
		Phone:                 strPtr(d.Phone),
		LoginEmail:            strPtr(d.LoginEmail),
		NewPassword:           newPassword,
		LicenseNumber:         strPtr(d.LicenseNumber),
		LicenseExpiry:         strPtr(d.LicenseExpiry),
		EmergencyContactName:  strPtr(d.EmergencyContactName),
		EmergencyContactPhone: strPtr(d.EmergencyContactPhone),
		Notes:                 strPtr(d.Notes),
		AssignedPatientIDs:    append([]string{}, d.AssignedPatientIDs...),
	}
}

// CreateRequest turns the buffer into a creation payload.
func (d *Draft) CreateRequest(password string) *service.CreateStaffRequest {
	return &service.CreateStaffRequest{
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		Position:              d.Position,
		Status:                d.Status,
		HireDate:              d.HireDate,
		Email:                 strPtr(d.Email),
		Phone:                 strPtr(d.Phone),
		LoginEmail:            strPtr(d.LoginEmail),
		Password:              strPtr(password),
		LicenseNumber:         strPtr(d.LicenseNumber),
		LicenseExpiry:         strPtr(d.LicenseExpiry),
		EmergencyContactName:  strPtr(d.EmergencyContactName),
		EmergencyContactPhone: strPtr(d.EmergencyContactPhone),
		Notes:                 strPtr(d.Notes),
	}
}

func (d *Draft) clone() *Draft {
	c := *d
	c.AssignedPatientIDs = append([]string{}, d.AssignedPatientIDs...)
	return &c
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func strPtr(v string) *string {
	return &v
}
