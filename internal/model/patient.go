package model

import (
	"strings"
	"time"
)

// Patient is the read-only view of a clinic patient used for staff assignment.
type Patient struct {
	BaseModel
	FirstName         string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName          string     `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfAppointment *time.Time `gorm:"type:date" json:"date_of_appointment,omitempty"`
}

// FullName returns "First Last".
func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// DemoPatients returns sample patients for in-memory runs.
func DemoPatients() []Patient {
	appt := func(s string) *time.Time {
		t, _ := time.Parse(DateLayout, s)
		return &t
	}
	return []Patient{
		{FirstName: "Maya", LastName: "Okafor", DateOfAppointment: appt("2026-11-03")},
		{FirstName: "Lucas", LastName: "Berg", DateOfAppointment: appt("2026-11-04")},
		{FirstName: "Ines", LastName: "Álvarez", DateOfAppointment: appt("2026-11-10")},
		{FirstName: "Tom", LastName: "Reyes"},
	}
}
