// Package staffview holds the screen logic shared by every front end of the
// staff module: the detail screen's view/edit/delete state machine, the edit
// buffer, and the route paths the screens navigate between.
package staffview

import (
	"errors"
	"fmt"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/service"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("action not allowed in the current state")
	ErrUnknownField      = errors.New("unknown staff field")
)

// Store is the part of the staff service the detail screen needs.
type Store interface {
	GetStaffByID(id uuid.UUID) (*model.Staff, error)
	UpdateStaff(id uuid.UUID, req *service.UpdateStaffRequest, updaterID string) (*model.Staff, error)
	DeleteStaff(id uuid.UUID, deleterID string) error
}

// Mode names the active state, for rendering.
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
	ModeConfirmingDelete
	ModeDeleted
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	case ModeConfirmingDelete:
		return "confirming_delete"
	case ModeDeleted:
		return "deleted"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// state is the tagged variant. Only editing carries a buffer and a password
// input, so "confirming delete while editing" cannot be expressed.
type state interface {
	mode() Mode
}

type viewing struct{}

type editing struct {
	draft       *Draft
	newPassword string
}

type confirmingDelete struct{}

type deleted struct{}

func (viewing) mode() Mode          { return ModeViewing }
func (*editing) mode() Mode         { return ModeEditing }
func (confirmingDelete) mode() Mode { return ModeConfirmingDelete }
func (deleted) mode() Mode          { return ModeDeleted }

// Detail is the detail screen for one staff member. It keeps the persisted
// record and, while editing, a separate staged Draft.
type Detail struct {
	store  Store
	actor  string
	record *model.Staff
	state  state
}

// Open loads the record. A missing record yields service.ErrStaffNotFound so the
// caller can render its not-found message.
func Open(store Store, id uuid.UUID, actor string) (*Detail, error) {
	record, err := store.GetStaffByID(id)
	if err != nil {
		return nil, err
	}
	return &Detail{
		store:  store,
		actor:  actor,
		record: record,
		state:  viewing{},
	}, nil
}

func (d *Detail) Mode() Mode { return d.state.mode() }

// Record returns a copy of the persisted record.
func (d *Detail) Record() *model.Staff {
	if d.record == nil {
		return nil
	}
	return d.record.Clone()
}

// Draft returns a copy of the edit buffer, or nil outside the editing state.
func (d *Detail) Draft() *Draft {
	if e, ok := d.state.(*editing); ok {
		return e.draft.clone()
	}
	return nil
}

// NewPassword returns the transient password input ("" outside editing).
func (d *Detail) NewPassword() string {
	if e, ok := d.state.(*editing); ok {
		return e.newPassword
	}
	return ""
}

// StartEdit copies the record into a fresh buffer.
func (d *Detail) StartEdit() error {
	if _, ok := d.state.(viewing); !ok {
		return ErrInvalidTransition
	}
	d.state = &editing{draft: DraftFromStaff(d.record)}
	return nil
}

// SetField changes one buffer field and leaves the others as staged.
func (d *Detail) SetField(f Field, value string) error {
	e, ok := d.state.(*editing)
	if !ok {
		return ErrInvalidTransition
	}
	return e.draft.Set(f, value)
}

// SetNewPassword sets the transient password input.
func (d *Detail) SetNewPassword(value string) error {
	e, ok := d.state.(*editing)
	if !ok {
		return ErrInvalidTransition
	}
	e.newPassword = value
	return nil
}

// TogglePatient adds (appending) or removes patientID in the buffer.
func (d *Detail) TogglePatient(patientID string) error {
	e, ok := d.state.(*editing)
	if !ok {
		return ErrInvalidTransition
	}
	e.draft.TogglePatient(patientID)
	return nil
}

// Save commits the buffer through the store and returns to viewing with the
// refreshed record. On failure the buffer is kept so the user can retry.
func (d *Detail) Save() error {
	e, ok := d.state.(*editing)
	if !ok {
		return ErrInvalidTransition
	}
	req := e.draft.Request(e.newPassword)
	if _, err := d.store.UpdateStaff(d.record.ID, req, d.actor); err != nil {
		return err
	}
	refreshed, err := d.store.GetStaffByID(d.record.ID)
	if err != nil {
		return err
	}
	d.record = refreshed
	d.state = viewing{}
	return nil
}

// Cancel discards the buffer and the password input.
func (d *Detail) Cancel() error {
	if _, ok := d.state.(*editing); !ok {
		return ErrInvalidTransition
	}
	d.state = viewing{}
	return nil
}

// RequestDelete asks for confirmation; only reachable from viewing.
func (d *Detail) RequestDelete() error {
	if _, ok := d.state.(viewing); !ok {
		return ErrInvalidTransition
	}
	d.state = confirmingDelete{}
	return nil
}

// CancelDelete backs out of the confirmation.
func (d *Detail) CancelDelete() error {
	if _, ok := d.state.(confirmingDelete); !ok {
		return ErrInvalidTransition
	}
	d.state = viewing{}
	return nil
}

// ConfirmDelete removes the record. The detail becomes terminal; callers
// navigate to ListPath afterwards.
func (d *Detail) ConfirmDelete() error {
	if _, ok := d.state.(confirmingDelete); !ok {
		return ErrInvalidTransition
	}
	if err := d.store.DeleteStaff(d.record.ID, d.actor); err != nil {
		return err
	}
	d.state = deleted{}
	return nil
}

// ShowsAssignedPatients reports whether the assigned-patient panel is shown.
// It follows the persisted position, not the one staged in the buffer.
func (d *Detail) ShowsAssignedPatients() bool {
	return model.CanHaveAssignedPatients(d.record.Position)
}

// PatientOption is one checkbox row of the assigned-patient panel.
type PatientOption struct {
	Patient model.Patient
	Checked bool
}

// PatientChecklist lists every patient; Checked follows the buffer while
// editing and the persisted record otherwise.
func (d *Detail) PatientChecklist(patients []model.Patient) []PatientOption {
	ids := []string(d.record.AssignedPatientIDs)
	if e, ok := d.state.(*editing); ok {
		ids = e.draft.AssignedPatientIDs
	}
	assigned := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		assigned[id] = struct{}{}
	}
	out := make([]PatientOption, len(patients))
	for i, p := range patients {
		_, checked := assigned[p.ID.String()]
		out[i] = PatientOption{Patient: p, Checked: checked}
	}
	return out
}

// AssignedPatientNames resolves the record's patient ids to names in
// assignment order, skipping ids with no matching patient.
func (d *Detail) AssignedPatientNames(patients []model.Patient) []string {
	byID := make(map[string]model.Patient, len(patients))
	for _, p := range patients {
		byID[p.ID.String()] = p
	}
	var names []string
	for _, id := range d.record.AssignedPatientIDs {
		if p, ok := byID[id]; ok {
			names = append(names, p.FullName())
		}
	}
	return names
}
