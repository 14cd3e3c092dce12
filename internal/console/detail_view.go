package console

import (
	"errors"
	"strings"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/internal/staffview"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type detailView struct {
	svc      service.StaffService
	detail   *staffview.Detail // nil when the record was not found
	patients []model.Patient
	form     *form
	err      error
}

func newDetailView(svc service.StaffService, id uuid.UUID, actor string) *detailView {
	v := &detailView{svc: svc}
	d, err := staffview.Open(svc, id, actor)
	if err != nil {
		if !errors.Is(err, service.ErrStaffNotFound) {
			v.err = err
		}
		return v
	}
	v.detail = d
	v.patients, v.err = svc.GetPatients()
	return v
}

func (v *detailView) notFound() bool { return v.detail == nil }

// patientRows is the number of focusable checklist rows below the form.
func (v *detailView) patientRows() int {
	if v.detail.ShowsAssignedPatients() {
		return len(v.patients)
	}
	return 0
}

func (v *detailView) focusables() int {
	return len(v.form.inputs) + v.patientRows()
}

// update handles a key and reports whether the screen should go back to the list.
func (v *detailView) update(msg tea.KeyMsg) (back bool, cmd tea.Cmd) {
	if v.notFound() {
		return msg.String() == "esc", nil
	}

	key := msg.String()
	switch v.detail.Mode() {
	case staffview.ModeViewing:
		switch key {
		case "e":
			if v.err = v.detail.StartEdit(); v.err == nil {
				v.form = newForm(v.detail.Draft(), "New password")
			}
		case "d":
			v.err = v.detail.RequestDelete()
		case "esc":
			return true, nil
		}

	case staffview.ModeConfirmingDelete:
		switch key {
		case "y":
			v.err = v.detail.ConfirmDelete()
			return v.err == nil, nil
		case "n", "esc":
			v.err = v.detail.CancelDelete()
		}

	case staffview.ModeEditing:
		return false, v.updateEditing(msg)
	}
	return false, nil
}

func (v *detailView) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+s":
		if v.err = v.detail.Save(); v.err == nil {
			v.form = nil
		}
		return nil
	case "esc":
		v.err = v.detail.Cancel()
		v.form = nil
		return nil
	case "tab", "down":
		v.form.setFocus((v.form.focus + 1) % v.focusables())
		return nil
	case "shift+tab", "up":
		v.form.setFocus((v.form.focus - 1 + v.focusables()) % v.focusables())
		return nil
	case " ", "space":
		if row := v.form.focus - len(v.form.inputs); row >= 0 && row < v.patientRows() {
			v.err = v.detail.TogglePatient(v.patients[row].ID.String())
			return nil
		}
	}

	changed, cmd := v.form.update(msg)
	if !changed {
		return cmd
	}
	if field, ok := v.form.field(); ok {
		v.err = v.detail.SetField(field, v.form.value(v.form.focus))
	} else if v.form.focus == v.form.passwordIndex() {
		v.err = v.detail.SetNewPassword(v.form.password())
	}
	return cmd
}

func recordValue(s *model.Staff, f staffview.Field) string {
	switch f {
	case staffview.FieldEmail:
		return model.Display(s.Email)
	case staffview.FieldPhone:
		return model.Display(s.Phone)
	case staffview.FieldLoginEmail:
		return model.Display(s.LoginEmail)
	case staffview.FieldLicenseNumber:
		return model.Display(s.LicenseNumber)
	case staffview.FieldLicenseExpiry:
		return model.DisplayDate(s.LicenseExpiry)
	case staffview.FieldEmergencyContactName:
		return model.Display(s.EmergencyContactName)
	case staffview.FieldEmergencyContactPhone:
		return model.Display(s.EmergencyContactPhone)
	case staffview.FieldNotes:
		return model.Display(s.Notes)
	}
	return staffview.DraftFromStaff(s).Get(f)
}

func (v *detailView) view() string {
	var b strings.Builder
	if v.notFound() {
		b.WriteString(titleStyle.Render("Staff member not found"))
		b.WriteString("\n")
		if v.err != nil {
			b.WriteString(errorStyle.Render(v.err.Error()) + "\n")
		}
		b.WriteString(helpStyle.Render("esc back to staff list (" + staffview.ListPath + ")"))
		return b.String()
	}

	rec := v.detail.Record()
	b.WriteString(titleStyle.Render(rec.FullName()))
	b.WriteString("\n")

	if v.detail.Mode() == staffview.ModeEditing {
		v.form.view(&b)
	} else {
		for _, f := range staffview.Fields {
			b.WriteString("  " + labelStyle.Render(f.String()) + recordValue(rec, f) + "\n")
		}
	}

	if v.detail.ShowsAssignedPatients() {
		b.WriteString("\n" + titleStyle.Render("Assigned patients"))
		b.WriteString("\n")
		v.patientsView(&b)
	}

	if v.detail.Mode() == staffview.ModeConfirmingDelete {
		b.WriteString("\n" + warnStyle.Render("Delete "+rec.FullName()+"? This cannot be undone. (y/n)") + "\n")
	}
	if v.err != nil {
		b.WriteString("\n" + errorStyle.Render(v.err.Error()) + "\n")
	}

	switch v.detail.Mode() {
	case staffview.ModeEditing:
		b.WriteString(helpStyle.Render("tab next · ←/→ choose · space toggle patient · ctrl+s save · esc cancel"))
	case staffview.ModeViewing:
		b.WriteString(helpStyle.Render("e edit · d delete · esc back"))
	}
	return b.String()
}

func (v *detailView) patientsView(b *strings.Builder) {
	if v.detail.Mode() != staffview.ModeEditing {
		names := v.detail.AssignedPatientNames(v.patients)
		if len(names) == 0 {
			b.WriteString("  No patients assigned.\n")
		}
		for _, n := range names {
			b.WriteString("  • " + n + "\n")
		}
		return
	}
	if len(v.patients) == 0 {
		b.WriteString("  No patients on record.\n")
		return
	}
	for i, opt := range v.detail.PatientChecklist(v.patients) {
		box := "[ ]"
		if opt.Checked {
			box = "[x]"
		}
		line := box + " " + opt.Patient.FullName()
		if opt.Patient.DateOfAppointment != nil {
			line += "  (" + model.DisplayDate(opt.Patient.DateOfAppointment) + ")"
		}
		if v.form.focus == len(v.form.inputs)+i {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
}
