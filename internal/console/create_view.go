package console

import (
	"strings"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/internal/staffview"

	tea "github.com/charmbracelet/bubbletea"
)

type createView struct {
	svc   service.StaffService
	actor string
	draft *staffview.Draft
	form  *form
	err   error
}

func newCreateView(svc service.StaffService, actor string) *createView {
	d := staffview.NewDraft()
	return &createView{
		svc:   svc,
		actor: actor,
		draft: d,
		form:  newForm(d, "Password"),
	}
}

// submit creates the record and returns it; the caller navigates to its detail screen.
func (v *createView) submit() (*model.Staff, error) {
	staff, err := v.svc.CreateStaff(v.draft.CreateRequest(v.form.password()), v.actor)
	v.err = err
	return staff, err
}

func (v *createView) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		v.form.setFocus((v.form.focus + 1) % len(v.form.inputs))
		return nil
	case "shift+tab", "up":
		v.form.setFocus((v.form.focus - 1 + len(v.form.inputs)) % len(v.form.inputs))
		return nil
	}
	changed, cmd := v.form.update(msg)
	if field, ok := v.form.field(); ok && changed {
		_ = v.draft.Set(field, v.form.value(v.form.focus))
	}
	return cmd
}

func (v *createView) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New staff member"))
	b.WriteString("\n")
	v.form.view(&b)
	if v.err != nil {
		b.WriteString("\n" + errorStyle.Render(v.err.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("tab next field · ←/→ choose position/status · ctrl+s save · esc back"))
	return b.String()
}
