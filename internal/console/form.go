package console

import (
	"strings"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/staffview"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of text inputs, one per staff field plus a trailing password input.
// Position and Status are choice fields cycled with ←/→ instead of typed.
type form struct {
	inputs        []textinput.Model
	passwordLabel string
	focus         int
}

func newForm(d *staffview.Draft, passwordLabel string) *form {
	f := &form{passwordLabel: passwordLabel}
	for _, field := range staffview.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 255
		in.SetValue(d.Get(field))
		if field == staffview.FieldHireDate || field == staffview.FieldLicenseExpiry {
			in.Placeholder = "YYYY-MM-DD"
		}
		f.inputs = append(f.inputs, in)
	}
	pw := textinput.New()
	pw.Prompt = ""
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	f.inputs = append(f.inputs, pw)
	f.setFocus(0)
	return f
}

func (f *form) passwordIndex() int { return len(staffview.Fields) }

func (f *form) password() string { return f.inputs[f.passwordIndex()].Value() }

// field returns the staff field under focus; ok is false on the password input
// or when focus has left the form.
func (f *form) field() (staffview.Field, bool) {
	if f.focus < 0 || f.focus >= len(staffview.Fields) {
		return 0, false
	}
	return staffview.Fields[f.focus], true
}

func (f *form) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func isChoice(field staffview.Field) bool {
	return field == staffview.FieldPosition || field == staffview.FieldStatus
}

func choices(field staffview.Field) []string {
	if field == staffview.FieldStatus {
		out := make([]string, len(model.StaffStatuses))
		for i, s := range model.StaffStatuses {
			out[i] = string(s)
		}
		return out
	}
	return model.FlatPositions()
}

// cycle moves a choice field to the next/previous option and returns the new value.
func (f *form) cycle(dir int) (string, bool) {
	field, ok := f.field()
	if !ok || !isChoice(field) {
		return "", false
	}
	opts := choices(field)
	cur := -1
	for i, o := range opts {
		if o == f.inputs[f.focus].Value() {
			cur = i
			break
		}
	}
	next := 0
	if cur >= 0 {
		next = (cur + dir + len(opts)) % len(opts)
	} else if dir < 0 {
		next = len(opts) - 1
	}
	f.inputs[f.focus].SetValue(opts[next])
	return opts[next], true
}

// update routes a key to the focused input. changed is true when its value moved.
func (f *form) update(msg tea.KeyMsg) (changed bool, cmd tea.Cmd) {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return false, nil
	}
	if field, ok := f.field(); ok && isChoice(field) {
		switch msg.String() {
		case "left":
			_, changed = f.cycle(-1)
		case "right":
			_, changed = f.cycle(1)
		}
		return changed, nil
	}
	before := f.inputs[f.focus].Value()
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f.inputs[f.focus].Value() != before, cmd
}

func (f *form) value(i int) string { return f.inputs[i].Value() }

func (f *form) view(b *strings.Builder) {
	for i, field := range staffview.Fields {
		label := field.String()
		if field.Required() {
			label += " *"
		}
		f.row(b, i, label)
		if field == staffview.FieldPosition {
			if g := model.GroupOf(f.inputs[i].Value()); g != "" {
				b.WriteString(labelStyle.Render("") + groupStyle.Render(g) + "\n")
			}
		}
	}
	f.row(b, f.passwordIndex(), f.passwordLabel)
}

func (f *form) row(b *strings.Builder, i int, label string) {
	marker := "  "
	if i == f.focus {
		marker = selectedStyle.Render("> ")
	}
	b.WriteString(marker + labelStyle.Render(label) + f.inputs[i].View() + "\n")
}
