package console

import (
	"fmt"
	"strings"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type listView struct {
	svc       service.StaffService
	search    textinput.Model
	positions []string // index 0 is "all positions"
	posIdx    int
	result    *service.StaffList
	cursor    int
	err       error
}

func newListView(svc service.StaffService) *listView {
	search := textinput.New()
	search.Placeholder = "Search name, email or position"
	search.Prompt = "/ "
	search.Focus()

	v := &listView{
		svc:       svc,
		search:    search,
		positions: append([]string{""}, model.FlatPositions()...),
	}
	v.refresh()
	return v
}

func (v *listView) query() service.ListQuery {
	return service.ListQuery{
		Search:   v.search.Value(),
		Position: v.positions[v.posIdx],
	}
}

// refresh recomputes the list from the current inputs.
func (v *listView) refresh() {
	v.result, v.err = v.svc.ListStaff(v.query())
	if v.result == nil {
		v.result = &service.StaffList{}
	}
	if v.cursor >= len(v.result.Items) {
		v.cursor = max(len(v.result.Items)-1, 0)
	}
}

func (v *listView) selected() (*model.Staff, bool) {
	if len(v.result.Items) == 0 {
		return nil, false
	}
	return &v.result.Items[v.cursor], true
}

func (v *listView) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		if v.cursor > 0 {
			v.cursor--
		}
		return nil
	case "down":
		if v.cursor < len(v.result.Items)-1 {
			v.cursor++
		}
		return nil
	case "left":
		v.posIdx = (v.posIdx - 1 + len(v.positions)) % len(v.positions)
		v.refresh()
		return nil
	case "right":
		v.posIdx = (v.posIdx + 1) % len(v.positions)
		v.refresh()
		return nil
	}

	before := v.search.Value()
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if v.search.Value() != before {
		v.cursor = 0
		v.refresh()
	}
	return cmd
}

func (v *listView) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Staff"))
	b.WriteString("\n")
	b.WriteString(v.search.View() + "\n")

	filter := v.positions[v.posIdx]
	if filter == "" {
		filter = "All positions"
	}
	b.WriteString(labelStyle.Render("Position") + "‹ " + filter + " ›\n\n")

	if v.err != nil {
		b.WriteString(errorStyle.Render("Could not load staff: "+v.err.Error()) + "\n")
	} else {
		switch v.result.EmptyState() {
		case service.EmptyStateNoStaff:
			b.WriteString("No staff members yet. Press ctrl+n to add one.\n")
		case service.EmptyStateNoMatches:
			b.WriteString("No staff match the current search or filter.\n")
		}
	}

	for i, s := range v.result.Items {
		line := fmt.Sprintf("%-28s %-24s %s", s.LastName+", "+s.FirstName, s.Position, s.Status)
		if i == v.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf("%d of %d · ↑/↓ select · ←/→ position · enter open · ctrl+n new · ctrl+c quit",
		len(v.result.Items), v.result.TotalStaff)))
	return b.String()
}
