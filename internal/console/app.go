// Package console is a terminal front end for the staff module built on
// bubbletea. It renders the list, detail and creation screens and drives the
// detail screen through staffview.Detail.
package console

import (
	"strings"

	"go-clinic-staff/internal/service"
	"go-clinic-staff/internal/staffview"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCreate
)

// App is the root bubbletea model.
type App struct {
	svc    service.StaffService
	actor  string
	screen screen
	path   string

	list   *listView
	detail *detailView
	create *createView
}

// NewApp starts on the staff list.
func NewApp(svc service.StaffService, actor string) *App {
	a := &App{svc: svc, actor: actor}
	a.navigate(staffview.ListPath)
	return a
}

// Path is the route of the current screen.
func (a *App) Path() string { return a.path }

// navigate switches screens by route, the same paths the HTTP clients use.
func (a *App) navigate(path string) {
	a.path = path
	switch {
	case path == staffview.ListPath:
		a.screen = screenList
		a.list = newListView(a.svc)
	case path == staffview.CreatePath:
		a.screen = screenCreate
		a.create = newCreateView(a.svc, a.actor)
	case strings.HasPrefix(path, staffview.ListPath+"/"):
		id, err := uuid.Parse(strings.TrimPrefix(path, staffview.ListPath+"/"))
		if err != nil {
			id = uuid.Nil
		}
		a.screen = screenDetail
		a.detail = newDetailView(a.svc, id, a.actor)
	default:
		a.navigate(staffview.ListPath)
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	if key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.screen {
	case screenList:
		switch key.String() {
		case "esc":
			return a, tea.Quit
		case "ctrl+n":
			a.navigate(staffview.CreatePath)
			return a, nil
		case "enter":
			if s, ok := a.list.selected(); ok {
				a.navigate(staffview.DetailPath(s.ID))
			}
			return a, nil
		}
		return a, a.list.update(key)

	case screenDetail:
		back, cmd := a.detail.update(key)
		if back {
			a.navigate(staffview.ListPath)
		}
		return a, cmd

	case screenCreate:
		switch key.String() {
		case "esc":
			a.navigate(staffview.ListPath)
			return a, nil
		case "ctrl+s":
			if staff, err := a.create.submit(); err == nil {
				a.navigate(staffview.DetailPath(staff.ID))
			}
			return a, nil
		}
		return a, a.create.update(key)
	}
	return a, nil
}

func (a *App) View() string {
	switch a.screen {
	case screenDetail:
		return a.detail.view()
	case screenCreate:
		return a.create.view()
	default:
		return a.list.view()
	}
}
