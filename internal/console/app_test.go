package console

import (
	"errors"
	"testing"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/repository"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/internal/staffview"
	"go-clinic-staff/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*App, service.StaffService) {
	svc := service.NewStaffService(
		repository.NewMemoryStaffRepo(),
		repository.NewMemoryPatientRepo(model.DemoPatients()...),
		nil,
		logger.Discard(),
	)
	return NewApp(svc, "tester"), svc
}

func press(a *App, keys ...tea.KeyMsg) {
	for _, k := range keys {
		a.Update(k)
	}
}

func typeText(a *App, s string) {
	press(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyNew   = tea.KeyMsg{Type: tea.KeyCtrlN}
)

func TestApp_CreateEditDelete(t *testing.T) {
	a, svc := newTestApp()
	assert.Equal(t, staffview.ListPath, a.Path())
	assert.Contains(t, a.View(), "No staff members yet")

	press(a, keyNew)
	require.Equal(t, staffview.CreatePath, a.Path())

	typeText(a, "Ann")
	press(a, keyTab)
	typeText(a, "Lee")
	press(a, keyTab, keyRight) // position -> Dentist
	press(a, keyTab, keyTab)   // status keeps Active
	typeText(a, "2022-09-12")
	press(a, keySave)

	list, err := svc.ListStaff(service.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	ann := list.Items[0]
	assert.Equal(t, model.PositionDentist, ann.Position)
	assert.Equal(t, model.StatusActive, ann.Status)
	assert.Equal(t, "tester", ann.CreatedBy)
	assert.Equal(t, staffview.DetailPath(ann.ID), a.Path())

	typeText(a, "e")
	typeText(a, "a")
	assert.Contains(t, a.View(), "Anna")
	press(a, keySave)

	stored, err := svc.GetStaffByID(ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", stored.FirstName)
	assert.Contains(t, a.View(), "Assigned patients")

	typeText(a, "d")
	assert.Contains(t, a.View(), "Delete Anna Lee?")
	typeText(a, "y")

	assert.Equal(t, staffview.ListPath, a.Path())
	_, err = svc.GetStaffByID(ann.ID)
	assert.ErrorIs(t, err, service.ErrStaffNotFound)
}

func TestApp_CreateValidationStaysOnForm(t *testing.T) {
	a, svc := newTestApp()
	press(a, keyNew)
	typeText(a, "Ann")
	press(a, keySave)

	assert.Equal(t, staffview.CreatePath, a.Path())
	assert.Contains(t, a.View(), "Validation failed")

	list, _ := svc.ListStaff(service.ListQuery{})
	assert.Zero(t, list.TotalStaff)

	press(a, keyEsc)
	assert.Equal(t, staffview.ListPath, a.Path())
}

func TestApp_EditCancelLeavesRecord(t *testing.T) {
	a, svc := newTestApp()
	created, err := svc.CreateStaff(&service.CreateStaffRequest{
		FirstName: "Bo", LastName: "Kim", Position: "Receptionist", HireDate: "2020-02-02",
	}, "seed")
	require.NoError(t, err)

	a.navigate(staffview.ListPath)
	press(a, keyEnter)
	require.Equal(t, staffview.DetailPath(created.ID), a.Path())
	assert.NotContains(t, a.View(), "Assigned patients")
	assert.Contains(t, a.View(), model.Placeholder, "absent phone renders the placeholder")

	typeText(a, "e")
	typeText(a, "zzz")
	press(a, keyEsc)

	stored, err := svc.GetStaffByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bo", stored.FirstName)

	press(a, keyEsc)
	assert.Equal(t, staffview.ListPath, a.Path())
}

func TestApp_UnknownDetailShowsNotFound(t *testing.T) {
	a, _ := newTestApp()
	a.navigate("/staff/does-not-exist")
	assert.Contains(t, a.View(), "Staff member not found")
	press(a, keyEsc)
	assert.Equal(t, staffview.ListPath, a.Path())
}

type failingList struct {
	service.StaffService
}

func (failingList) ListStaff(service.ListQuery) (*service.StaffList, error) {
	return nil, errors.New("database unreachable")
}

func TestListView_ErrorHidesEmptyState(t *testing.T) {
	a := NewApp(failingList{}, "tester")
	view := a.View()
	assert.Contains(t, view, "Could not load staff: database unreachable")
	assert.NotContains(t, view, "No staff members yet")
	assert.NotContains(t, view, "No staff match")
}
