package staffview

import (
	"errors"
	"testing"
	"time"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/repository"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a testify mock of Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetStaffByID(id uuid.UUID) (*model.Staff, error) {
	args := m.Called(id)
	if s, ok := args.Get(0).(*model.Staff); ok {
		return s.Clone(), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) UpdateStaff(id uuid.UUID, req *service.UpdateStaffRequest, updaterID string) (*model.Staff, error) {
	args := m.Called(id, req, updaterID)
	if s, ok := args.Get(0).(*model.Staff); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) DeleteStaff(id uuid.UUID, deleterID string) error {
	args := m.Called(id, deleterID)
	return args.Error(0)
}

func newService(t *testing.T, patients ...model.Patient) (service.StaffService, *model.Staff) {
	t.Helper()
	svc := service.NewStaffService(repository.NewMemoryStaffRepo(), repository.NewMemoryPatientRepo(patients...), nil, logger.Discard())
	staff, err := svc.CreateStaff(&service.CreateStaffRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Position:  model.PositionDentist,
		HireDate:  "2021-04-01",
		Password:  strPtr("original"),
	}, "admin")
	require.NoError(t, err)
	return svc, staff
}

func TestOpen_NotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := Open(svc, uuid.New(), "admin")
	assert.ErrorIs(t, err, service.ErrStaffNotFound)
}

func TestDetail_EditSave(t *testing.T) {
	svc, staff := newService(t)
	d, err := Open(svc, staff.ID, "editor")
	require.NoError(t, err)
	assert.Equal(t, ModeViewing, d.Mode())
	assert.Nil(t, d.Draft())

	require.NoError(t, d.StartEdit())
	require.NoError(t, d.SetField(FieldFirstName, "Anna"))
	require.NoError(t, d.SetField(FieldPhone, "555-0100"))
	require.NoError(t, d.SetNewPassword("changed"))

	assert.Equal(t, "Anna", d.Draft().FirstName)
	assert.Equal(t, "Ann", d.Record().FirstName, "record is untouched until save")

	require.NoError(t, d.Save())
	assert.Equal(t, ModeViewing, d.Mode())
	assert.Equal(t, "Anna", d.Record().FirstName)
	assert.Equal(t, "", d.NewPassword())

	stored, err := svc.GetStaffByID(staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", stored.FirstName)
	assert.Equal(t, "555-0100", *stored.Phone)
	assert.Equal(t, "editor", stored.UpdatedBy)
	assert.True(t, stored.CheckPassword("changed"))

	require.NoError(t, d.StartEdit())
	assert.Equal(t, "", d.NewPassword(), "password input starts blank on every edit")
}

func TestDetail_CancelNeverWrites(t *testing.T) {
	store := new(MockStore)
	staff := &model.Staff{FirstName: "Ann", LastName: "Lee", Position: model.PositionDentist, Status: model.StatusActive}
	staff.ID = uuid.New()
	store.On("GetStaffByID", staff.ID).Return(staff, nil)

	d, err := Open(store, staff.ID, "admin")
	require.NoError(t, err)
	require.NoError(t, d.StartEdit())
	require.NoError(t, d.SetField(FieldLastName, "Changed"))
	require.NoError(t, d.TogglePatient("p1"))
	require.NoError(t, d.Cancel())

	assert.Equal(t, ModeViewing, d.Mode())
	assert.Equal(t, "Lee", d.Record().LastName)
	store.AssertNotCalled(t, "UpdateStaff", mock.Anything, mock.Anything, mock.Anything)

	require.NoError(t, d.StartEdit())
	assert.Equal(t, "Lee", d.Draft().LastName, "a new edit starts from the record")
	assert.Empty(t, d.Draft().AssignedPatientIDs)
}

func TestDetail_SaveFailureKeepsBuffer(t *testing.T) {
	store := new(MockStore)
	staff := &model.Staff{FirstName: "Ann", LastName: "Lee", Position: model.PositionDentist, Status: model.StatusActive}
	staff.ID = uuid.New()
	boom := errors.New("store offline")
	store.On("GetStaffByID", staff.ID).Return(staff, nil)
	store.On("UpdateStaff", staff.ID, mock.AnythingOfType("*service.UpdateStaffRequest"), "admin").Return(nil, boom)

	d, err := Open(store, staff.ID, "admin")
	require.NoError(t, err)
	require.NoError(t, d.StartEdit())
	require.NoError(t, d.SetField(FieldNotes, "pending"))

	assert.ErrorIs(t, d.Save(), boom)
	assert.Equal(t, ModeEditing, d.Mode())
	assert.Equal(t, "pending", d.Draft().Notes)
	store.AssertExpectations(t)
}

func TestDetail_DeleteFlow(t *testing.T) {
	svc, staff := newService(t)
	d, err := Open(svc, staff.ID, "admin")
	require.NoError(t, err)

	require.NoError(t, d.RequestDelete())
	assert.Equal(t, ModeConfirmingDelete, d.Mode())
	require.NoError(t, d.CancelDelete())
	assert.Equal(t, ModeViewing, d.Mode())

	_, err = svc.GetStaffByID(staff.ID)
	require.NoError(t, err, "cancelled delete leaves the record")

	require.NoError(t, d.RequestDelete())
	require.NoError(t, d.ConfirmDelete())
	assert.Equal(t, ModeDeleted, d.Mode())

	_, err = svc.GetStaffByID(staff.ID)
	assert.ErrorIs(t, err, service.ErrStaffNotFound)
}

func TestDetail_InvalidTransitions(t *testing.T) {
	svc, staff := newService(t)
	d, err := Open(svc, staff.ID, "admin")
	require.NoError(t, err)

	assert.ErrorIs(t, d.Save(), ErrInvalidTransition)
	assert.ErrorIs(t, d.Cancel(), ErrInvalidTransition)
	assert.ErrorIs(t, d.SetField(FieldNotes, "x"), ErrInvalidTransition)
	assert.ErrorIs(t, d.ConfirmDelete(), ErrInvalidTransition)

	require.NoError(t, d.StartEdit())
	assert.ErrorIs(t, d.RequestDelete(), ErrInvalidTransition, "no delete while editing")
	assert.ErrorIs(t, d.StartEdit(), ErrInvalidTransition)
	assert.ErrorIs(t, d.SetField(Field(99), "x"), ErrUnknownField)
}

func TestDetail_AssignedPatientPanel(t *testing.T) {
	appt := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)
	maya := model.Patient{FirstName: "Maya", LastName: "Okafor", DateOfAppointment: &appt}
	maya.ID = uuid.New()
	lucas := model.Patient{FirstName: "Lucas", LastName: "Berg"}
	lucas.ID = uuid.New()
	patients := []model.Patient{maya, lucas}

	svc, staff := newService(t, patients...)
	d, err := Open(svc, staff.ID, "admin")
	require.NoError(t, err)
	assert.True(t, d.ShowsAssignedPatients())

	require.NoError(t, d.StartEdit())
	require.NoError(t, d.TogglePatient(lucas.ID.String()))
	require.NoError(t, d.TogglePatient(maya.ID.String()))
	require.NoError(t, d.TogglePatient(uuid.NewString()))

	opts := d.PatientChecklist(patients)
	assert.True(t, opts[0].Checked)
	assert.True(t, opts[1].Checked)

	require.NoError(t, d.SetField(FieldPosition, "Receptionist"))
	assert.True(t, d.ShowsAssignedPatients(), "panel follows the persisted position")

	require.NoError(t, d.SetField(FieldPosition, model.PositionDentist))
	require.NoError(t, d.Save())
	assert.Equal(t, []string{"Lucas Berg", "Maya Okafor"}, d.AssignedPatientNames(patients))

	require.NoError(t, d.StartEdit())
	require.NoError(t, d.TogglePatient(lucas.ID.String()))
	assert.Len(t, d.Draft().AssignedPatientIDs, 2)
	assert.Len(t, d.Record().AssignedPatientIDs, 3)
}

func TestDraft_TogglePatientKeepsOrder(t *testing.T) {
	d := NewDraft()
	d.TogglePatient("a")
	d.TogglePatient("b")
	d.TogglePatient("c")
	d.TogglePatient("b")
	assert.Equal(t, []string{"a", "c"}, d.AssignedPatientIDs)
	assert.Equal(t, string(model.StatusActive), d.Status)
}
