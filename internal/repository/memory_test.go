package repository

import (
	"testing"

	"go-clinic-staff/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStaffRepo_CopiesOnReadAndWrite(t *testing.T) {
	repo := NewMemoryStaffRepo()
	s := &model.Staff{FirstName: "Ann", LastName: "Lee", AssignedPatientIDs: []string{"p1"}}
	require.NoError(t, repo.Create(s))
	require.NotEqual(t, uuid.Nil, s.ID)

	s.FirstName = "Mutated"
	s.AssignedPatientIDs[0] = "px"

	got, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "p1", got.AssignedPatientIDs[0])

	got.LastName = "Changed"
	again, _ := repo.FindByID(s.ID)
	assert.Equal(t, "Lee", again.LastName)
}

func TestMemoryStaffRepo_NotFound(t *testing.T) {
	repo := NewMemoryStaffRepo()
	_, err := repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update(&model.Staff{}), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(uuid.New(), "admin"), ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePassword(uuid.New(), "hash"), ErrNotFound)
}

func TestMemoryStaffRepo_FindByLoginEmailAndDelete(t *testing.T) {
	repo := NewMemoryStaffRepo()
	login := "ann"
	a := &model.Staff{FirstName: "Ann", LoginEmail: &login}
	b := &model.Staff{FirstName: "Bo"}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	found, err := repo.FindByLoginEmail("ann")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	require.NoError(t, repo.UpdatePassword(a.ID, "hashed"))
	found, _ = repo.FindByID(a.ID)
	assert.Equal(t, "hashed", *found.Password)

	require.NoError(t, repo.Delete(a.ID, "admin"))
	all, _ := repo.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Bo", all[0].FirstName)
}

func TestMemoryPatientRepo_FindByIDsKeepsOrderAndSkipsStale(t *testing.T) {
	repo := NewMemoryPatientRepo()
	a := repo.Add(model.Patient{FirstName: "A"})
	b := repo.Add(model.Patient{FirstName: "B"})
	repo.Remove(a.ID)

	got, err := repo.FindByIDs([]string{b.ID.String(), a.ID.String(), "not-a-uuid"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].FirstName)
}
