package repository

import (
	"sync"
	"time"

	"go-clinic-staff/internal/model"

	"github.com/google/uuid"
)

// MemoryStaffRepo is an in-process StaffRepository. Every read and write
// copies the record so callers never share memory with the stored value.
type MemoryStaffRepo struct {
	mu    sync.RWMutex
	order []uuid.UUID
	rows  map[uuid.UUID]*model.Staff
	now   func() time.Time
}

func NewMemoryStaffRepo() *MemoryStaffRepo {
	return &MemoryStaffRepo{
		rows: make(map[uuid.UUID]*model.Staff),
		now:  time.Now,
	}
}

func (r *MemoryStaffRepo) FindAll() ([]model.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Staff, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.rows[id].Clone())
	}
	return out, nil
}

func (r *MemoryStaffRepo) FindByID(id uuid.UUID) (*model.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return row.Clone(), nil
}

func (r *MemoryStaffRepo) FindByLoginEmail(login string) (*model.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		row := r.rows[id]
		if row.LoginEmail != nil && *row.LoginEmail == login {
			return row.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryStaffRepo) Create(staff *model.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	now := r.now()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	r.rows[staff.ID] = staff.Clone()
	r.order = append(r.order, staff.ID)
	return nil
}

func (r *MemoryStaffRepo) Update(staff *model.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.rows[staff.ID]
	if !ok {
		return ErrNotFound
	}
	staff.CreatedAt = existing.CreatedAt
	staff.UpdatedAt = r.now()
	r.rows[staff.ID] = staff.Clone()
	return nil
}

func (r *MemoryStaffRepo) Delete(id uuid.UUID, deletedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.rows, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryStaffRepo) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return ErrNotFound
	}
	h := hashedPassword
	row.Password = &h
	return nil
}

// MemoryPatientRepo is an in-process PatientRepository seeded by the caller.
type MemoryPatientRepo struct {
	mu       sync.RWMutex
	patients []model.Patient
}

func NewMemoryPatientRepo(patients ...model.Patient) *MemoryPatientRepo {
	r := &MemoryPatientRepo{}
	for _, p := range patients {
		r.Add(p)
	}
	return r
}

// Add appends a patient, generating an id when missing, and returns the stored copy.
func (r *MemoryPatientRepo) Add(p model.Patient) model.Patient {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.patients = append(r.patients, p)
	return p
}

// Remove deletes a patient; staff assignments pointing at it are left untouched.
func (r *MemoryPatientRepo) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.patients {
		if p.ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return
		}
	}
}

func (r *MemoryPatientRepo) FindAll() ([]model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Patient{}, r.patients...), nil
}

func (r *MemoryPatientRepo) FindByIDs(ids []string) ([]model.Patient, error) {
	all, _ := r.FindAll()
	return orderByIDs(all, ids), nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
