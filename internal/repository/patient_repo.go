package repository

import (
	"go-clinic-staff/internal/model"

	"gorm.io/gorm"
)

// PatientRepository is the read-only patient lookup.
type PatientRepository interface {
	FindAll() ([]model.Patient, error)
	// FindByIDs returns patients in the order of ids, skipping ids that no longer exist.
	FindByIDs(ids []string) ([]model.Patient, error)
}

type patientRepo struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) PatientRepository {
	return &patientRepo{db}
}

func (r *patientRepo) FindAll() ([]model.Patient, error) {
	var patients []model.Patient
	if err := r.db.Order("created_at ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepo) FindByIDs(ids []string) ([]model.Patient, error) {
	if len(ids) == 0 {
		return []model.Patient{}, nil
	}
	var found []model.Patient
	if err := r.db.Where("id IN ?", validUUIDs(ids)).Find(&found).Error; err != nil {
		return nil, err
	}
	return orderByIDs(found, ids), nil
}

func validUUIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			out = append(out, id)
		}
	}
	return out
}

func orderByIDs(patients []model.Patient, ids []string) []model.Patient {
	byID := make(map[string]model.Patient, len(patients))
	for _, p := range patients {
		byID[p.ID.String()] = p
	}
	ordered := make([]model.Patient, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
