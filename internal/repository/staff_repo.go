package repository

import (
	"errors"

	"go-clinic-staff/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("record not found")

type StaffRepository interface {
	FindAll() ([]model.Staff, error)
	FindByID(id uuid.UUID) (*model.Staff, error)
	FindByLoginEmail(login string) (*model.Staff, error)
	Create(staff *model.Staff) error
	Update(staff *model.Staff) error
	Delete(id uuid.UUID, deletedBy string) error
	UpdatePassword(id uuid.UUID, hashedPassword string) error
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db}
}

func (r *staffRepo) FindAll() ([]model.Staff, error) {
	var staff []model.Staff
	if err := r.db.Order("created_at ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepo) FindByID(id uuid.UUID) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.First(&staff, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

func (r *staffRepo) FindByLoginEmail(login string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.Where("login_email = ?", login).First(&staff).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

func (r *staffRepo) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

// Update writes every column, so nil optional fields are stored as NULL.
func (r *staffRepo) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}

func (r *staffRepo) Delete(id uuid.UUID, deletedBy string) error {
	res := r.db.Model(&model.Staff{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *staffRepo) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.Staff{}).Where("id = ?", id).Update("password", hashedPassword).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
