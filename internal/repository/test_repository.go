package repository

import (
	"career_path_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

// FindActive lists the live catalog; soft-deleted tests never surface.
func (r *TestRepository) FindActive() ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Where("is_active = ?", true).
		Order("created_at desc").Find(&tests).Error
	return tests, err
}

func (r *TestRepository) FindActiveByID(id string) (*model.Test, error) {
	var t model.Test
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&t).Error
	return &t, err
}

func (r *TestRepository) FindByID(id string) (*model.Test, error) {
	var t model.Test
	err := r.DB.First(&t, "id = ?", id).Error
	return &t, err
}

func (r *TestRepository) Create(t *model.Test) error {
	return r.DB.Create(t).Error
}

func (r *TestRepository) Update(t *model.Test) error {
	res := r.DB.Model(&model.Test{}).Where("id = ?", t.ID).
		Select("*").Omit("id", "created_at", "completed_count").Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate soft-deletes by flipping is_active; rows are never removed.
func (r *TestRepository) Deactivate(id string) (*model.Test, error) {
	res := r.DB.Model(&model.Test{}).Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// IncrementCompletedCount bumps the counter atomically in the database.
func (r *TestRepository) IncrementCompletedCount(id string) error {
	return r.DB.Model(&model.Test{}).Where("id = ?", id).
		Update("completed_count", gorm.Expr("completed_count + 1")).Error
}

func (r *TestRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Test{}).Count(&count).Error
	return count, err
}

func (r *TestRepository) TopByCompletions(limit int) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Order("completed_count desc").Limit(limit).Find(&tests).Error
	return tests, err
}
