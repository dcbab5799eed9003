package repository

import (
	"career_path_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.Profile, error) {
	var p model.Profile
	err := r.DB.First(&p, "user_id = ?", userID).Error
	return &p, err
}

// Upsert resolves concurrent edits by last-write-wins on the user id key.
func (r *ProfileRepository) Upsert(p *model.Profile) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(p).Error
}
