package repository

import (
	"career_path_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// Upsert keeps one feedback row per (result, user) pair.
func (r *FeedbackRepository) Upsert(fb *model.ResultFeedback) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "result_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(fb).Error
}
