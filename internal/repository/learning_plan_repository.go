package repository

import (
	"career_path_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningPlanRepository struct {
	DB *gorm.DB
}

func NewLearningPlanRepository(db *gorm.DB) *LearningPlanRepository {
	return &LearningPlanRepository{DB: db}
}

func (r *LearningPlanRepository) FindByUserID(userID uint) (*model.LearningPlan, error) {
	var plan model.LearningPlan
	err := r.DB.First(&plan, "user_id = ?", userID).Error
	return &plan, err
}

// Upsert keeps at most one plan per user; regeneration replaces it wholesale.
func (r *LearningPlanRepository) Upsert(plan *model.LearningPlan) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(plan).Error
}
