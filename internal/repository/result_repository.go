package repository

import (
	"time"

	"career_path_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(result *model.TestResult) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) FindByUser(userID uint, limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&results).Error
	return results, err
}

// FindByIDAndUser scopes the lookup to the owner, so a foreign id simply
// comes back as not-found.
func (r *ResultRepository) FindByIDAndUser(id string, userID uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&result).Error
	return &result, err
}

func (r *ResultRepository) DeleteByIDAndUser(id string, userID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.TestResult{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ResultRepository) SetShared(id string, userID uint, shared bool) (*model.TestResult, error) {
	res := r.DB.Model(&model.TestResult{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_shared", shared)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByIDAndUser(id, userID)
}

func (r *ResultRepository) FindSharedByID(id string) (*model.TestResult, error) {
	var result model.TestResult
	err := r.DB.Where("id = ? AND is_shared = ?", id, true).First(&result).Error
	return &result, err
}

// FindSharedByTest feeds the leaderboard: best score first, faster time
// breaking ties.
func (r *ResultRepository) FindSharedByTest(testID string, limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("test_id = ? AND is_shared = ?", testID, true).
		Order("total_score desc").Order("time_taken asc").
		Limit(limit).Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByTest(testID string, limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("test_id = ?", testID).
		Order("created_at asc").Limit(limit).Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByTestPaged(testID string, limit, offset int) ([]model.TestResult, int64, error) {
	var results []model.TestResult
	var total int64
	query := r.DB.Model(&model.TestResult{}).Where("test_id = ?", testID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&results).Error
	return results, total, err
}

func (r *ResultRepository) FindByUserAndTest(userID uint, testID string) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("user_id = ? AND test_id = ?", userID, testID).
		Order("created_at desc").Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByCategory(category string, limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("test_category = ?", category).
		Order("created_at asc").Limit(limit).Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindSince(since time.Time, limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("created_at >= ?", since).
		Order("created_at asc").Limit(limit).Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindRecent(limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Order("created_at desc").Limit(limit).Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindAll(limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Order("created_at desc").Limit(limit).Find(&results).Error
	return results, err
}

func (r *ResultRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestResult{}).Count(&count).Error
	return count, err
}
