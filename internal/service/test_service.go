package service

import (
	"errors"
	"sort"

	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"

	"gorm.io/gorm"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	popularTestCount = 5
)

type TestService struct {
	Tests   *repository.TestRepository
	Results *repository.ResultRepository
}

func NewTestService(tests *repository.TestRepository, results *repository.ResultRepository) *TestService {
	return &TestService{Tests: tests, Results: results}
}

// ListTests pages through the active catalog with optional category and
// difficulty filters. Question bodies stay server-side: the listing only
// carries a one-question preview per test.
func (s *TestService) ListTests(category, difficulty string, limit, offset int) (*model.TestListPage, error) {
	tests, err := s.Tests.FindActive()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Test, 0, len(tests))
	for _, t := range tests {
		if category != "" && t.Category != category {
			continue
		}
		if difficulty != "" && string(t.Difficulty) != difficulty {
			continue
		}
		filtered = append(filtered, t)
	}

	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	total := len(filtered)
	page := make([]model.Test, 0, limit)
	for i := offset; i < total && len(page) < limit; i++ {
		t := filtered[i]
		if len(t.Questions) > 0 {
			t.QuestionsPreview = t.Questions[:1]
		}
		t.Questions = nil
		page = append(page, t)
	}

	return &model.TestListPage{
		Tests: page,
		Pagination: model.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(page) < total,
		},
	}, nil
}

// Categories lists the distinct categories of the active catalog with
// test counts, alphabetically.
func (s *TestService) Categories() ([]model.CategoryCount, error) {
	tests, err := s.Tests.FindActive()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, t := range tests {
		counts[t.Category]++
	}

	categories := make([]model.CategoryCount, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, model.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// CatalogStats summarizes the active catalog for the landing dashboard.
func (s *TestService) CatalogStats() (*model.CatalogStats, error) {
	tests, err := s.Tests.FindActive()
	if err != nil {
		return nil, err
	}

	stats := &model.CatalogStats{
		TotalTests:   len(tests),
		ByDifficulty: make(map[string]int),
		ByCategory:   make(map[string]int),
	}
	for _, t := range tests {
		stats.ByDifficulty[string(t.Difficulty)]++
		stats.ByCategory[t.Category]++
		stats.TotalCompletions += t.CompletedCount
	}

	sorted := make([]model.Test, len(tests))
	copy(sorted, tests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedCount > sorted[j].CompletedCount
	})
	for i := 0; i < len(sorted) && i < popularTestCount; i++ {
		stats.MostPopular = append(stats.MostPopular, model.TestRef{
			ID:             sorted[i].ID,
			Title:          sorted[i].Title,
			CompletedCount: sorted[i].CompletedCount,
		})
	}
	return stats, nil
}

// GetTest returns the full definition of an active test. When claims are
// present the projection also reports whether this user has completed the
// test and how many attempts they have.
func (s *TestService) GetTest(id string, claims *util.Claims) (*model.Test, error) {
	test, err := s.Tests.FindActiveByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if claims != nil {
		attempts, err := s.Results.FindByUserAndTest(claims.UserID, id)
		if err != nil {
			return nil, err
		}
		count := len(attempts)
		completed := count > 0
		test.UserAttempts = &count
		test.UserCompleted = &completed
	}
	return test, nil
}

func (s *TestService) CreateTest(test *model.Test) (*model.Test, error) {
	test.IsActive = true
	test.CompletedCount = 0
	test.QuestionsCount = len(test.Questions)
	if err := s.Tests.Create(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) UpdateTest(test *model.Test) (*model.Test, error) {
	if len(test.Questions) > 0 {
		test.QuestionsCount = len(test.Questions)
	}
	err := s.Tests.Update(test)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Tests.FindByID(test.ID)
}

// DeactivateTest hides a test from the catalog without touching the
// results already recorded against it.
func (s *TestService) DeactivateTest(id string) (*model.Test, error) {
	test, err := s.Tests.Deactivate(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return test, nil
}

// TestResults is the admin view of every attempt recorded for one test,
// newest first.
func (s *TestService) TestResults(testID string, limit, offset int) ([]model.TestResult, *model.Pagination, error) {
	if _, err := s.Tests.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrNotFound
		}
		return nil, nil, err
	}

	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	results, total, err := s.Results.FindByTestPaged(testID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return results, &model.Pagination{
		Total:   int(total),
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(results) < int(total),
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}
