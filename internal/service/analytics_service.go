package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
)

// rollupFetchCap bounds how many rows any in-process rollup reads.
// Platform-scale reporting beyond that belongs in a warehouse, not here.
const rollupFetchCap = 5000

const recentActivityCount = 10

type AnalyticsService struct {
	Users   *repository.UserRepository
	Tests   *repository.TestRepository
	Results *repository.ResultRepository
}

func NewAnalyticsService(
	users *repository.UserRepository,
	tests *repository.TestRepository,
	results *repository.ResultRepository,
) *AnalyticsService {
	return &AnalyticsService{Users: users, Tests: tests, Results: results}
}

// Overview is the admin landing dashboard: platform totals, the most
// completed tests, latest submissions and a 30-day daily activity series.
func (s *AnalyticsService) Overview() (*model.PlatformOverview, error) {
	userCount, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	testCount, err := s.Tests.Count()
	if err != nil {
		return nil, err
	}
	resultCount, err := s.Results.Count()
	if err != nil {
		return nil, err
	}

	overview := &model.PlatformOverview{
		TotalUsers:     int(userCount),
		TotalTests:     int(testCount),
		TotalResults:   int(resultCount),
		RecentActivity: []model.RecentActivity{},
	}
	if userCount > 0 {
		overview.AverageResultsPerUser = roundDiv(int(resultCount), int(userCount))
	}

	top, err := s.Tests.TopByCompletions(popularTestCount)
	if err != nil {
		return nil, err
	}
	for _, t := range top {
		overview.TopTests = append(overview.TopTests, model.TestRef{
			ID:             t.ID,
			Title:          t.Title,
			CompletedCount: t.CompletedCount,
		})
	}

	recent, err := s.Results.FindRecent(recentActivityCount)
	if err != nil {
		return nil, err
	}
	for _, r := range recent {
		overview.RecentActivity = append(overview.RecentActivity, model.RecentActivity{
			TestTitle:   r.TestTitle,
			Score:       r.TotalScore,
			CompletedAt: r.CreatedAt,
		})
	}

	since := time.Now().UTC().AddDate(0, 0, -30)
	window, err := s.Results.FindSince(since, rollupFetchCap)
	if err != nil {
		return nil, err
	}
	overview.DailyActivity = BucketDaily(window)

	return overview, nil
}

// TestReport is per-test attempt statistics for every test, active or
// retired, plus a most-popular/highest-scoring summary.
func (s *AnalyticsService) TestReport() (*model.TestAnalyticsReport, error) {
	tests, err := s.Tests.TopByCompletions(rollupFetchCap)
	if err != nil {
		return nil, err
	}

	report := &model.TestAnalyticsReport{Tests: []model.TestAnalytics{}}
	report.Summary.TotalTests = len(tests)

	for _, t := range tests {
		results, err := s.Results.FindByTest(t.ID, rollupFetchCap)
		if err != nil {
			return nil, err
		}

		analytics := model.TestAnalytics{
			ID:            t.ID,
			Title:         t.Title,
			Category:      t.Category,
			Difficulty:    t.Difficulty,
			TotalAttempts: len(results),
		}
		totalScore, totalTime := 0, 0
		for _, r := range results {
			totalScore += r.TotalScore
			totalTime += r.TimeTaken
		}
		analytics.AverageScore = roundDiv(totalScore, len(results))
		analytics.AverageTime = roundDiv(totalTime, len(results))
		analytics.CompletionRate = CompletionRate(len(results), t.CompletedCount)
		if len(results) > 0 {
			last := results[len(results)-1].CreatedAt
			analytics.LastAttempt = &last
		}
		report.Tests = append(report.Tests, analytics)

		if report.Summary.MostPopular == nil ||
			analytics.TotalAttempts > report.Summary.MostPopular.TotalAttempts {
			a := analytics
			report.Summary.MostPopular = &a
		}
		if report.Summary.HighestScoring == nil ||
			analytics.AverageScore > report.Summary.HighestScoring.AverageScore {
			a := analytics
			report.Summary.HighestScoring = &a
		}
	}
	return report, nil
}

// UserReport is per-user engagement statistics in signup order.
func (s *AnalyticsService) UserReport() (*model.UserAnalyticsReport, error) {
	users, err := s.Users.ListAll(rollupFetchCap)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	activeCutoff := now.AddDate(0, 0, -30)

	report := &model.UserAnalyticsReport{Users: []model.UserAnalytics{}}
	report.Summary.TotalUsers = len(users)

	totalTests := 0
	for _, u := range users {
		results, err := s.Results.FindByUser(u.ID, rollupFetchCap)
		if err != nil {
			return nil, err
		}

		analytics := model.UserAnalytics{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			JoinedAt:   u.CreatedAt,
			TotalTests: len(results),
		}
		totalScore := 0
		for _, r := range results {
			totalScore += r.TotalScore
		}
		analytics.AverageScore = roundDiv(totalScore, len(results))
		if len(results) > 0 {
			// Newest-first order from the repository.
			last := results[0].CreatedAt
			analytics.LastActivity = &last

			chronological := make([]model.TestResult, len(results))
			for i, r := range results {
				chronological[len(results)-1-i] = r
			}
			analytics.FavoriteCategory = FavoriteCategory(chronological)

			if last.After(activeCutoff) {
				report.Summary.ActiveUsers30d++
			}
		}
		if u.CreatedAt.After(monthStart) || u.CreatedAt.Equal(monthStart) {
			report.Summary.NewUsersThisMonth++
		}
		totalTests += len(results)
		report.Users = append(report.Users, analytics)
	}
	if len(users) > 0 {
		report.Summary.AverageTestsPerUser = roundDiv(totalTests, len(users))
	}
	return report, nil
}

// PerformanceReport aggregates the last N days of attempts by day and by
// test category.
func (s *AnalyticsService) PerformanceReport(periodDays int) (*model.PerformanceReport, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -periodDays)
	results, err := s.Results.FindSince(since, rollupFetchCap)
	if err != nil {
		return nil, err
	}

	report := &model.PerformanceReport{
		PeriodDays:          periodDays,
		DailyPerformance:    DailyPerformanceRollup(results),
		CategoryPerformance: CategoryPerformanceRollup(results),
	}
	totalScore, totalTime := 0, 0
	for _, r := range results {
		totalScore += r.TotalScore
		totalTime += r.TimeTaken
	}
	report.Summary.TotalAttempts = len(results)
	report.Summary.OverallAverageScore = roundDiv(totalScore, len(results))
	report.Summary.OverallAverageTime = roundDiv(totalTime, len(results))
	return report, nil
}

// ExportResults streams every recorded result, newest first, as CSV or
// a JSON array.
func (s *AnalyticsService) ExportResults(w io.Writer, format string) error {
	results, err := s.Results.FindAll(rollupFetchCap)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(w).Encode(results)
	}

	header := []string{"result_id", "user_id", "test_id", "test_title", "test_category",
		"total_score", "time_taken_seconds", "is_shared", "completed_at"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.ID,
			strconv.FormatUint(uint64(r.UserID), 10),
			r.TestID,
			r.TestTitle,
			r.TestCategory,
			strconv.Itoa(r.TotalScore),
			strconv.Itoa(r.TimeTaken),
			strconv.FormatBool(r.IsShared),
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return writeCSV(w, header, rows)
}

// ExportUsers streams the account list in signup order, as CSV or a
// JSON array. Password hashes never serialize either way.
func (s *AnalyticsService) ExportUsers(w io.Writer, format string) error {
	users, err := s.Users.ListAll(rollupFetchCap)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(w).Encode(users)
	}

	header := []string{"user_id", "name", "email", "role", "disabled", "joined_at", "last_login"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			u.Email,
			string(u.Role),
			strconv.FormatBool(u.Disabled),
			u.CreatedAt.UTC().Format(time.RFC3339),
			u.LastLogin.UTC().Format(time.RFC3339),
		})
	}
	return writeCSV(w, header, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	return nil
}
