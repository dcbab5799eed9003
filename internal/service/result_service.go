package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"career_path_backend/internal/model"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"career_path_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	leaderboardCacheTTL  = 60 * time.Second
	defaultResultLimit   = 50
	defaultLeaderboardN  = 10
	userHistoryFetchCap  = 500
	comparePopulationCap = 5000
	improvementCutoff    = 3.0
)

// SubmitRequest is the scored-submission payload. The body's test id must
// match the path; answers are keyed by question id.
type SubmitRequest struct {
	TestID    string                            `json:"test_id" binding:"required"`
	Answers   map[string]model.AnswerSubmission `json:"answers" binding:"required"`
	TimeTaken int                               `json:"time_taken" binding:"gte=0"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

// Narrow store interfaces so the service can be exercised against
// in-memory fakes; the GORM repositories satisfy them.
type resultStore interface {
	Create(result *model.TestResult) error
	FindByUser(userID uint, limit int) ([]model.TestResult, error)
	FindByIDAndUser(id string, userID uint) (*model.TestResult, error)
	DeleteByIDAndUser(id string, userID uint) error
	SetShared(id string, userID uint, shared bool) (*model.TestResult, error)
	FindSharedByID(id string) (*model.TestResult, error)
	FindSharedByTest(testID string, limit int) ([]model.TestResult, error)
	FindByUserAndTest(userID uint, testID string) ([]model.TestResult, error)
	FindByTest(testID string, limit int) ([]model.TestResult, error)
	FindByCategory(category string, limit int) ([]model.TestResult, error)
}

type catalogStore interface {
	FindActiveByID(id string) (*model.Test, error)
	IncrementCompletedCount(id string) error
}

type accountReader interface {
	FindByID(id uint) (*model.User, error)
	FindByIDs(ids []uint) ([]model.User, error)
}

type feedbackWriter interface {
	Upsert(fb *model.ResultFeedback) error
}

type ResultService struct {
	Results     resultStore
	Tests       catalogStore
	Users       accountReader
	Feedback    feedbackWriter
	Redis       *redis.Client
	FrontendURL string
}

func NewResultService(
	results resultStore,
	tests catalogStore,
	users accountReader,
	feedback feedbackWriter,
	rdb *redis.Client,
	frontendURL string,
) *ResultService {
	return &ResultService{
		Results:     results,
		Tests:       tests,
		Users:       users,
		Feedback:    feedback,
		Redis:       rdb,
		FrontendURL: frontendURL,
	}
}

// Submit grades an attempt against the stored test definition and records
// the result. Scores always come from server-side rescoring; any totals a
// client might send are ignored. The test's completed counter is bumped
// best-effort: a failure there is logged and never fails the submission.
func (s *ResultService) Submit(userID uint, pathTestID string, req *SubmitRequest) (*model.TestResult, error) {
	if req.TestID != pathTestID {
		return nil, util.ErrTestIDMismatch
	}

	test, err := s.Tests.FindActiveByID(pathTestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	breakdown := ScoreTest(test, req.Answers)

	result := &model.TestResult{
		UserID:         userID,
		TestID:         test.ID,
		TestTitle:      test.Title,
		TestCategory:   test.Category,
		TotalScore:     breakdown.TotalScore,
		CategoryScores: breakdown.CategoryScores,
		Answers:        req.Answers,
		TimeTaken:      req.TimeTaken,
	}
	if err := s.Results.Create(result); err != nil {
		return nil, err
	}

	if err := s.Tests.IncrementCompletedCount(test.ID); err != nil {
		logger.Log.Warn("completed_count increment failed",
			zap.String("test_id", test.ID), zap.Error(err))
	}

	monitoring.SubmissionCounter.WithLabelValues(test.ID).Inc()
	s.invalidateLeaderboard(test.ID)

	return result, nil
}

func (s *ResultService) UserResults(userID uint, limit int) ([]model.TestResult, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	return s.Results.FindByUser(userID, limit)
}

// UserResult is owner-scoped: someone else's result id reads as missing,
// never as forbidden.
func (s *ResultService) UserResult(id string, userID uint) (*model.TestResult, error) {
	result, err := s.Results.FindByIDAndUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) DeleteResult(id string, userID uint) error {
	err := s.Results.DeleteByIDAndUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}

// Share toggles public visibility of an owned result and returns the
// shareable frontend URL when it went public.
func (s *ResultService) Share(id string, userID uint, shared bool) (*model.TestResult, string, error) {
	result, err := s.Results.SetShared(id, userID, shared)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", util.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	shareURL := ""
	if result.IsShared {
		shareURL = fmt.Sprintf("%s/results/shared/%s", s.FrontendURL, result.ID)
	}
	s.invalidateLeaderboard(result.TestID)
	return result, shareURL, nil
}

// SharedResult is the anonymous-accessible projection of a shared result.
// Unshared and nonexistent ids are indistinguishable to the caller.
func (s *ResultService) SharedResult(id string) (*model.SharedResult, error) {
	result, err := s.Results.FindSharedByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	userName := "Anonymous"
	if user, err := s.Users.FindByID(result.UserID); err == nil {
		userName = user.Name
	}

	return &model.SharedResult{
		ID:             result.ID,
		TestTitle:      result.TestTitle,
		TestCategory:   result.TestCategory,
		TotalScore:     result.TotalScore,
		CategoryScores: result.CategoryScores,
		TimeTaken:      result.TimeTaken,
		CompletedAt:    result.CreatedAt,
		UserName:       userName,
	}, nil
}

// Leaderboard ranks shared results for one test, cached for a minute.
// Only results their owners opted into sharing ever appear here.
func (s *ResultService) Leaderboard(testID string, limit int) (*model.Leaderboard, error) {
	if limit <= 0 {
		limit = defaultLeaderboardN
	}

	cacheKey := fmt.Sprintf("leaderboard:%s:%d", testID, limit)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(context.Background(), cacheKey).Result(); err == nil {
			var board model.Leaderboard
			if json.Unmarshal([]byte(cached), &board) == nil {
				return &board, nil
			}
		}
	}

	if _, err := s.Tests.FindActiveByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	results, err := s.Results.FindSharedByTest(testID, limit)
	if err != nil {
		return nil, err
	}

	board := &model.Leaderboard{
		TestID:  testID,
		Entries: BuildLeaderboard(results, s.userNames(results), limit),
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(board); err == nil {
			s.Redis.Set(context.Background(), cacheKey, payload, leaderboardCacheTTL)
		}
	}
	return board, nil
}

// Compare places the caller's best attempt on a test against every
// recorded attempt, overall and per category.
func (s *ResultService) Compare(userID uint, testID string) (*model.CompareReport, error) {
	attempts, err := s.Results.FindByUserAndTest(userID, testID)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, util.ErrNotFound
	}

	best := attempts[0]
	for _, attempt := range attempts[1:] {
		if attempt.TotalScore > best.TotalScore {
			best = attempt
		}
	}

	population, err := s.Results.FindByTest(testID, comparePopulationCap)
	if err != nil {
		return nil, err
	}

	scores := make([]int, 0, len(population))
	totalScore, totalTime := 0, 0
	for _, r := range population {
		scores = append(scores, r.TotalScore)
		totalScore += r.TotalScore
		totalTime += r.TimeTaken
	}

	percentile, hasData := Percentile(scores, best.TotalScore)

	report := &model.CompareReport{
		UserScore:         best.TotalScore,
		UserTime:          best.TimeTaken,
		Percentile:        percentile,
		TotalParticipants: len(population),
		AverageScore:      roundDiv(totalScore, len(population)),
		AverageTime:       roundDiv(totalTime, len(population)),
	}
	if !hasData || len(population) <= 1 {
		report.Comparison = "Not enough results to compare against yet"
	} else if best.TotalScore >= report.AverageScore {
		report.Comparison = "above average"
	} else {
		report.Comparison = "below average"
	}

	report.CategoryComparison = make(map[string]model.CategoryComparison, len(best.CategoryScores))
	for _, category := range sortedKeys(best.CategoryScores) {
		userScore := best.CategoryScores[category]
		sum, count := 0, 0
		categoryScores := make([]int, 0, len(population))
		for _, r := range population {
			if score, ok := r.CategoryScores[category]; ok {
				sum += score
				count++
				categoryScores = append(categoryScores, score)
			}
		}
		avg := 0.0
		if count > 0 {
			avg = float64(sum) / float64(count)
		}
		catPercentile, _ := Percentile(categoryScores, userScore)
		report.CategoryComparison[category] = model.CategoryComparison{
			UserScore:         userScore,
			AverageScore:      avg,
			BetterThanAverage: float64(userScore) > avg,
			Percentile:        catPercentile,
		}
	}

	return report, nil
}

// CategoryAnalytics aggregates every attempt in a test category.
func (s *ResultService) CategoryAnalytics(category string) (*model.CategoryAnalytics, error) {
	results, err := s.Results.FindByCategory(category, comparePopulationCap)
	if err != nil {
		return nil, err
	}

	analytics := &model.CategoryAnalytics{
		Category:      category,
		TotalAttempts: len(results),
		Trends:        BucketMonthly(results),
	}

	scores := make([]int, 0, len(results))
	totalScore, totalTime := 0, 0
	for _, r := range results {
		scores = append(scores, r.TotalScore)
		totalScore += r.TotalScore
		totalTime += r.TimeTaken
	}
	analytics.AverageScore = roundDiv(totalScore, len(results))
	analytics.AverageTime = roundDiv(totalTime, len(results))
	analytics.ScoreDistribution = ScoreDistribution(scores)
	return analytics, nil
}

// SaveFeedback upserts the caller's rating for one of their own results.
// Feedback on a foreign result reads as the result not existing.
func (s *ResultService) SaveFeedback(resultID string, userID uint, req *FeedbackRequest) (*model.ResultFeedback, error) {
	if _, err := s.Results.FindByIDAndUser(resultID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	fb := &model.ResultFeedback{
		ResultID: resultID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.Feedback.Upsert(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// UserStats is the self-service dashboard panel built from the caller's
// whole history.
func (s *ResultService) UserStats(userID uint) (*model.UserStats, error) {
	recent, err := s.Results.FindByUser(userID, userHistoryFetchCap)
	if err != nil {
		return nil, err
	}

	stats := &model.UserStats{
		TestsCompleted:   len(recent),
		ImprovementAreas: []string{},
		RecentActivity:   []model.RecentActivity{},
	}
	if len(recent) == 0 {
		return stats, nil
	}

	// Repository order is newest-first; the rollups want creation order
	// for their tie-breaks.
	chronological := make([]model.TestResult, len(recent))
	for i, r := range recent {
		chronological[len(recent)-1-i] = r
	}

	totalScore, totalSeconds := 0, 0
	for _, r := range chronological {
		totalScore += r.TotalScore
		totalSeconds += r.TimeTaken
	}
	stats.AverageScore = roundDiv(totalScore, len(chronological))
	stats.TotalTimeSpent = totalSeconds / 60
	stats.FavoriteCategory = FavoriteCategory(chronological)
	stats.StrongestSkill = StrongestSkill(chronological)

	averages, order := SkillAverages(chronological)
	stats.SkillBreakdown = averages
	for _, skill := range order {
		if averages[skill] < improvementCutoff {
			stats.ImprovementAreas = append(stats.ImprovementAreas, skill)
		}
	}
	sort.SliceStable(stats.ImprovementAreas, func(i, j int) bool {
		return averages[stats.ImprovementAreas[i]] < averages[stats.ImprovementAreas[j]]
	})

	for i := 0; i < len(recent) && i < 5; i++ {
		stats.RecentActivity = append(stats.RecentActivity, model.RecentActivity{
			TestTitle:   recent[i].TestTitle,
			Score:       recent[i].TotalScore,
			CompletedAt: recent[i].CreatedAt,
		})
	}
	return stats, nil
}

func (s *ResultService) userNames(results []model.TestResult) map[uint]string {
	ids := make([]uint, 0, len(results))
	seen := make(map[uint]bool)
	for _, r := range results {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names
	}
	users, err := s.Users.FindByIDs(ids)
	if err != nil {
		logger.Log.Warn("leaderboard name lookup failed", zap.Error(err))
		return names
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func (s *ResultService) invalidateLeaderboard(testID string) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	iter := s.Redis.Scan(ctx, 0, fmt.Sprintf("leaderboard:%s:*", testID), 100).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
}
