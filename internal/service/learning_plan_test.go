package service

import (
	"errors"
	"testing"
	"time"

	"career_path_backend/internal/model"
	"career_path_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func resultWithScores(scores map[string]int) model.TestResult {
	return model.TestResult{CategoryScores: scores}
}

func TestBuildLearningPlanNoResults(t *testing.T) {
	_, err := BuildLearningPlan(1, nil, time.Now())
	assert.ErrorIs(t, err, util.ErrNoResults)
}

func TestBuildLearningPlanTwoResults(t *testing.T) {
	results := []model.TestResult{
		resultWithScores(map[string]int{"social": 5, "analytical": 4}),
		resultWithScores(map[string]int{"technical": 5, "analytical": 2}),
	}

	plan, err := BuildLearningPlan(7, results, time.Now())
	require.NoError(t, err)

	// social 5/1 and technical 5/1 are strengths; analytical averages 3,
	// which lands in neither list.
	require.Len(t, plan.Strengths, 2)
	assert.Equal(t, "social", plan.Strengths[0].Category)
	assert.Equal(t, "technical", plan.Strengths[1].Category)
	assert.Empty(t, plan.Improvements)

	require.Len(t, plan.Recommendations, 2)
	for _, rec := range plan.Recommendations {
		assert.Equal(t, model.RecommendationStrength, rec.Type)
		assert.Equal(t, "medium", rec.Priority)
		assert.Equal(t, "2-3 months", rec.EstimatedTime)
	}
}

func TestBuildLearningPlanThresholds(t *testing.T) {
	results := []model.TestResult{
		resultWithScores(map[string]int{"strong": 4, "gap": 3, "weak": 2}),
	}

	plan, err := BuildLearningPlan(1, results, time.Now())
	require.NoError(t, err)

	// Exactly 4 is a strength, exactly 3 is neither, below 3 improves.
	require.Len(t, plan.Strengths, 1)
	assert.Equal(t, "strong", plan.Strengths[0].Category)
	require.Len(t, plan.Improvements, 1)
	assert.Equal(t, "weak", plan.Improvements[0].Category)
}

func TestBuildLearningPlanOrdering(t *testing.T) {
	results := []model.TestResult{
		resultWithScores(map[string]int{"a": 4, "b": 5, "x": 1, "y": 2}),
	}

	plan, err := BuildLearningPlan(1, results, time.Now())
	require.NoError(t, err)

	// Strengths best-first, improvements weakest-first.
	assert.Equal(t, "b", plan.Strengths[0].Category)
	assert.Equal(t, "a", plan.Strengths[1].Category)
	assert.Equal(t, "x", plan.Improvements[0].Category)
	assert.Equal(t, "y", plan.Improvements[1].Category)

	require.Len(t, plan.Recommendations, 4)
	assert.Equal(t, model.RecommendationStrength, plan.Recommendations[0].Type)
	assert.Equal(t, model.RecommendationImprovement, plan.Recommendations[2].Type)
	assert.Equal(t, "high", plan.Recommendations[2].Priority)
}

func TestBuildLearningPlanIdempotent(t *testing.T) {
	results := []model.TestResult{
		resultWithScores(map[string]int{"social": 5, "analytical": 2}),
		resultWithScores(map[string]int{"technical": 4, "analytical": 2}),
	}
	now := time.Now()

	first, err := BuildLearningPlan(1, results, now)
	require.NoError(t, err)
	second, err := BuildLearningPlan(1, results, now)
	require.NoError(t, err)

	assert.Equal(t, first.Strengths, second.Strengths)
	assert.Equal(t, first.Improvements, second.Improvements)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestBuildLearningPlanAveragesOnlyWherePresent(t *testing.T) {
	// A category absent from a result contributes no observation, so
	// social stays a strength even with many later results without it.
	results := []model.TestResult{
		resultWithScores(map[string]int{"social": 5}),
		resultWithScores(map[string]int{"technical": 1}),
		resultWithScores(map[string]int{"technical": 1}),
	}

	plan, err := BuildLearningPlan(1, results, time.Now())
	require.NoError(t, err)

	require.Len(t, plan.Strengths, 1)
	assert.Equal(t, "social", plan.Strengths[0].Category)
	assert.InDelta(t, 5.0, plan.Strengths[0].Score, 1e-9)
	require.Len(t, plan.Improvements, 1)
	assert.Equal(t, "technical", plan.Improvements[0].Category)
}

// In-memory fakes for the service wiring.

type fakeResultReader struct {
	results []model.TestResult
	err     error
}

func (f *fakeResultReader) FindByUser(userID uint, limit int) ([]model.TestResult, error) {
	return f.results, f.err
}

type fakePlanStore struct {
	stored  *model.LearningPlan
	findErr error
}

func (f *fakePlanStore) FindByUserID(userID uint) (*model.LearningPlan, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.stored, nil
}

func (f *fakePlanStore) Upsert(plan *model.LearningPlan) error {
	f.stored = plan
	return nil
}

func TestLearningPlanServiceGenerateAndGet(t *testing.T) {
	store := &fakePlanStore{}
	svc := NewLearningPlanService(&fakeResultReader{results: []model.TestResult{
		resultWithScores(map[string]int{"social": 5}),
	}}, store)

	_, err := svc.GetPlan(42)
	assert.ErrorIs(t, err, util.ErrNotFound)

	generated, err := svc.GeneratePlan(42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), generated.UserID)

	got, err := svc.GetPlan(42)
	require.NoError(t, err)
	assert.Equal(t, generated.Strengths, got.Strengths)
}

func TestLearningPlanServiceGenerateWithoutHistory(t *testing.T) {
	svc := NewLearningPlanService(&fakeResultReader{}, &fakePlanStore{})

	_, err := svc.GeneratePlan(42)
	assert.ErrorIs(t, err, util.ErrNoResults)
}

func TestLearningPlanServiceUpdateKeepsGeneratedAt(t *testing.T) {
	origin := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	store := &fakePlanStore{stored: &model.LearningPlan{UserID: 42, GeneratedAt: origin}}
	svc := NewLearningPlanService(&fakeResultReader{}, store)

	updated, err := svc.UpdatePlan(&model.LearningPlan{
		UserID: 42,
		Status: model.PlanCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PlanCompleted, updated.Status)
	assert.Equal(t, origin, updated.GeneratedAt)
}

func TestLearningPlanServiceUpdatePropagatesLookupError(t *testing.T) {
	// A real lookup failure must not be mistaken for "no prior plan";
	// only record-not-found falls through to the upsert.
	dbErr := errors.New("connection reset")
	store := &fakePlanStore{findErr: dbErr}
	svc := NewLearningPlanService(&fakeResultReader{}, store)

	_, err := svc.UpdatePlan(&model.LearningPlan{UserID: 42, Status: model.PlanActive})
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, store.stored)
}
