package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"career_path_backend/internal/model"
	"career_path_backend/internal/util"

	"gorm.io/gorm"
)

// Strength/improvement thresholds on the category mean. Averages in
// [3,4) land in neither list; that gap band is deliberate product
// behavior, do not "fix" it.
const (
	strengthThreshold    = 4.0
	improvementThreshold = 3.0
)

const planHistoryLimit = 500

// BuildLearningPlan derives a plan from the user's full result history.
// One observation per result per category present in that result; the
// partition runs on the unrounded mean. Deterministic modulo timestamps:
// identical histories always produce identical strengths, improvements
// and recommendations.
func BuildLearningPlan(userID uint, results []model.TestResult, now time.Time) (*model.LearningPlan, error) {
	if len(results) == 0 {
		return nil, util.ErrNoResults
	}

	averages, order := SkillAverages(results)

	var strengths, improvements []model.CategoryScore
	for _, category := range order {
		mean := averages[category]
		switch {
		case mean >= strengthThreshold:
			strengths = append(strengths, model.CategoryScore{Category: category, Score: mean})
		case mean < improvementThreshold:
			improvements = append(improvements, model.CategoryScore{Category: category, Score: mean})
		}
	}

	// Strengths best-first, improvements weakest-first; stable sort keeps
	// first-encountered order on equal means.
	sort.SliceStable(strengths, func(i, j int) bool { return strengths[i].Score > strengths[j].Score })
	sort.SliceStable(improvements, func(i, j int) bool { return improvements[i].Score < improvements[j].Score })

	recommendations := make([]model.Recommendation, 0, len(strengths)+len(improvements))
	for _, s := range strengths {
		recommendations = append(recommendations, strengthRecommendation(s.Category))
	}
	for _, imp := range improvements {
		recommendations = append(recommendations, improvementRecommendation(imp.Category))
	}

	return &model.LearningPlan{
		UserID:          userID,
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: recommendations,
		Status:          model.PlanActive,
		GeneratedAt:     now,
	}, nil
}

func strengthRecommendation(category string) model.Recommendation {
	return model.Recommendation{
		Type:          model.RecommendationStrength,
		Category:      category,
		Title:         fmt.Sprintf("Build on your strength: %s", category),
		Description:   fmt.Sprintf("You show excellent results in %s. Keep developing in this direction", category),
		Priority:      "medium",
		EstimatedTime: "2-3 months",
		Resources:     []string{"Advanced courses", "Specialized projects", "Mentorship"},
	}
}

func improvementRecommendation(category string) model.Recommendation {
	return model.Recommendation{
		Type:          model.RecommendationImprovement,
		Category:      category,
		Title:         fmt.Sprintf("Develop your skills: %s", category),
		Description:   fmt.Sprintf("Pay extra attention to developing your skills in %s", category),
		Priority:      "high",
		EstimatedTime: "3-6 months",
		Resources:     []string{"Foundation courses", "Practice exercises", "Learning materials"},
	}
}

// Narrow store interfaces so the service can be exercised against
// in-memory fakes; the GORM repositories satisfy them.
type planResultReader interface {
	FindByUser(userID uint, limit int) ([]model.TestResult, error)
}

type planStore interface {
	FindByUserID(userID uint) (*model.LearningPlan, error)
	Upsert(plan *model.LearningPlan) error
}

type LearningPlanService struct {
	Results planResultReader
	Plans   planStore
}

func NewLearningPlanService(results planResultReader, plans planStore) *LearningPlanService {
	return &LearningPlanService{Results: results, Plans: plans}
}

func (s *LearningPlanService) GetPlan(userID uint) (*model.LearningPlan, error) {
	plan, err := s.Plans.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// GeneratePlan recomputes the plan from history and replaces whatever
// was stored before.
func (s *LearningPlanService) GeneratePlan(userID uint) (*model.LearningPlan, error) {
	results, err := s.Results.FindByUser(userID, planHistoryLimit)
	if err != nil {
		return nil, err
	}

	plan, err := BuildLearningPlan(userID, results, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.Plans.Upsert(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan replaces the stored plan with a caller-provided one. Only
// whole-object PUTs are supported, no partial patching.
func (s *LearningPlanService) UpdatePlan(plan *model.LearningPlan) (*model.LearningPlan, error) {
	if plan.Status == "" {
		plan.Status = model.PlanActive
	}
	existing, err := s.Plans.FindByUserID(plan.UserID)
	switch {
	case err == nil:
		plan.GeneratedAt = existing.GeneratedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	if err := s.Plans.Upsert(plan); err != nil {
		return nil, err
	}
	return plan, nil
}
