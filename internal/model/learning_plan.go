package model

import "time"

type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanPaused    PlanStatus = "paused"
)

type RecommendationType string

const (
	RecommendationStrength    RecommendationType = "strength"
	RecommendationImprovement RecommendationType = "improvement"
)

// CategoryScore pairs a category with the average score observed for it
// across the user's result history.
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

type Recommendation struct {
	Type          RecommendationType `json:"type"`
	Category      string             `json:"category"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Priority      string             `json:"priority"` // high | medium | low
	EstimatedTime string             `json:"estimated_time"`
	Resources     []string           `json:"resources"`
}

// LearningPlan is regenerated wholesale from the user's result history;
// at most one row per user, resolved by upsert.
type LearningPlan struct {
	BaseModel
	UserID          uint             `gorm:"uniqueIndex;not null" json:"user_id"`
	Strengths       []CategoryScore  `gorm:"type:json;serializer:json" json:"strengths"`
	Improvements    []CategoryScore  `gorm:"type:json;serializer:json" json:"improvements"`
	Recommendations []Recommendation `gorm:"type:json;serializer:json" json:"recommendations"`
	Status          PlanStatus       `gorm:"type:enum('active','completed','paused');default:'active'" json:"status"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

func (LearningPlan) TableName() string {
	return "learning_plans"
}
