package model

// AnswerSubmission is one submitted answer: an option id for
// multiple_choice questions, a raw value for scale questions.
// Value stays untyped because clients historically sent both numbers
// and numeric strings; the scoring engine normalizes it.
type AnswerSubmission struct {
	AnswerID string `json:"answer_id,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// TestResult is one completed attempt. Test title and category are
// denormalized at submission time so results survive later test edits.
type TestResult struct {
	UUIDBase
	UserID         uint                        `gorm:"index;not null" json:"user_id"`
	TestID         string                      `gorm:"size:100;index;not null" json:"test_id"`
	TestTitle      string                      `gorm:"size:255" json:"test_title"`
	TestCategory   string                      `gorm:"size:50;index" json:"test_category"`
	TotalScore     int                         `gorm:"not null" json:"total_score"`
	CategoryScores map[string]int              `gorm:"type:json;serializer:json" json:"category_scores"`
	Answers        map[string]AnswerSubmission `gorm:"type:json;serializer:json" json:"answers"`
	TimeTaken      int                         `gorm:"default:0" json:"time_taken"` // seconds
	IsShared       bool                        `gorm:"default:false" json:"is_shared"`
}

func (TestResult) TableName() string {
	return "test_results"
}
