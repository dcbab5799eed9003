package model

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionScale          QuestionType = "scale"
	QuestionText           QuestionType = "text"
)

// ScaleCeiling is the fixed maximum a scale question can contribute,
// used when computing a test's maximum possible score.
const ScaleCeiling = 5

// Answer is one selectable option of a multiple_choice question.
type Answer struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Score      int      `json:"score"`
	Categories []string `json:"categories,omitempty"`
}

type ScaleLabels struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// Question is stored inside the test document. multiple_choice questions
// carry categories on their answers, scale questions on the question itself,
// text questions carry no scoring structure at all.
type Question struct {
	ID          string       `json:"id"`
	Question    string       `json:"question"`
	Type        QuestionType `json:"type"`
	Answers     []Answer     `json:"answers,omitempty"`
	ScaleLabels *ScaleLabels `json:"scaleLabels,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
}

// Test identifiers are human-assigned stable strings
// ("career_orientation_basic"), not generated UUIDs.
type Test struct {
	ID             string     `gorm:"primaryKey;type:varchar(100)" json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Icon           string     `gorm:"size:16" json:"icon"`
	Duration       int        `gorm:"default:15" json:"duration"` // minutes
	QuestionsCount int        `gorm:"default:0" json:"questions_count"`
	Difficulty     Difficulty `gorm:"type:enum('easy','medium','hard');default:'easy'" json:"difficulty"`
	Category       string     `gorm:"size:50;index;not null" json:"category"`
	CompletedCount int        `gorm:"default:0" json:"completed_count"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	Questions      []Question `gorm:"type:json;serializer:json" json:"questions,omitempty"`

	// List/detail projections, never persisted.
	QuestionsPreview []Question `gorm:"-" json:"questions_preview,omitempty"`
	UserCompleted    *bool      `gorm:"-" json:"user_completed,omitempty"`
	UserAttempts     *int       `gorm:"-" json:"user_attempts,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// FindQuestion returns the question with the given id, or nil.
func (t *Test) FindQuestion(id string) *Question {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i]
		}
	}
	return nil
}

// FindAnswer returns the answer option with the given id, or nil.
func (q *Question) FindAnswer(id string) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}
