package model

// ResultFeedback is a user's rating of one of their own results,
// upserted on the (result_id, user_id) pair.
type ResultFeedback struct {
	BaseModel
	ResultID string `gorm:"size:36;uniqueIndex:idx_result_user;not null" json:"result_id"`
	UserID   uint   `gorm:"uniqueIndex:idx_result_user;not null" json:"user_id"`
	Rating   int    `gorm:"not null" json:"rating"` // 1..5
	Comment  string `gorm:"size:1000" json:"comment"`
}

func (ResultFeedback) TableName() string {
	return "result_feedback"
}
