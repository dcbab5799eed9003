package model

import "time"

// Profile is a 1:1 extension of a user account, created lazily on
// first access and upserted on edit.
type Profile struct {
	UserID     uint      `gorm:"primaryKey" json:"user_id"`
	Name       string    `gorm:"size:100" json:"name"`
	Email      string    `gorm:"size:100" json:"email"`
	Bio        string    `gorm:"size:500" json:"bio"`
	Age        int       `gorm:"default:0" json:"age,omitempty"`
	Education  string    `gorm:"size:200" json:"education"`
	Experience string    `gorm:"size:500" json:"experience"`
	AvatarURL  string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
