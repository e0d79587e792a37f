package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultAvatar = "👨‍🚀"

type User struct {
	gorm.Model
	Username      string `gorm:"unique;not null"`
	PasswordHash  string `gorm:"not null"`
	IsPro         bool   `gorm:"default:false"`
	QuestionCount int    `gorm:"default:0"`
	Avatar        string

	// Gameplay stats, flattened onto the account row.
	TotalWords     int     `gorm:"default:0"`
	CorrectAnswers int     `gorm:"default:0"`
	WrongAnswers   int     `gorm:"default:0"`
	Accuracy       float64 `gorm:"default:0"`
	Streak         int     `gorm:"default:0"`
	LastPlayedDate *time.Time
}

type Session struct {
	gorm.Model
	UserID    uint   `gorm:"not null;index"`
	Token     string `gorm:"unique;not null"`
	ExpiresAt time.Time
}

// Stats is the wire shape for PUT /api/user/stats.
type Stats struct {
	TotalWords     int        `json:"totalWords"`
	CorrectAnswers int        `json:"correctAnswers"`
	WrongAnswers   int        `json:"wrongAnswers"`
	Accuracy       float64    `json:"accuracy"`
	Streak         int        `json:"streak"`
	LastPlayedDate *time.Time `json:"lastPlayedDate,omitempty"`
}

// PublicUser is the account snapshot returned to clients. The password
// hash never leaves the server.
type PublicUser struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	IsPro         bool      `json:"isPro"`
	QuestionCount int       `json:"questionCount"`
	Avatar        string    `json:"avatar"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		IsPro:         u.IsPro,
		QuestionCount: u.QuestionCount,
		Avatar:        u.Avatar,
		CreatedAt:     u.CreatedAt,
	}
}
