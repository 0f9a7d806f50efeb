package models

import "time"

// GameRecord is the outcome of one finished game. Records are written once
// and never updated.
type GameRecord struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"not null;index" json:"userId"`
	Score             int        `gorm:"not null;index" json:"score"`
	PowerUpsCollected int        `gorm:"not null;default:0" json:"powerUpsCollected"`
	DifficultyLevel   Difficulty `gorm:"size:20;not null;default:'NORMAL'" json:"difficultyLevel"`
	GameDuration      *int       `json:"gameDuration"` // seconds
	CreatedAt         time.Time  `gorm:"autoCreateTime;<-:create;index" json:"createdAt"`

	// Owner, loaded only for leaderboard views. Users are never deleted, so
	// there is no cascade.
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`
}
