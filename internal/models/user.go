package models

import "time"

// User is a registered player.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password     string    `gorm:"size:100;not null" json:"-"` // bcrypt hash
	Nickname     string    `gorm:"size:50" json:"nickname"`
	CreatedAt    time.Time `gorm:"autoCreateTime;<-:create" json:"createdAt"`
	TotalGames   int       `gorm:"not null;default:0" json:"totalGames"`
	HighestScore int       `gorm:"not null;default:0;index" json:"highestScore"`
}

// DisplayName returns the nickname, falling back to the username.
func (u User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}
