package models

// PowerUpType is an item the bird can pick up during a game. Effects are
// applied by the client; the server only counts how many were collected.
type PowerUpType string

const (
	PowerUpShield          PowerUpType = "SHIELD"
	PowerUpScoreMultiplier PowerUpType = "SCORE_MULTIPLIER"
	PowerUpShrink          PowerUpType = "SHRINK"
)

// PowerUpInfo describes a power-up for display.
type PowerUpInfo struct {
	Type        PowerUpType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Duration    int         `json:"duration"` // seconds
}

// PowerUps is the catalog shown in the game legend.
var PowerUps = []PowerUpInfo{
	{Type: PowerUpShield, Name: "Shield", Description: "Invincible for 3 seconds", Duration: 3},
	{Type: PowerUpScoreMultiplier, Name: "Score multiplier", Description: "Double points for 5 seconds", Duration: 5},
	{Type: PowerUpShrink, Name: "Shrink", Description: "Bird shrinks for 5 seconds, easier to pass pipes", Duration: 5},
}
