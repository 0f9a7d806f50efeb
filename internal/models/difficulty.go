package models

import "strings"

// Difficulty is the level the client played at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyNormal Difficulty = "NORMAL"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty normalizes a client supplied level. An empty string maps to
// NORMAL; anything else unknown is rejected.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(strings.ToUpper(strings.TrimSpace(s))); d {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, true
	default:
		return "", false
	}
}
