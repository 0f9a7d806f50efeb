package handler

import (
	"errors"
	"net/http"
	"time"

	"flappypro/backend/internal/auth"
	"flappypro/backend/internal/models"
	"flappypro/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler serves the HTTP API on top of the user and game record services.
type Handler struct {
	users   *service.UserService
	records *service.GameRecordService
}

func New(users *service.UserService, records *service.GameRecordService) *Handler {
	return &Handler{users: users, records: records}
}

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID           uint      `json:"id" example:"1"`
	Username     string    `json:"username" example:"alice"`
	Nickname     string    `json:"nickname" example:"Alice"`
	CreatedAt    time.Time `json:"createdAt"`
	TotalGames   int       `json:"totalGames" example:"12"`
	HighestScore int       `json:"highestScore" example:"57"`
}

// PublicUserResponse defines the structure for another user's profile.
type PublicUserResponse struct {
	ID           uint      `json:"id" example:"1"`
	Nickname     string    `json:"nickname" example:"Alice"`
	CreatedAt    time.Time `json:"createdAt"`
	TotalGames   int       `json:"totalGames" example:"12"`
	HighestScore int       `json:"highestScore" example:"57"`
}

// GameRecordResponse defines the structure for one stored game.
type GameRecordResponse struct {
	ID                uint              `json:"id" example:"7"`
	UserID            uint              `json:"userId" example:"1"`
	Score             int               `json:"score" example:"42"`
	PowerUpsCollected int               `json:"powerUpsCollected" example:"3"`
	DifficultyLevel   models.Difficulty `json:"difficultyLevel" example:"NORMAL"`
	GameDuration      *int              `json:"gameDuration" example:"75"`
	CreatedAt         time.Time         `json:"createdAt"`
}

func newPrivateUserResponse(user models.User) PrivateUserResponse {
	return PrivateUserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Nickname:     user.Nickname,
		CreatedAt:    user.CreatedAt,
		TotalGames:   user.TotalGames,
		HighestScore: user.HighestScore,
	}
}

func newPublicUserResponse(user models.User) PublicUserResponse {
	return PublicUserResponse{
		ID:           user.ID,
		Nickname:     user.DisplayName(),
		CreatedAt:    user.CreatedAt,
		TotalGames:   user.TotalGames,
		HighestScore: user.HighestScore,
	}
}

func newGameRecordResponse(record models.GameRecord) GameRecordResponse {
	return GameRecordResponse{
		ID:                record.ID,
		UserID:            record.UserID,
		Score:             record.Score,
		PowerUpsCollected: record.PowerUpsCollected,
		DifficultyLevel:   record.DifficultyLevel,
		GameDuration:      record.GameDuration,
		CreatedAt:         record.CreatedAt,
	}
}

func newGameRecordResponses(records []models.GameRecord) []GameRecordResponse {
	responses := make([]GameRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, newGameRecordResponse(record))
	}
	return responses
}

// endregion

// respondError maps service errors to HTTP statuses. Store failures are
// logged and reported without detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownUser):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidGameRecord), errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		auth.Logger(c).Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
