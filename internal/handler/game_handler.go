package handler

import (
	"net/http"
	"time"

	"flappypro/backend/internal/auth"
	"flappypro/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SaveGameInput is the payload the client posts when a game ends.
type SaveGameInput struct {
	Score             *int   `json:"score" binding:"required" example:"42"`
	PowerUpsCollected int    `json:"powerUpsCollected" example:"3"`
	DifficultyLevel   string `json:"difficultyLevel" example:"NORMAL"`
	GameDuration      *int   `json:"gameDuration" example:"75"`
}

// SaveGameResponse defines the structure returned after a game is stored.
type SaveGameResponse struct {
	Success      bool               `json:"success" example:"true"`
	Record       GameRecordResponse `json:"record"`
	NewHighScore int                `json:"newHighScore" example:"57"`
	TotalGames   int                `json:"totalGames" example:"13"`
}

// PlayerEntry is one row of the player leaderboard.
type PlayerEntry struct {
	Rank         int       `json:"rank" example:"1"`
	ID           uint      `json:"id" example:"1"`
	Nickname     string    `json:"nickname" example:"Alice"`
	HighestScore int       `json:"highestScore" example:"57"`
	TotalGames   int       `json:"totalGames" example:"12"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecordEntry is one row of the record leaderboard.
type RecordEntry struct {
	Rank int `json:"rank" example:"1"`
	GameRecordResponse
	Nickname string `json:"nickname" example:"Alice"`
}

// LeaderboardResponse defines the structure for the leaderboard page.
type LeaderboardResponse struct {
	TopPlayers []PlayerEntry `json:"topPlayers"`
	TopRecords []RecordEntry `json:"topRecords"`
}

func newPlayerEntries(users []models.User) []PlayerEntry {
	entries := make([]PlayerEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, PlayerEntry{
			Rank:         i + 1,
			ID:           user.ID,
			Nickname:     user.DisplayName(),
			HighestScore: user.HighestScore,
			TotalGames:   user.TotalGames,
			CreatedAt:    user.CreatedAt,
		})
	}
	return entries
}

func newRecordEntries(records []models.GameRecord) []RecordEntry {
	entries := make([]RecordEntry, 0, len(records))
	for i, record := range records {
		entry := RecordEntry{Rank: i + 1, GameRecordResponse: newGameRecordResponse(record)}
		if record.User != nil {
			entry.Nickname = record.User.DisplayName()
		}
		entries = append(entries, entry)
	}
	return entries
}

// endregion

// region --- Game Handlers ---

// SaveGameRecord godoc
// @Summary      Save a finished game
// @Description  Stores the game and updates the player's highest score and game count.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SaveGameInput true "Game result"
// @Success      201  {object}  SaveGameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) SaveGameRecord(c *gin.Context) {
	user := auth.CurrentUser(c)
	ctx := c.Request.Context()

	var input SaveGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.records.SaveGameRecord(ctx, user.ID, *input.Score, input.PowerUpsCollected, input.DifficultyLevel, input.GameDuration)
	if err != nil {
		respondError(c, err)
		return
	}

	// The session user was loaded before the save, read the new totals back.
	updated, err := h.users.GetUserByID(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		updated = user
	}

	c.JSON(http.StatusCreated, SaveGameResponse{
		Success:      true,
		Record:       newGameRecordResponse(*record),
		NewHighScore: updated.HighestScore,
		TotalGames:   updated.TotalGames,
	})
}

// GetPowerUps godoc
// @Summary      List power-ups
// @Description  Returns the power-up catalog shown in the game legend.
// @Tags         games
// @Produce      json
// @Success      200 {array} models.PowerUpInfo
// @Router       /game/power-ups [get]
func (h *Handler) GetPowerUps(c *gin.Context) {
	c.JSON(http.StatusOK, models.PowerUps)
}

// endregion

// region --- Leaderboard Handlers ---

// GetLeaderboard godoc
// @Summary      Leaderboard page
// @Description  Returns both the player leaderboard (by highest score) and the record leaderboard (by score).
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} LeaderboardResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /leaderboard [get]
func (h *Handler) GetLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	players, err := h.users.GetLeaderboard(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.records.GetGlobalLeaderboard(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LeaderboardResponse{
		TopPlayers: newPlayerEntries(players),
		TopRecords: newRecordEntries(records),
	})
}

// GetPlayerLeaderboard godoc
// @Summary      Player leaderboard
// @Description  All players ordered by highest score, best first.
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} PlayerEntry
// @Failure      401 {object} ErrorResponse
// @Router       /leaderboard/players [get]
func (h *Handler) GetPlayerLeaderboard(c *gin.Context) {
	players, err := h.users.GetLeaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlayerEntries(players))
}

// GetRecordLeaderboard godoc
// @Summary      Record leaderboard
// @Description  All stored games ordered by score, best first.
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} RecordEntry
// @Failure      401 {object} ErrorResponse
// @Router       /leaderboard/records [get]
func (h *Handler) GetRecordLeaderboard(c *gin.Context) {
	records, err := h.records.GetGlobalLeaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRecordEntries(records))
}

// endregion
