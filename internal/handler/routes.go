package handler

import (
	"flappypro/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api/v1.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.RegisterUser)
			authRoutes.POST("/login", h.LoginUser)
			authRoutes.POST("/logout", h.LogoutUser)
		}

		apiV1.GET("/session", auth.OptionalAuthMiddleware(h.users), h.GetSession)
		apiV1.GET("/game/power-ups", h.GetPowerUps)

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware(h.users))
		{
			userRoutes.GET("/me", h.GetMe)
			userRoutes.GET("/me/records", h.GetMyRecords)
			userRoutes.GET("/:id", h.GetUserByID)
		}

		// Game routes (protected)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.AuthMiddleware(h.users))
		{
			gameRoutes.POST("", h.SaveGameRecord)
		}

		// Leaderboard routes (protected)
		leaderboardRoutes := apiV1.Group("/leaderboard")
		leaderboardRoutes.Use(auth.AuthMiddleware(h.users))
		{
			leaderboardRoutes.GET("", h.GetLeaderboard)
			leaderboardRoutes.GET("/players", h.GetPlayerLeaderboard)
			leaderboardRoutes.GET("/records", h.GetRecordLeaderboard)
		}
	}
}
