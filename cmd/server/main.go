package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"flappypro/backend/internal/auth"
	"flappypro/backend/internal/cache"
	"flappypro/backend/internal/config"
	"flappypro/backend/internal/database"
	"flappypro/backend/internal/handler"
	"flappypro/backend/internal/logger"
	"flappypro/backend/internal/repository"
	"flappypro/backend/internal/service"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "flappypro/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           FlappyBird Pro API
// @version         1.0
// @description     Accounts, game records and leaderboards for FlappyBird Pro.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	slogger := logger.MustInit(cfg)
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)

	leaderboard, err := newLeaderboardCache(cfg, slogger)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	users := service.NewUserService(repository.NewUserRepository(database.DB), leaderboard, slogger)
	records := service.NewGameRecordService(database.DB, repository.NewGameRecordRepository(database.DB), users, leaderboard, slogger)

	router := gin.Default()
	router.Use(auth.RequestID(slogger))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	handler.New(users, records).RegisterRoutes(router)

	fmt.Printf("Server is running on %s\n", cfg.ServerAddr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", cfg.ServerAddr)
	log.Fatal(router.Run(cfg.ServerAddr))
}

// newLeaderboardCache connects the redis leaderboard cache when REDIS_URL is
// set. It returns a nil cache otherwise, so every read hits the database.
// The client lives as long as the process.
func newLeaderboardCache(cfg *config.Config, slogger *slog.Logger) (service.LeaderboardCache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	slogger.Info("leaderboard cache enabled", "ttl", cfg.LeaderboardCacheTTL)
	return cache.NewLeaderboard(client, cfg.LeaderboardCacheTTL, slogger), nil
}
