package service

import (
	"context"
	"log/slog"

	"flappypro/backend/internal/models"
	"flappypro/backend/internal/repository"

	"gorm.io/gorm"
)

// GameRecordService stores finished games and serves the record views.
type GameRecordService struct {
	db      *gorm.DB
	records *repository.GameRecordRepository
	users   *UserService
	cache   LeaderboardCache
	log     *slog.Logger
}

func NewGameRecordService(db *gorm.DB, records *repository.GameRecordRepository, users *UserService, cache LeaderboardCache, log *slog.Logger) *GameRecordService {
	if cache == nil {
		cache = noopCache{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &GameRecordService{db: db, records: records, users: users, cache: cache, log: log}
}

// NewGameRecord validates a submission and builds the record to store.
// Scores, power-up counts and durations may not be negative; an empty
// difficulty means NORMAL.
func NewGameRecord(userID uint, score, powerUpsCollected int, difficultyLevel string, gameDuration *int) (*models.GameRecord, error) {
	if score < 0 {
		return nil, invalidRecord("score must not be negative")
	}
	if powerUpsCollected < 0 {
		return nil, invalidRecord("powerUpsCollected must not be negative")
	}
	if gameDuration != nil && *gameDuration < 0 {
		return nil, invalidRecord("gameDuration must not be negative")
	}
	difficulty, ok := models.ParseDifficulty(difficultyLevel)
	if !ok {
		return nil, invalidRecord("unknown difficultyLevel " + difficultyLevel)
	}

	return &models.GameRecord{
		UserID:            userID,
		Score:             score,
		PowerUpsCollected: powerUpsCollected,
		DifficultyLevel:   difficulty,
		GameDuration:      gameDuration,
	}, nil
}

// SaveGameRecord stores the record and updates the owner's highest score
// and game count in one transaction.
func (s *GameRecordService) SaveGameRecord(ctx context.Context, userID uint, score, powerUpsCollected int, difficultyLevel string, gameDuration *int) (*models.GameRecord, error) {
	const op = "GameRecordService.SaveGameRecord"

	record, err := NewGameRecord(userID, score, powerUpsCollected, difficultyLevel, gameDuration)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		owner, err := users.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrUnknownUser
		}

		if err := s.records.WithTx(tx).Create(ctx, record); err != nil {
			return storeFailure(op, err)
		}
		return users.UpdateHighestScore(ctx, userID, score)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.log.Info("game record saved", "op", op, "user_id", userID, "record_id", record.ID, "score", score)
	return record, nil
}

// GetUserRecords lists the user's records, most recent first.
func (s *GameRecordService) GetUserRecords(ctx context.Context, userID uint) ([]models.GameRecord, error) {
	records, err := s.records.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storeFailure("GameRecordService.GetUserRecords", err)
	}
	return records, nil
}

// GetUserRecordsPage is GetUserRecords one page at a time. It also returns
// the total number of records the user has.
func (s *GameRecordService) GetUserRecordsPage(ctx context.Context, userID uint, page, limit int) ([]models.GameRecord, int64, error) {
	records, total, err := s.records.FindByUserIDPage(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, storeFailure("GameRecordService.GetUserRecordsPage", err)
	}
	return records, total, nil
}

// GetGlobalLeaderboard lists every record of every user by score, best first.
func (s *GameRecordService) GetGlobalLeaderboard(ctx context.Context) ([]models.GameRecord, error) {
	if records, ok := s.cache.Records(ctx); ok {
		return records, nil
	}

	records, err := s.records.TopByScore(ctx)
	if err != nil {
		return nil, storeFailure("GameRecordService.GetGlobalLeaderboard", err)
	}
	s.cache.SetRecords(ctx, records)
	return records, nil
}

// GetUserGameCount counts the user's stored records.
func (s *GameRecordService) GetUserGameCount(ctx context.Context, userID uint) (int64, error) {
	count, err := s.records.CountByUserID(ctx, userID)
	if err != nil {
		return 0, storeFailure("GameRecordService.GetUserGameCount", err)
	}
	return count, nil
}
