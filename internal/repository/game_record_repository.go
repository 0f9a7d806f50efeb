package repository

import (
	"context"

	"flappypro/backend/internal/models"

	"gorm.io/gorm"
)

// GameRecordRepository runs queries against the game_records table.
type GameRecordRepository struct {
	db *gorm.DB
}

func NewGameRecordRepository(db *gorm.DB) *GameRecordRepository {
	return &GameRecordRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *GameRecordRepository) WithTx(tx *gorm.DB) *GameRecordRepository {
	return &GameRecordRepository{db: tx}
}

func (r *GameRecordRepository) Create(ctx context.Context, record *models.GameRecord) error {
	return r.db.WithContext(ctx).Omit("User").Create(record).Error
}

func (r *GameRecordRepository) byUser(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.GameRecord{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
}

// FindByUserID lists the user's records, most recent first.
func (r *GameRecordRepository) FindByUserID(ctx context.Context, userID uint) ([]models.GameRecord, error) {
	var records []models.GameRecord
	err := r.byUser(ctx, userID).Find(&records).Error
	return records, err
}

// FindByUserIDPage is FindByUserID one page at a time.
func (r *GameRecordRepository) FindByUserIDPage(ctx context.Context, userID uint, page, limit int) ([]models.GameRecord, int64, error) {
	return Paginate[models.GameRecord](r.byUser(ctx, userID), page, limit)
}

// TopByScore lists every record, best first, with its owner loaded.
func (r *GameRecordRepository) TopByScore(ctx context.Context) ([]models.GameRecord, error) {
	var records []models.GameRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("score DESC").
		Order("id ASC").
		Find(&records).Error
	return records, err
}

func (r *GameRecordRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GameRecord{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
