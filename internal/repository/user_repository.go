package repository

import (
	"context"
	"errors"

	"flappypro/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository runs queries against the users table.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID returns (nil, nil) when no user has the id.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns (nil, nil) when the username is not taken.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ApplyScore records one finished game for the user in a single statement:
// total_games is incremented and highest_score is raised to score if it is
// lower. The row lock taken by UPDATE makes concurrent calls safe. It
// returns the number of rows touched, 0 meaning the user does not exist.
func (r *UserRepository) ApplyScore(ctx context.Context, id uint, score int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_games":   gorm.Expr("total_games + ?", 1),
		"highest_score": gorm.Expr("CASE WHEN highest_score < ? THEN ? ELSE highest_score END", score, score),
	})
	return res.RowsAffected, res.Error
}

// TopByHighestScore lists every user, best first. Ties keep registration order.
func (r *UserRepository) TopByHighestScore(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("highest_score DESC").Order("id ASC").Find(&users).Error
	return users, err
}
