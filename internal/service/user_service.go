package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"flappypro/backend/internal/models"
	"flappypro/backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// UserService handles registration, login and the per-user score counters.
type UserService struct {
	users *repository.UserRepository
	cache LeaderboardCache
	log   *slog.Logger

	// inTx is set on copies bound to a transaction; the owner of the
	// transaction invalidates the cache after commit.
	inTx bool
}

func NewUserService(users *repository.UserRepository, cache LeaderboardCache, log *slog.Logger) *UserService {
	if cache == nil {
		cache = noopCache{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserService{users: users, cache: cache, log: log}
}

// WithTx returns a copy of the service whose queries run inside tx.
func (s *UserService) WithTx(tx *gorm.DB) *UserService {
	return &UserService{users: s.users.WithTx(tx), cache: s.cache, log: s.log, inTx: true}
}

func (s *UserService) Register(ctx context.Context, username, password, nickname string) (*models.User, error) {
	const op = "UserService.Register"

	if len(password) > MaxPasswordBytes {
		return nil, ErrInvalidPassword
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, storeFailure(op, err)
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: hash password: %w", op, err)
	}

	user := &models.User{
		Username:     username,
		Password:     string(hash),
		Nickname:     nickname,
		TotalGames:   0,
		HighestScore: 0,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with another registration of the same name
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, storeFailure(op, err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("user registered", "op", op, "user_id", user.ID, "username", username)
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	const op = "UserService.Login"

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, storeFailure(op, err)
	}
	if user == nil {
		s.log.Debug("login for unknown username", "op", op, "username", username)
		return nil, ErrUnknownUser
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.Debug("login with wrong password", "op", op, "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID returns (nil, nil) when no such user exists.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure("UserService.GetUserByID", err)
	}
	return user, nil
}

// UpdateHighestScore counts one more game for the user and raises the
// highest score if score beats it. Unknown users are ignored. Outside a
// transaction the cached leaderboards are dropped once the row changes.
func (s *UserService) UpdateHighestScore(ctx context.Context, userID uint, score int) error {
	const op = "UserService.UpdateHighestScore"

	n, err := s.users.ApplyScore(ctx, userID, score)
	if err != nil {
		return storeFailure(op, err)
	}
	if n == 0 {
		s.log.Warn("score update for unknown user ignored", "op", op, "user_id", userID)
		return nil
	}
	if !s.inTx {
		s.cache.Invalidate(ctx)
	}
	return nil
}

// GetLeaderboard lists all users by highest score, best first.
func (s *UserService) GetLeaderboard(ctx context.Context) ([]models.User, error) {
	if users, ok := s.cache.Players(ctx); ok {
		return users, nil
	}

	users, err := s.users.TopByHighestScore(ctx)
	if err != nil {
		return nil, storeFailure("UserService.GetLeaderboard", err)
	}
	s.cache.SetPlayers(ctx, users)
	return users, nil
}
