package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"flappypro/backend/internal/models"
	"flappypro/backend/internal/service"

	"github.com/redis/go-redis/v9"
)

const (
	PlayersKey = "leaderboard:players"
	RecordsKey = "leaderboard:records"
)

var _ service.LeaderboardCache = (*Leaderboard)(nil)

// Leaderboard caches the player and record leaderboards in redis as JSON
// blobs with a short TTL. Every failure is logged and reported as a miss.
type Leaderboard struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewLeaderboard creates a cache on top of client.
func NewLeaderboard(client *redis.Client, ttl time.Duration, log *slog.Logger) *Leaderboard {
	if log == nil {
		log = slog.Default()
	}
	return &Leaderboard{client: client, ttl: ttl, log: log}
}

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (l *Leaderboard) Players(ctx context.Context) ([]models.User, bool) {
	var users []models.User
	return users, l.get(ctx, PlayersKey, &users)
}

func (l *Leaderboard) SetPlayers(ctx context.Context, users []models.User) {
	l.set(ctx, PlayersKey, users)
}

func (l *Leaderboard) Records(ctx context.Context) ([]models.GameRecord, bool) {
	var records []models.GameRecord
	return records, l.get(ctx, RecordsKey, &records)
}

func (l *Leaderboard) SetRecords(ctx context.Context, records []models.GameRecord) {
	l.set(ctx, RecordsKey, records)
}

// Invalidate drops both boards.
func (l *Leaderboard) Invalidate(ctx context.Context) {
	if err := l.client.Del(ctx, PlayersKey, RecordsKey).Err(); err != nil {
		l.log.Warn("leaderboard cache invalidate failed", "err", err)
	}
}

func (l *Leaderboard) get(ctx context.Context, key string, dst interface{}) bool {
	data, err := l.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		l.log.Warn("leaderboard cache read failed", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		l.log.Warn("leaderboard cache entry corrupt", "key", key, "err", err)
		return false
	}
	return true
}

func (l *Leaderboard) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		l.log.Warn("leaderboard cache encode failed", "key", key, "err", err)
		return
	}
	if err := l.client.Set(ctx, key, data, l.ttl).Err(); err != nil {
		l.log.Warn("leaderboard cache write failed", "key", key, "err", err)
	}
}
