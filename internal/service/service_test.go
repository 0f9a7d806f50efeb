package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"flappypro/backend/internal/database/dbtest"
	"flappypro/backend/internal/models"
	"flappypro/backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	users   *UserService
	records *GameRecordService
	cache   *fakeCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := &fakeCache{}
	users := NewUserService(repository.NewUserRepository(db), cache, log)
	records := NewGameRecordService(db, repository.NewGameRecordRepository(db), users, cache, log)
	return &fixture{db: db, users: users, records: records, cache: cache}
}

func (f *fixture) register(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), username, "pw-"+username, username)
	require.NoError(t, err)
	return u
}

func intPtr(v int) *int { return &v }

// fakeCache is an in-memory LeaderboardCache that counts invalidations.
type fakeCache struct {
	mu          sync.Mutex
	players     []models.User
	records     []models.GameRecord
	hasPlayers  bool
	hasRecords  bool
	invalidated int
}

func (c *fakeCache) Players(context.Context) ([]models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.players, c.hasPlayers
}

func (c *fakeCache) SetPlayers(_ context.Context, users []models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.players, c.hasPlayers = users, true
}

func (c *fakeCache) Records(context.Context) ([]models.GameRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records, c.hasRecords
}

func (c *fakeCache) SetRecords(_ context.Context, records []models.GameRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records, c.hasRecords = records, true
}

func (c *fakeCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.players, c.records = nil, nil
	c.hasPlayers, c.hasRecords = false, false
	c.invalidated++
}
