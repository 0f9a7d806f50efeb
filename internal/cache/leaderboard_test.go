package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"flappypro/backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Leaderboard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLeaderboard(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestLeaderboardPlayersRoundTrip(t *testing.T) {
	ctx := context.Background()
	lb, mr := newTestCache(t)

	_, ok := lb.Players(ctx)
	assert.False(t, ok)

	lb.SetPlayers(ctx, []models.User{{ID: 2, Username: "bob", HighestScore: 90}, {ID: 1, Username: "alice", HighestScore: 50}})
	assert.True(t, mr.Exists(PlayersKey))
	assert.Equal(t, time.Minute, mr.TTL(PlayersKey))

	users, ok := lb.Players(ctx)
	require.True(t, ok)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, 90, users[0].HighestScore)
}

func TestLeaderboardRecordsAndInvalidate(t *testing.T) {
	ctx := context.Background()
	lb, mr := newTestCache(t)

	lb.SetRecords(ctx, []models.GameRecord{{ID: 1, UserID: 1, Score: 70, DifficultyLevel: models.DifficultyHard}})
	lb.SetPlayers(ctx, []models.User{{ID: 1, Username: "alice"}})

	records, ok := lb.Records(ctx)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, models.DifficultyHard, records[0].DifficultyLevel)

	lb.Invalidate(ctx)
	assert.False(t, mr.Exists(PlayersKey))
	assert.False(t, mr.Exists(RecordsKey))
	_, ok = lb.Records(ctx)
	assert.False(t, ok)
}

func TestLeaderboardExpires(t *testing.T) {
	ctx := context.Background()
	lb, mr := newTestCache(t)

	lb.SetPlayers(ctx, []models.User{{ID: 1}})
	mr.FastForward(2 * time.Minute)

	_, ok := lb.Players(ctx)
	assert.False(t, ok)
}

func TestLeaderboardCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	lb, mr := newTestCache(t)

	require.NoError(t, mr.Set(RecordsKey, "{not json"))
	_, ok := lb.Records(ctx)
	assert.False(t, ok)
}

func TestLeaderboardServerDownIsMiss(t *testing.T) {
	ctx := context.Background()
	lb, mr := newTestCache(t)
	mr.Close()

	lb.SetPlayers(ctx, []models.User{{ID: 1}})
	_, ok := lb.Players(ctx)
	assert.False(t, ok)
	lb.Invalidate(ctx)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = Connect(context.Background(), "not a url")
	assert.Error(t, err)
}
