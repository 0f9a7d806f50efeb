package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"flappypro/backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.users.Register(ctx, "alice", "pw1", "Alice")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "Alice", u.Nickname)
	assert.Zero(t, u.TotalGames)
	assert.Zero(t, u.HighestScore)
	assert.False(t, u.CreatedAt.IsZero())
	assert.NotEqual(t, "pw1", u.Password, "password must be stored hashed")

	_, err = f.users.Register(ctx, "alice", "other", "Other")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegisterInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice")
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestRegisterRejectsLongPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// 40 characters but 80 bytes
	_, err := f.users.Register(ctx, "alice", strings.Repeat("é", 40), "")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	exists, err := repository.NewUserRepository(f.db).ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	password := strings.Repeat("é", MaxPasswordBytes/2)
	_, err = f.users.Register(ctx, "alice", password, "")
	require.NoError(t, err)
	_, err = f.users.Login(ctx, "alice", password)
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	registered, err := f.users.Register(ctx, "alice", "pw1", "Alice")
	require.NoError(t, err)

	u, err := f.users.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = f.users.Login(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.users.Login(ctx, "bob", "pw1")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")

	u, err := f.users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)

	u, err = f.users.GetUserByID(ctx, alice.ID+42)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpdateHighestScore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")

	require.NoError(t, f.users.UpdateHighestScore(ctx, alice.ID, 40))
	require.NoError(t, f.users.UpdateHighestScore(ctx, alice.ID, 25))

	u, err := f.users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, u.HighestScore)
	assert.Equal(t, 2, u.TotalGames)

	// unknown users are silently ignored
	assert.NoError(t, f.users.UpdateHighestScore(ctx, alice.ID+42, 100))
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	carol := f.register(t, "carol")

	require.NoError(t, f.users.UpdateHighestScore(ctx, alice.ID, 20))
	require.NoError(t, f.users.UpdateHighestScore(ctx, bob.ID, 90))
	require.NoError(t, f.users.UpdateHighestScore(ctx, carol.ID, 55))

	board, err := f.users.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 3)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].HighestScore, board[i].HighestScore)
	}
	assert.Equal(t, "bob", board[0].Username)
	assert.True(t, f.cache.hasPlayers, "leaderboard should be cached after a store read")
}

func TestUpdateHighestScoreRefreshesLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")
	bob := f.register(t, "bob")

	board, err := f.users.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "alice", board[0].Username)
	require.True(t, f.cache.hasPlayers)

	require.NoError(t, f.users.UpdateHighestScore(ctx, bob.ID, 99))
	assert.False(t, f.cache.hasPlayers)

	board, err = f.users.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", board[0].Username)
	assert.Equal(t, 99, board[0].HighestScore)
}

func TestUpdateHighestScoreInvalidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	before := f.cache.invalidated

	require.NoError(t, f.users.UpdateHighestScore(ctx, alice.ID+42, 10))
	assert.Equal(t, before, f.cache.invalidated, "unknown user changes nothing")

	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return f.users.WithTx(tx).UpdateHighestScore(ctx, alice.ID, 10)
	}))
	assert.Equal(t, before, f.cache.invalidated, "transaction owner invalidates after commit")

	require.NoError(t, f.users.UpdateHighestScore(ctx, alice.ID, 20))
	assert.Equal(t, before+1, f.cache.invalidated)
}

func TestGetLeaderboardServedFromCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")

	first, err := f.users.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// a row written behind the service's back is not visible until invalidation
	require.NoError(t, f.db.Exec("INSERT INTO users (username, password, nickname, created_at) VALUES ('ghost', 'x', '', CURRENT_TIMESTAMP)").Error)
	cached, err := f.users.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	f.cache.Invalidate(ctx)
	fresh, err := f.users.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestStoreFailureIsWrapped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = f.users.GetUserByID(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreFailure))

	_, err = f.users.Register(ctx, "alice", "pw", "")
	assert.ErrorIs(t, err, ErrStoreFailure)
}
