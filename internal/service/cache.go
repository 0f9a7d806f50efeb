package service

import (
	"context"

	"flappypro/backend/internal/models"
)

// LeaderboardCache keeps the two leaderboard views between writes. A miss
// or a cache error falls back to the store, so implementations report
// failures only through ok=false.
type LeaderboardCache interface {
	Players(ctx context.Context) ([]models.User, bool)
	SetPlayers(ctx context.Context, users []models.User)
	Records(ctx context.Context) ([]models.GameRecord, bool)
	SetRecords(ctx context.Context, records []models.GameRecord)
	Invalidate(ctx context.Context)
}

type noopCache struct{}

func (noopCache) Players(context.Context) ([]models.User, bool)       { return nil, false }
func (noopCache) SetPlayers(context.Context, []models.User)           {}
func (noopCache) Records(context.Context) ([]models.GameRecord, bool) { return nil, false }
func (noopCache) SetRecords(context.Context, []models.GameRecord)     {}
func (noopCache) Invalidate(context.Context)                          {}
