package repository

import (
	"context"

	"game-catalog/internal/domain"
)

// GameRepository exposes persistence operations for Game catalog entries.
type GameRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, game *domain.Game) (int64, error)
	Update(ctx context.Context, game *domain.Game) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Game, error)
	List(ctx context.Context, limit, offset int) ([]domain.Game, error)
	Count(ctx context.Context) (int64, error)
}
