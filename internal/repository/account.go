package repository

import (
	"context"

	"game-catalog/internal/domain"
)

// AccountRepository defines persistence operations for Account entities.
// Accounts are created once at registration and never updated or deleted.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}
