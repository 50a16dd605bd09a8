package repository

import (
	"context"

	"inventory_api/internal/domain"
)

// UserRepositoryI defines operations on User records.
type UserRepositoryI interface {
	Create(ctx context.Context, u *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
}

// StoreRepositoryI defines operations on Store records.
type StoreRepositoryI interface {
	FindByName(ctx context.Context, name string) (*domain.Store, error)
	Save(ctx context.Context, s *domain.Store) error
	Delete(ctx context.Context, s *domain.Store) error
	List(ctx context.Context) ([]domain.Store, error)
}

// ItemRepositoryI defines operations on Item records.
type ItemRepositoryI interface {
	FindByName(ctx context.Context, name string) (*domain.Item, error)
	FindByStoreID(ctx context.Context, storeID uint) ([]domain.Item, error)
	Save(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, i *domain.Item) error
	List(ctx context.Context) ([]domain.Item, error)
}
