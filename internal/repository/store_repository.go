package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventory_api/internal/domain"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// FindByName returns the first store with the given name, or nil when no such
// store exists. The match is exact and case-sensitive.
func (r *StoreRepository) FindByName(ctx context.Context, name string) (*domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var s domain.Store
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Save writes the store in a single implicit transaction: an insert when the
// store has no id yet, an update otherwise. On insert the generated id is
// filled in.
func (r *StoreRepository) Save(ctx context.Context, s *domain.Store) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes the store. Items referencing it are left untouched.
func (r *StoreRepository) Delete(ctx context.Context, s *domain.Store) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Delete(s).Error
}

// List returns all stores ordered by id.
func (r *StoreRepository) List(ctx context.Context) ([]domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	var out []domain.Store
	if err := r.db.WithContext(ctx).Order("store_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
