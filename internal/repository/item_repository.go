package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory_api/internal/domain"
)

const listTimeout = 5 * time.Second

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// FindByName returns the first item with the given name, or nil when no such
// item exists. The match is exact and case-sensitive.
func (r *ItemRepository) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var i domain.Item
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&i).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

// FindByStoreID returns every item referencing the given store, ordered by
// id. Store representations call this explicitly to materialize their item
// collection.
func (r *ItemRepository) FindByStoreID(ctx context.Context, storeID uint) ([]domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	var out []domain.Item
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save writes the item in a single implicit transaction: an insert when the
// item has no id yet, an update otherwise. On insert the generated id is
// filled in.
func (r *ItemRepository) Save(ctx context.Context, i *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Save(i).Error
}

// Delete removes the item.
func (r *ItemRepository) Delete(ctx context.Context, i *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Delete(i).Error
}

// List returns all items ordered by id.
func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	var out []domain.Item
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
