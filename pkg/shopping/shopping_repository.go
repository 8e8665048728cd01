package shopping

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddEntry(ctx context.Context, entry *entities.ShoppingListEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.ShoppingListEntry, error)
		UpdateEntry(ctx context.Context, entry *entities.ShoppingListEntry) error
		DeleteEntry(ctx context.Context, id string) error
		GetPendingEntries(ctx context.Context, householdID string) ([]*entities.ShoppingListEntry, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddEntry(ctx context.Context, entry *entities.ShoppingListEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *shoppingRepository) GetEntryByID(ctx context.Context, id string) (*entities.ShoppingListEntry, error) {
	var entry entities.ShoppingListEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *shoppingRepository) UpdateEntry(ctx context.Context, entry *entities.ShoppingListEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *shoppingRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListEntry{}).Error
}

func (r *shoppingRepository) GetPendingEntries(ctx context.Context, householdID string) ([]*entities.ShoppingListEntry, error) {
	var entries []*entities.ShoppingListEntry
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND status = ?", householdID, domain.ShoppingStatusPending).
		Order("store asc, created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
