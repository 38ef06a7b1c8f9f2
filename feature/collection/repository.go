package collection

import (
	"context"
	"errors"
	"fmt"

	"figurine-manager/core/reconcile"
	"figurine-manager/feature/collection/models"

	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the collection is used without a database connection.
var ErrNoDatabase = errors.New("collection: database connection is nil")

// Repository persists owned items. It implements reconcile.InventoryProvider.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db. A nil db is accepted; every call then fails with ErrNoDatabase.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the collection tables.
func (r *Repository) Migrate() error {
	if r.db == nil {
		return ErrNoDatabase
	}
	if err := r.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate collection tables: %w", err)
	}
	return nil
}

// List returns every item with its criteria, in insertion order.
func (r *Repository) List(ctx context.Context) ([]models.Item, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}

	var items []models.Item
	err := r.db.WithContext(ctx).
		Preload("Criteria", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		Order("position ASC").Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collection items: %w", err)
	}
	return items, nil
}

// OwnedItems returns the collection as reconciliation input.
func (r *Repository) OwnedItems(ctx context.Context) ([]reconcile.OwnedItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]reconcile.OwnedItem, len(items))
	for i, item := range items {
		owned[i] = item.ToOwned()
	}
	return owned, nil
}

// Import appends items after the existing ones, or replaces the whole collection.
// It runs in one transaction and returns the number of rows written.
func (r *Repository) Import(ctx context.Context, items []reconcile.OwnedItem, replace bool) (int, error) {
	if r.db == nil {
		return 0, ErrNoDatabase
	}
	for i, item := range items {
		if item.Amount < 0 {
			return 0, fmt.Errorf("%w: item %d (%s) has amount %d", reconcile.ErrInvalidAmount, i, item.Name, item.Amount)
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.Where("1 = 1").Delete(&models.Criterion{}).Error; err != nil {
				return fmt.Errorf("failed to clear criteria: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&models.Item{}).Error; err != nil {
				return fmt.Errorf("failed to clear items: %w", err)
			}
		}

		var last int
		if err := tx.Model(&models.Item{}).Select("COALESCE(MAX(position), -1)").Scan(&last).Error; err != nil {
			return fmt.Errorf("failed to read last position: %w", err)
		}

		for i, item := range items {
			row := models.FromOwned(item, last+1+i)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert item %s: %w", item.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Count returns the number of stored items (stacks, not instances).
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, ErrNoDatabase
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count collection items: %w", err)
	}
	return n, nil
}
