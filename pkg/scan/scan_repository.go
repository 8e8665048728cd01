package scan

import (
	"KitchenMind-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		CreateScan(ctx context.Context, scan *entities.PantryScan) error
		GetScanByID(ctx context.Context, id string) (*entities.PantryScan, error)
		UpdateScan(ctx context.Context, scan *entities.PantryScan) error
		SaveScannedBatch(ctx context.Context, scan *entities.PantryScan, items []*entities.InventoryItem) error
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) CreateScan(ctx context.Context, scan *entities.PantryScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepository) GetScanByID(ctx context.Context, id string) (*entities.PantryScan, error) {
	var scan entities.PantryScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *scanRepository) UpdateScan(ctx context.Context, scan *entities.PantryScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

// SaveScannedBatch persists the confirmed items and the scan's terminal
// status in one transaction, so a partially-saved scan never reaches the
// inventory.
func (r *scanRepository) SaveScannedBatch(ctx context.Context, scan *entities.PantryScan, items []*entities.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return tx.Save(scan).Error
	})
}
