package sales

import (
	"context"
	"errors"
	"time"

	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"gorm.io/gorm"
)

// errStockConflict signals that the conditional decrement matched no row:
// the item vanished or another request won the stock between our read and
// the commit. Internal to the store/service pair.
var errStockConflict = errors.New("stock conflict")

// Store is what the sale recording service needs from persistence.
type Store interface {
	// GetItem returns the inventory item scoped to one profile, or
	// gorm.ErrRecordNotFound.
	GetItem(ctx context.Context, profileID, itemID string) (*models.InventoryItem, error)

	// RecordSale appends the sale and decrements stock as one atomic
	// unit. Returns errStockConflict when quantity is no longer
	// sufficient; in that case nothing was written.
	RecordSale(ctx context.Context, sale *models.Sale) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) GetItem(ctx context.Context, profileID, itemID string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", itemID, profileID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RecordSale runs the single atomic path: insert the ledger row, then
// decrement stock with a guard on the current quantity. If the guard
// matches no row the transaction rolls back and the ledger insert is
// undone with it. There is deliberately no non-transactional fallback.
func (s *gormStore) RecordSale(ctx context.Context, sale *models.Sale) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		res := tx.Model(&models.InventoryItem{}).
			Where("id = ? AND profile_id = ? AND quantity >= ?",
				sale.InventoryID, sale.ProfileID, sale.QuantitySold).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", sale.QuantitySold),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStockConflict
		}

		return nil
	})
}
