package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"gorm.io/gorm"
)

type RecordRequest struct {
	InventoryID  string  `json:"inventory_id"`
	QuantitySold int     `json:"quantity_sold"`
	SalePrice    float64 `json:"sale_price"`
	CustomerName string  `json:"customer_name"`
}

// Service records sales against inventory. All methods take the calling
// profile id explicitly; there is no ambient current-user state.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Record validates the request and commits the sale. Either both the
// ledger append and the stock decrement persist, or neither does.
func (s *Service) Record(ctx context.Context, profileID string, req RecordRequest) (*models.Sale, error) {
	if req.InventoryID == "" {
		return nil, fmt.Errorf("%w: inventory_id is required", ErrInvalidArgument)
	}
	if req.QuantitySold <= 0 {
		return nil, fmt.Errorf("%w: quantity_sold must be a positive integer", ErrInvalidArgument)
	}
	if req.SalePrice < 0 {
		return nil, fmt.Errorf("%w: sale_price must not be negative", ErrInvalidArgument)
	}

	item, err := s.store.GetItem(ctx, profileID, req.InventoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if req.QuantitySold > item.Quantity {
		return nil, &InsufficientStockError{Available: item.Quantity}
	}

	sale := &models.Sale{
		InventoryID:  req.InventoryID,
		QuantitySold: req.QuantitySold,
		SalePrice:    req.SalePrice,
		CustomerName: req.CustomerName,
		ProfileID:    profileID,
	}

	err = s.store.RecordSale(ctx, sale)
	if errors.Is(err, errStockConflict) {
		// Lost the race between the read above and the commit. Re-read so
		// the error carries the quantity actually left.
		available := 0
		if item, rerr := s.store.GetItem(ctx, profileID, req.InventoryID); rerr == nil {
			available = item.Quantity
		}
		return nil, &InsufficientStockError{Available: available}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return sale, nil
}
