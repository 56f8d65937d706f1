package sales

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getPostgres(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping Postgres-backed store tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}

	if err := db.AutoMigrate(&models.InventoryItem{}, &models.Sale{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	return db
}

func seedItem(t *testing.T, db *gorm.DB, quantity int) *models.InventoryItem {
	item := &models.InventoryItem{
		ProductName: "store-test-widget",
		Quantity:    quantity,
		Price:       25.00,
		ProfileID:   "11111111-1111-1111-1111-111111111111",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	t.Cleanup(func() {
		db.Where("inventory_id = ?", item.ID).Delete(&models.Sale{})
		db.Delete(item)
	})
	return item
}

func TestGormStore_RecordSale(t *testing.T) {
	db := getPostgres(t)
	store := NewStore(db)
	ctx := context.Background()

	item := seedItem(t, db, 10)

	sale := &models.Sale{
		InventoryID:  item.ID,
		QuantitySold: 4,
		SalePrice:    25.00,
		CustomerName: "Jane Doe",
		ProfileID:    item.ProfileID,
	}
	if err := store.RecordSale(ctx, sale); err != nil {
		t.Fatalf("record sale failed: %v", err)
	}

	got, err := store.GetItem(ctx, item.ProfileID, item.ID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if got.Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", got.Quantity)
	}

	var count int64
	db.Model(&models.Sale{}).Where("inventory_id = ?", item.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 sale row, got %d", count)
	}
}

// Losing the guard must roll the whole transaction back, including the
// already-inserted sale row.
func TestGormStore_ConflictRollsBackSaleInsert(t *testing.T) {
	db := getPostgres(t)
	store := NewStore(db)
	ctx := context.Background()

	item := seedItem(t, db, 3)

	sale := &models.Sale{
		InventoryID:  item.ID,
		QuantitySold: 5,
		SalePrice:    10.00,
		ProfileID:    item.ProfileID,
	}
	err := store.RecordSale(ctx, sale)
	if !errors.Is(err, errStockConflict) {
		t.Fatalf("expected stock conflict, got: %v", err)
	}

	got, err := store.GetItem(ctx, item.ProfileID, item.ID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if got.Quantity != 3 {
		t.Errorf("expected quantity unchanged at 3, got %d", got.Quantity)
	}

	var count int64
	db.Model(&models.Sale{}).Where("inventory_id = ?", item.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected no sale rows after rollback, got %d", count)
	}
}

func TestGormStore_GetItemNotFound(t *testing.T) {
	db := getPostgres(t)
	store := NewStore(db)

	_, err := store.GetItem(context.Background(), "11111111-1111-1111-1111-111111111111", "22222222-2222-2222-2222-222222222222")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected gorm.ErrRecordNotFound, got: %v", err)
	}
}
