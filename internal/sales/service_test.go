package sales

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"gorm.io/gorm"
)

// Mock Store. RecordSale holds the mutex across the check and the
// decrement, mirroring the conditional UPDATE in the real store.
type mockStore struct {
	mu    sync.Mutex
	items map[string]*models.InventoryItem
	sales []*models.Sale

	getErr    error
	recordErr error
}

func newMockStore(items ...*models.InventoryItem) *mockStore {
	m := &mockStore{items: make(map[string]*models.InventoryItem)}
	for _, item := range items {
		m.items[item.ID] = item
	}
	return m
}

func (m *mockStore) GetItem(ctx context.Context, profileID, itemID string) (*models.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	item, ok := m.items[itemID]
	if !ok || item.ProfileID != profileID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *mockStore) RecordSale(ctx context.Context, sale *models.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.recordErr != nil {
		return m.recordErr
	}
	item, ok := m.items[sale.InventoryID]
	if !ok || item.ProfileID != sale.ProfileID || item.Quantity < sale.QuantitySold {
		return errStockConflict
	}
	item.Quantity -= sale.QuantitySold
	copied := *sale
	m.sales = append(m.sales, &copied)
	return nil
}

func (m *mockStore) quantity(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[itemID].Quantity
}

func (m *mockStore) saleCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sales)
}

const profileID = "profile-1"

func item(id string, quantity int) *models.InventoryItem {
	return &models.InventoryItem{ID: id, ProductName: "Widget", Quantity: quantity, Price: 25.00, ProfileID: profileID}
}

func TestRecord_Success(t *testing.T) {
	store := newMockStore(item("p1", 10))
	svc := NewService(store)

	sale, err := svc.Record(context.Background(), profileID, RecordRequest{
		InventoryID:  "p1",
		QuantitySold: 4,
		SalePrice:    25.00,
		CustomerName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if sale.QuantitySold != 4 {
		t.Errorf("expected quantity_sold 4, got %d", sale.QuantitySold)
	}
	if sale.SalePrice != 25.00 {
		t.Errorf("expected sale_price 25.00, got %v", sale.SalePrice)
	}
	if sale.CustomerName != "Jane Doe" {
		t.Errorf("expected customer Jane Doe, got %q", sale.CustomerName)
	}
	if got := store.quantity("p1"); got != 6 {
		t.Errorf("expected quantity 6 after sale, got %d", got)
	}
	if got := store.saleCount(); got != 1 {
		t.Errorf("expected exactly 1 sale recorded, got %d", got)
	}
}

func TestRecord_InsufficientStock(t *testing.T) {
	store := newMockStore(item("p1", 2))
	svc := NewService(store)

	_, err := svc.Record(context.Background(), profileID, RecordRequest{
		InventoryID:  "p1",
		QuantitySold: 5,
		SalePrice:    10.00,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got: %v", err)
	}

	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got: %T", err)
	}
	if insufficient.Available != 2 {
		t.Errorf("expected available 2, got %d", insufficient.Available)
	}

	// rejected call must leave both ledgers untouched
	if got := store.quantity("p1"); got != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", got)
	}
	if got := store.saleCount(); got != 0 {
		t.Errorf("expected no sales recorded, got %d", got)
	}
}

func TestRecord_ExactQuantityDrivesStockToZero(t *testing.T) {
	store := newMockStore(item("p1", 7))
	svc := NewService(store)

	_, err := svc.Record(context.Background(), profileID, RecordRequest{
		InventoryID:  "p1",
		QuantitySold: 7,
		SalePrice:    1.50,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if got := store.quantity("p1"); got != 0 {
		t.Errorf("expected quantity 0, got %d", got)
	}
}

func TestRecord_InvalidArguments(t *testing.T) {
	store := newMockStore(item("p1", 10))
	svc := NewService(store)

	cases := []struct {
		name string
		req  RecordRequest
	}{
		{"zero quantity", RecordRequest{InventoryID: "p1", QuantitySold: 0, SalePrice: 1}},
		{"negative quantity", RecordRequest{InventoryID: "p1", QuantitySold: -3, SalePrice: 1}},
		{"negative price", RecordRequest{InventoryID: "p1", QuantitySold: 1, SalePrice: -0.01}},
		{"missing inventory id", RecordRequest{QuantitySold: 1, SalePrice: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), profileID, tc.req)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got: %v", err)
			}
		})
	}

	if got := store.quantity("p1"); got != 10 {
		t.Errorf("expected quantity unchanged at 10, got %d", got)
	}
	if got := store.saleCount(); got != 0 {
		t.Errorf("expected no sales recorded, got %d", got)
	}
}

func TestRecord_NotFound(t *testing.T) {
	store := newMockStore(item("p1", 10))
	svc := NewService(store)

	_, err := svc.Record(context.Background(), profileID, RecordRequest{
		InventoryID:  "missing",
		QuantitySold: 1,
		SalePrice:    1,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestRecord_OtherProfileItemIsNotFound(t *testing.T) {
	store := newMockStore(item("p1", 10))
	svc := NewService(store)

	_, err := svc.Record(context.Background(), "profile-2", RecordRequest{
		InventoryID:  "p1",
		QuantitySold: 1,
		SalePrice:    1,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign profile, got: %v", err)
	}
	if got := store.quantity("p1"); got != 10 {
		t.Errorf("expected quantity unchanged at 10, got %d", got)
	}
}

func TestRecord_StorageUnavailable(t *testing.T) {
	store := newMockStore(item("p1", 10))
	store.recordErr = errors.New("connection refused")
	svc := NewService(store)

	_, err := svc.Record(context.Background(), profileID, RecordRequest{
		InventoryID:  "p1",
		QuantitySold: 1,
		SalePrice:    1,
	})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got: %v", err)
	}
}

// Two concurrent sales of 3 against stock of 5: exactly one wins, the
// loser gets InsufficientStock, final quantity is 2.
func TestRecord_ConcurrentSales(t *testing.T) {
	store := newMockStore(item("p1", 5))
	svc := NewService(store)

	var successCount, stockFailCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Record(context.Background(), profileID, RecordRequest{
				InventoryID:  "p1",
				QuantitySold: 3,
				SalePrice:    9.99,
			})
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, ErrInsufficientStock):
				stockFailCount.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 success, got %d", successCount.Load())
	}
	if stockFailCount.Load() != 1 {
		t.Errorf("expected exactly 1 insufficient-stock failure, got %d", stockFailCount.Load())
	}
	if got := store.quantity("p1"); got != 2 {
		t.Errorf("expected final quantity 2, got %d", got)
	}
	if got := store.saleCount(); got != 1 {
		t.Errorf("expected exactly 1 sale recorded, got %d", got)
	}
}

func TestRecord_ManyConcurrentSingleUnitSales(t *testing.T) {
	initialStock := 20
	totalRequests := 50

	store := newMockStore(item("p1", initialStock))
	svc := NewService(store)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Record(context.Background(), profileID, RecordRequest{
				InventoryID:  "p1",
				QuantitySold: 1,
				SalePrice:    5,
			})
			if err == nil {
				successCount.Add(1)
			} else if !errors.Is(err, ErrInsufficientStock) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != int32(initialStock) {
		t.Errorf("expected %d successes, got %d", initialStock, successCount.Load())
	}
	if got := store.quantity("p1"); got != 0 {
		t.Errorf("expected quantity 0, got %d", got)
	}
	if got := store.saleCount(); got != initialStock {
		t.Errorf("expected %d sales, got %d", initialStock, got)
	}
}
