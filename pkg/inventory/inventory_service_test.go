package inventory

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	items map[string]*entities.InventoryItem
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{items: make(map[string]*entities.InventoryItem)}
}

func (r *fakeInventoryRepository) AddItem(_ context.Context, item *entities.InventoryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeInventoryRepository) GetItemByID(_ context.Context, id string) (*entities.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeInventoryRepository) UpdateItem(_ context.Context, item *entities.InventoryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeInventoryRepository) DeleteItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeInventoryRepository) GetItems(_ context.Context, householdID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	for _, item := range r.items {
		if item.HouseholdID.String() == householdID {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakeShoppingRepository struct {
	entries map[string]*entities.ShoppingListEntry
}

func newFakeShoppingRepository() *fakeShoppingRepository {
	return &fakeShoppingRepository{entries: make(map[string]*entities.ShoppingListEntry)}
}

func (r *fakeShoppingRepository) AddEntry(_ context.Context, entry *entities.ShoppingListEntry) error {
	r.entries[entry.ID.String()] = entry
	return nil
}

func (r *fakeShoppingRepository) GetEntryByID(_ context.Context, id string) (*entities.ShoppingListEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (r *fakeShoppingRepository) UpdateEntry(_ context.Context, entry *entities.ShoppingListEntry) error {
	r.entries[entry.ID.String()] = entry
	return nil
}

func (r *fakeShoppingRepository) DeleteEntry(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeShoppingRepository) GetPendingEntries(_ context.Context, householdID string) ([]*entities.ShoppingListEntry, error) {
	var entries []*entities.ShoppingListEntry
	for _, entry := range r.entries {
		if entry.HouseholdID.String() == householdID && entry.Status == domain.ShoppingStatusPending {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func TestParseExpiryDate(t *testing.T) {
	tests := []struct {
		value  string
		wantOK bool
	}{
		{"2026-12-01", true},
		{"", false},
		{"not a date", false},
		{"12/01/2026", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			expiry, ok := ParseExpiryDate(tt.value)
			if ok != tt.wantOK {
				t.Errorf("ParseExpiryDate(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if !ok && !expiry.IsZero() {
				t.Errorf("ParseExpiryDate(%q) should return zero time on failure", tt.value)
			}
		})
	}
}

func TestNormalizeInitialQuantity(t *testing.T) {
	tests := []struct {
		initial  float64
		quantity float64
		want     float64
	}{
		{3, 5, 3},
		{0, 5, 5},
		{0, 0, 1.0},
	}

	for _, tt := range tests {
		if got := NormalizeInitialQuantity(tt.initial, tt.quantity); got != tt.want {
			t.Errorf("NormalizeInitialQuantity(%v, %v) = %v, want %v", tt.initial, tt.quantity, got, tt.want)
		}
	}
}

func TestAddInventoryItem_BadExpiryDefaultsToNone(t *testing.T) {
	inventoryRepo := newFakeInventoryRepository()
	service := NewInventoryService(inventoryRepo, newFakeShoppingRepository())
	householdID := uuid.New().String()

	res, err := service.AddInventoryItem(context.Background(), domain.AddInventoryItemRequest{
		Name:            "Mystery Jar",
		Category:        "Pantry",
		Quantity:        2,
		Threshold:       1,
		EstimatedExpiry: "someday soon",
	}, householdID)
	if err != nil {
		t.Fatalf("AddInventoryItem() unexpected error: %v", err)
	}

	if res.EstimatedExpiry != "" {
		t.Errorf("estimated_expiry = %q, want empty for unparseable input", res.EstimatedExpiry)
	}
	if res.Status != StatusGood {
		t.Errorf("status = %q, undated stocked item should be Good", res.Status)
	}
	if res.InitialQuantity != 2 {
		t.Errorf("initial_quantity = %v, want quantity default 2", res.InitialQuantity)
	}
}

func TestGetInventoryItems_RunsReplenishmentPass(t *testing.T) {
	inventoryRepo := newFakeInventoryRepository()
	shoppingRepo := newFakeShoppingRepository()
	service := NewInventoryService(inventoryRepo, shoppingRepo)

	householdID := uuid.New()
	item := &entities.InventoryItem{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Name:        "Coffee",
		Category:    "Beverages",
		Quantity:    0,
		Threshold:   2,
	}
	if err := inventoryRepo.AddItem(context.Background(), item); err != nil {
		t.Fatal(err)
	}

	if _, _, err := service.GetInventoryItems(context.Background(), householdID.String(), "all", 1, 20); err != nil {
		t.Fatalf("GetInventoryItems() unexpected error: %v", err)
	}

	pending, _ := shoppingRepo.GetPendingEntries(context.Background(), householdID.String())
	if len(pending) != 1 {
		t.Fatalf("replenishment pass inserted %d entries, want 1", len(pending))
	}
	if pending[0].QtyNeeded != 2 {
		t.Errorf("qty_needed = %v, want 2", pending[0].QtyNeeded)
	}

	// A second view over the same state must not double-insert.
	if _, _, err := service.GetInventoryItems(context.Background(), householdID.String(), "all", 1, 20); err != nil {
		t.Fatalf("GetInventoryItems() unexpected error: %v", err)
	}
	pending, _ = shoppingRepo.GetPendingEntries(context.Background(), householdID.String())
	if len(pending) != 1 {
		t.Errorf("second pass left %d entries, want 1", len(pending))
	}
}

func TestGetInventoryItems_StatusFilter(t *testing.T) {
	inventoryRepo := newFakeInventoryRepository()
	service := NewInventoryService(inventoryRepo, newFakeShoppingRepository())

	householdID := uuid.New()
	expired := &entities.InventoryItem{
		ID:              uuid.New(),
		HouseholdID:     householdID,
		Name:            "Old Yogurt",
		Quantity:        1,
		EstimatedExpiry: time.Now().AddDate(0, 0, -2),
	}
	good := &entities.InventoryItem{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Name:        "Rice",
		Quantity:    10,
	}
	_ = inventoryRepo.AddItem(context.Background(), expired)
	_ = inventoryRepo.AddItem(context.Background(), good)

	items, count, err := service.GetInventoryItems(context.Background(), householdID.String(), StatusExpired, 1, 20)
	if err != nil {
		t.Fatalf("GetInventoryItems() unexpected error: %v", err)
	}
	if count != 1 || len(items) != 1 || items[0].Name != "Old Yogurt" {
		t.Errorf("status filter returned %d items (count %d): %+v", len(items), count, items)
	}
}

func TestRestockItem_ResetsBaseline(t *testing.T) {
	inventoryRepo := newFakeInventoryRepository()
	service := NewInventoryService(inventoryRepo, newFakeShoppingRepository())

	householdID := uuid.New()
	item := &entities.InventoryItem{
		ID:              uuid.New(),
		HouseholdID:     householdID,
		Name:            "Flour",
		Quantity:        0.5,
		InitialQuantity: 2,
	}
	_ = inventoryRepo.AddItem(context.Background(), item)

	err := service.RestockItem(context.Background(), item.ID.String(), domain.RestockItemRequest{Quantity: 4}, householdID.String())
	if err != nil {
		t.Fatalf("RestockItem() unexpected error: %v", err)
	}

	restocked, _ := inventoryRepo.GetItemByID(context.Background(), item.ID.String())
	if restocked.Quantity != 4 || restocked.InitialQuantity != 4 {
		t.Errorf("restock = qty %v initial %v, want 4/4", restocked.Quantity, restocked.InitialQuantity)
	}
}

func TestUpdateInventoryItem_WrongHousehold(t *testing.T) {
	inventoryRepo := newFakeInventoryRepository()
	service := NewInventoryService(inventoryRepo, newFakeShoppingRepository())

	item := &entities.InventoryItem{ID: uuid.New(), HouseholdID: uuid.New(), Name: "Salt"}
	_ = inventoryRepo.AddItem(context.Background(), item)

	err := service.UpdateInventoryItem(context.Background(), item.ID.String(), domain.UpdateInventoryItemRequest{Name: "Sea Salt"}, uuid.New().String())
	if err != domain.ErrUnauthorizedAccess {
		t.Errorf("UpdateInventoryItem() error = %v, want ErrUnauthorizedAccess", err)
	}
}
