package inventory

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testToday = time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

func testItem(mutate func(*entities.InventoryItem)) *entities.InventoryItem {
	item := &entities.InventoryItem{
		ID:          uuid.New(),
		HouseholdID: uuid.New(),
		Name:        "Milk",
		Category:    "Dairy",
		Quantity:    5,
		Threshold:   2,
	}
	if mutate != nil {
		mutate(item)
	}
	return item
}

func TestEvaluateItem(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*entities.InventoryItem)
		wantDaysLeft int
		wantStatus   string
	}{
		{
			name: "expired beats depletion sentinel",
			mutate: func(i *entities.InventoryItem) {
				i.Quantity = 0
				i.DailyUsage = 0
				i.EstimatedExpiry = testToday.AddDate(0, 0, -3)
			},
			wantDaysLeft: -3,
			wantStatus:   StatusExpired,
		},
		{
			name: "depletion runs out before spoilage",
			mutate: func(i *entities.InventoryItem) {
				i.Quantity = 10
				i.DailyUsage = 2
				i.EstimatedExpiry = testToday.AddDate(0, 0, 30)
			},
			wantDaysLeft: 5,
			wantStatus:   StatusLow,
		},
		{
			name: "spoilage runs out before depletion",
			mutate: func(i *entities.InventoryItem) {
				i.Quantity = 100
				i.DailyUsage = 1
				i.EstimatedExpiry = testToday.AddDate(0, 0, 4)
			},
			wantDaysLeft: 4,
			wantStatus:   StatusLow,
		},
		{
			name: "no usage and no expiry is good",
			mutate: func(i *entities.InventoryItem) {
				i.Quantity = 1
				i.DailyUsage = 0
			},
			wantDaysLeft: daysNoUsage,
			wantStatus:   StatusGood,
		},
		{
			name: "no expiry bounded by depletion estimate",
			mutate: func(i *entities.InventoryItem) {
				i.Quantity = 6
				i.DailyUsage = 1
			},
			wantDaysLeft: 6,
			wantStatus:   StatusLow,
		},
		{
			name: "expires today is low not expired",
			mutate: func(i *entities.InventoryItem) {
				i.EstimatedExpiry = testToday
			},
			wantDaysLeft: 0,
			wantStatus:   StatusLow,
		},
		{
			name: "fractional depletion floors down",
			mutate: func(i *entities.InventoryItem) {
				i.Quantity = 7
				i.DailyUsage = 2
				i.EstimatedExpiry = testToday.AddDate(0, 0, 60)
			},
			wantDaysLeft: 3,
			wantStatus:   StatusLow,
		},
		{
			name: "well stocked and long dated",
			mutate: func(i *entities.InventoryItem) {
				i.Quantity = 30
				i.DailyUsage = 1
				i.EstimatedExpiry = testToday.AddDate(0, 0, 90)
			},
			wantDaysLeft: 30,
			wantStatus:   StatusGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateItem(testItem(tt.mutate), testToday)
			if got.DaysLeft != tt.wantDaysLeft {
				t.Errorf("EvaluateItem() days_left = %d, want %d", got.DaysLeft, tt.wantDaysLeft)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("EvaluateItem() status = %q, want %q", got.Status, tt.wantStatus)
			}
		})
	}
}

func pendingEntry(householdID uuid.UUID, name, status string) *entities.ShoppingListEntry {
	return &entities.ShoppingListEntry{
		ID:          uuid.New(),
		HouseholdID: householdID,
		ItemName:    name,
		QtyNeeded:   1,
		Store:       domain.DefaultStore,
		Status:      status,
		Reason:      domain.ReasonAutoRefill,
	}
}

func TestPlanReplenishment_LowStockTrigger(t *testing.T) {
	item := testItem(func(i *entities.InventoryItem) {
		i.Quantity = 0
		i.Threshold = 3
		i.SuggestedStore = "Costco"
	})

	planned := PlanReplenishment([]*entities.InventoryItem{item}, nil, testToday)
	if len(planned) != 1 {
		t.Fatalf("PlanReplenishment() planned %d entries, want 1", len(planned))
	}

	entry := planned[0]
	if entry.QtyNeeded != 3 {
		t.Errorf("qty_needed = %v, want 3", entry.QtyNeeded)
	}
	if entry.Store != "Costco" {
		t.Errorf("store = %q, want Costco", entry.Store)
	}
	if entry.Status != domain.ShoppingStatusPending || entry.Reason != domain.ReasonAutoRefill {
		t.Errorf("entry status/reason = %q/%q", entry.Status, entry.Reason)
	}
	if entry.HouseholdID != item.HouseholdID {
		t.Errorf("entry household = %v, want %v", entry.HouseholdID, item.HouseholdID)
	}
}

func TestPlanReplenishment_TimeUrgentTriggerWithQtyFloor(t *testing.T) {
	// Not low on count, but depleting within the week: the shortfall is
	// negative, so the request floors at one unit.
	item := testItem(func(i *entities.InventoryItem) {
		i.Quantity = 5
		i.Threshold = 2
		i.DailyUsage = 3
	})

	planned := PlanReplenishment([]*entities.InventoryItem{item}, nil, testToday)
	if len(planned) != 1 {
		t.Fatalf("PlanReplenishment() planned %d entries, want 1", len(planned))
	}
	if planned[0].QtyNeeded != 1.0 {
		t.Errorf("qty_needed = %v, want 1.0 floor", planned[0].QtyNeeded)
	}
}

func TestPlanReplenishment_NoTriggerWhenHealthy(t *testing.T) {
	item := testItem(func(i *entities.InventoryItem) {
		i.Quantity = 10
		i.Threshold = 2
		i.DailyUsage = 1
		i.EstimatedExpiry = testToday.AddDate(0, 0, 60)
	})

	if planned := PlanReplenishment([]*entities.InventoryItem{item}, nil, testToday); len(planned) != 0 {
		t.Errorf("PlanReplenishment() planned %d entries, want 0", len(planned))
	}
}

func TestPlanReplenishment_PendingGuardIsCaseInsensitive(t *testing.T) {
	item := testItem(func(i *entities.InventoryItem) {
		i.Name = "Milk"
		i.Quantity = 0
		i.Threshold = 3
	})
	pending := []*entities.ShoppingListEntry{
		pendingEntry(item.HouseholdID, "MILK", domain.ShoppingStatusPending),
	}

	if planned := PlanReplenishment([]*entities.InventoryItem{item}, pending, testToday); len(planned) != 0 {
		t.Errorf("PlanReplenishment() planned %d entries, want 0 with pending guard", len(planned))
	}
}

func TestPlanReplenishment_BoughtEntriesDoNotGuard(t *testing.T) {
	item := testItem(func(i *entities.InventoryItem) {
		i.Quantity = 0
		i.Threshold = 3
	})
	pending := []*entities.ShoppingListEntry{
		pendingEntry(item.HouseholdID, "Milk", domain.ShoppingStatusBought),
	}

	if planned := PlanReplenishment([]*entities.InventoryItem{item}, pending, testToday); len(planned) != 1 {
		t.Errorf("PlanReplenishment() planned %d entries, want 1 after Bought transition", len(planned))
	}
}

func TestPlanReplenishment_SameNameOncePerPass(t *testing.T) {
	householdID := uuid.New()
	first := testItem(func(i *entities.InventoryItem) {
		i.HouseholdID = householdID
		i.Name = "Olive Oil"
		i.Quantity = 0
		i.Threshold = 1
	})
	second := testItem(func(i *entities.InventoryItem) {
		i.HouseholdID = householdID
		i.Name = "olive oil"
		i.Quantity = 0
		i.Threshold = 1
	})

	planned := PlanReplenishment([]*entities.InventoryItem{first, second}, nil, testToday)
	if len(planned) != 1 {
		t.Errorf("PlanReplenishment() planned %d entries, want 1 for a shared name", len(planned))
	}
}

func TestPlanReplenishment_SecondPassInsertsNothing(t *testing.T) {
	item := testItem(func(i *entities.InventoryItem) {
		i.Quantity = 0
		i.Threshold = 3
	})

	firstPass := PlanReplenishment([]*entities.InventoryItem{item}, nil, testToday)
	if len(firstPass) != 1 {
		t.Fatalf("first pass planned %d entries, want 1", len(firstPass))
	}

	secondPass := PlanReplenishment([]*entities.InventoryItem{item}, firstPass, testToday)
	if len(secondPass) != 0 {
		t.Errorf("second pass planned %d entries, want 0", len(secondPass))
	}
}

func TestPlanReplenishment_DefaultStore(t *testing.T) {
	item := testItem(func(i *entities.InventoryItem) {
		i.Quantity = 0
		i.Threshold = 1
		i.SuggestedStore = ""
	})

	planned := PlanReplenishment([]*entities.InventoryItem{item}, nil, testToday)
	if len(planned) != 1 || planned[0].Store != domain.DefaultStore {
		t.Errorf("PlanReplenishment() store = %v, want %q", planned, domain.DefaultStore)
	}
}
