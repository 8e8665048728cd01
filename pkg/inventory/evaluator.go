package inventory

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusGood    = "Good"
	StatusLow     = "Low"
	StatusExpired = "Expired"

	// daysNoUsage caps the depletion estimate when no usage rate is known.
	daysNoUsage = 999
	// daysNoExpiry keeps undated items free of spoilage pressure; it must
	// stay above daysNoUsage so the depletion estimate bounds them instead.
	daysNoExpiry = 9999

	lowStockWindowDays = 7
)

// ItemStatus is the unified remaining-life estimate for one item: the risk
// is driven by whichever of spoilage and depletion runs out first.
type ItemStatus struct {
	DaysLeft int
	Status   string
}

func EvaluateItem(item *entities.InventoryItem, today time.Time) ItemStatus {
	daysToSpoil := daysNoExpiry
	if !item.EstimatedExpiry.IsZero() {
		daysToSpoil = daysBetween(today, item.EstimatedExpiry)
	}

	daysToEmpty := daysNoUsage
	if item.DailyUsage > 0 {
		daysToEmpty = int(math.Floor(item.Quantity / item.DailyUsage))
	}

	daysLeft := daysToSpoil
	if daysToEmpty < daysLeft {
		daysLeft = daysToEmpty
	}

	status := StatusGood
	if daysLeft < 0 {
		status = StatusExpired
	} else if daysLeft < lowStockWindowDays {
		status = StatusLow
	}

	return ItemStatus{DaysLeft: daysLeft, Status: status}
}

// PlanReplenishment performs one pass over a household's inventory snapshot
// and returns the shopping-list entries to insert. The pending snapshot
// seeds the duplicate guard; the guard is updated in-memory as entries are
// planned, so a single pass never emits the same item name twice.
func PlanReplenishment(items []*entities.InventoryItem, pending []*entities.ShoppingListEntry, today time.Time) []*entities.ShoppingListEntry {
	guard := make(map[string]bool, len(pending))
	for _, entry := range pending {
		if entry.Status == domain.ShoppingStatusPending {
			guard[strings.ToLower(entry.ItemName)] = true
		}
	}

	var planned []*entities.ShoppingListEntry
	for _, item := range items {
		es := EvaluateItem(item, today)

		if item.Quantity >= item.Threshold && es.DaysLeft >= lowStockWindowDays {
			continue
		}

		key := strings.ToLower(item.Name)
		if guard[key] {
			continue
		}

		qtyNeeded := item.Threshold - item.Quantity
		if qtyNeeded < 1.0 {
			qtyNeeded = 1.0
		}

		store := item.SuggestedStore
		if store == "" {
			store = domain.DefaultStore
		}

		planned = append(planned, &entities.ShoppingListEntry{
			ID:          uuid.New(),
			HouseholdID: item.HouseholdID,
			ItemName:    item.Name,
			QtyNeeded:   qtyNeeded,
			Store:       store,
			Status:      domain.ShoppingStatusPending,
			Reason:      domain.ReasonAutoRefill,
		})
		guard[key] = true
	}

	return planned
}

// daysBetween counts whole calendar days from one date to another, negative
// when the second date is already past.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
