package inventory

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"KitchenMind-Backend/pkg/shopping"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddInventoryItem(ctx context.Context, req domain.AddInventoryItemRequest, householdID string) (domain.InventoryItemResponse, error)
		UpdateInventoryItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, householdID string) error
		DeleteInventoryItem(ctx context.Context, id string, householdID string) error
		GetInventoryItems(ctx context.Context, householdID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetInventoryItemByID(ctx context.Context, id string, householdID string) (domain.InventoryItemResponse, error)
		RestockItem(ctx context.Context, id string, req domain.RestockItemRequest, householdID string) error
		GetDashboardStats(ctx context.Context, householdID string) (domain.DashboardStatsResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		shoppingRepository  shopping.ShoppingRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, shoppingRepository shopping.ShoppingRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		shoppingRepository:  shoppingRepository,
	}
}

// ParseExpiryDate reads a YYYY-MM-DD expiry string. The second return
// reports whether a usable date was found; a blank or malformed string is
// recovered as "no expiry on record", never an error.
func ParseExpiryDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	expiry, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return expiry, true
}

// NormalizeInitialQuantity resolves the fraction-remaining denominator:
// the current quantity when the initial count is unset, 1.0 when both are
// zero so the denominator is never zero.
func NormalizeInitialQuantity(initial, quantity float64) float64 {
	if initial > 0 {
		return initial
	}
	if quantity > 0 {
		return quantity
	}
	return 1.0
}

func (s *inventoryService) AddInventoryItem(ctx context.Context, req domain.AddInventoryItemRequest, householdID string) (domain.InventoryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	expiry, _ := ParseExpiryDate(req.EstimatedExpiry)

	item := &entities.InventoryItem{
		ID:              uuid.New(),
		HouseholdID:     householdUUID,
		Name:            req.Name,
		Category:        req.Category,
		Quantity:        req.Quantity,
		InitialQuantity: NormalizeInitialQuantity(req.InitialQuantity, req.Quantity),
		Weight:          req.Weight,
		WeightUnit:      req.WeightUnit,
		Threshold:       req.Threshold,
		DailyUsage:      req.DailyUsage,
		EstimatedExpiry: expiry,
		SuggestedStore:  req.SuggestedStore,
		Barcode:         req.Barcode,
		AddedManually:   true,
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return s.toResponse(item, time.Now()), nil
}

func (s *inventoryService) UpdateInventoryItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, householdID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Weight != nil {
		item.Weight = *req.Weight
	}
	if req.WeightUnit != "" {
		item.WeightUnit = req.WeightUnit
	}
	if req.Threshold != nil {
		item.Threshold = *req.Threshold
	}
	if req.DailyUsage != nil {
		item.DailyUsage = *req.DailyUsage
	}
	if req.EstimatedExpiry != "" {
		if expiry, ok := ParseExpiryDate(req.EstimatedExpiry); ok {
			item.EstimatedExpiry = expiry
		}
	}
	if req.SuggestedStore != "" {
		item.SuggestedStore = req.SuggestedStore
	}

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) DeleteInventoryItem(ctx context.Context, id string, householdID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrUnauthorizedAccess
	}

	return s.inventoryRepository.DeleteItem(ctx, id)
}

// GetInventoryItems lists the household's inventory and, as a side effect,
// runs one replenishment pass over the same snapshot: every qualifying item
// without a pending entry gets one inserted. A failed insert is logged and
// skipped so one bad record never aborts the pass.
func (s *inventoryService) GetInventoryItems(ctx context.Context, householdID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, err := s.inventoryRepository.GetItems(ctx, householdID)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()

	pending, err := s.shoppingRepository.GetPendingEntries(ctx, householdID)
	if err != nil {
		log.Printf("replenishment pass skipped, pending snapshot unavailable: %v", err)
	} else {
		for _, entry := range PlanReplenishment(items, pending, now) {
			if err := s.shoppingRepository.AddEntry(ctx, entry); err != nil {
				log.Printf("failed to insert auto-refill entry for %q: %v", entry.ItemName, err)
			}
		}
	}

	var filtered []domain.InventoryItemResponse
	for _, item := range items {
		res := s.toResponse(item, now)
		if status != "all" && status != "" && res.Status != status {
			continue
		}
		filtered = append(filtered, res)
	}

	count := int64(len(filtered))
	start := (page - 1) * limit
	if start >= len(filtered) {
		return []domain.InventoryItemResponse{}, count, nil
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], count, nil
}

func (s *inventoryService) GetInventoryItemByID(ctx context.Context, id string, householdID string) (domain.InventoryItemResponse, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrInventoryItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}

	if item.HouseholdID.String() != householdID {
		return domain.InventoryItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return s.toResponse(item, time.Now()), nil
}

// RestockItem sets the new on-hand count and resets the restock baseline
// used as the fraction-remaining denominator.
func (s *inventoryService) RestockItem(ctx context.Context, id string, req domain.RestockItemRequest, householdID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrUnauthorizedAccess
	}

	item.Quantity = req.Quantity
	item.InitialQuantity = NormalizeInitialQuantity(req.Quantity, req.Quantity)

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, householdID string) (domain.DashboardStatsResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx, householdID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	now := time.Now()
	stats := domain.DashboardStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		switch EvaluateItem(item, now).Status {
		case StatusExpired:
			stats.ExpiredItems++
		case StatusLow:
			stats.LowItems++
		default:
			stats.GoodItems++
		}
	}

	pending, err := s.shoppingRepository.GetPendingEntries(ctx, householdID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}
	stats.PendingToBuy = len(pending)
	for _, entry := range pending {
		if entry.Reason == domain.ReasonAutoRefill {
			stats.AutoRefillOpen++
		}
	}

	return stats, nil
}

func (s *inventoryService) toResponse(item *entities.InventoryItem, now time.Time) domain.InventoryItemResponse {
	es := EvaluateItem(item, now)

	expiry := ""
	if !item.EstimatedExpiry.IsZero() {
		expiry = item.EstimatedExpiry.Format("2006-01-02")
	}

	return domain.InventoryItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		InitialQuantity: item.InitialQuantity,
		Weight:          item.Weight,
		WeightUnit:      item.WeightUnit,
		Threshold:       item.Threshold,
		DailyUsage:      item.DailyUsage,
		EstimatedExpiry: expiry,
		SuggestedStore:  item.SuggestedStore,
		DaysLeft:        es.DaysLeft,
		Status:          es.Status,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}
