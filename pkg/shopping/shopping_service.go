package shopping

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"KitchenMind-Backend/internal/utils/mailing"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		AddEntry(ctx context.Context, req domain.AddShoppingEntryRequest, householdID string) (domain.ShoppingEntryResponse, error)
		GetShoppingList(ctx context.Context, householdID string) (domain.ShoppingListResponse, error)
		MarkBought(ctx context.Context, id string, householdID string) error
		DeleteEntry(ctx context.Context, id string, householdID string) error
		SendDigest(ctx context.Context, req domain.SendShoppingDigestRequest, householdID string) error
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

func (s *shoppingService) AddEntry(ctx context.Context, req domain.AddShoppingEntryRequest, householdID string) (domain.ShoppingEntryResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ShoppingEntryResponse{}, domain.ErrParseUUID
	}

	store := req.Store
	if store == "" {
		store = domain.DefaultStore
	}
	reason := req.Reason
	if reason == "" {
		reason = domain.ReasonManualAdd
	}

	entry := &entities.ShoppingListEntry{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
		ItemName:    req.ItemName,
		QtyNeeded:   req.QtyNeeded,
		Store:       store,
		Status:      domain.ShoppingStatusPending,
		Reason:      reason,
	}

	if err := s.shoppingRepository.AddEntry(ctx, entry); err != nil {
		return domain.ShoppingEntryResponse{}, err
	}

	return toEntryResponse(entry), nil
}

// GetShoppingList returns the household's pending entries partitioned by
// store. Grouping is presentational only; every pending entry appears in
// exactly one group.
func (s *shoppingService) GetShoppingList(ctx context.Context, householdID string) (domain.ShoppingListResponse, error) {
	entries, err := s.shoppingRepository.GetPendingEntries(ctx, householdID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	groups := GroupByStore(entries)

	res := domain.ShoppingListResponse{Total: len(entries)}
	for _, group := range groups {
		storeGroup := domain.StoreGroupResponse{Store: group.Store}
		for _, entry := range group.Entries {
			storeGroup.Entries = append(storeGroup.Entries, toEntryResponse(entry))
		}
		res.Stores = append(res.Stores, storeGroup)
	}

	return res, nil
}

func (s *shoppingService) MarkBought(ctx context.Context, id string, householdID string) error {
	entry, err := s.shoppingRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingEntryNotFound
		}
		return err
	}

	if entry.HouseholdID.String() != householdID {
		return domain.ErrUnauthorizedAccess
	}

	// Bought is terminal; there is no way back to Pending.
	if entry.Status == domain.ShoppingStatusBought {
		return domain.ErrEntryAlreadyBought
	}

	entry.Status = domain.ShoppingStatusBought
	return s.shoppingRepository.UpdateEntry(ctx, entry)
}

func (s *shoppingService) DeleteEntry(ctx context.Context, id string, householdID string) error {
	entry, err := s.shoppingRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingEntryNotFound
		}
		return err
	}

	if entry.HouseholdID.String() != householdID {
		return domain.ErrUnauthorizedAccess
	}

	return s.shoppingRepository.DeleteEntry(ctx, id)
}

func (s *shoppingService) SendDigest(ctx context.Context, req domain.SendShoppingDigestRequest, householdID string) error {
	entries, err := s.shoppingRepository.GetPendingEntries(ctx, householdID)
	if err != nil {
		return err
	}

	var body strings.Builder
	body.WriteString("<h2>Your shopping list</h2>")
	for _, group := range GroupByStore(entries) {
		body.WriteString(fmt.Sprintf("<h3>%s</h3><ul>", group.Store))
		for _, entry := range group.Entries {
			body.WriteString(fmt.Sprintf("<li>%s — %.1f (%s)</li>", entry.ItemName, entry.QtyNeeded, entry.Reason))
		}
		body.WriteString("</ul>")
	}

	return mailing.SendMail(req.To, "KitchenMind shopping list", body.String())
}

// StoreGroup is one presentation partition of the pending list.
type StoreGroup struct {
	Store   string
	Entries []*entities.ShoppingListEntry
}

// GroupByStore partitions entries by their store value, groups ordered by
// store name, entries keeping their input order within a group.
func GroupByStore(entries []*entities.ShoppingListEntry) []StoreGroup {
	byStore := make(map[string][]*entities.ShoppingListEntry)
	var stores []string
	for _, entry := range entries {
		if _, ok := byStore[entry.Store]; !ok {
			stores = append(stores, entry.Store)
		}
		byStore[entry.Store] = append(byStore[entry.Store], entry)
	}
	sort.Strings(stores)

	groups := make([]StoreGroup, 0, len(stores))
	for _, store := range stores {
		groups = append(groups, StoreGroup{Store: store, Entries: byStore[store]})
	}
	return groups
}

func toEntryResponse(entry *entities.ShoppingListEntry) domain.ShoppingEntryResponse {
	return domain.ShoppingEntryResponse{
		ID:        entry.ID.String(),
		ItemName:  entry.ItemName,
		QtyNeeded: entry.QtyNeeded,
		Store:     entry.Store,
		Status:    entry.Status,
		Reason:    entry.Reason,
		CreatedAt: entry.CreatedAt,
	}
}
