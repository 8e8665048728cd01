package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingEntry    = "shopping list entry added successfully"
	MessageSuccessGetShoppingList     = "shopping list retrieved successfully"
	MessageSuccessMarkBought          = "shopping list entry marked as bought"
	MessageSuccessDeleteShoppingEntry = "shopping list entry deleted successfully"
	MessageSuccessSendShoppingDigest  = "shopping list digest sent successfully"

	MessageFailedAddShoppingEntry    = "failed to add shopping list entry"
	MessageFailedGetShoppingList     = "failed to retrieve shopping list"
	MessageFailedMarkBought          = "failed to mark shopping list entry as bought"
	MessageFailedDeleteShoppingEntry = "failed to delete shopping list entry"
	MessageFailedSendShoppingDigest  = "failed to send shopping list digest"

	ErrShoppingEntryNotFound = errors.New("shopping list entry not found")
	ErrEntryAlreadyBought    = errors.New("shopping list entry already bought")
)

const (
	ShoppingStatusPending = "Pending"
	ShoppingStatusBought  = "Bought"

	ReasonAutoRefill = "Auto-Refill"
	ReasonManualAdd  = "Manual Add"

	DefaultStore = "General"
)

type (
	AddShoppingEntryRequest struct {
		ItemName  string  `json:"item_name" validate:"required"`
		QtyNeeded float64 `json:"qty_needed" validate:"required,gt=0"`
		Store     string  `json:"store" validate:"omitempty"`
		Reason    string  `json:"reason" validate:"omitempty"`
	}

	ShoppingEntryResponse struct {
		ID        string    `json:"id"`
		ItemName  string    `json:"item_name"`
		QtyNeeded float64   `json:"qty_needed"`
		Store     string    `json:"store"`
		Status    string    `json:"status"`
		Reason    string    `json:"reason"`
		CreatedAt time.Time `json:"created_at"`
	}

	StoreGroupResponse struct {
		Store   string                  `json:"store"`
		Entries []ShoppingEntryResponse `json:"entries"`
	}

	ShoppingListResponse struct {
		Stores []StoreGroupResponse `json:"stores"`
		Total  int                  `json:"total"`
	}

	SendShoppingDigestRequest struct {
		To string `json:"to" validate:"required,email"`
	}
)
