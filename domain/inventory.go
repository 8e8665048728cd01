package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessRestockItem         = "inventory item restocked successfully"
	MessageSuccessGetDashboardStats   = "dashboard statistics retrieved successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedRestockItem         = "failed to restock inventory item"
	MessageFailedGetDashboardStats   = "failed to retrieve dashboard statistics"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
	ErrUnauthorizedAccess    = errors.New("unauthorized access to inventory item")
)

type (
	AddInventoryItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Category        string  `json:"category" validate:"required,oneof=Produce Dairy Meat Pantry Frozen Snacks Beverages Household"`
		Quantity        float64 `json:"quantity" validate:"min=0"`
		InitialQuantity float64 `json:"initial_quantity" validate:"omitempty,min=0"`
		Weight          float64 `json:"weight" validate:"omitempty,min=0"`
		WeightUnit      string  `json:"weight_unit" validate:"omitempty"`
		Threshold       float64 `json:"threshold" validate:"min=0"`
		DailyUsage      float64 `json:"daily_usage" validate:"min=0"`
		EstimatedExpiry string  `json:"estimated_expiry" validate:"omitempty"`
		SuggestedStore  string  `json:"suggested_store" validate:"omitempty"`
		Barcode         string  `json:"barcode" validate:"omitempty"`
	}

	UpdateInventoryItemRequest struct {
		Name            string   `json:"name" validate:"omitempty"`
		Category        string   `json:"category" validate:"omitempty,oneof=Produce Dairy Meat Pantry Frozen Snacks Beverages Household"`
		Quantity        *float64 `json:"quantity" validate:"omitempty,min=0"`
		Weight          *float64 `json:"weight" validate:"omitempty,min=0"`
		WeightUnit      string   `json:"weight_unit" validate:"omitempty"`
		Threshold       *float64 `json:"threshold" validate:"omitempty,min=0"`
		DailyUsage      *float64 `json:"daily_usage" validate:"omitempty,min=0"`
		EstimatedExpiry string   `json:"estimated_expiry" validate:"omitempty"`
		SuggestedStore  string   `json:"suggested_store" validate:"omitempty"`
	}

	RestockItemRequest struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	InventoryItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Category        string    `json:"category"`
		Quantity        float64   `json:"quantity"`
		InitialQuantity float64   `json:"initial_quantity"`
		Weight          float64   `json:"weight,omitempty"`
		WeightUnit      string    `json:"weight_unit,omitempty"`
		Threshold       float64   `json:"threshold"`
		DailyUsage      float64   `json:"daily_usage"`
		EstimatedExpiry string    `json:"estimated_expiry,omitempty"`
		SuggestedStore  string    `json:"suggested_store,omitempty"`
		DaysLeft        int       `json:"days_left"`
		Status          string    `json:"status"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems     int `json:"total_items"`
		GoodItems      int `json:"good_items"`
		LowItems       int `json:"low_items"`
		ExpiredItems   int `json:"expired_items"`
		PendingToBuy   int `json:"pending_to_buy"`
		AutoRefillOpen int `json:"auto_refill_open"`
	}
)
