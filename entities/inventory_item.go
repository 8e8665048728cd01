package entities

import (
	"github.com/google/uuid"
	"time"
)

type InventoryItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID     uuid.UUID `json:"household_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"` // "Produce", "Dairy", "Meat", "Pantry", "Frozen", "Snacks", "Beverages", "Household"
	Quantity        float64   `json:"quantity"`
	InitialQuantity float64   `json:"initial_quantity"`
	Weight          float64   `json:"weight"`
	WeightUnit      string    `json:"weight_unit"`
	Threshold       float64   `json:"threshold"`
	DailyUsage      float64   `json:"daily_usage"`
	EstimatedExpiry time.Time `json:"estimated_expiry"` // zero value means no expiry on record
	SuggestedStore  string    `json:"suggested_store"`
	Barcode         string    `json:"barcode,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	AddedManually   bool      `json:"added_manually"`
	PantryScanID    *string   `json:"pantry_scan_id,omitempty"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
