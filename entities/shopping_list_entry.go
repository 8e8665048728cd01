package entities

import (
	"github.com/google/uuid"
)

type ShoppingListEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	ItemName    string    `json:"item_name"`
	QtyNeeded   float64   `json:"qty_needed"`
	Store       string    `json:"store"`
	Status      string    `json:"status"` // "Pending", "Bought"
	Reason      string    `json:"reason"` // "Auto-Refill", "Manual Add", or free text

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
