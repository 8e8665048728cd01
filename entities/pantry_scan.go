package entities

import (
	"github.com/google/uuid"
)

type PantryScan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	ImageURLs   string    `json:"image_urls" gorm:"type:text"`
	Status      string    `json:"status"` // "Pending", "Processed", "Failed", "Completed"
	Results     string    `json:"results,omitempty" gorm:"type:text"`

	Household *Household       `gorm:"foreignKey:HouseholdID"`
	Items     []*InventoryItem `gorm:"foreignKey:PantryScanID"`
	Timestamp
}
