package scan

import (
	"KitchenMind-Backend/domain"
	"strings"
)

// BarcodeProduct is the secondary record a barcode-database lookup yields
// for one product. It is authoritative for name, brand notes and net
// content, but only fills gaps the vision extraction left open.
type BarcodeProduct struct {
	ItemName   string
	Notes      string
	Weight     float64
	WeightUnit string
}

// Barcodes shorter than this are treated as misreads and never looked up.
const minBarcodeLength = 5

func BarcodeEligible(code string) bool {
	return len(strings.TrimSpace(code)) >= minBarcodeLength
}

// Reconcile merges the vision record with an optional barcode record.
// Fallback only, never override: a non-empty primary field always wins.
// Weight and its unit move together as a pair, so a merged record never
// carries a weight from one source and a unit from the other.
func Reconcile(primary domain.ScanRecord, secondary *BarcodeProduct) domain.ScanRecord {
	if secondary == nil {
		return primary
	}

	if primary.ItemName == "" && secondary.ItemName != "" {
		primary.ItemName = secondary.ItemName
	}
	if primary.Notes == "" && secondary.Notes != "" {
		primary.Notes = secondary.Notes
	}
	if primary.Weight == 0 && secondary.Weight > 0 {
		primary.Weight = secondary.Weight
		primary.WeightUnit = secondary.WeightUnit
	}

	return primary
}
