package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadScan       = "pantry scan uploaded successfully"
	MessageSuccessGetScan          = "pantry scan retrieved successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"

	MessageFailedUploadScan       = "failed to upload pantry scan"
	MessageFailedGetScan          = "failed to retrieve pantry scan"
	MessageFailedSaveScannedItems = "failed to save scanned items"

	ErrInvalidPantryScan      = errors.New("invalid pantry scan ID")
	ErrNoScanImages           = errors.New("at least one scan image is required")
	ErrTooManyScanImages      = errors.New("a scan accepts at most three images")
	ErrVisionProcessingFailed = errors.New("vision processing failed")
)

// ScanRecord is the transient, not-yet-persisted shape of one detected
// product: produced by the vision extraction, possibly enriched from the
// barcode database, and finally confirmed by the user before saving.
type ScanRecord struct {
	ItemName        string  `json:"item_name"`
	Notes           string  `json:"notes,omitempty"`
	Quantity        float64 `json:"quantity"`
	Weight          float64 `json:"weight"`
	WeightUnit      string  `json:"weight_unit"`
	Category        string  `json:"category"`
	EstimatedExpiry string  `json:"estimated_expiry,omitempty"`
	Barcode         string  `json:"barcode,omitempty"`
	SuggestedStore  string  `json:"suggested_store,omitempty"`
}

type (
	UploadScanRequest struct {
		Images []*multipart.FileHeader `json:"images" validate:"required,min=1,max=3"`
	}

	UploadScanResponse struct {
		ScanID    string   `json:"scan_id"`
		ImageURLs []string `json:"image_urls"`
		Status    string   `json:"status"`
	}

	ScanResultResponse struct {
		ScanID  string       `json:"scan_id"`
		Status  string       `json:"status"`
		Records []ScanRecord `json:"records,omitempty"`
		Error   string       `json:"error,omitempty"`
	}

	SaveScannedItemRequest struct {
		ItemName        string  `json:"item_name" validate:"required"`
		Notes           string  `json:"notes" validate:"omitempty"`
		Quantity        float64 `json:"quantity" validate:"min=0"`
		Weight          float64 `json:"weight" validate:"omitempty,min=0"`
		WeightUnit      string  `json:"weight_unit" validate:"omitempty"`
		Category        string  `json:"category" validate:"omitempty,oneof=Produce Dairy Meat Pantry Frozen Snacks Beverages Household"`
		EstimatedExpiry string  `json:"estimated_expiry" validate:"omitempty"`
		Barcode         string  `json:"barcode" validate:"omitempty"`
		SuggestedStore  string  `json:"suggested_store" validate:"omitempty"`
		Threshold       float64 `json:"threshold" validate:"omitempty,min=0"`
		DailyUsage      float64 `json:"daily_usage" validate:"omitempty,min=0"`
	}

	SaveScannedItemsRequest struct {
		ScanID string                   `json:"scan_id" validate:"required,uuid"`
		Items  []SaveScannedItemRequest `json:"items" validate:"required,dive"`
	}
)
