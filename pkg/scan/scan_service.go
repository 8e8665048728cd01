package scan

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"KitchenMind-Backend/internal/utils/storage"
	"KitchenMind-Backend/pkg/inventory"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ScanService interface {
		UploadScan(ctx context.Context, req domain.UploadScanRequest, householdID string) (domain.UploadScanResponse, error)
		GetScanResult(ctx context.Context, id string, householdID string) (domain.ScanResultResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, householdID string) error
	}

	scanService struct {
		scanRepository ScanRepository
		visionClient   VisionClient
		barcodeClient  BarcodeClient
		s3             storage.AwsS3
	}
)

func NewScanService(scanRepository ScanRepository, visionClient VisionClient, barcodeClient BarcodeClient, s3 storage.AwsS3) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		visionClient:   visionClient,
		barcodeClient:  barcodeClient,
		s3:             s3,
	}
}

func (s *scanService) UploadScan(ctx context.Context, req domain.UploadScanRequest, householdID string) (domain.UploadScanResponse, error) {
	if len(req.Images) == 0 {
		return domain.UploadScanResponse{}, domain.ErrNoScanImages
	}
	if len(req.Images) > 3 {
		return domain.UploadScanResponse{}, domain.ErrTooManyScanImages
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.UploadScanResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()

	var imageURLs []string
	var objectKeys []string
	for i, image := range req.Images {
		fileName := fmt.Sprintf("pantry-scan-%s-%d", scanID.String(), i+1)
		objectKey, err := s.s3.UploadFile(fileName, image, "pantry-scans", storage.AllowImage...)
		if err != nil {
			for _, key := range objectKeys {
				_ = s.s3.DeleteFile(key)
			}
			return domain.UploadScanResponse{}, err
		}
		objectKeys = append(objectKeys, objectKey)
		imageURLs = append(imageURLs, s.s3.GetPublicLinkKey(objectKey))
	}

	urlsJSON, _ := json.Marshal(imageURLs)

	pantryScan := &entities.PantryScan{
		ID:          scanID,
		HouseholdID: householdUUID,
		ImageURLs:   string(urlsJSON),
		Status:      "Pending",
	}

	if err := s.scanRepository.CreateScan(ctx, pantryScan); err != nil {
		for _, key := range objectKeys {
			_ = s.s3.DeleteFile(key)
		}
		return domain.UploadScanResponse{}, err
	}

	go s.processScan(pantryScan, req.Images)

	return domain.UploadScanResponse{
		ScanID:    scanID.String(),
		ImageURLs: imageURLs,
		Status:    "Pending",
	}, nil
}

// processScan runs the extraction pipeline in the background: vision call,
// per-item barcode enrichment through the reconciler, results back onto the
// scan row. Barcode failures degrade to "no secondary data"; only a failed
// vision call marks the scan itself as Failed.
func (s *scanService) processScan(pantryScan *entities.PantryScan, files []*multipart.FileHeader) {
	ctx := context.Background()

	var images []ScanImage
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			s.markScanFailed(ctx, pantryScan, fmt.Sprintf("Error opening file: %s", err.Error()))
			return
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			s.markScanFailed(ctx, pantryScan, fmt.Sprintf("Error reading file: %s", err.Error()))
			return
		}

		images = append(images, ScanImage{
			Data:     data,
			MimeType: fileHeader.Header.Get("Content-Type"),
		})
	}

	records, err := s.visionClient.ExtractItems(ctx, images)
	if err != nil {
		s.markScanFailed(ctx, pantryScan, fmt.Sprintf("Vision extraction failed: %s", err.Error()))
		return
	}

	for i, record := range records {
		records[i] = s.enrichRecord(ctx, record)
	}

	resultsJSON, err := json.Marshal(records)
	if err != nil {
		s.markScanFailed(ctx, pantryScan, fmt.Sprintf("Error encoding results: %s", err.Error()))
		return
	}

	pantryScan.Status = "Processed"
	pantryScan.Results = string(resultsJSON)
	if err := s.scanRepository.UpdateScan(ctx, pantryScan); err != nil {
		log.Printf("Error updating pantry scan: %v", err)
	}
}

// enrichRecord applies the barcode lookup and the fallback merge for one
// record. Every failure path returns the primary record untouched.
func (s *scanService) enrichRecord(ctx context.Context, record domain.ScanRecord) domain.ScanRecord {
	if !BarcodeEligible(record.Barcode) {
		return record
	}

	product, err := s.barcodeClient.Lookup(ctx, strings.TrimSpace(record.Barcode))
	if err != nil {
		log.Printf("barcode lookup failed for %q: %v", record.Barcode, err)
		return record
	}

	return Reconcile(record, product)
}

func (s *scanService) markScanFailed(ctx context.Context, pantryScan *entities.PantryScan, reason string) {
	pantryScan.Status = "Failed"
	pantryScan.Results = reason
	if err := s.scanRepository.UpdateScan(ctx, pantryScan); err != nil {
		log.Printf("Error updating pantry scan: %v", err)
	}
}

func (s *scanService) GetScanResult(ctx context.Context, id string, householdID string) (domain.ScanResultResponse, error) {
	pantryScan, err := s.scanRepository.GetScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanResultResponse{}, domain.ErrInvalidPantryScan
		}
		return domain.ScanResultResponse{}, err
	}

	if pantryScan.HouseholdID.String() != householdID {
		return domain.ScanResultResponse{}, domain.ErrUnauthorizedAccess
	}

	res := domain.ScanResultResponse{
		ScanID: pantryScan.ID.String(),
		Status: pantryScan.Status,
	}

	switch pantryScan.Status {
	case "Failed":
		res.Error = pantryScan.Results
	case "Processed", "Completed":
		if pantryScan.Results != "" {
			var records []domain.ScanRecord
			if err := json.Unmarshal([]byte(pantryScan.Results), &records); err == nil {
				res.Records = records
			}
		}
	}

	return res, nil
}

func (s *scanService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, householdID string) error {
	scanUUID, err := uuid.Parse(req.ScanID)
	if err != nil {
		return domain.ErrParseUUID
	}

	pantryScan, err := s.scanRepository.GetScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidPantryScan
		}
		return err
	}

	if pantryScan.HouseholdID.String() != householdID {
		return domain.ErrUnauthorizedAccess
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ErrParseUUID
	}

	scanIDStr := scanUUID.String()
	items := make([]*entities.InventoryItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		expiry, _ := inventory.ParseExpiryDate(reqItem.EstimatedExpiry)

		items = append(items, &entities.InventoryItem{
			ID:              uuid.New(),
			HouseholdID:     householdUUID,
			Name:            reqItem.ItemName,
			Category:        reqItem.Category,
			Quantity:        reqItem.Quantity,
			InitialQuantity: inventory.NormalizeInitialQuantity(0, reqItem.Quantity),
			Weight:          reqItem.Weight,
			WeightUnit:      reqItem.WeightUnit,
			Threshold:       reqItem.Threshold,
			DailyUsage:      reqItem.DailyUsage,
			EstimatedExpiry: expiry,
			SuggestedStore:  reqItem.SuggestedStore,
			Barcode:         reqItem.Barcode,
			AddedManually:   false,
			PantryScanID:    &scanIDStr,
		})
	}

	pantryScan.Status = "Completed"
	return s.scanRepository.SaveScannedBatch(ctx, pantryScan, items)
}
