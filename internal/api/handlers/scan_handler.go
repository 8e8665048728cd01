package handlers

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/internal/api/presenters"
	"KitchenMind-Backend/pkg/scan"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		UploadScan(c *fiber.Ctx) error
		GetScanResult(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) UploadScan(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	form, err := c.MultipartForm()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadScanRequest{Images: form.File["images"]}

	if len(req.Images) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadScan, domain.ErrNoScanImages)
	}

	res, err := h.scanService.UploadScan(c.Context(), req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadScan)
}

func (h *scanHandler) GetScanResult(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	scanID := c.Params("id")

	res, err := h.scanService.GetScanResult(c.Context(), scanID, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScan)
}

func (h *scanHandler) SaveScannedItems(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.SaveScannedItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	if err := h.scanService.SaveScannedItems(c.Context(), *req, householdID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveScannedItems)
}
