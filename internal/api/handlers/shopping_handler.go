package handlers

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/internal/api/presenters"
	"KitchenMind-Backend/pkg/shopping"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		AddEntry(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
		MarkBought(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		SendDigest(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) AddEntry(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.AddShoppingEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingEntry, err)
	}

	res, err := h.shoppingService.AddEntry(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingEntry)
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.shoppingService.GetShoppingList(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) MarkBought(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	entryID := c.Params("id")

	if err := h.shoppingService.MarkBought(c.Context(), entryID, householdID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkBought, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkBought)
}

func (h *shoppingHandler) DeleteEntry(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	entryID := c.Params("id")

	if err := h.shoppingService.DeleteEntry(c.Context(), entryID, householdID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingEntry)
}

func (h *shoppingHandler) SendDigest(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.SendShoppingDigestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendShoppingDigest, err)
	}

	if err := h.shoppingService.SendDigest(c.Context(), *req, householdID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendShoppingDigest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendShoppingDigest)
}
