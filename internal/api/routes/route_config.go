package routes

import (
	"KitchenMind-Backend/internal/api/handlers"
	"KitchenMind-Backend/internal/middleware"
	"KitchenMind-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	HouseholdHandler handlers.HouseholdHandler
	InventoryHandler handlers.InventoryHandler
	ShoppingHandler  handlers.ShoppingHandler
	ScanHandler      handlers.ScanHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Households()
	c.Inventory()
	c.ShoppingList()
	c.Scans()
	c.GuestRoute()
}

func (c *Config) Households() {
	households := c.App.Group("/api/v1/households")
	households.Post("", c.HouseholdHandler.CreateHousehold)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.AddInventoryItem)
	inventory.Get("", c.InventoryHandler.GetInventoryItems)
	inventory.Get("/:id", c.InventoryHandler.GetInventoryItemDetails)
	inventory.Put("/:id", c.InventoryHandler.UpdateInventoryItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteInventoryItem)

	// Special operations
	inventory.Post("/:id/restock", c.InventoryHandler.RestockItem)
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))
	shoppingList.Post("", c.ShoppingHandler.AddEntry)
	shoppingList.Get("", c.ShoppingHandler.GetShoppingList)
	shoppingList.Post("/email", c.ShoppingHandler.SendDigest)
	shoppingList.Post("/:id/bought", c.ShoppingHandler.MarkBought)
	shoppingList.Delete("/:id", c.ShoppingHandler.DeleteEntry)
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.AuthMiddleware(c.JWTService))
	scans.Post("", c.ScanHandler.UploadScan)
	scans.Post("/save", c.ScanHandler.SaveScannedItems)
	scans.Get("/:id", c.ScanHandler.GetScanResult)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
