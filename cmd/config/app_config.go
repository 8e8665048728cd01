package config

import (
	"KitchenMind-Backend/internal/api/handlers"
	"KitchenMind-Backend/internal/api/routes"
	"KitchenMind-Backend/internal/middleware"
	"KitchenMind-Backend/internal/utils"
	"KitchenMind-Backend/internal/utils/storage"
	"KitchenMind-Backend/pkg/household"
	"KitchenMind-Backend/pkg/inventory"
	"KitchenMind-Backend/pkg/jwt"
	"KitchenMind-Backend/pkg/scan"
	"KitchenMind-Backend/pkg/shopping"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	householdRepository := household.NewHouseholdRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	scanRepository := scan.NewScanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	householdService := household.NewHouseholdService(householdRepository, jwtService)
	inventoryService := inventory.NewInventoryService(inventoryRepository, shoppingRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository)
	scanService := scan.NewScanService(scanRepository, scan.NewVisionClient(), scan.NewBarcodeClient(), s3)

	// Handler
	householdHandler := handlers.NewHouseholdHandler(householdService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		HouseholdHandler: householdHandler,
		InventoryHandler: inventoryHandler,
		ShoppingHandler:  shoppingHandler,
		ScanHandler:      scanHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
