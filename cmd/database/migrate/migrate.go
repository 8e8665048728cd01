package migration

import (
	"KitchenMind-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Household{}); err != nil {
		log.Fatalf("Error migrating household database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListEntry{}); err != nil {
		log.Fatalf("Error migrating shopping list entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryScan{}); err != nil {
		log.Fatalf("Error migrating pantry scan database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
