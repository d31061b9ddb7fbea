package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.Organization{},
		&entities.Subscription{},
		&entities.Store{},
		&entities.Employee{},
		&entities.SystemAdmin{},
		&entities.InviteCode{},
		&entities.DailyReport{},
		&entities.Receipt{},
		&entities.ReceiptImage{},
		&entities.PersonalGoal{},
		&entities.AuditLog{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
