package seeders

import (
	"log"
	"os"

	"cargo-tracking/constants"
	"cargo-tracking/models/user"
	"cargo-tracking/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedAdminUser makes sure at least one operator account exists so the
// protected API surface is reachable on a fresh install.
func SeedAdminUser(db *gorm.DB) {
	log.Printf("🔍 Checking admin user...")

	var count int64
	if err := db.Model(&user.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Admin user already present. No seeding needed.")
		return
	}

	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	email := "admin@cargo-tracking.local"
	admin := user.User{
		Uuid:        uuid.NewString(),
		Username:    "admin",
		LegalName:   "System Administrator",
		Email:       &email,
		Password:    hashed,
		Permissions: user.StringSlice{constants.PermAdminFull, constants.PermOperatorFull},
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("🎉 Seeded admin user (username: admin)")
}
