package database

import (
	"fmt"
	"os"

	"joyful-cargo/logger"
	expenseModel "joyful-cargo/models/expense"
	logModel "joyful-cargo/models/log"
	parcelModel "joyful-cargo/models/parcel"
	postponedModel "joyful-cargo/models/postponed"
	userModel "joyful-cargo/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to Postgres, migrates the schema and creates indexes.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := AutoMigrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(DB); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// AutoMigrate runs migration for all models in dependency order.
func AutoMigrate(db *gorm.DB) error {
	// Stage 1: models without foreign keys
	stage1Models := []interface{}{
		&userModel.User{},
		&expenseModel.Category{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&parcelModel.Parcel{},
		&expenseModel.Expense{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: remaining models
	remainingModels := []interface{}{
		&postponedModel.PostponedOrder{},
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_uuid ON users(uuid)",
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_parcels_status ON parcels(status)",
		"CREATE INDEX IF NOT EXISTS idx_parcels_created_at ON parcels(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_parcels_updated_at ON parcels(updated_at)",
		"CREATE INDEX IF NOT EXISTS idx_parcels_user_id ON parcels(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_postponed_orders_is_resolved ON postponed_orders(is_resolved)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_category_id ON expenses(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
