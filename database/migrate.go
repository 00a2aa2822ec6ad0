package database

import (
	"localnews/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateDatabase(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	if err := db.AutoMigrate(&models.Article{}); err != nil {
		log.Error("migration failed", zap.Error(err))
		return err
	}

	log.Info("database migrations completed")
	return nil
}
