package store

import (
	"gorm.io/gorm"
	"mc-command-center/app/server/models"
)

// Migrate 幂等地建表（以及 email 唯一索引）
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CommandTemplate{},
	)
}
