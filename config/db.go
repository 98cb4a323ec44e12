package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. MySQL is the production
// driver; sqlite keeps local development and CI self-contained.
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
