package infra

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripgen/internal/models/db_models"
)

// DatabaseConfig describes the primary MySQL engine and the embedded SQLite
// file used when MySQL cannot be reached.
type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Database   string
	SQLitePath string
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:       getEnvWithDefault("MYSQL_HOST", "localhost"),
		Port:       getEnvWithDefault("MYSQL_PORT", "3306"),
		User:       getEnvWithDefault("MYSQL_USER", "admin"),
		Password:   getEnvWithDefault("MYSQL_PASSWORD", "password"),
		Database:   getEnvWithDefault("MYSQL_DATABASE", "travel_planning"),
		SQLitePath: getEnvWithDefault("SQLITE_PATH", "travel_planning.db"),
	}
}

// InitDatabase selects the storage engine for the process lifetime. MySQL is
// tried first; any failure there falls back to the embedded SQLite file. The
// schema is migrated on whichever engine won, so callers see one *gorm.DB
// regardless of the backend. Failure of both engines is fatal to startup.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := openMySQL(cfg)
	if err != nil {
		log.Printf("MySQL unavailable (%v), falling back to SQLite at %s", err, cfg.SQLitePath)
		db, err = openSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite fallback failed: %w", err)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	return db, nil
}

// Migrate creates the demand and plan tables if they do not exist yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&db_models.UserDemand{}, &db_models.TravelPlan{})
}

func openMySQL(cfg DatabaseConfig) (*gorm.DB, error) {
	if err := ensureMySQLDatabase(cfg); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	log.Printf("MySQL connection established, database %s", cfg.Database)
	return db, nil
}

// ensureMySQLDatabase connects without a schema selected and creates the
// target database when it is missing.
func ensureMySQLDatabase(cfg DatabaseConfig) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4",
		cfg.User, cfg.Password, cfg.Host, cfg.Port)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect mysql server: %w", err)
	}

	createStmt := fmt.Sprintf(
		"CREATE DATABASE IF NOT EXISTS %s CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci",
		cfg.Database)
	if err := db.Exec(createStmt).Error; err != nil {
		return fmt.Errorf("create database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openSQLite(path string) (*gorm.DB, error) {
	// _foreign_keys keeps the cascade from travel_plan to user_demand working
	// on this engine too.
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	log.Printf("SQLite database opened at %s", path)
	return db, nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
	}
	return tx
}

// ReleaseTransaction rolls back when err is set and commits otherwise,
// returning whichever error should reach the caller.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Printf("Error rolling back transaction: %v", rollbackErr)
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		log.Printf("Error committing transaction: %v", commitErr)
		return commitErr
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
