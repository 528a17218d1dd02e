package Models

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the workshop database and makes sure every table
// exists. Safe to call more than once; an already-open handle is kept.
// The dialect comes from the environment:
//
//	DB_DIALECT=mysql with DB_DSN set, or
//	sqlite on the file named by DB_PATH (default database.db).
func Connect() error {
	if DB != nil {
		return nil
	}

	var (
		connection *gorm.DB
		err        error
	)
	if os.Getenv("DB_DIALECT") == "mysql" {
		connection, err = gorm.Open(mysql.Open(os.Getenv("DB_DSN")), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "database.db"
		}
		connection, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return err
	}
	DB = connection

	return Migrate(DB)
}

// Migrate creates any missing tables, parents before children so the
// foreign keys resolve. Never destructive.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Client{}, &SparePart{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&Vehicle{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Intake{}, &UsageRecord{})
}

// Close releases the underlying connection. The package-level handle
// is cleared so a later Connect starts fresh.
func Close() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println(err)
	} else if err := sqlDB.Close(); err != nil {
		log.Println(err)
	}
	DB = nil
}
