package Models

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Now is the ledger's clock; tests replace it to move the calendar day.
var Now = time.Now

var dataDir string

// Today returns the current calendar date at day granularity. Every
// dated row in the ledger stores this format.
func Today() string {
	return Now().Format("2006-01-02")
}

// DataDir is where the database file and exported backups live.
func DataDir() string {
	if dataDir == "" {
		return "./data"
	}
	return dataDir
}

func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func ConnectDataBase() {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using defaults")
	}

	dataDir = GetEnv("DATA_DIR", "./data")
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		log.Fatal("cannot create data directory:", err)
	}

	dbPath := filepath.Join(dataDir, GetEnv("DB_FILE", "clinic.db"))

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("connection error:", err)
	}

	Migrate(DB)
}

// Migrate creates the ledger tables. Patients first, everything else
// references them.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(&Patient{})
	db.AutoMigrate(&Order{})
	db.AutoMigrate(&Session{})
	db.AutoMigrate(&Note{})
}
