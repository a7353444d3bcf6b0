package config

import (
	"log"
	"os"

	"github.com/elsonbaty123/wagbty2/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "wagbty_super_secret_2024"))

type Config struct {
	Port            string
	DBPath          string
	Environment     string
	DefaultLanguage string
	// GoogleMapsAPIKey gates the reverse-geocoding network path. When empty
	// the location handler falls back to a raw-coordinate address.
	GoogleMapsAPIKey string
}

// Load reads configuration from the environment, honoring a .env file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "wagbty.db"),
		Environment:      getEnv("APP_ENV", "development"),
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "ar"),
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.DishRating{},
		&models.Order{},
		&models.OrderStatusHistory{},
		&models.Coupon{},
		&models.Notification{},
		&models.ChatMessage{},
		&models.StatusObject{},
		&models.StatusReaction{},
		&models.ViewedStatus{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
