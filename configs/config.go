package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Feed paging limits.
const (
	DefaultLimitMemes = 20
	MaxLimitMemes     = 50
)

// MaxUploadBytes caps the accepted image size on meme creation.
const MaxUploadBytes = 10 << 20

type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	CloudinaryURL string
}

// Load reads configuration from the environment, letting a local .env file
// override it the way the rest of the stack expects during development.
func Load() (*Config, error) {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "memeshare"
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is required")
	}
	return cfg, nil
}
