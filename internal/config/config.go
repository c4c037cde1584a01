package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// devSessionSecret signs session cookies in development only. Production
// refuses to start without an explicit SESSION_SECRET.
const devSessionSecret = "dev_key_for_deposit_tracker"

// Config holds the application configuration
type Config struct {
	AppPort       string // HTTP listen port
	DataDir       string // Directory holding the JSON collections
	UploadDir     string // Directory holding the uploaded logo
	TemplateGlob  string // HTML template glob passed to gin
	SessionSecret string // Session cookie signing secret
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "data"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		TemplateGlob:  getEnv("TEMPLATE_GLOB", "web/templates/*.html"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
	if cfg.SessionSecret == "" {
		if cfg.IsProd {
			logrus.Fatal("SESSION_SECRET is required in production")
		}
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}

// getEnv returns the environment value for key, or defaultValue when unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
