package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	AppEnv string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBDSN      string // overrides the DSN built from the DB_* parts

	JWTKey      string
	JWTTTLHours int
	SaltRound   int

	StorageDriver string // disk or gridfs
	UploadDir     string
	MongoURI      string
	MongoDB       string
	GridFSBucket  string
	MaxUploadMB   int

	SendgridAPIKey string
	MailFrom       string
	MailFromName   string

	ModerationWebhookURL string
	ConferenceSweep      string

	AdminEmail    string
	AdminPassword string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "eduportal"),
		DBDSN:      getEnv("DB_DSN", ""),

		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 24),
		SaltRound:   getEnvInt("SALT_ROUND", 10),

		StorageDriver: getEnv("STORAGE_DRIVER", "disk"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "eduportal"),
		GridFSBucket:  getEnv("GRIDFS_BUCKET", "portal_files"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 50),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		MailFrom:       getEnv("MAIL_FROM", "no-reply@eduportal.local"),
		MailFromName:   getEnv("MAIL_FROM_NAME", "EduPortal"),

		ModerationWebhookURL: getEnv("MODERATION_WEBHOOK_URL", ""),
		ConferenceSweep:      getEnv("CONFERENCE_SWEEP", "@every 10m"),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// MaxUploadBytes is the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
