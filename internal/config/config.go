package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Geofence  GeofenceConfig
	FaceMatch FaceMatchConfig
	FaceStore FaceStoreConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Storage   StorageConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	// Timezone used to derive the local calendar day for attendance records.
	Timezone string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// GeofenceConfig defines the authorized check-in zone. One zone per
// deployment today; keyed per centre later without changing the evaluator.
type GeofenceConfig struct {
	CenterLatitude  float64
	CenterLongitude float64
	RadiusMeters    float64
}

// FaceMatchConfig configures the external face-comparison service.
type FaceMatchConfig struct {
	ServiceURL          string
	APIKey              string
	SimilarityThreshold float64
	RequestTimeout      time.Duration
}

// FaceStoreConfig configures the S3-compatible bucket holding reference
// face photos, one per employee, under FolderPrefix.
type FaceStoreConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	Bucket       string
	FolderPrefix string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromAddress  string
	ManagerEmail string
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Kolkata"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ems"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	centerLat, err := strconv.ParseFloat(getEnv("GEOFENCE_CENTER_LAT", "17.483114"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_CENTER_LAT: %w", err)
	}
	centerLon, err := strconv.ParseFloat(getEnv("GEOFENCE_CENTER_LON", "78.320068"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_CENTER_LON: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_METERS", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_METERS: %w", err)
	}

	config.Geofence = GeofenceConfig{
		CenterLatitude:  centerLat,
		CenterLongitude: centerLon,
		RadiusMeters:    radius,
	}

	threshold, err := strconv.ParseFloat(getEnv("FACE_SIMILARITY_THRESHOLD", "90"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_SIMILARITY_THRESHOLD: %w", err)
	}
	compareTimeout, err := time.ParseDuration(getEnv("FACE_COMPARE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_COMPARE_TIMEOUT: %w", err)
	}

	config.FaceMatch = FaceMatchConfig{
		ServiceURL:          getEnv("FACE_SERVICE_URL", ""),
		APIKey:              getEnv("FACE_SERVICE_API_KEY", ""),
		SimilarityThreshold: threshold,
		RequestTimeout:      compareTimeout,
	}

	config.FaceStore = FaceStoreConfig{
		Endpoint:     getEnv("FACE_STORE_ENDPOINT", "localhost:9000"),
		AccessKey:    getEnv("FACE_STORE_ACCESS_KEY", ""),
		SecretKey:    getEnv("FACE_STORE_SECRET_KEY", ""),
		UseSSL:       getEnv("FACE_STORE_USE_SSL", "false") == "true",
		Bucket:       getEnv("FACE_STORE_BUCKET", "employee-faces"),
		FolderPrefix: getEnv("FACE_STORE_FOLDER", "emp-images"),
	}

	redisPort, err := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     redisPort,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:         getEnv("SMTP_HOST", ""),
		Port:         smtpPort,
		Username:     getEnv("SMTP_USERNAME", ""),
		Password:     getEnv("SMTP_PASSWORD", ""),
		FromAddress:  getEnv("SMTP_FROM", "no-reply@ems.local"),
		ManagerEmail: getEnv("MANAGER_EMAIL", "manager@example.com"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Geofence.RadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must be positive")
	}
	if c.FaceMatch.SimilarityThreshold < 0 || c.FaceMatch.SimilarityThreshold > 100 {
		return fmt.Errorf("FACE_SIMILARITY_THRESHOLD must be between 0 and 100")
	}
	if c.FaceMatch.ServiceURL == "" {
		return fmt.Errorf("FACE_SERVICE_URL is required")
	}
	if c.FaceStore.AccessKey == "" || c.FaceStore.SecretKey == "" {
		return fmt.Errorf("FACE_STORE_ACCESS_KEY and FACE_STORE_SECRET_KEY are required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// RedisAddr returns the host:port address for the redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
