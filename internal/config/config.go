package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	S3     S3Config
	CORS   CORSConfig
	Review ReviewConfig
	Alert  AlertConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the scan audit trail.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AuthConfig holds the shared review key and JWT signing settings.
type AuthConfig struct {
	ReviewKey   string        `mapstructure:"review_key"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
	Issuer      string        `mapstructure:"issuer"`
}

// S3Config holds the optional S3 reference-corpus settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Enabled reports whether an S3 corpus is configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ReviewConfig holds analysis settings.
type ReviewConfig struct {
	MaxFileSizeMB      int64    `mapstructure:"max_file_size_mb"`
	AlertThreshold     float64  `mapstructure:"alert_threshold"`
	SuspiciousKeywords []string `mapstructure:"suspicious_keywords"`
	OCRLanguages       []string `mapstructure:"ocr_languages"`
}

// AlertConfig holds high-score alert delivery settings.
type AlertConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ToAddress   string `mapstructure:"to_address"`
}

// Load reads configuration from environment variables with the FRAUDCHECK_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FRAUDCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "fraudcheck")
	v.SetDefault("db.password", "fraudcheck_secret")
	v.SetDefault("db.name", "fraudcheck_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Auth defaults
	v.SetDefault("auth.review_key", "")
	v.SetDefault("auth.jwt_secret", "change-me-in-production")
	v.SetDefault("auth.token_expiry", "8h")
	v.SetDefault("auth.issuer", "fraudcheck")

	// S3 defaults (disabled unless a bucket is set)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "corpus/")
	v.SetDefault("s3.endpoint", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Review defaults
	v.SetDefault("review.max_file_size_mb", 50)
	v.SetDefault("review.alert_threshold", 25.0)
	v.SetDefault("review.suspicious_keywords", "")
	v.SetDefault("review.ocr_languages", "eng")

	// Alert defaults
	v.SetDefault("alert.provider", "noop")
	v.SetDefault("alert.region", "us-east-1")
	v.SetDefault("alert.from_address", "noreply@fraudcheck.local")
	v.SetDefault("alert.from_name", "Document Fraud Detection")
	v.SetDefault("alert.to_address", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "FRAUDCHECK_SERVER_PORT",
		"server.read_timeout":        "FRAUDCHECK_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "FRAUDCHECK_SERVER_WRITE_TIMEOUT",
		"server.environment":         "FRAUDCHECK_SERVER_ENVIRONMENT",
		"db.host":                    "FRAUDCHECK_DB_HOST",
		"db.port":                    "FRAUDCHECK_DB_PORT",
		"db.user":                    "FRAUDCHECK_DB_USER",
		"db.password":                "FRAUDCHECK_DB_PASSWORD",
		"db.name":                    "FRAUDCHECK_DB_NAME",
		"db.sslmode":                 "FRAUDCHECK_DB_SSLMODE",
		"db.max_open":                "FRAUDCHECK_DB_MAX_OPEN",
		"db.max_idle":                "FRAUDCHECK_DB_MAX_IDLE",
		"auth.review_key":            "FRAUDCHECK_AUTH_REVIEW_KEY",
		"auth.jwt_secret":            "FRAUDCHECK_AUTH_JWT_SECRET",
		"auth.token_expiry":          "FRAUDCHECK_AUTH_TOKEN_EXPIRY",
		"auth.issuer":                "FRAUDCHECK_AUTH_ISSUER",
		"s3.region":                  "FRAUDCHECK_S3_REGION",
		"s3.bucket":                  "FRAUDCHECK_S3_BUCKET",
		"s3.prefix":                  "FRAUDCHECK_S3_PREFIX",
		"s3.endpoint":                "FRAUDCHECK_S3_ENDPOINT",
		"s3.access_key":              "FRAUDCHECK_S3_ACCESS_KEY",
		"s3.secret_key":              "FRAUDCHECK_S3_SECRET_KEY",
		"cors.allowed_origins":       "FRAUDCHECK_CORS_ALLOWED_ORIGINS",
		"review.max_file_size_mb":    "FRAUDCHECK_REVIEW_MAX_FILE_SIZE_MB",
		"review.alert_threshold":     "FRAUDCHECK_REVIEW_ALERT_THRESHOLD",
		"review.suspicious_keywords": "FRAUDCHECK_REVIEW_SUSPICIOUS_KEYWORDS",
		"review.ocr_languages":       "FRAUDCHECK_REVIEW_OCR_LANGUAGES",
		"alert.provider":             "FRAUDCHECK_ALERT_PROVIDER",
		"alert.region":               "FRAUDCHECK_ALERT_REGION",
		"alert.from_address":         "FRAUDCHECK_ALERT_FROM_ADDRESS",
		"alert.from_name":            "FRAUDCHECK_ALERT_FROM_NAME",
		"alert.to_address":           "FRAUDCHECK_ALERT_TO_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FRAUDCHECK_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FRAUDCHECK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Auth = AuthConfig{
		ReviewKey:   v.GetString("auth.review_key"),
		JWTSecret:   v.GetString("auth.jwt_secret"),
		TokenExpiry: v.GetDuration("auth.token_expiry"),
		Issuer:      v.GetString("auth.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Prefix:    v.GetString("s3.prefix"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitCSV(v.GetString("cors.allowed_origins")),
	}
	cfg.Review = ReviewConfig{
		MaxFileSizeMB:      v.GetInt64("review.max_file_size_mb"),
		AlertThreshold:     v.GetFloat64("review.alert_threshold"),
		SuspiciousKeywords: splitCSV(v.GetString("review.suspicious_keywords")),
		OCRLanguages:       splitCSV(v.GetString("review.ocr_languages")),
	}
	cfg.Alert = AlertConfig{
		Provider:    v.GetString("alert.provider"),
		Region:      v.GetString("alert.region"),
		FromAddress: v.GetString("alert.from_address"),
		FromName:    v.GetString("alert.from_name"),
		ToAddress:   v.GetString("alert.to_address"),
	}

	return cfg, nil
}

// splitCSV parses a comma-separated list, dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
