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
	Server    ServerConfig
	DB        DBConfig
	Archive   ArchiveConfig
	Log       LogConfig
	CORS      CORSConfig
	Email     EmailConfig
	Templates TemplatesConfig
	Catalog   CatalogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
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

// ArchiveConfig holds S3 settings for archiving rendered invoice artifacts.
// Archiving is optional; when disabled the export endpoints still stream
// artifacts directly to the caller.
type ArchiveConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// TemplatesConfig points at the invoice template directory.
type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// CatalogConfig selects the HSN catalog source.
type CatalogConfig struct {
	// Source is "builtin" or "db". The builtin catalog needs no database.
	Source string `mapstructure:"source"`
}

// Load reads configuration from environment variables with the BILLFORGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billforge")
	v.SetDefault("db.password", "billforge_secret")
	v.SetDefault("db.name", "billforge_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Archive defaults
	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.region", "ap-south-1")
	v.SetDefault("archive.bucket", "billforge-invoices")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "invoices@billforge.in")
	v.SetDefault("email.from_name", "BillForge")

	// Template defaults
	v.SetDefault("templates.dir", "templates")

	// Catalog defaults
	v.SetDefault("catalog.source", "builtin")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "BILLFORGE_SERVER_PORT",
		"server.read_timeout":    "BILLFORGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "BILLFORGE_SERVER_WRITE_TIMEOUT",
		"server.environment":     "BILLFORGE_SERVER_ENVIRONMENT",
		"db.host":                "BILLFORGE_DB_HOST",
		"db.port":                "BILLFORGE_DB_PORT",
		"db.user":                "BILLFORGE_DB_USER",
		"db.password":            "BILLFORGE_DB_PASSWORD",
		"db.name":                "BILLFORGE_DB_NAME",
		"db.sslmode":             "BILLFORGE_DB_SSLMODE",
		"db.max_open":            "BILLFORGE_DB_MAX_OPEN",
		"db.max_idle":            "BILLFORGE_DB_MAX_IDLE",
		"archive.enabled":        "BILLFORGE_ARCHIVE_ENABLED",
		"archive.region":         "BILLFORGE_ARCHIVE_REGION",
		"archive.bucket":         "BILLFORGE_ARCHIVE_BUCKET",
		"archive.endpoint":       "BILLFORGE_ARCHIVE_ENDPOINT",
		"archive.access_key":     "BILLFORGE_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":     "BILLFORGE_ARCHIVE_SECRET_KEY",
		"archive.presign_expiry": "BILLFORGE_ARCHIVE_PRESIGN_EXPIRY",
		"log.level":              "BILLFORGE_LOG_LEVEL",
		"log.format":             "BILLFORGE_LOG_FORMAT",
		"cors.allowed_origins":   "BILLFORGE_CORS_ALLOWED_ORIGINS",
		"email.provider":         "BILLFORGE_EMAIL_PROVIDER",
		"email.region":           "BILLFORGE_EMAIL_REGION",
		"email.from_address":     "BILLFORGE_EMAIL_FROM_ADDRESS",
		"email.from_name":        "BILLFORGE_EMAIL_FROM_NAME",
		"templates.dir":          "BILLFORGE_TEMPLATES_DIR",
		"catalog.source":         "BILLFORGE_CATALOG_SOURCE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLFORGE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLFORGE_SERVER_PORT") == "" {
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
	cfg.Archive = ArchiveConfig{
		Enabled:       v.GetBool("archive.enabled"),
		Region:        v.GetString("archive.region"),
		Bucket:        v.GetString("archive.bucket"),
		Endpoint:      v.GetString("archive.endpoint"),
		AccessKey:     v.GetString("archive.access_key"),
		SecretKey:     v.GetString("archive.secret_key"),
		PresignExpiry: v.GetInt64("archive.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Templates = TemplatesConfig{
		Dir: v.GetString("templates.dir"),
	}
	cfg.Catalog = CatalogConfig{
		Source: v.GetString("catalog.source"),
	}

	return cfg, nil
}
