package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	httpapi "github.com/lkphuong/api-homepage/internal/api/http"
	"github.com/lkphuong/api-homepage/internal/apisrv/auth"
	"github.com/lkphuong/api-homepage/internal/bucket"
	"github.com/lkphuong/api-homepage/internal/content"
	"github.com/lkphuong/api-homepage/internal/store"
	"github.com/lkphuong/api-homepage/log"
	"github.com/spf13/viper"
)

// DefaultLanguage is the seeded Vietnamese language.
const DefaultLanguage = "7a1a6a3e-5c58-4f5a-9a38-2f6b0f0d1e01"

// Config represents the global configuration for the service.
type Config struct {
	DB      store.Config   `mapstructure:"mysql"`
	Logger  log.Config     `mapstructure:"logger"`
	HTTP    httpapi.Config `mapstructure:"http"`
	Auth    auth.Config    `mapstructure:"auth"`
	Bucket  bucket.Config  `mapstructure:"bucket"`
	Content content.Config `mapstructure:"content"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values, and a .env
// file in the working directory is loaded into the environment first.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, AUTH_ACCESS_SECRET
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/api-homepage")
		v.AddConfigPath("/etc/api-homepage")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the MySQL DSN from individual env vars when it is not set
	if config.DB.DSN == "" && config.DB.Driver != store.DriverSQLite {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	if user == "" || database == "" {
		return ""
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC", user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.driver", store.DriverMySQL)
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)

	v.SetDefault("logger.level", 0)

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.requests_per_minute", 300)
	v.SetDefault("http.shutdown_timeout", "10s")

	v.SetDefault("auth.access_ttl", "24h")
	v.SetDefault("auth.refresh_ttl", "720h")
	v.SetDefault("auth.login_window", "15m")
	v.SetDefault("auth.login_per_ip", 20)
	v.SetDefault("auth.login_per_username", 5)

	v.SetDefault("bucket.baseFolder", "uploads")

	v.SetDefault("content.default_language", DefaultLanguage)
	v.SetDefault("content.items_per_page", 10)
	v.SetDefault("content.max_file_size", 10<<20)
	v.SetDefault("content.allowed_extensions", []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".pdf", ".doc", ".docx", ".xls", ".xlsx"})
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.driver", "MYSQL_DRIVER")
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.requests_per_minute", "HTTP_REQUESTS_PER_MINUTE")
	v.BindEnv("http.shutdown_timeout", "HTTP_SHUTDOWN_TIMEOUT")

	// Auth
	v.BindEnv("auth.access_secret", "AUTH_ACCESS_SECRET", "ACCESS_TOKEN_SECRET")
	v.BindEnv("auth.refresh_secret", "AUTH_REFRESH_SECRET", "REFRESH_TOKEN_SECRET")
	v.BindEnv("auth.access_ttl", "AUTH_ACCESS_TTL")
	v.BindEnv("auth.refresh_ttl", "AUTH_REFRESH_TTL")
	v.BindEnv("auth.login_window", "AUTH_LOGIN_WINDOW")
	v.BindEnv("auth.login_per_ip", "AUTH_LOGIN_PER_IP")
	v.BindEnv("auth.login_per_username", "AUTH_LOGIN_PER_USERNAME")

	// Bucket
	v.BindEnv("bucket.s3AccessKey", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3SecretAccessKey", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3Endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3BucketName", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3BucketLocation", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.baseFolder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.subdomainEndpoint", "BUCKET_SUBDOMAIN_ENDPOINT")
	v.BindEnv("bucket.insecure", "BUCKET_INSECURE")

	// Content
	v.BindEnv("content.default_language", "CONTENT_DEFAULT_LANGUAGE")
	v.BindEnv("content.items_per_page", "CONTENT_ITEMS_PER_PAGE", "ITEMS_PER_PAGE")
	v.BindEnv("content.max_file_size", "CONTENT_MAX_FILE_SIZE")
	v.BindEnv("content.allowed_extensions", "CONTENT_ALLOWED_EXTENSIONS")
}
