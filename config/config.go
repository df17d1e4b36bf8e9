package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const devJWTSecret = "dev-only-jwt-secret-change-me"

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Recipe search
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	SearchCacheTTL  time.Duration
	SearchRateLimit int

	// Recipe images
	S3BucketName string
	AWSRegion    string

	// Logging
	LogLevel  string
	LogFormat string

	// Seed data
	AdminEmail    string
	AdminPassword string
}

// LoadConfig resolves configuration from defaults, environment variables and
// Docker secrets, then validates it for the current environment.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	v := newViper(env)

	cfg := &Config{
		Environment: env,
		ServerPort:  v.GetString("server_port"),
		ServerHost:  v.GetString("server_host"),
		CORSOrigins: splitList(v.GetString("cors_origins")),

		DBDriver:   strings.ToLower(v.GetString("db_driver")),
		DBHost:     v.GetString("db_host"),
		DBPort:     v.GetString("db_port"),
		DBUser:     v.GetString("db_user"),
		DBPassword: secret(v, "db_password"),
		DBName:     v.GetString("db_name"),
		DBSSLMode:  v.GetString("db_ssl_mode"),
		SQLitePath: v.GetString("sqlite_path"),

		RedisURL:      secret(v, "redis_url"),
		RedisHost:     v.GetString("redis_host"),
		RedisPort:     v.GetString("redis_port"),
		RedisPassword: secret(v, "redis_password"),
		RedisDB:       v.GetInt("redis_db"),

		JWTSecret: secret(v, "jwt_secret"),
		JWTTTL:    v.GetDuration("jwt_ttl"),

		OpenAIAPIKey:    secret(v, "openai_api_key"),
		OpenAIBaseURL:   v.GetString("openai_base_url"),
		OpenAIModel:     v.GetString("openai_model"),
		SearchCacheTTL:  v.GetDuration("search_cache_ttl"),
		SearchRateLimit: v.GetInt("search_rate_limit"),

		S3BucketName: v.GetString("s3_bucket_name"),
		AWSRegion:    v.GetString("aws_region"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),

		AdminEmail:    v.GetString("admin_email"),
		AdminPassword: secret(v, "admin_password"),
	}

	// CI runners expose credentials through TEST_* secrets
	if env == CI {
		if cfg.DBPassword == "" {
			cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
		}
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func newViper(env Environment) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8080")
	v.SetDefault("cors_origins", "http://localhost:3000")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "recipebuilder")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("sqlite_path", "recipebuilder.db")
	v.SetDefault("redis_db", 0)
	v.SetDefault("jwt_ttl", 24*time.Hour)
	v.SetDefault("openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("search_cache_ttl", time.Hour)
	v.SetDefault("search_rate_limit", 30)
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("log_level", "info")
	v.SetDefault("admin_email", "admin@recipebuilder.com")

	if env.IsLocal() {
		v.SetDefault("db_driver", "sqlite")
		v.SetDefault("jwt_secret", devJWTSecret)
		v.SetDefault("log_format", "console")
		v.SetDefault("admin_password", "admin123")
	} else {
		v.SetDefault("db_driver", "postgres")
		v.SetDefault("log_format", "json")
	}
	return v
}

// PostgresDSN returns the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisEnabled reports whether a redis server is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// S3Enabled reports whether recipe image uploads are configured.
func (c *Config) S3Enabled() bool {
	return c.S3BucketName != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// secret prefers the environment and falls back to the Docker secret file.
func secret(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return readSecret(key)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
