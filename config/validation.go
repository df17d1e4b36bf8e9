package config

import (
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		add("SERVER_PORT", "must be a valid port number")
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			add("DB_HOST", "is required for postgres")
		}
		if cfg.DBUser == "" {
			add("DB_USER", "is required for postgres")
		}
		if cfg.DBName == "" {
			add("DB_NAME", "is required for postgres")
		}
		if cfg.Environment.IsProduction() && cfg.DBPassword == "" {
			add("db_password", "secret is required in production")
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required for sqlite")
		}
		if cfg.Environment.IsProduction() {
			add("DB_DRIVER", "sqlite is not supported in production")
		}
	default:
		add("DB_DRIVER", "must be postgres or sqlite")
	}

	if cfg.JWTSecret == "" {
		add("jwt_secret", "secret is required")
	} else if cfg.Environment.IsProduction() && (len(cfg.JWTSecret) < 32 || cfg.JWTSecret == devJWTSecret) {
		add("jwt_secret", "must be at least 32 bytes and not the development default")
	}
	if cfg.JWTTTL <= 0 {
		add("JWT_TTL", "must be positive")
	}

	if cfg.Environment.IsProduction() && cfg.OpenAIAPIKey == "" {
		add("openai_api_key", "secret is required in production")
	}
	if cfg.SearchRateLimit <= 0 {
		add("SEARCH_RATE_LIMIT", "must be positive")
	}
	if cfg.SearchCacheTTL < 0 {
		add("SEARCH_CACHE_TTL", "must not be negative")
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		add("LOG_FORMAT", "must be json or console")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
