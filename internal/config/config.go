// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"holocron/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Validation modes for the external catalog service.
const (
	SWAPIModeStrict  = "strict"
	SWAPIModeLenient = "lenient"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port                string        `mapstructure:"PORT"`
	Env                 string        `mapstructure:"APP_ENV"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	SQLitePath          string        `mapstructure:"SQLITE_PATH"`
	AutoMigrate         bool          `mapstructure:"AUTO_MIGRATE"`
	DBMaxOpenConns      int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns      int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime   time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	RedisURL            string        `mapstructure:"REDIS_URL"`
	AllowedOrigins      string        `mapstructure:"ALLOWED_ORIGINS"`
	RateLimitFailClosed bool          `mapstructure:"RATE_LIMIT_FAIL_CLOSED"`
	CurrentUserID       uint          `mapstructure:"CURRENT_USER_ID"`
	UniqueFavoriteKinds string        `mapstructure:"UNIQUE_FAVORITE_KINDS"`
	FeatureFlags        string        `mapstructure:"FEATURE_FLAGS"`
	SWAPIBaseURL        string        `mapstructure:"SWAPI_BASE_URL"`
	SWAPIMode           string        `mapstructure:"SWAPI_MODE"`
	SWAPITimeout        time.Duration `mapstructure:"SWAPI_TIMEOUT"`
	TracingEnabled      bool          `mapstructure:"TRACING_ENABLED"`
	TracingExporter     string        `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint        string        `mapstructure:"OTLP_ENDPOINT"`
	TracingSampleRatio  float64       `mapstructure:"TRACING_SAMPLE_RATIO"`
}

// LoadConfig loads application configuration from .env, config files and environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()
	// UNIQUE_FAVORITE_KINDS="" must mean "no unique kinds", not the default.
	viper.AllowEmptyEnv(true)

	// The base config file is optional.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "test" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err == nil {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "/tmp/test.db")
	viper.SetDefault("AUTO_MIGRATE", true)
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_FAIL_CLOSED", false)
	viper.SetDefault("CURRENT_USER_ID", 1)
	viper.SetDefault("UNIQUE_FAVORITE_KINDS", "planet")
	viper.SetDefault("FEATURE_FLAGS", "favorite_repoint=on")
	viper.SetDefault("SWAPI_BASE_URL", "https://swapi.dev/api")
	viper.SetDefault("SWAPI_MODE", SWAPIModeStrict)
	viper.SetDefault("SWAPI_TIMEOUT", "0s")
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.SWAPIMode = strings.ToLower(strings.TrimSpace(c.SWAPIMode))
	c.SWAPIBaseURL = strings.TrimRight(strings.TrimSpace(c.SWAPIBaseURL), "/")
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if strings.HasPrefix(c.DatabaseURL, "postgres://") {
		c.DatabaseURL = "postgresql://" + strings.TrimPrefix(c.DatabaseURL, "postgres://")
	}
}

// Validate ensures that required configuration values are present and consistent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.CurrentUserID == 0 {
		return errors.New("CURRENT_USER_ID must be a positive id")
	}
	if c.DatabaseURL == "" && c.SQLitePath == "" {
		return errors.New("either DATABASE_URL or SQLITE_PATH is required")
	}
	if c.SWAPIMode != SWAPIModeStrict && c.SWAPIMode != SWAPIModeLenient {
		return fmt.Errorf("SWAPI_MODE must be %q or %q, got %q", SWAPIModeStrict, SWAPIModeLenient, c.SWAPIMode)
	}
	if c.SWAPITimeout < 0 {
		return errors.New("SWAPI_TIMEOUT must not be negative")
	}
	if _, err := c.UniqueKinds(); err != nil {
		return err
	}

	if c.IsProduction() {
		if c.DatabaseURL == "" {
			log.Println("WARNING: DATABASE_URL is empty in production; falling back to the local SQLite file.")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production.")
		}
	}

	return nil
}

// IsProduction reports whether APP_ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// UniqueKinds parses UNIQUE_FAVORITE_KINDS. "all" selects every kind, "none"
// or an empty value selects none.
func (c *Config) UniqueKinds() (map[models.FavoriteKind]bool, error) {
	out := make(map[models.FavoriteKind]bool)
	raw := strings.TrimSpace(c.UniqueFavoriteKinds)
	if strings.EqualFold(raw, "all") {
		for _, k := range models.FavoriteKinds {
			out[k] = true
		}
		return out, nil
	}
	if strings.EqualFold(raw, "none") {
		return out, nil
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kind, ok := models.ParseFavoriteKind(part)
		if !ok {
			return nil, fmt.Errorf("UNIQUE_FAVORITE_KINDS: unknown favorite kind %q", part)
		}
		out[kind] = true
	}
	return out, nil
}
