package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv             string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// AI Configuration
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // optional, for compatible gateways
	PlanningModel string `mapstructure:"PLANNING_MODEL"`  // enhance-prompt and create-plan
	CodingModel   string `mapstructure:"CODING_MODEL"`    // generate-app and chat

	// Storage Configuration
	DatabaseURL   string        `mapstructure:"DATABASE_URL"` // empty keeps projects in memory
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`   // empty keeps pending plans in memory
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	PlanTTL       time.Duration `mapstructure:"PLAN_TTL"`

	// Auth Configuration
	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"` // HS256 secret of the hosted auth provider
	AuthIssuer    string `mapstructure:"AUTH_ISSUER"`     // optional expected "iss"

	DiscardStaleGenerations bool `mapstructure:"DISCARD_STALE_GENERATIONS"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":            ":8080",
	"APP_ENV":                   "development",
	"CORS_ALLOWED_ORIGINS":      "http://localhost:5173",
	"OPENAI_API_KEY":            "",
	"OPENAI_BASE_URL":           "",
	"PLANNING_MODEL":            "o3",
	"CODING_MODEL":              "o4-mini",
	"DATABASE_URL":              "",
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"REDIS_DB":                  0,
	"PLAN_TTL":                  "1h",
	"AUTH_JWT_SECRET":           "",
	"AUTH_ISSUER":               "",
	"DISCARD_STALE_GENERATIONS": false,
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")

	// Unmarshal only sees env-only keys that have a default.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Info: config.yaml not found, relying on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Info: using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set, generation requests will fail.")
	}
	if config.AuthJWTSecret == "" {
		log.Println("WARN: AUTH_JWT_SECRET is not set, every authenticated request will be rejected.")
	}
	if config.PlanTTL <= 0 {
		return Config{}, fmt.Errorf("PLAN_TTL must be positive, got %s", config.PlanTTL)
	}

	return config, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS into trimmed, non-empty origins.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
