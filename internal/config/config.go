package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App      AppConfig
	Airtable AirtableConfig
	SerpAPI  SerpAPIConfig
	Redis    RedisConfig
}

type AppConfig struct {
	HTTPPort     string
	LogLevel     string
	DataDir      string
	SearchRegion string
}

type AirtableConfig struct {
	APIKey    string
	BaseID    string
	TableName string
}

type SerpAPIConfig struct {
	APIKey  string
	BaseURL string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		HTTPPort:     req("HTTP_PORT"),
		LogLevel:     opt("LOG_LEVEL", "info"),
		DataDir:      opt("DATA_DIR", "data"),
		SearchRegion: opt("SEARCH_REGION", "New Zealand"),
	}

	cfg.Airtable = AirtableConfig{
		APIKey:    opt("AIRTABLE_API_KEY", ""),
		BaseID:    opt("AIRTABLE_BASE_ID", ""),
		TableName: opt("AIRTABLE_TABLE_NAME", "Job Seekers"),
	}

	cfg.SerpAPI = SerpAPIConfig{
		APIKey:  opt("SERPAPI_API_KEY", ""),
		BaseURL: opt("SERPAPI_BASE_URL", "https://serpapi.com"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
