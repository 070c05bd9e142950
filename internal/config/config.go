// Package config loads process configuration from the environment, an
// optional .env file and YAML data files.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// StoreBackend selects where the profile and session documents live
type StoreBackend string

const (
	StoreBackendRedis    StoreBackend = "redis"
	StoreBackendFile     StoreBackend = "file"
	StoreBackendPostgres StoreBackend = "postgres"
)

// Config is the bot's runtime configuration
type Config struct {
	// Discord
	DiscordToken        string
	ApplicationID       string
	GuildID             string
	AccessRoleName      string
	AdminAlertChannelID string
	SessionLogChannelID string
	MilestoneChannelID  string

	// Persistence
	StoreBackend  StoreBackend
	RedisAddr     string
	RedisPassword string
	DataDir       string
	DatabaseURL   string

	// Scraping
	ScraperURL     string
	ScraperTimeout time.Duration
	TickInterval   time.Duration

	// Data files, empty means built-in defaults
	ScheduleFile string
	TiersFile    string

	Location   *time.Location
	StatusAddr string
}

// Load reads configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Could not read .env file: %v", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment
func FromEnv() (*Config, error) {
	cfg := &Config{
		DiscordToken:        getEnv("DISCORD_TOKEN", ""),
		ApplicationID:       getEnv("APPLICATION_ID", ""),
		GuildID:             getEnv("GUILD_ID", ""),
		AccessRoleName:      getEnv("ACCESS_ROLE_NAME", "Now Playing"),
		AdminAlertChannelID: getEnv("ADMIN_ALERT_CHANNEL_ID", ""),
		SessionLogChannelID: getEnv("SESSION_LOG_CHANNEL_ID", ""),
		MilestoneChannelID:  getEnv("MILESTONE_CHANNEL_ID", ""),
		StoreBackend:        StoreBackend(strings.ToLower(getEnv("STORE_BACKEND", string(StoreBackendRedis)))),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		DataDir:             getEnv("DATA_DIR", "data"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		ScraperURL:          getEnv("SCRAPER_URL", "http://localhost:8090"),
		ScheduleFile:        getEnv("SCHEDULE_FILE", ""),
		TiersFile:           getEnv("TIERS_FILE", ""),
		StatusAddr:          getEnv("STATUS_ADDR", "127.0.0.1:8081"),
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}

	switch cfg.StoreBackend {
	case StoreBackendRedis, StoreBackendFile:
	case StoreBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres store backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	var err error
	cfg.ScraperTimeout, err = getDuration("SCRAPER_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.TickInterval, err = getDuration("TICK_INTERVAL", 60*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
