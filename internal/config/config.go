package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort = "8080"
	defaultEnv  = "development"
)

// Provider exposes application configuration to the rest of the app.
// Handlers and services depend on this interface rather than on Config directly.
type Provider interface {
	GetPort() string
	GetAppEnv() string
	IsDevelopment() bool
	GetContentDir() string
	GetInquiryDir() string
	GetPublicDir() string
	GetSessionSecret() string
	GetLiveReload() bool
	GetWatchContent() bool
}

// Config holds all configuration for the application.
type Config struct {
	Port          string
	AppEnv        string
	ContentDir    string
	InquiryDir    string
	PublicDir     string
	SessionSecret string
	LiveReload    bool
	WatchContent  bool
}

// New loads configuration from the .env file (if present) and environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment without touching .env.
func FromEnv() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		AppEnv:        getEnv("APP_ENV", defaultEnv),
		ContentDir:    os.Getenv("CONTENT_DIR"),
		InquiryDir:    os.Getenv("INQUIRY_DIR"),
		PublicDir:     getEnv("PUBLIC_DIR", "public"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LiveReload:    getBool("LIVE_RELOAD", false),
		WatchContent:  getBool("WATCH_CONTENT", false),
	}
	if cfg.SessionSecret == "" && cfg.IsDevelopment() {
		cfg.SessionSecret = "development-session-secret-change-me"
	}
	return cfg
}

// Validate reports configuration that cannot be used to start the server.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set when APP_ENV=%s", c.AppEnv)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	return nil
}

func (c *Config) GetPort() string          { return c.Port }
func (c *Config) GetAppEnv() string        { return c.AppEnv }
func (c *Config) IsDevelopment() bool      { return c.AppEnv == defaultEnv }
func (c *Config) GetContentDir() string    { return c.ContentDir }
func (c *Config) GetInquiryDir() string    { return c.InquiryDir }
func (c *Config) GetPublicDir() string     { return c.PublicDir }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLiveReload() bool      { return c.LiveReload }
func (c *Config) GetWatchContent() bool    { return c.WatchContent }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
