package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	SiteURL string
	// Contact webhook
	ContactWebhookURL     string
	ContactSource         string
	WebhookTimeoutSeconds int
	// Mock analysis
	AnalysisDelayMillis int
	// Third-party embeds
	CalLink       string
	CalNamespace  string
	TypeformURL   string
	ChatWidgetURL string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production sets the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		SiteURL: strings.TrimRight(getEnv("SITE_URL", "https://monarch-ai.com"), "/"),
		// Contact webhook
		ContactWebhookURL:     getEnv("CONTACT_WEBHOOK_URL", ""),
		ContactSource:         getEnv("CONTACT_SOURCE", "monarch-ai-website"),
		WebhookTimeoutSeconds: getEnvInt("WEBHOOK_TIMEOUT_SECONDS", 10),
		AnalysisDelayMillis:   getEnvInt("ANALYSIS_DELAY_MS", 3000),
		// Embeds
		CalLink:       strings.Trim(getEnv("CAL_LINK", "monarch-ai-cloud/30min"), "/"),
		CalNamespace:  getEnv("CAL_NAMESPACE", "30min"),
		TypeformURL:   getEnv("TYPEFORM_URL", "https://form.typeform.com/to/uWjbOr2r"),
		ChatWidgetURL: getEnv("CHAT_WIDGET_URL", ""),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.ContactWebhookURL == "" {
		log.Println("WARNING: CONTACT_WEBHOOK_URL is missing. Contact form submissions will be rejected.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// WebhookTimeout returns the outbound webhook timeout as a duration
func (c *Config) WebhookTimeout() time.Duration {
	return time.Duration(c.WebhookTimeoutSeconds) * time.Second
}

// AnalysisDelay returns the artificial analysis delay as a duration
func (c *Config) AnalysisDelay() time.Duration {
	return time.Duration(c.AnalysisDelayMillis) * time.Millisecond
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Environment names the deployment the way audit events report it
func (c *Config) Environment() string {
	if c.IsProduction() {
		return "production"
	}
	return "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
