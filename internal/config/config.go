package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds application configuration.
type Config struct {
	Environment string

	APIBaseURL    string
	APIKey        string
	HTTPTimeout   time.Duration
	RetryAttempts uint64

	GRPCPort string
	HTTPPort string

	SchoolLocation *time.Location
	Locale         language.Tag
	AutoOptions    bool
	PageSize       int
}

// Load reads configuration from ./.env (when present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads configuration from the given dotenv file (ignored when it
// does not exist) and the environment. Real environment variables win.
func LoadFrom(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("ENV", "development")
	v.SetDefault("API_BASE_URL", "http://exam-api-courses.std-900.ist.mospolytech.ru")
	v.SetDefault("API_KEY", "")
	v.SetDefault("HTTP_TIMEOUT", 10*time.Second)
	v.SetDefault("RETRY_ATTEMPTS", 3)
	v.SetDefault("GRPC_PORT", "9090")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("SCHOOL_TIMEZONE", "Europe/Moscow")
	v.SetDefault("LOCALE", "ru")
	v.SetDefault("AUTO_OPTIONS", false)
	v.SetDefault("PAGE_SIZE", 5)
	v.AutomaticEnv()

	loc, err := time.LoadLocation(v.GetString("SCHOOL_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHOOL_TIMEZONE: %w", err)
	}
	locale, err := language.Parse(v.GetString("LOCALE"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE: %w", err)
	}

	cfg := &Config{
		Environment:    v.GetString("ENV"),
		APIBaseURL:     v.GetString("API_BASE_URL"),
		APIKey:         v.GetString("API_KEY"),
		HTTPTimeout:    v.GetDuration("HTTP_TIMEOUT"),
		RetryAttempts:  v.GetUint64("RETRY_ATTEMPTS"),
		GRPCPort:       v.GetString("GRPC_PORT"),
		HTTPPort:       v.GetString("HTTP_PORT"),
		SchoolLocation: loc,
		Locale:         locale,
		AutoOptions:    v.GetBool("AUTO_OPTIONS"),
		PageSize:       v.GetInt("PAGE_SIZE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with the production profile.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.GRPCPort == "" || c.HTTPPort == "" {
		return errors.New("GRPC_PORT and HTTP_PORT are required")
	}
	return nil
}
