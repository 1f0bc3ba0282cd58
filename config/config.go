package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Persistence.
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	StorePath   string `mapstructure:"STORE_PATH"`
	DatabaseURL string `mapstructure:"DB_URL"`

	// Business letterhead and sales tax.
	BusinessName  string  `mapstructure:"BUSINESS_NAME"`
	BusinessPhone string  `mapstructure:"BUSINESS_PHONE"`
	BusinessEmail string  `mapstructure:"BUSINESS_EMAIL"`
	TaxLabel      string  `mapstructure:"TAX_LABEL"`
	TaxRate       float64 `mapstructure:"TAX_RATE"`

	// Calendar slots.
	SlotStartHour   int `mapstructure:"SLOT_START_HOUR"`
	SlotEndHour     int `mapstructure:"SLOT_END_HOUR"`
	SlotStepMinutes int `mapstructure:"SLOT_STEP_MINUTES"`

	// Twilio reminders; disabled while TWILIO_ACCOUNT_SID is empty.
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `mapstructure:"TWILIO_PHONE_NUMBER"`
	ReminderCron      string `mapstructure:"REMINDER_CRON"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("STORE_DRIVER", "sqlite")
	v.SetDefault("STORE_PATH", "data/newday.db")
	v.SetDefault("DB_URL", "")

	v.SetDefault("BUSINESS_NAME", "New Day Pest Control")
	v.SetDefault("BUSINESS_PHONE", "(201) 972-5592")
	v.SetDefault("BUSINESS_EMAIL", "newdaypestcontrol@yahoo.com")
	v.SetDefault("TAX_LABEL", "NJ Tax")
	v.SetDefault("TAX_RATE", 0.06625)

	v.SetDefault("SLOT_START_HOUR", 8)
	v.SetDefault("SLOT_END_HOUR", 18)
	v.SetDefault("SLOT_STEP_MINUTES", 30)

	v.SetDefault("TWILIO_ACCOUNT_SID", "")
	v.SetDefault("TWILIO_AUTH_TOKEN", "")
	v.SetDefault("TWILIO_PHONE_NUMBER", "")
	v.SetDefault("REMINDER_CRON", "0 18 * * *")
}

// Load reads config.yaml from "." or "./config" when present, then lets
// environment variables override it.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	AppConfig = cfg
	return cfg, nil
}

// Validate rejects settings the calendar and tax code cannot work with.
func (c Config) Validate() error {
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("TAX_RATE must be in [0, 1), got %v", c.TaxRate)
	}
	if c.SlotStartHour < 0 || c.SlotEndHour > 23 || c.SlotEndHour < c.SlotStartHour {
		return fmt.Errorf("slot hours must satisfy 0 <= start <= end <= 23, got %d-%d", c.SlotStartHour, c.SlotEndHour)
	}
	if c.SlotStepMinutes <= 0 || 60%c.SlotStepMinutes != 0 {
		return fmt.Errorf("SLOT_STEP_MINUTES must divide 60, got %d", c.SlotStepMinutes)
	}
	switch c.StoreDriver {
	case "sqlite", "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DB_URL is required for STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func IsProduction() bool {
	return AppConfig.Env == "production"
}
