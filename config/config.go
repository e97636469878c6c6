package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      string `envconfig:"ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":9090"`

	// Storage
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`

	// Booking rules
	VenueTimezone             string        `envconfig:"VENUE_TIMEZONE" default:"UTC"`
	SlotHorizonDays           int           `envconfig:"SLOT_HORIZON_DAYS" default:"7"`
	CancellationChargePercent int64         `envconfig:"CANCELLATION_CHARGE_PERCENT" default:"20"`
	PlatformFee               int64         `envconfig:"PLATFORM_FEE" default:"0"`
	PaymentTTL                time.Duration `envconfig:"PAYMENT_TTL" default:"15m"`
	SweepInterval             time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`

	// Discord
	DiscordBotToken         string `envconfig:"DISCORD_BOT_TOKEN"`
	DiscordClientID         string `envconfig:"DISCORD_CLIENT_ID"`
	DiscordClientSecret     string `envconfig:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURI      string `envconfig:"DISCORD_REDIRECT_URI"`
	DiscordServerID         string `envconfig:"DISCORD_SERVER_ID"`
	DiscordChannelID        string `envconfig:"DISCORD_CHANNEL_ID"`
	DiscordSuperAdminRoleID string `envconfig:"DISCORD_SUPER_ADMIN_ROLE_ID"`
	DiscordTurfAdminRoleID  string `envconfig:"DISCORD_TURF_ADMIN_ROLE_ID"`

	// RabbitMQ
	RabbitURL       string `envconfig:"RABBIT_URL"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.events"`
	PaymentExchange string `envconfig:"PAYMENT_EXCHANGE" default:"payment.events"`
	PaymentQueue    string `envconfig:"PAYMENT_QUEUE" default:"turf-booking.payments"`

	// asynq
	RedisAddr string `envconfig:"REDIS_ADDR"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// LoadDotEnv reads .env into the process environment. A missing file is reported but
// the environment may still be complete.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func Load() (Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}

	if _, err := time.LoadLocation(c.VenueTimezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid VENUE_TIMEZONE: %w", err))
	}

	if c.SlotHorizonDays < 1 {
		errs = append(errs, errors.New("SLOT_HORIZON_DAYS must be at least 1"))
	}

	if c.CancellationChargePercent < 0 || c.CancellationChargePercent > 100 {
		errs = append(errs, errors.New("CANCELLATION_CHARGE_PERCENT must be between 0 and 100"))
	}

	if c.PlatformFee < 0 {
		errs = append(errs, errors.New("PLATFORM_FEE cannot be negative"))
	}

	if c.PaymentTTL < 0 || c.SweepInterval < 0 {
		errs = append(errs, errors.New("PAYMENT_TTL and SWEEP_INTERVAL cannot be negative"))
	}

	return errors.Join(errs...)
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.VenueTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) Production() bool {
	return c.Env == "production"
}
