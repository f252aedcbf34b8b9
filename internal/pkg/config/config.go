package config

import (
	"fmt"
	"time"

	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Billing BillingConfig
	Notify  NotifyConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	TxMaxRetries     int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxRetryBase      time.Duration `envconfig:"DB_TX_RETRY_BASE" default:"100ms"`
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CartTTL  time.Duration `envconfig:"CART_TTL" default:"2h"`
}

// Driver: "stripe" calls the Stripe API, "fake" keeps charges in memory.
type BillingConfig struct {
	Driver          string `envconfig:"BILLING_DRIVER" default:"fake"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" default:""`
	Currency        string `envconfig:"BILLING_CURRENCY" default:"gbp"`
}

type NotifyConfig struct {
	Driver        string        `envconfig:"NOTIFY_DRIVER" default:"log"`
	Workers       int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	QueueSize     int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"100"`
	MaxAttempts   int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	SweepInterval time.Duration `envconfig:"NOTIFY_SWEEP_INTERVAL" default:"30s"`
	DeliveryGrace time.Duration `envconfig:"NOTIFY_DELIVERY_GRACE" default:"1m"`
	AdminEmails   []string      `envconfig:"NOTIFY_ADMIN_EMAILS" default:"bookings@javan.co.uk"`
	SMTP          SMTPConfig
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"1025"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@javan.co.uk"`
}

type BookingConfig struct {
	TimeZone          string `envconfig:"BOOKING_TIMEZONE" default:"Europe/London"`
	MaxTicketAttempts int    `envconfig:"BOOKING_MAX_TICKET_ATTEMPTS" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC for a zone Validate would have rejected.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings that would only fail once traffic arrives.
func (c Config) Validate() error {
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return fmt.Errorf("invalid JWT_DURATION %q: %w", c.JWT.Duration, err)
	}
	switch c.Billing.Driver {
	case "fake":
	case "stripe":
		if c.Billing.StripeSecretKey == "" {
			return errs.New("STRIPE_SECRET_KEY is required when BILLING_DRIVER=stripe")
		}
	default:
		return fmt.Errorf("unknown BILLING_DRIVER %q", c.Billing.Driver)
	}
	switch c.Notify.Driver {
	case "log", "smtp":
	default:
		return fmt.Errorf("unknown NOTIFY_DRIVER %q", c.Notify.Driver)
	}
	if c.Notify.Workers < 1 || c.Notify.QueueSize < 1 || c.Notify.MaxAttempts < 1 {
		return errs.New("NOTIFY_WORKERS, NOTIFY_QUEUE_SIZE and NOTIFY_MAX_ATTEMPTS must be positive")
	}
	if c.Booking.MaxTicketAttempts < 1 {
		return errs.New("BOOKING_MAX_TICKET_ATTEMPTS must be positive")
	}
	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		return fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.Booking.TimeZone, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/London",
			MaxConns: 10,

			TxMaxRetries: 3,
			TxRetryBase:  10 * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-bookings",
			Duration: "1h",
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			CartTTL: time.Hour,
		},
		Billing: BillingConfig{
			Driver:   "fake",
			Currency: "gbp",
		},
		Notify: NotifyConfig{
			Driver:        "log",
			Workers:       1,
			QueueSize:     10,
			MaxAttempts:   3,
			SweepInterval: time.Minute,
			DeliveryGrace: time.Minute,
			AdminEmails:   []string{"admin@example.com"},
		},
		Booking: BookingConfig{
			TimeZone:          "Europe/London",
			MaxTicketAttempts: 10,
		},
	}
}
