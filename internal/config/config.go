package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const envPrefix = "STOREFRONT_"

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Identity IdentityConfig `yaml:"identity"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Outbox   OutboxConfig   `yaml:"outbox"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
}

type CheckoutConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	Currency string        `yaml:"currency"`
}

type IdentityConfig struct {
	UserHeader string `yaml:"user_header"`
	RoleHeader string `yaml:"role_header"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type OutboxConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
	BatchSize    int           `yaml:"batch_size"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			MaxConns: 10,
		},
		Checkout: CheckoutConfig{
			Timeout:  5 * time.Second,
			Currency: "USD",
		},
		Identity: IdentityConfig{
			UserHeader: "X-User-ID",
			RoleHeader: "X-User-Role",
		},
		Kafka: KafkaConfig{
			Topic: "storefront.orders",
		},
		Outbox: OutboxConfig{
			PollInterval: time.Second,
			BatchSize:    100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the optional YAML file at path over the defaults,
// then applies STOREFRONT_* environment overrides.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("os.ReadFile: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	}

	if err := applyEnv(&cfg, lookupEnv); err != nil {
		return Config{}, fmt.Errorf("applyEnv: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookupEnv(envPrefix + key)
		return strings.TrimSpace(v), ok
	}

	var errs []error

	duration := func(key string, dst *time.Duration) {
		if v, ok := get(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, key, err))
				return
			}
			*dst = d
		}
	}

	str := func(key string, dst *string) {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	str("HTTP_ADDR", &cfg.HTTP.Addr)
	duration("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout)
	duration("HTTP_SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout)
	str("DATABASE_URL", &cfg.Database.URL)
	duration("CHECKOUT_TIMEOUT", &cfg.Checkout.Timeout)
	str("CHECKOUT_CURRENCY", &cfg.Checkout.Currency)
	str("IDENTITY_USER_HEADER", &cfg.Identity.UserHeader)
	str("IDENTITY_ROLE_HEADER", &cfg.Identity.RoleHeader)
	str("KAFKA_TOPIC", &cfg.Kafka.Topic)
	duration("OUTBOX_POLL_INTERVAL", &cfg.Outbox.PollInterval)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)

	if v, ok := get("DATABASE_MAX_CONNS"); ok {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sDATABASE_MAX_CONNS: %w", envPrefix, err))
		} else {
			cfg.Database.MaxConns = int32(n)
		}
	}

	if v, ok := get("OUTBOX_BATCH_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sOUTBOX_BATCH_SIZE: %w", envPrefix, err))
		} else {
			cfg.Outbox.BatchSize = n
		}
	}

	if v, ok := get("KAFKA_BROKERS"); ok {
		cfg.Kafka.Brokers = splitCSV(v)
	}

	return errors.Join(errs...)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

func (c Config) Validate() error {
	var errs []error

	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url is required"))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, errors.New("database.max_conns must be > 0"))
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http timeouts must be > 0"))
	}
	if c.Checkout.Timeout <= 0 {
		errs = append(errs, errors.New("checkout.timeout must be > 0"))
	}
	if _, err := currency.ParseISO(c.Checkout.Currency); err != nil {
		errs = append(errs, fmt.Errorf("checkout.currency[%s] is not valid: %w", c.Checkout.Currency, err))
	}
	if c.Identity.UserHeader == "" || c.Identity.RoleHeader == "" {
		errs = append(errs, errors.New("identity headers are required"))
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("kafka.topic is required when brokers are set"))
	}
	if c.Outbox.PollInterval <= 0 || c.Outbox.BatchSize <= 0 {
		errs = append(errs, errors.New("outbox.poll_interval and outbox.batch_size must be > 0"))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("log.format[%s] must be json or text", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Currency is the catalog currency; Validate guarantees it parses.
func (c Config) Currency() currency.Unit {
	unit, err := currency.ParseISO(c.Checkout.Currency)
	if err != nil {
		return currency.USD
	}

	return unit
}
