package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "SENDLATER_"

	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	Slack     SlackConfig     `koanf:"slack"`
	Server    ServerConfig    `koanf:"server"`
	Storage   StorageConfig   `koanf:"storage"`
	Redis     RedisConfig     `koanf:"redis"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Logging   LoggingConfig   `koanf:"logging"`
}

type SlackConfig struct {
	SigningSecret     string `koanf:"signing_secret"`
	VerificationToken string `koanf:"verification_token"`
	InstallURL        string `koanf:"install_url"`

	// APIURL overrides the Web API base URL, tests point it at a local server.
	APIURL string `koanf:"api_url"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type StorageConfig struct {
	Backend  string         `koanf:"backend"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	DynamoDB DynamoDBConfig `koanf:"dynamodb"`
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

type DynamoDBConfig struct {
	Region           string `koanf:"region"`
	Endpoint         string `koanf:"endpoint"`
	MessagesTable    string `koanf:"messages_table"`
	CredentialsTable string `koanf:"credentials_table"`

	// Static keys are only meant for dynamodb-local. Leave empty to use the default chain.
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
}

// RedisConfig enables the credential cache when Addr is set.
type RedisConfig struct {
	Addr          string        `koanf:"addr"`
	Password      string        `koanf:"password"`
	DB            int           `koanf:"db"`
	CredentialTTL time.Duration `koanf:"credential_ttl"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type SchedulerConfig struct {
	Timezone       string        `koanf:"timezone"`
	OffsetPolicy   string        `koanf:"offset_policy"`
	Spec           string        `koanf:"spec"`
	LookbackDays   int           `koanf:"lookback_days"`
	SendTimeout    time.Duration `koanf:"send_timeout"`
	SweepTimeout   time.Duration `koanf:"sweep_timeout"`
	SendRatePerSec float64       `koanf:"send_rate_per_sec"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the configuration used for every key no source sets.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: "3000"},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			SQLite:  SQLiteConfig{Path: "./sendlater.db"},
			DynamoDB: DynamoDBConfig{
				Region:           "us-east-1",
				MessagesTable:    "send-later-messages",
				CredentialsTable: "send-later-tokens",
			},
		},
		Redis: RedisConfig{CredentialTTL: 30 * time.Second},
		Scheduler: SchedulerConfig{
			Timezone:       domain.DefaultTimezone,
			OffsetPolicy:   domain.OffsetAtTarget,
			Spec:           "@every 1m",
			LookbackDays:   1,
			SendTimeout:    10 * time.Second,
			SweepTimeout:   50 * time.Second,
			SendRatePerSec: 1,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// legacyEnv maps the variable names older deployments used.
var legacyEnv = map[string]string{
	"SLACK_SIGNING_SECRET":     "slack.signing_secret",
	"SLACK_VERIFICATION_TOKEN": "slack.verification_token",
	"SLACK_INSTALL_URL":        "slack.install_url",
	"PORT":                     "server.port",
	"DATABASE_PATH":            "storage.sqlite.path",
}

// Load builds the configuration from defaults, an optional YAML file, a .env file
// and the environment. Later sources win. SENDLATER_ variables use "__" to nest,
// e.g. SENDLATER_SCHEDULER__TIMEZONE.
func Load(path string) (*Config, error) {
	// a missing .env is fine outside local development
	_ = godotenv.Load()

	k := koanf.New(".")

	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnv[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load legacy env: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}

	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.SQLite.Path == "" {
			errs = append(errs, errors.New("storage.sqlite.path is required"))
		}
	case BackendDynamoDB:
		if c.Storage.DynamoDB.Region == "" {
			errs = append(errs, errors.New("storage.dynamodb.region is required"))
		}
		if c.Storage.DynamoDB.MessagesTable == "" || c.Storage.DynamoDB.CredentialsTable == "" {
			errs = append(errs, errors.New("storage.dynamodb table names are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.backend %q", c.Storage.Backend))
	}

	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid scheduler.timezone %q: %w", c.Scheduler.Timezone, err))
	}
	if c.Scheduler.OffsetPolicy != domain.OffsetAtTarget && c.Scheduler.OffsetPolicy != domain.OffsetAtEvaluation {
		errs = append(errs, fmt.Errorf("invalid scheduler.offset_policy %q", c.Scheduler.OffsetPolicy))
	}
	if c.Scheduler.LookbackDays < 0 {
		errs = append(errs, errors.New("scheduler.lookback_days must not be negative"))
	}
	if c.Scheduler.SendTimeout <= 0 || c.Scheduler.SweepTimeout <= 0 {
		errs = append(errs, errors.New("scheduler timeouts must be positive"))
	}
	if c.Scheduler.SendRatePerSec < 0 {
		errs = append(errs, errors.New("scheduler.send_rate_per_sec must not be negative"))
	}

	if c.Redis.Enabled() && c.Redis.CredentialTTL <= 0 {
		errs = append(errs, errors.New("redis.credential_ttl must be positive"))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// Location returns the canonical timezone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ValidateInbound checks what serving Slack requests needs on top of Validate.
func (c *Config) ValidateInbound() error {
	if c.Slack.SigningSecret == "" && c.Slack.VerificationToken == "" {
		return errors.New("slack.signing_secret or slack.verification_token is required")
	}
	return nil
}
