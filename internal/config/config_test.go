package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, domain.DefaultTimezone, cfg.Scheduler.Timezone)
	assert.Equal(t, domain.OffsetAtTarget, cfg.Scheduler.OffsetPolicy)
	assert.Equal(t, "@every 1m", cfg.Scheduler.Spec)
	assert.Equal(t, 30*time.Second, cfg.Redis.CredentialTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "America/New_York", cfg.Location().String())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	data := `slack:
  signing_secret: "from-file"
  install_url: "https://example.com/install"
storage:
  backend: "dynamodb"
  dynamodb:
    region: "eu-west-1"
    endpoint: "http://localhost:8000"
redis:
  addr: "localhost:6379"
  credential_ttl: "45s"
scheduler:
  timezone: "Europe/Paris"
  lookback_days: 2
  send_timeout: "5s"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("PORT", "8080")
	t.Setenv("SLACK_SIGNING_SECRET", "legacy")
	t.Setenv("SENDLATER_SLACK__SIGNING_SECRET", "from-env")
	t.Setenv("SENDLATER_SCHEDULER__OFFSET_POLICY", "evaluation")

	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"signing_secret", cfg.Slack.SigningSecret, "from-env"},
		{"install_url", cfg.Slack.InstallURL, "https://example.com/install"},
		{"port", cfg.Server.Port, "8080"},
		{"backend", cfg.Storage.Backend, BackendDynamoDB},
		{"region", cfg.Storage.DynamoDB.Region, "eu-west-1"},
		{"endpoint", cfg.Storage.DynamoDB.Endpoint, "http://localhost:8000"},
		{"messages_table", cfg.Storage.DynamoDB.MessagesTable, "send-later-messages"},
		{"redis_ttl", cfg.Redis.CredentialTTL, 45 * time.Second},
		{"timezone", cfg.Scheduler.Timezone, "Europe/Paris"},
		{"offset_policy", cfg.Scheduler.OffsetPolicy, domain.OffsetAtEvaluation},
		{"lookback_days", cfg.Scheduler.LookbackDays, 2},
		{"send_timeout", cfg.Scheduler.SendTimeout, 5 * time.Second},
		{"sweep_timeout", cfg.Scheduler.SweepTimeout, 50 * time.Second},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Should accept defaults", mutate: func(c *Config) {}},
		{
			name:    "Should reject unknown timezone",
			mutate:  func(c *Config) { c.Scheduler.Timezone = "Mars/Olympus" },
			wantErr: "scheduler.timezone",
		},
		{
			name:    "Should reject unknown offset policy",
			mutate:  func(c *Config) { c.Scheduler.OffsetPolicy = "sometimes" },
			wantErr: "scheduler.offset_policy",
		},
		{
			name:    "Should reject unknown backend",
			mutate:  func(c *Config) { c.Storage.Backend = "postgres" },
			wantErr: "storage.backend",
		},
		{
			name:    "Should reject empty sqlite path",
			mutate:  func(c *Config) { c.Storage.SQLite.Path = "" },
			wantErr: "storage.sqlite.path",
		},
		{
			name: "Should reject non positive cache ttl",
			mutate: func(c *Config) {
				c.Redis.Addr = "localhost:6379"
				c.Redis.CredentialTTL = 0
			},
			wantErr: "redis.credential_ttl",
		},
		{
			name:    "Should reject negative lookback",
			mutate:  func(c *Config) { c.Scheduler.LookbackDays = -1 },
			wantErr: "lookback_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateInbound(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.ValidateInbound())

	cfg.Slack.VerificationToken = "legacy"
	assert.NoError(t, cfg.ValidateInbound())

	cfg = Default()
	cfg.Slack.SigningSecret = "secret"
	assert.NoError(t, cfg.ValidateInbound())
}
