package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDatabaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DE_DB_DRIVER", "DE_DB_HOST", "DE_DB_PORT", "DE_DB_USERNAME", "DE_DB_PASSWORD", "DE_DB_NAME", "DE_DB_SSL_MODE", "DE_LOGGER_LEVEL"} {
		t.Setenv(key, "")
	}
}

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Port = 5432
	cfg.Username = "postgres"
	cfg.Password = "secret"
	cfg.Database = "duration_engine"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	clearDatabaseEnv(t)
	require.NoError(t, validConfig().Validate())

	testCases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"Missing host", func(c *Config) { c.Host = "" }},
		{"Bad port", func(c *Config) { c.Port = 0 }},
		{"Missing username", func(c *Config) { c.Username = "" }},
		{"Missing database", func(c *Config) { c.Database = "" }},
		{"Unsupported driver", func(c *Config) { c.Driver = "mysql" }},
		{"Bad SSL mode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"No open connections", func(c *Config) { c.MaxOpenConns = 0 }},
		{"No idle connections", func(c *Config) { c.MaxIdleConns = 0 }},
		{"No query timeout", func(c *Config) { c.QueryTimeout = 0 }},
		{"No attempts", func(c *Config) { c.RetryAttempts = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDSN(t *testing.T) {
	clearDatabaseEnv(t)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=duration_engine sslmode=disable",
		validConfig().DSN(),
	)
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	t.Run("File values fill the gaps", func(t *testing.T) {
		clearDatabaseEnv(t)
		appConfig := &config.Config{
			Database: config.DatabaseConfig{
				Host:          "db.internal",
				Port:          "6543",
				Username:      "engine",
				Password:      "pw",
				Database:      "durations",
				SSLMode:       "require",
				MaxOpenConns:  40,
				QueryTimeout:  3 * time.Second,
				RetryAttempts: 5,
				RetryDelay:    2 * time.Second,
			},
			Logger: config.LoggerConfig{Level: "warn"},
		}

		cfg := CreateConfigFromViperConfig(appConfig)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 6543, cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 40, cfg.MaxOpenConns)
		assert.Equal(t, 10, cfg.MaxIdleConns)
		assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
		assert.Equal(t, 5, cfg.RetryAttempts)
		assert.Equal(t, 2*time.Second, cfg.RetryDelay)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("Environment wins for identity", func(t *testing.T) {
		clearDatabaseEnv(t)
		t.Setenv("DE_DB_HOST", "from-env")
		t.Setenv("DE_DB_PORT", "5433")

		cfg := CreateConfigFromViperConfig(&config.Config{
			Database: config.DatabaseConfig{Host: "from-file", Port: "5432"},
		})
		assert.Equal(t, "from-env", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
	})
}

func TestLoadFromViper(t *testing.T) {
	clearDatabaseEnv(t)

	v := viper.New()
	v.Set("database.host", "localhost")
	v.Set("database.port", "5432")
	v.Set("database.username", "postgres")
	v.Set("database.database", "duration_engine")
	v.Set("database.maxOpenConns", 12)

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxOpenConns)

	v.Set("database.sslMode", "never")
	_, err = LoadFromViper(v)
	assert.Error(t, err)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
}
