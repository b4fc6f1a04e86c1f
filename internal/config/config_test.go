package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BOOL", "true")
	t.Setenv("TYPED_BAD_INT", "forty-two")

	assert.Equal(t, 42, GetEnvAsType("TYPED_INT", 0))
	assert.Equal(t, true, GetEnvAsType("TYPED_BOOL", false))
	assert.Equal(t, 7, GetEnvAsType("TYPED_BAD_INT", 7))
	assert.Equal(t, "fallback", GetEnvAsType("TYPED_MISSING", "fallback"))
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment(EnvDevelopment))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment(EnvProduction))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

func TestConfigLevel(t *testing.T) {
	testCases := []struct {
		name     string
		config   Config
		expected logrus.Level
	}{
		{"production default", Config{Environment: EnvProduction}, logrus.ErrorLevel},
		{"development default", Config{Environment: EnvDevelopment}, logrus.DebugLevel},
		{"other environment", Config{Environment: "staging"}, logrus.InfoLevel},
		{"explicit level", Config{Environment: EnvProduction, LogLevel: "warn"}, logrus.WarnLevel},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Level())
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	previous := log.GetLevel()
	t.Cleanup(func() { SetLogLevel(previous) })

	SetLogLevel(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "JWT_SECRET", "DB_DRIVER",
		"DB_PATH", "KAFKA_BROKER", "CORS_ALLOWED_ORIGINS",
	}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("APP_ENV", EnvProduction)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("JWT_SECRET", "super_secret_jwt_key")
		t.Setenv("DB_DRIVER", "Postgres")
		t.Setenv("KAFKA_BROKER", "kafka:9092")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, logrus.DebugLevel, config.Level(), "LOG_LEVEL wins over APP_ENV")
		assert.Equal(t, "postgres", config.DBDriver)
		assert.Equal(t, "kafka:9092", config.KafkaBroker)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORSAllowedOrigins)
		assert.False(t, config.IsDevelopment())
	})

	t.Run("should fail with invalid log level", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("LOG_LEVEL", "loud")

		config, err := LoadConfig()
		assert.Nil(t, config)
		assert.ErrorContains(t, err, "invalid LOG_LEVEL")
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unknown driver", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("DB_DRIVER", "oracle")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Empty(t, config.LogLevel)
		assert.Equal(t, logrus.DebugLevel, config.Level(), "development default")
		assert.Equal(t, "sqlite", config.DBDriver)
		assert.Equal(t, "pizza.sqlite", config.DBPath)
		assert.Empty(t, config.KafkaBroker)
		assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
		assert.True(t, config.IsDevelopment())

		db := config.Database()
		assert.Equal(t, "sqlite", db.Driver)
		assert.Equal(t, "pizza.sqlite?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", db.DSN())
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	c := &Config{DBPassword: "hunter2", JWTSecret: "jwt-secret"}
	s := c.String()

	assert.NotContains(t, s, "hunter2")
	assert.NotContains(t, s, "jwt-secret")
	assert.Contains(t, s, "[REDACTED]")
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
