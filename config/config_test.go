package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "exceeded", cfg.Alerts.Policy)
	assert.InDelta(t, 0.9, cfg.Alerts.NearLimitRatio, 1e-9)
	assert.InDelta(t, 6000, cfg.Dashboard.IncomeMonthlyGoal, 1e-9)
	assert.Equal(t, 31, cfg.Dashboard.ForecastDays)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RememberMeExpiry)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenExpiry)
	assert.Equal(t, 12, cfg.Auth.PasswordCost)
	assert.True(t, cfg.Redis.CacheEnabled)
	assert.False(t, cfg.Server.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("ALERT_POLICY", "near_limit")
	t.Setenv("ALERT_NEAR_LIMIT_RATIO", "0.75")
	t.Setenv("INCOME_MONTHLY_GOAL", "4500.50")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_RESET_TTL", "20m")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example https://b.example,https://c.example")
	t.Setenv("BCB_BASE_URL", "http://bcb.local")
	t.Setenv("RATE_CACHE_TTL", "6h")

	cfg := Load()

	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "near_limit", cfg.Alerts.Policy)
	assert.InDelta(t, 0.75, cfg.Alerts.NearLimitRatio, 1e-9)
	assert.InDelta(t, 4500.50, cfg.Dashboard.IncomeMonthlyGoal, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, 10, cfg.Auth.PasswordCost)
	assert.Equal(t, 20*time.Minute, cfg.Auth.ResetTokenExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "http://bcb.local", cfg.Pricing.BCBBaseURL)
	assert.Equal(t, 6*time.Hour, cfg.Pricing.RateCacheTTL)
}

func TestEnvParsersFallBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{
			name:  "int",
			value: "eight",
			check: func(t *testing.T) { assert.Equal(t, 3, getEnvAsInt("TEST_VALUE", 3)) },
		},
		{
			name:  "float",
			value: "ninety",
			check: func(t *testing.T) { assert.InDelta(t, 0.5, getEnvAsFloat("TEST_VALUE", 0.5), 1e-9) },
		},
		{
			name:  "bool",
			value: "maybe",
			check: func(t *testing.T) { assert.True(t, getEnvAsBool("TEST_VALUE", true)) },
		},
		{
			name:  "duration",
			value: "soon",
			check: func(t *testing.T) { assert.Equal(t, time.Second, getEnvAsDuration("TEST_VALUE", time.Second)) },
		},
		{
			name:  "blank list",
			value: "  , ",
			check: func(t *testing.T) { assert.Equal(t, []string{"x"}, getEnvAsList("TEST_VALUE", []string{"x"})) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_VALUE", tt.value)
			tt.check(t)
		})
	}
}
