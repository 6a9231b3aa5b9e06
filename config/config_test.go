package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.App.Port)
	}
	if cfg.JWT.Expiry != time.Hour {
		t.Errorf("expected 1h token expiry, got %v", cfg.JWT.Expiry)
	}
	if cfg.Payment.Currency != "usd" {
		t.Errorf("expected usd, got %s", cfg.Payment.Currency)
	}
	if cfg.Booking.SlotLockTTL != 10*time.Second {
		t.Errorf("expected 10s lock ttl, got %v", cfg.Booking.SlotLockTTL)
	}
	if len(cfg.App.AllowedOrigins) != 1 || cfg.App.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected origins: %v", cfg.App.AllowedOrigins)
	}
	if cfg.Redis.PoolSize != 10 || cfg.Redis.DialTimeout != 5*time.Second || cfg.Redis.ReadTimeout != 3*time.Second {
		t.Errorf("unexpected redis defaults: %+v", cfg.Redis)
	}
}

func TestLoad_RedisTimeoutsFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REDIS_POOL_SIZE", "25")
	t.Setenv("REDIS_READ_TIMEOUT", "750ms")
	t.Setenv("REDIS_WRITE_TIMEOUT", "soon")

	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Redis.PoolSize != 25 {
		t.Errorf("expected pool size 25, got %d", cfg.Redis.PoolSize)
	}
	if cfg.Redis.ReadTimeout != 750*time.Millisecond {
		t.Errorf("expected 750ms, got %v", cfg.Redis.ReadTimeout)
	}
	if cfg.Redis.WriteTimeout != 3*time.Second {
		t.Errorf("malformed value should fall back to 3s, got %v", cfg.Redis.WriteTimeout)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nAPP_PORT=8080\nJWT_EXPIRY=30m\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := load(viper.New(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.JWT.Secret != "from-file" {
		t.Errorf("expected secret from file, got %q", cfg.JWT.Secret)
	}
	if cfg.App.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.App.Port)
	}
	if cfg.JWT.Expiry != 30*time.Minute {
		t.Errorf("expected 30m, got %v", cfg.JWT.Expiry)
	}
	if len(cfg.App.AllowedOrigins) != 2 || cfg.App.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", cfg.App.AllowedOrigins)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(file, []byte("JWT_SECRET=from-file\nAPP_PORT=8080\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("APP_PORT", "9090")

	cfg, err := load(viper.New(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Errorf("expected env to win, got %s", cfg.App.Port)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := load(viper.New(), filepath.Join(t.TempDir(), ".env"))
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}
