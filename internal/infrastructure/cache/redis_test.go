package cache

import (
	"testing"
	"time"

	"diagnostic-center-api/config"
)

func TestOptions(t *testing.T) {
	opts := Options(config.RedisConfig{
		Host:         "cache",
		Port:         "6380",
		Password:     "pw",
		DB:           2,
		PoolSize:     25,
		DialTimeout:  time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 700 * time.Millisecond,
	})

	if opts.Addr != "cache:6380" || opts.Password != "pw" || opts.DB != 2 {
		t.Errorf("unexpected connection options: %+v", opts)
	}
	if opts.PoolSize != 25 {
		t.Errorf("expected pool size 25, got %d", opts.PoolSize)
	}
	if opts.DialTimeout != time.Second || opts.ReadTimeout != 500*time.Millisecond || opts.WriteTimeout != 700*time.Millisecond {
		t.Errorf("unexpected timeouts: dial=%v read=%v write=%v", opts.DialTimeout, opts.ReadTimeout, opts.WriteTimeout)
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(config.RedisConfig{
		Host:        "127.0.0.1",
		Port:        "1",
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected connection error")
	}
}
