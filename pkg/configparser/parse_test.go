package configparser

import (
	"testing"
	"time"
)

type testConfig struct {
	Server struct {
		Host string `env:"TESTCFG_HOST" default:"localhost"`
		Port string `env:"TESTCFG_PORT" default:"8080"`
	}
	MaxConns int32         `env:"TESTCFG_MAXCONNS" default:"20"`
	Debug    bool          `env:"TESTCFG_DEBUG" default:"true"`
	Timeout  time.Duration `env:"TESTCFG_TIMEOUT" default:"15m"`
}

func TestParseEnv_Defaults(t *testing.T) {
	cfg := &testConfig{}
	if err := ParseEnv(cfg); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}

	if cfg.Server.Host != "localhost" || cfg.Server.Port != "8080" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.MaxConns != 20 {
		t.Fatalf("expected MaxConns 20, got %d", cfg.MaxConns)
	}
	if !cfg.Debug {
		t.Fatal("expected Debug default true")
	}
	if cfg.Timeout != 15*time.Minute {
		t.Fatalf("expected Timeout 15m, got %s", cfg.Timeout)
	}
}

func TestParseEnv_EnvOverridesDefault(t *testing.T) {
	t.Setenv("TESTCFG_HOST", "db.internal")
	t.Setenv("TESTCFG_TIMEOUT", "45s")

	cfg := &testConfig{}
	if err := ParseEnv(cfg); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}

	if cfg.Server.Host != "db.internal" {
		t.Fatalf("expected env override, got %s", cfg.Server.Host)
	}
	if cfg.Timeout != 45*time.Second {
		t.Fatalf("expected Timeout 45s, got %s", cfg.Timeout)
	}
}

func TestParseEnv_InvalidTarget(t *testing.T) {
	if err := ParseEnv(testConfig{}); err == nil {
		t.Fatal("expected error for non-pointer target")
	}
	if err := ParseEnv(nil); err == nil {
		t.Fatal("expected error for nil target")
	}
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("TESTCFG_MAXCONNS", "not-a-number")

	cfg := &testConfig{}
	if err := ParseEnv(cfg); err == nil {
		t.Fatal("expected error for invalid integer value")
	}
}
