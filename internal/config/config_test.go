package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"ROOT", "ENV_FILE", "CONFIG_FILE", "LOG_LEVEL", "PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REQUEST_LOGGING"} {
		t.Setenv(envPrefix+name, "")
	}
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "host.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Root != defaultRoot {
		t.Fatalf("expected default root %s, got %s", defaultRoot, cfg.Root)
	}
	if cfg.EnvFilePath() != filepath.Join("env", ".env") {
		t.Fatalf("unexpected env file path %s", cfg.EnvFilePath())
	}
	if cfg.ConfigFilePath() != filepath.Join("env", "config.yml") {
		t.Fatalf("unexpected config file path %s", cfg.ConfigFilePath())
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if !cfg.EnableRequestLogging {
		t.Fatalf("expected request logging enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MFE_HOST_ROOT", "/srv/tutor")
	t.Setenv("MFE_HOST_LOG_LEVEL", "DEBUG")
	t.Setenv("MFE_HOST_RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("MFE_HOST_REQUEST_LOGGING", "false")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Root != "/srv/tutor" {
		t.Fatalf("expected overridden root, got %s", cfg.Root)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS {
		t.Fatalf("expected invalid RPS to be ignored, got %v", cfg.RateLimitRPS)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging disabled")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("MFE_HOST_ROOT", "from-env")
	t.Setenv("MFE_HOST_PORT", "7000")

	path := writeYAML(t, `
root: from-yaml
port: "7100"
write_timeout: 3s
enable_request_logging: false
rate_limit:
  rps: 0
  burst: 5
`)
	port := "7200"
	cfg, err := Load(&CLIOverrides{ConfigFile: path, Port: &port})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Root != "from-yaml" {
		t.Fatalf("expected YAML to override env, got %s", cfg.Root)
	}
	if cfg.Port != "7200" {
		t.Fatalf("expected CLI to override YAML, got %s", cfg.Port)
	}
	if cfg.WriteTimeout != 3*time.Second {
		t.Fatalf("unexpected write timeout %s", cfg.WriteTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected YAML to disable request logging")
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 5 {
		t.Fatalf("unexpected rate limit %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadRejectsInvalidInput(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yml")}); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeYAML(t, "idle_timeout: soon\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for bad duration")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		level := "verbose"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for unknown log level")
		}
	})

	t.Run("negative rate limit", func(t *testing.T) {
		path := writeYAML(t, "rate_limit:\n  rps: -1\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for negative rate limit")
		}
	})
}
