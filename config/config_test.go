package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CompanyName != "Aviation Ops" {
		t.Errorf("CompanyName = %q", cfg.CompanyName)
	}
	if cfg.Storage.Backend != BackendPocketBase {
		t.Errorf("Backend = %q", cfg.Storage.Backend)
	}
	if cfg.Storage.RedisAddr != "localhost:6379" || cfg.Storage.RedisNamespace != "aviationops" {
		t.Errorf("redis defaults = %+v", cfg.Storage)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `company_name: Base Aérea Sul
default_exchange_rate: "5,25"
storage:
  backend: redis
  redis:
    addr: redis:6379
    db: 2
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AVIATIONOPS_STORAGE_REDIS_NAMESPACE", "base-sul")
	t.Setenv("AVIATIONOPS_LOGGING_LEVEL", "debug")

	cfg, err := Load(New(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CompanyName != "Base Aérea Sul" || cfg.DefaultExchangeRate != "5,25" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Storage.Backend != BackendRedis || cfg.Storage.RedisAddr != "redis:6379" || cfg.Storage.RedisDB != 2 {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Storage.RedisNamespace != "base-sul" {
		t.Errorf("env override not applied: %q", cfg.Storage.RedisNamespace)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"backend", map[string]string{"AVIATIONOPS_STORAGE_BACKEND": "mongo"}, "invalid storage backend"},
		{"level", map[string]string{"AVIATIONOPS_LOGGING_LEVEL": "loud"}, "invalid log level"},
		{"format", map[string]string{"AVIATIONOPS_LOGGING_FORMAT": "xml"}, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(New(""))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml"))); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "quote", "COT-1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"quote":"COT-1"`) {
		t.Errorf("unexpected output: %s", out)
	}
}
