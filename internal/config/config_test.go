package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

storage:
  data_dir: "/var/lib/lifeos/data"
  memory_dir: "/var/lib/lifeos/memory"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

activity:
  read_limit: 25

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Storage
	if cfg.Storage.DataDir != "/var/lib/lifeos/data" {
		t.Errorf("storage.data_dir = %q", cfg.Storage.DataDir)
	}
	if cfg.Storage.MemoryDir != "/var/lib/lifeos/memory" {
		t.Errorf("storage.memory_dir = %q", cfg.Storage.MemoryDir)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if !cfg.Database.MirrorEnabled() {
		t.Error("database.MirrorEnabled() should be true when DSN is set")
	}

	// Activity
	if cfg.Activity.ReadLimit != 25 {
		t.Errorf("activity.read_limit = %d, want 25", cfg.Activity.ReadLimit)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("server.port = %d, want 3001 (default)", cfg.Server.Port)
	}
	if cfg.Storage.DataDir != "./data" {
		t.Errorf("storage.data_dir = %q, want ./data (default)", cfg.Storage.DataDir)
	}
	if cfg.Database.MirrorEnabled() {
		t.Error("database.MirrorEnabled() should be false without a DSN")
	}
	if cfg.Activity.ReadLimit != 50 {
		t.Errorf("activity.read_limit = %d, want 50 (default)", cfg.Activity.ReadLimit)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}

	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port > 65535")
	}
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DataDir = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty data_dir")
	}
}

func TestValidate_EmptyMemoryDir(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.MemoryDir = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty memory_dir")
	}
}

func TestValidate_ReadLimitZero(t *testing.T) {
	cfg := validConfig()
	cfg.Activity.ReadLimit = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for read_limit = 0")
	}
}

func TestValidate_MirrorConnBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Database.DSN = "postgres://u:p@localhost:5432/db"
	cfg.Database.MaxConns = 1
	cfg.Database.MinConns = 5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for max_conns < min_conns")
	}
}

func TestValidate_LogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 3001},
		Storage: StorageConfig{
			DataDir:   "./data",
			MemoryDir: "./memory",
		},
		Activity: ActivityConfig{ReadLimit: 50},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}
