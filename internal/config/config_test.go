package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locksum_config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Errorf("address = %q", cfg.ServerAddress)
	}
	if cfg.TokenTTL != 10080*time.Minute {
		t.Errorf("ttl = %v", cfg.TokenTTL)
	}
	if cfg.InvoiceNumberPrefix != "INV" {
		t.Errorf("prefix = %q", cfg.InvoiceNumberPrefix)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9000"},
		"database": {"path": "/tmp/test.db"},
		"token_ttl_minutes": 60,
		"cors_origins": ["http://localhost:5173", " ", "http://localhost"],
		"invoice_number_prefix": "LKS"
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9000" {
		t.Errorf("address = %q", cfg.ServerAddress)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("ttl = %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected blank origins dropped, got %v", cfg.CORSOrigins)
	}
	if cfg.InvoiceNumberPrefix != "LKS" {
		t.Errorf("prefix = %q", cfg.InvoiceNumberPrefix)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadConfigNegativeTTL(t *testing.T) {
	path := writeConfig(t, `{"token_ttl_minutes": -5}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for negative TTL")
	}
}
