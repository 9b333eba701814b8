package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG_FILE", "HOST", "PORT", "DEBUG", "ALLOWED_ORIGINS", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("addr: got %q, want 0.0.0.0:5000", cfg.Addr())
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
	if got := cfg.Origins(); len(got) != 1 || got[0] != "*" {
		t.Errorf("origins: got %v, want [*]", got)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, `
host: 127.0.0.1
port: "9000"
debug: true
allowed_origins: "https://a.example, https://b.example"
log_format: json
`))
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9100" {
		t.Errorf("addr: got %q, want 127.0.0.1:9100", cfg.Addr())
	}
	if !cfg.Debug {
		t.Error("debug: want true from file")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("log_format: got %q", cfg.LogFormat)
	}
	origins := cfg.Origins()
	if len(origins) != 2 || origins[1] != "https://b.example" {
		t.Errorf("origins: got %v", origins)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"PORT": "http"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"bad debug", map[string]string{"DEBUG": "maybe"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"empty origins", map[string]string{"ALLOWED_ORIGINS": " , "}},
		{"missing file", map[string]string{"CONFIG_FILE": "/nonexistent/config.yaml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, "port: [unterminated"))

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
