package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "masterctl.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UART.Port != "/dev/serial0" {
		t.Fatalf("unexpected port: %q", cfg.UART.Port)
	}
	if cfg.UART.BaudRate != 9600 {
		t.Fatalf("unexpected baud rate: %d", cfg.UART.BaudRate)
	}
	if cfg.ResponseTimeout != 60*time.Second {
		t.Fatalf("unexpected response timeout: %v", cfg.ResponseTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `
port = "/dev/ttyUSB0"
baud_rate = 115200
response_timeout = "45s"
`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UART.Port != "/dev/ttyUSB0" {
		t.Fatalf("unexpected port: %q", cfg.UART.Port)
	}
	if cfg.UART.BaudRate != 115200 {
		t.Fatalf("unexpected baud rate: %d", cfg.UART.BaudRate)
	}
	if cfg.ResponseTimeout != 45*time.Second {
		t.Fatalf("unexpected response timeout: %v", cfg.ResponseTimeout)
	}
}

func TestLoadConfigTimeoutMillis(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "response_timeout_ms = 1500\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ResponseTimeout != 1500*time.Millisecond {
		t.Fatalf("unexpected response timeout: %v", cfg.ResponseTimeout)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	if _, err := loadConfig(writeConfig(t, "baud_rate = 0\n")); err == nil {
		t.Fatalf("expected error for zero baud rate")
	}
	if _, err := loadConfig(writeConfig(t, `response_timeout = "soon"`)); err == nil {
		t.Fatalf("expected error for unparseable timeout")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
