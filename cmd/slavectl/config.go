package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rangelab/rangectl/internal/slave"
)

type fileConfig struct {
	Port          string `toml:"port"`
	BaudRate      int    `toml:"baud_rate"`
	ReadTimeout   string `toml:"read_timeout"`
	ReadTimeoutMS int64  `toml:"read_timeout_ms"`
}

func loadConfig(path string) (slave.ServiceConfig, error) {
	cfg := slave.DefaultServiceConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return slave.ServiceConfig{}, fmt.Errorf("load slave config: %w", err)
	}

	if meta.IsDefined("port") {
		if p := strings.TrimSpace(raw.Port); p != "" {
			cfg.UART.Port = p
		}
	}

	if meta.IsDefined("baud_rate") {
		if raw.BaudRate <= 0 {
			return slave.ServiceConfig{}, fmt.Errorf("baud_rate must be positive, got %d", raw.BaudRate)
		}
		cfg.UART.BaudRate = raw.BaudRate
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return slave.ServiceConfig{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.ReadTimeout = d
	}

	if meta.IsDefined("read_timeout_ms") {
		cfg.ReadTimeout = time.Duration(raw.ReadTimeoutMS) * time.Millisecond
	}

	return cfg, nil
}
