package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rangelab/rangectl/internal/master"
)

type fileConfig struct {
	Port              string `toml:"port"`
	BaudRate          int    `toml:"baud_rate"`
	ResponseTimeout   string `toml:"response_timeout"`
	ResponseTimeoutMS int64  `toml:"response_timeout_ms"`
}

func loadConfig(path string) (master.Config, error) {
	cfg := master.DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return master.Config{}, fmt.Errorf("load master config: %w", err)
	}

	if meta.IsDefined("port") {
		if p := strings.TrimSpace(raw.Port); p != "" {
			cfg.UART.Port = p
		}
	}

	if meta.IsDefined("baud_rate") {
		if raw.BaudRate <= 0 {
			return master.Config{}, fmt.Errorf("baud_rate must be positive, got %d", raw.BaudRate)
		}
		cfg.UART.BaudRate = raw.BaudRate
	}

	if meta.IsDefined("response_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ResponseTimeout))
		if err != nil {
			return master.Config{}, fmt.Errorf("parse response_timeout: %w", err)
		}
		cfg.ResponseTimeout = d
	}

	if meta.IsDefined("response_timeout_ms") {
		cfg.ResponseTimeout = time.Duration(raw.ResponseTimeoutMS) * time.Millisecond
	}

	return cfg, nil
}
