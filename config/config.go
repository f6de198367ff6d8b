// Package config loads researchcrew settings from defaults, an optional
// YAML file and RESEARCHCREW_-prefixed environment variables, in that
// order of precedence (later sources win).
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings is the full configuration surface of the library's host.
type Settings struct {
	Log     LogSettings     `koanf:"log"`
	Backend BackendSettings `koanf:"backend"`
	Report  ReportSettings  `koanf:"report"`
}

// LogSettings configure the structured logger.
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

// BackendSettings override backend resolution defaults.
type BackendSettings struct {
	LocalEndpoint string  `koanf:"local_endpoint"`
	CloudEndpoint string  `koanf:"cloud_endpoint"`
	SecretKey     string  `koanf:"secret_key"`
	Temperature   float64 `koanf:"temperature"`
}

// ReportSettings configure report persistence.
type ReportSettings struct {
	Dir         string `koanf:"dir"`
	HistoryPath string `koanf:"history_path"`
}

// Load reads settings. Pass an empty path to skip the file source.
// Environment variables map as RESEARCHCREW_BACKEND_SECRET_KEY ->
// backend.secret_key.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	// Defaults
	k.Set("log.level", "info")
	k.Set("log.format", "text")
	k.Set("backend.local_endpoint", "http://localhost:11434/v1")
	k.Set("backend.cloud_endpoint", "https://api.groq.com/openai/v1")
	k.Set("backend.secret_key", "GROQ_API_KEY")
	k.Set("backend.temperature", 0.7)
	k.Set("report.dir", "reports")
	k.Set("report.history_path", "reports/history.db")

	// 1. Load from file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// 2. Load from ENV (RESEARCHCREW_BACKEND_SECRET_KEY -> backend.secret_key)
	if err := k.Load(env.Provider("RESEARCHCREW_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "RESEARCHCREW_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Settings
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
