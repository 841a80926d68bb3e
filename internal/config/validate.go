package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if cfg.Similarity.Threshold <= 0 || cfg.Similarity.Threshold > 1 {
		return fmt.Errorf("similarity.threshold must be in (0,1], got %v", cfg.Similarity.Threshold)
	}
	if cfg.Detection.Threshold <= 0 || cfg.Detection.Threshold >= 1 {
		return fmt.Errorf("detection.threshold must be in (0,1), got %v", cfg.Detection.Threshold)
	}

	if strings.TrimSpace(cfg.Tables.Source) == "" {
		return errors.New("tables.source must be set")
	}

	return validateTelemetryConfig(cfg.Telemetry)
}

func validateTelemetryConfig(t TelemetryConfig) error {
	if !t.Enabled {
		return nil
	}
	if strings.TrimSpace(t.Endpoint) == "" {
		return errors.New("telemetry enabled but endpoint is empty")
	}
	if t.Protocol != "" {
		switch strings.ToLower(strings.TrimSpace(t.Protocol)) {
		case "grpc", "http":
		default:
			return fmt.Errorf("telemetry.protocol must be grpc or http, got %q", t.Protocol)
		}
	}
	return nil
}
