package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
		want string
	}{
		{
			name: "nil config",
			cfg:  nil,
			want: "nil",
		},
		{
			name: "similarity threshold too high",
			cfg: &Config{
				Similarity: SimilarityConfig{Threshold: 1.2},
				Detection:  DetectionConfig{Threshold: 0.4},
				Tables:     TablesConfig{Source: "lexbridge"},
			},
			want: "similarity.threshold",
		},
		{
			name: "detection threshold zero",
			cfg: &Config{
				Similarity: SimilarityConfig{Threshold: 0.7},
				Tables:     TablesConfig{Source: "lexbridge"},
			},
			want: "detection.threshold",
		},
		{
			name: "missing tables source",
			cfg: &Config{
				Similarity: SimilarityConfig{Threshold: 0.7},
				Detection:  DetectionConfig{Threshold: 0.4},
			},
			want: "tables.source",
		},
		{
			name: "telemetry enabled without endpoint",
			cfg: &Config{
				Similarity: SimilarityConfig{Threshold: 0.7},
				Detection:  DetectionConfig{Threshold: 0.4},
				Tables:     TablesConfig{Source: "lexbridge"},
				Telemetry:  TelemetryConfig{Enabled: true},
			},
			want: "endpoint",
		},
		{
			name: "telemetry bad protocol",
			cfg: &Config{
				Similarity: SimilarityConfig{Threshold: 0.7},
				Detection:  DetectionConfig{Threshold: 0.4},
				Tables:     TablesConfig{Source: "lexbridge"},
				Telemetry:  TelemetryConfig{Enabled: true, Endpoint: "localhost:4317", Protocol: "udp"},
			},
			want: "protocol",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(tc.cfg); err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			} else if !contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidateOK(t *testing.T) {
	cfg := defaultConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}

	cfg.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "localhost:4317", Protocol: "grpc"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected telemetry config to validate, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Similarity.Threshold != 0.7 || cfg.Detection.Threshold != 0.4 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Tables.Source != "lexbridge" {
		t.Errorf("tables.source = %q", cfg.Tables.Source)
	}
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "similarity:\n  threshold: 0.8\ntelemetry:\n  enabled: true\n  endpoint: localhost:4317\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Similarity.Threshold != 0.8 {
		t.Errorf("similarity.threshold = %v, want 0.8", cfg.Similarity.Threshold)
	}
	if cfg.Detection.Threshold != 0.4 {
		t.Errorf("detection.threshold default not applied: %v", cfg.Detection.Threshold)
	}
	if cfg.Telemetry.Service != "lexbridge" {
		t.Errorf("telemetry.service default not applied: %q", cfg.Telemetry.Service)
	}
}

func contains(s, sub string) bool {
	return s != "" && sub != "" && strings.Contains(s, sub)
}
