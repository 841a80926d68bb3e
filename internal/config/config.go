package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds lexbridge configuration.
type Config struct {
	Similarity SimilarityConfig `yaml:"similarity"`
	Detection  DetectionConfig  `yaml:"detection"`
	Tables     TablesConfig     `yaml:"tables"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

type SimilarityConfig struct {
	Threshold float64 `yaml:"threshold"` // minimum score the similarity fallback accepts
}

type DetectionConfig struct {
	Threshold float64 `yaml:"threshold"` // aggregate confidence above which a scan counts as detected
}

type TablesConfig struct {
	Path   string `yaml:"path"`   // optional JSON file merged over the built-in tables at startup
	Source string `yaml:"source"` // attribution source written into exports
}

type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Protocol string `yaml:"protocol"` // grpc | http
	Service  string `yaml:"service"`
	Version  string `yaml:"version"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Similarity: SimilarityConfig{Threshold: 0.7},
		Detection:  DetectionConfig{Threshold: 0.4},
		Tables:     TablesConfig{Source: "lexbridge"},
		Telemetry: TelemetryConfig{
			Service: "lexbridge",
			Version: "dev",
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Similarity.Threshold == 0 {
		cfg.Similarity.Threshold = 0.7
	}
	if cfg.Detection.Threshold == 0 {
		cfg.Detection.Threshold = 0.4
	}
	if cfg.Tables.Source == "" {
		cfg.Tables.Source = "lexbridge"
	}
	if cfg.Telemetry.Service == "" {
		cfg.Telemetry.Service = "lexbridge"
	}
	if cfg.Telemetry.Version == "" {
		cfg.Telemetry.Version = "dev"
	}
}
