package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen       string        `yaml:"listen"`
	DatabasePath string        `yaml:"database_path"`
	Azure        AzureConfig   `yaml:"azure"`
	Crew         CrewConfig    `yaml:"crew"`
	Session      SessionConfig `yaml:"session"`
	Logs         LogsConfig    `yaml:"logs"`
	TLS          TLSConfig     `yaml:"tls"`
}

// AzureConfig points the pipeline at an Azure OpenAI chat deployment.
// The pipeline counts as unconfigured until APIKey, Endpoint and Deployment
// are all set.
type AzureConfig struct {
	APIKey     string `yaml:"api_key"`
	Endpoint   string `yaml:"endpoint"`
	APIVersion string `yaml:"api_version"`
	Deployment string `yaml:"deployment"`
}

type CrewConfig struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type SessionConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Secret  string        `yaml:"secret"`
}

type LogsConfig struct {
	MaxAge time.Duration `yaml:"max_age"`
}

type TLSConfig struct {
	Enabled bool   `yaml:"enabled"`
	Cert    string `yaml:"cert"`
	Key     string `yaml:"key"`
}

var C Config

func Load() error {
	// Defaults
	C = Config{
		Listen:       ":8000",
		DatabasePath: ":memory:",
		Azure: AzureConfig{
			APIVersion: "2024-12-01-preview",
		},
		Crew: CrewConfig{
			Temperature: 0.3,
			MaxTokens:   1024,
		},
		Session: SessionConfig{
			Timeout: 24 * time.Hour,
		},
		Logs: LogsConfig{
			MaxAge: 48 * time.Hour,
		},
	}

	// Load from YAML if exists
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &C); err != nil {
			return err
		}
	}

	// Environment overrides
	if v := os.Getenv("LISTEN"); v != "" {
		C.Listen = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		C.DatabasePath = v
	}
	if v := os.Getenv("AZURE_OPENAI_API_KEY"); v != "" {
		C.Azure.APIKey = v
	}
	if v := os.Getenv("AZURE_API_KEY"); v != "" {
		C.Azure.APIKey = v
	}
	if v := os.Getenv("AZURE_API_BASE"); v != "" {
		C.Azure.Endpoint = v
	}
	if v := os.Getenv("AZURE_API_VERSION"); v != "" {
		C.Azure.APIVersion = v
	}
	if v := os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME"); v != "" {
		C.Azure.Deployment = v
	}
	if v := os.Getenv("SESSION_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			C.Session.Timeout = d
		}
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		C.Session.Secret = v
	}
	if v := os.Getenv("LOGS_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			C.Logs.MaxAge = d
		}
	}
	if v := os.Getenv("TLS_ENABLED"); v == "true" {
		C.TLS.Enabled = true
	}
	if v := os.Getenv("TLS_CERT"); v != "" {
		C.TLS.Cert = v
	}
	if v := os.Getenv("TLS_KEY"); v != "" {
		C.TLS.Key = v
	}

	return nil
}

// AzureConfigured reports whether the pipeline has everything it needs to
// reach the chat deployment.
func (c *Config) AzureConfigured() bool {
	return c.Azure.APIKey != "" && c.Azure.Endpoint != "" && c.Azure.Deployment != ""
}
