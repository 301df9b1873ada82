// Package config loads career board settings from the environment and an
// optional JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvPort             = "PORT"
	EnvGeminiAPIKey     = "GEMINI_API_KEY"
	EnvGeminiModel      = "GEMINI_MODEL"
	EnvSessionDir       = "SESSION_DIR"
	EnvSimulatedLatency = "SIMULATED_LATENCY"
	EnvVertexProject    = "GOOGLE_CLOUD_PROJECT"
	EnvVertexLocation   = "GOOGLE_CLOUD_LOCATION"
)

// DefaultPort is used by serve when nothing else is configured.
const DefaultPort = "8080"

// Config holds career board settings. All fields are optional; empty values
// are filled from the environment and then from defaults.
type Config struct {
	Port         string `json:"port,omitempty"`           // HTTP listen port
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key for the skill gap analyzer
	GeminiModel  string `json:"gemini_model,omitempty"`   // Gemini model name
	SessionDir   string `json:"session_dir,omitempty"`    // Directory holding the persisted session

	// VertexProject routes the analyzer through Vertex AI when no API key is set.
	VertexProject  string `json:"vertex_project,omitempty"`
	VertexLocation string `json:"vertex_location,omitempty"`

	// SimulatedLatency toggles the artificial store delays. Nil means enabled.
	SimulatedLatency *bool `json:"simulated_latency,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         os.Getenv(EnvPort),
		GeminiAPIKey: os.Getenv(EnvGeminiAPIKey),
		GeminiModel:  os.Getenv(EnvGeminiModel),
		SessionDir:   os.Getenv(EnvSessionDir),

		VertexProject:  os.Getenv(EnvVertexProject),
		VertexLocation: os.Getenv(EnvVertexLocation),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvSimulatedLatency)); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvSimulatedLatency, err)
		}
		cfg.SimulatedLatency = &enabled
	}

	return cfg, nil
}

// Load builds the effective configuration. Environment variables win over the
// file at path (skipped when path is empty), and defaults fill what is left.
func Load(path string) (Config, error) {
	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	merged := env
	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		merged = env.MergeWithDefaults(*file)
	}
	merged = merged.MergeWithDefaults(Defaults())

	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Port:       DefaultPort,
		SessionDir: DefaultSessionDir(),
	}
}

// DefaultSessionDir is the per-user config directory, or a dot directory in
// the working directory when the platform reports none.
func DefaultSessionDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".career-board"
	}
	return filepath.Join(dir, "career-board")
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port != "" {
		port, err := strconv.Atoi(c.Port)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("config error: 'port' must be a number between 1 and 65535, got %q", c.Port)
		}
	}

	if strings.ContainsAny(c.GeminiModel, " \t\n") {
		return fmt.Errorf("config error: 'gemini_model' must not contain whitespace")
	}

	if c.SessionDir != "" {
		if info, err := os.Stat(c.SessionDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: session_dir is not a directory: %s", c.SessionDir)
		}
	}

	return nil
}

// AnalyzerConfigured reports whether a generative-language backend is set up.
func (c *Config) AnalyzerConfigured() bool {
	return c.GeminiAPIKey != "" || c.VertexProject != ""
}

// LatencyEnabled reports whether stores should simulate network delays.
func (c *Config) LatencyEnabled() bool {
	return c.SimulatedLatency == nil || *c.SimulatedLatency
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == "" {
		result.Port = defaults.Port
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.SessionDir == "" {
		result.SessionDir = defaults.SessionDir
	}
	if result.VertexProject == "" {
		result.VertexProject = defaults.VertexProject
	}
	if result.VertexLocation == "" {
		result.VertexLocation = defaults.VertexLocation
	}
	if result.SimulatedLatency == nil {
		result.SimulatedLatency = defaults.SimulatedLatency
	}

	return result
}
