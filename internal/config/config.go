package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Model is the external CLI the prompts are piped to
	Model ModelConfig `yaml:"model"`

	// MaxSuggestions caps both the model and heuristic suggestion paths
	MaxSuggestions int `yaml:"max_suggestions"`
	// MinSeverity filters heuristic input: low, medium, or high
	MinSeverity string `yaml:"min_severity"`
	// PromptTokenBudget truncates prompts that exceed it
	PromptTokenBudget int `yaml:"prompt_token_budget"`

	// TablesPath optionally overrides the built-in substitution tables
	TablesPath string `yaml:"tables_path,omitempty"`
}

type ModelConfig struct {
	Command        string   `yaml:"command,omitempty"`
	Args           []string `yaml:"args,omitempty"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

func (m ModelConfig) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			TimeoutSeconds: 120,
		},
		MaxSuggestions:    10,
		MinSeverity:       "low",
		PromptTokenBudget: 4000,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "versesmith"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
