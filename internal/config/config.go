package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LLM      LLMConfig      `yaml:"llm"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Audit    AuditConfig    `yaml:"audit"`
}

type LLMConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DefaultsConfig struct {
	MaxKeywords int    `yaml:"max_keywords"`
	Tone        string `yaml:"tone"`
	Length      int    `yaml:"length"`
}

type AuditConfig struct {
	Keywords []string `yaml:"keywords,omitempty"`
}

func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL:        "https://openrouter.ai/api/v1",
			TimeoutSeconds: 60,
		},
		Defaults: DefaultsConfig{
			MaxKeywords: 12,
			Tone:        "Professional",
			Length:      800,
		},
		Audit: AuditConfig{
			Keywords: []string{},
		},
	}
}

func Dir() string {
	if dir := os.Getenv("SEOPIPE_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".seopipe")
}

func DBPath() string {
	return filepath.Join(Dir(), "seopipe.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
