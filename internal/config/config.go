package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	LLM      LLMConfig      `yaml:"llm"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Server   ServerConfig   `yaml:"server"`
}

type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider,omitempty"`
	Providers       map[string]ProviderConfig `yaml:"providers,omitempty"`
}

type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

type AnalysisConfig struct {
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	MaxTokens   int           `yaml:"max_tokens,omitempty"`
	Temperature float64       `yaml:"temperature,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Load reads the config file at path and applies environment overrides.
// The default path is allowed to be absent (credentials can come from
// the environment alone); an explicitly given path must exist.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if cfg.LLM.Providers == nil {
		cfg.LLM.Providers = make(map[string]ProviderConfig)
	}

	if strings.TrimSpace(cfg.LLM.DefaultProvider) == "" {
		cfg.LLM.DefaultProvider = "openai"
	}

	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		p := cfg.LLM.Providers["openai"]
		p.APIKey = v
		cfg.LLM.Providers["openai"] = p
	}

	if v := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); v != "" {
		p := cfg.LLM.Providers["claude"]
		p.APIKey = v
		cfg.LLM.Providers["claude"] = p
	} else if v := strings.TrimSpace(os.Getenv("ANTHROPIC_AUTH_TOKEN")); v != "" {
		p := cfg.LLM.Providers["claude"]
		p.APIKey = v
		cfg.LLM.Providers["claude"] = p
	}

	if cfg.Analysis.Timeout <= 0 {
		cfg.Analysis.Timeout = 2 * time.Minute
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = ":8080"
	}

	return &cfg, nil
}
