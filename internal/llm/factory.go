package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dillipbehera-ai/hadoop/internal/config"
)

// NewRegistryFromConfig builds a registry from the configured providers.
// Providers without a credential are left unregistered; a missing
// credential is a normal condition, not an error.
func NewRegistryFromConfig(cfg *config.Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("llm: nil config")
	}

	r := NewRegistry()
	for name, pcfg := range cfg.LLM.Providers {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if strings.TrimSpace(pcfg.APIKey) == "" {
			continue
		}
		switch key {
		case "claude", "anthropic":
			r.Register(NewClaudeProvider(pcfg.APIKey, pcfg.BaseURL, pcfg.Model))
		case "openai":
			r.Register(NewOpenAIProvider(pcfg.APIKey, pcfg.BaseURL, pcfg.Model))
		default:
			return nil, fmt.Errorf("llm: unknown provider %q", name)
		}
	}

	return r, nil
}

// DefaultProviderFromConfig resolves the provider used for log analysis.
// It returns (nil, nil) when no credential is configured at all; the
// caller treats a nil provider as "analysis skipped".
func DefaultProviderFromConfig(cfg *config.Config) (Provider, error) {
	if cfg == nil {
		return nil, errors.New("llm: nil config")
	}
	reg, err := NewRegistryFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if reg.Len() == 0 {
		return nil, nil
	}

	name := strings.TrimSpace(cfg.LLM.DefaultProvider)
	if name == "" {
		name = "openai"
	}
	if p, ok := reg.Get(name); ok {
		return p, nil
	}
	if strings.EqualFold(name, "anthropic") {
		if p, ok := reg.Get("claude"); ok {
			return p, nil
		}
	}

	// Fall back to the only configured provider.
	if reg.Len() == 1 {
		if p, ok := reg.First(); ok {
			return p, nil
		}
	}

	return nil, fmt.Errorf("llm: default provider %q not configured", name)
}
