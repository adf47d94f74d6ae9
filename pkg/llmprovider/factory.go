package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"project-planner/config"
	"project-planner/pkg/gemini"
	"project-planner/pkg/log"
	"project-planner/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped instead of failing the whole service.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout := openai.DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	httpClient := &http.Client{Timeout: timeout}

	baseURL := cfg.BaseURL
	switch cfg.Name {
	case providerGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewGeminiAdapter(client), nil
	case "openai":
		if baseURL == "" {
			baseURL = openai.DefaultBaseURL
		}
	case "deepseek":
		if baseURL == "" {
			baseURL = openai.DeepSeekBaseURL
		}
	case "qwen", "alibaba":
		if baseURL == "" {
			baseURL = openai.QwenBaseURL
		}
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}

	client, err := openai.New(openai.Config{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    baseURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}

	return NewOpenAIAdapter(cfg.Name, client), nil
}

// NewManagerFromConfig initializes the enabled providers and wraps them in a
// Manager configured with the retry and timeout settings from cfg.
func NewManagerFromConfig(cfg *config.LLMConfig, logger log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(cfg)
	if err != nil {
		return nil, err
	}

	retryDelay, err := parseOptionalDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid retry_delay: %w", err)
	}
	maxTotal, err := parseOptionalDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid max_total_timeout: %w", err)
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger), nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
