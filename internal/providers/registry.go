package providers

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Registry holds references to LLM and TTS clients. It supports
// config-driven instantiation, hot-reload, and thread-safe access.
type Registry struct {
	mu         sync.RWMutex
	llmClients map[string]LLMClient
	ttsClients map[string]TTSProvider
	defaultLLM string
	defaultTTS string
	logger     *slog.Logger
}

// RegistryConfig describes the providers to instantiate.
type RegistryConfig struct {
	LLMProviders map[string]LLMProviderConfig
	TTSProviders map[string]TTSProviderConfig
	DefaultLLM   string
	DefaultTTS   string
}

// LLMProviderConfig configures a single LLM client.
type LLMProviderConfig struct {
	Type      string // "openai", "openrouter"
	Model     string
	APIKey    string // Already resolved (no ${ENV_VAR} references)
	BaseURL   string
	RateLimit float64
	Enabled   bool
}

// TTSProviderConfig configures a single TTS client.
type TTSProviderConfig struct {
	Type      string // "elevenlabs"
	Model     string
	Voice     string
	Format    string
	APIKey    string
	RateLimit float64
	Enabled   bool
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		llmClients: make(map[string]LLMClient),
		ttsClients: make(map[string]TTSProvider),
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Reload rebuilds all clients from the given config. Existing clients are
// replaced wholesale; in-flight requests keep their old client.
func (r *Registry) Reload(cfg RegistryConfig) {
	llm := make(map[string]LLMClient)
	for name, c := range cfg.LLMProviders {
		if !c.Enabled {
			continue
		}
		client, err := buildLLMClient(c)
		if err != nil {
			r.logger.Warn("skipping LLM provider", "name", name, "error", err)
			continue
		}
		llm[name] = client
	}

	tts := make(map[string]TTSProvider)
	for name, c := range cfg.TTSProviders {
		if !c.Enabled {
			continue
		}
		client, err := buildTTSClient(c)
		if err != nil {
			r.logger.Warn("skipping TTS provider", "name", name, "error", err)
			continue
		}
		tts[name] = client
	}

	r.mu.Lock()
	r.llmClients = llm
	r.ttsClients = tts
	r.defaultLLM = cfg.DefaultLLM
	r.defaultTTS = cfg.DefaultTTS
	r.mu.Unlock()

	r.logger.Info("provider registry loaded", "llm", len(llm), "tts", len(tts))
}

func buildLLMClient(c LLMProviderConfig) (LLMClient, error) {
	switch c.Type {
	case "openai":
		return NewOpenAIClient(OpenAIConfig{
			APIKey:  c.APIKey,
			Model:   c.Model,
			BaseURL: c.BaseURL,
		}), nil
	case "openrouter":
		return NewOpenRouterClient(OpenRouterConfig{
			APIKey:  c.APIKey,
			Model:   c.Model,
			BaseURL: c.BaseURL,
		}), nil
	case "mock":
		return NewMockLLM(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", c.Type)
	}
}

func buildTTSClient(c TTSProviderConfig) (TTSProvider, error) {
	switch c.Type {
	case "elevenlabs":
		return NewElevenLabsTTSClient(ElevenLabsTTSConfig{
			APIKey: c.APIKey,
			Model:  c.Model,
			Voice:  c.Voice,
			Format: c.Format,
		}), nil
	case "mock":
		return NewMockTTS(), nil
	default:
		return nil, fmt.Errorf("unknown TTS provider type: %s", c.Type)
	}
}

// RegisterLLM registers an LLM client by name.
func (r *Registry) RegisterLLM(name string, client LLMClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.llmClients[name] = client
	if r.defaultLLM == "" {
		r.defaultLLM = name
	}
}

// RegisterTTS registers a TTS provider by name.
func (r *Registry) RegisterTTS(name string, client TTSProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ttsClients[name] = client
	if r.defaultTTS == "" {
		r.defaultTTS = name
	}
}

// GetLLM returns an LLM client by name.
func (r *Registry) GetLLM(name string) (LLMClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.llmClients[name]
	if !ok {
		return nil, fmt.Errorf("LLM client not found: %s", name)
	}
	return client, nil
}

// DefaultLLM returns the configured default LLM client.
func (r *Registry) DefaultLLM() (LLMClient, error) {
	r.mu.RLock()
	name := r.defaultLLM
	r.mu.RUnlock()
	if name == "" {
		return nil, fmt.Errorf("no default LLM provider configured")
	}
	return r.GetLLM(name)
}

// GetTTS returns a TTS provider by name.
func (r *Registry) GetTTS(name string) (TTSProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.ttsClients[name]
	if !ok {
		return nil, fmt.Errorf("TTS provider not found: %s", name)
	}
	return client, nil
}

// DefaultTTS returns the configured default TTS provider.
func (r *Registry) DefaultTTS() (TTSProvider, error) {
	r.mu.RLock()
	name := r.defaultTTS
	r.mu.RUnlock()
	if name == "" {
		return nil, fmt.Errorf("no default TTS provider configured")
	}
	return r.GetTTS(name)
}

// ListLLM returns all registered LLM client names.
func (r *Registry) ListLLM() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.llmClients))
	for name := range r.llmClients {
		names = append(names, name)
	}
	return names
}

// ListTTS returns all registered TTS provider names.
func (r *Registry) ListTTS() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ttsClients))
	for name := range r.ttsClients {
		names = append(names, name)
	}
	return names
}

// defaultHTTPTimeout is the shared timeout for provider HTTP clients.
// TTS and long rewrites can be slow.
const defaultHTTPTimeout = 300 * time.Second
