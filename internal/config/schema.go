package config

// Config holds speakeasy configuration.
// Loaded from ./config.yaml or ~/.speakeasy/config.yaml.
type Config struct {
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers" yaml:"llm_providers"`
	TTSProviders map[string]TTSProviderCfg `mapstructure:"tts_providers" yaml:"tts_providers"`
	Defaults     DefaultsCfg               `mapstructure:"defaults" yaml:"defaults"`
	Pipeline     PipelineCfg               `mapstructure:"pipeline" yaml:"pipeline"`
}

// LLMProviderCfg configures an LLM provider used for simplify/translate.
type LLMProviderCfg struct {
	Type      string  `mapstructure:"type" yaml:"type"`             // "openai", "openrouter"
	Model     string  `mapstructure:"model" yaml:"model"`           // Model name
	APIKey    string  `mapstructure:"api_key" yaml:"api_key"`       // API key (supports ${ENV_VAR} syntax)
	BaseURL   string  `mapstructure:"base_url" yaml:"base_url"`     // Optional API base override
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit"` // Requests per second
	Enabled   bool    `mapstructure:"enabled" yaml:"enabled"`
}

// TTSProviderCfg configures a text-to-speech provider.
type TTSProviderCfg struct {
	Type      string  `mapstructure:"type" yaml:"type"`             // "elevenlabs"
	Model     string  `mapstructure:"model" yaml:"model"`           // e.g. "eleven_multilingual_v2"
	Voice     string  `mapstructure:"voice" yaml:"voice"`           // Default voice ID
	Format    string  `mapstructure:"format" yaml:"format"`         // e.g. "mp3_44100_128"
	APIKey    string  `mapstructure:"api_key" yaml:"api_key"`       // API key (supports ${ENV_VAR} syntax)
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit"` // Requests per second
	Enabled   bool    `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultsCfg specifies default provider selections.
type DefaultsCfg struct {
	LLMProvider string `mapstructure:"llm_provider" yaml:"llm_provider"`
	TTSProvider string `mapstructure:"tts_provider" yaml:"tts_provider"`
}

// PipelineCfg holds tuning for the document pipelines.
type PipelineCfg struct {
	// ChunkBudget is the soft character ceiling per rewrite call.
	ChunkBudget int `mapstructure:"chunk_budget" yaml:"chunk_budget"`
	// FormTitle is the default title for regenerated form documents.
	FormTitle string `mapstructure:"form_title" yaml:"form_title"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"openai": {
				Type:      "openai",
				Model:     "gpt-4o-mini",
				APIKey:    "${OPENAI_API_KEY}",
				RateLimit: 10.0,
				Enabled:   true,
			},
			"openrouter": {
				Type:      "openrouter",
				Model:     "google/gemini-2.5-flash",
				APIKey:    "${OPENROUTER_API_KEY}",
				RateLimit: 10.0,
				Enabled:   false,
			},
		},
		TTSProviders: map[string]TTSProviderCfg{
			"elevenlabs": {
				Type:      "elevenlabs",
				Model:     "eleven_multilingual_v2",
				Voice:     "JBFqnCBsd6RMkjVDRZzb",
				Format:    "mp3_44100_128",
				APIKey:    "${ELEVENLABS_API_KEY}",
				RateLimit: 10.0,
				Enabled:   true,
			},
		},
		Defaults: DefaultsCfg{
			LLMProvider: "openai",
			TTSProvider: "elevenlabs",
		},
		Pipeline: PipelineCfg{
			ChunkBudget: 5000,
			FormTitle:   "Completed Form",
		},
	}
}

// Redacted returns a copy of the config with API keys masked for display.
// Literal keys are masked; ${ENV_VAR} references are left visible since
// they carry no secret material.
func (c *Config) Redacted() *Config {
	out := *c
	out.LLMProviders = make(map[string]LLMProviderCfg, len(c.LLMProviders))
	for name, p := range c.LLMProviders {
		p.APIKey = redactKey(p.APIKey)
		out.LLMProviders[name] = p
	}
	out.TTSProviders = make(map[string]TTSProviderCfg, len(c.TTSProviders))
	for name, p := range c.TTSProviders {
		p.APIKey = redactKey(p.APIKey)
		out.TTSProviders[name] = p
	}
	return &out
}

func redactKey(key string) string {
	if key == "" || isEnvRef(key) {
		return key
	}
	return "********"
}
