package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("SPEAKEASY_TEST_KEY", "sk-12345")
	t.Setenv("SPEAKEASY_TEST_OTHER", "abc")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain value untouched", "sk-literal", "sk-literal"},
		{"empty", "", ""},
		{"single ref", "${SPEAKEASY_TEST_KEY}", "sk-12345"},
		{"embedded ref", "prefix-${SPEAKEASY_TEST_KEY}-suffix", "prefix-sk-12345-suffix"},
		{"multiple refs", "${SPEAKEASY_TEST_KEY}:${SPEAKEASY_TEST_OTHER}", "sk-12345:abc"},
		{"unset var resolves empty", "${SPEAKEASY_TEST_UNSET}", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEnvVars(tt.input); got != tt.want {
				t.Errorf("ResolveEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsEnvRef(t *testing.T) {
	if !isEnvRef("${OPENAI_API_KEY}") {
		t.Error("expected ${OPENAI_API_KEY} to be an env ref")
	}
	if isEnvRef("sk-literal") {
		t.Error("literal key is not an env ref")
	}
	if isEnvRef("${PARTIAL") {
		t.Error("unterminated ref is not an env ref")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	openai, ok := cfg.LLMProviders["openai"]
	if !ok {
		t.Fatal("default config missing openai provider")
	}
	if !openai.Enabled || openai.Model != "gpt-4o-mini" {
		t.Errorf("openai = %+v", openai)
	}
	if openai.APIKey != "${OPENAI_API_KEY}" {
		t.Errorf("openai key = %q, want env ref", openai.APIKey)
	}

	if or, ok := cfg.LLMProviders["openrouter"]; !ok || or.Enabled {
		t.Error("openrouter should exist but be disabled by default")
	}

	el, ok := cfg.TTSProviders["elevenlabs"]
	if !ok || !el.Enabled {
		t.Fatal("default config missing enabled elevenlabs provider")
	}
	if el.Voice == "" || el.Format != "mp3_44100_128" {
		t.Errorf("elevenlabs = %+v", el)
	}

	if cfg.Defaults.LLMProvider != "openai" || cfg.Defaults.TTSProvider != "elevenlabs" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Pipeline.ChunkBudget != 5000 {
		t.Errorf("ChunkBudget = %d, want 5000", cfg.Pipeline.ChunkBudget)
	}
	if cfg.Pipeline.FormTitle != "Completed Form" {
		t.Errorf("FormTitle = %q", cfg.Pipeline.FormTitle)
	}
}

func TestRedacted(t *testing.T) {
	cfg := &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"literal": {Type: "openai", APIKey: "sk-very-secret"},
			"envref":  {Type: "openai", APIKey: "${OPENAI_API_KEY}"},
			"empty":   {Type: "openai"},
		},
		TTSProviders: map[string]TTSProviderCfg{
			"tts": {Type: "elevenlabs", APIKey: "el-secret"},
		},
	}

	red := cfg.Redacted()

	if got := red.LLMProviders["literal"].APIKey; got != "********" {
		t.Errorf("literal key = %q, want masked", got)
	}
	if got := red.LLMProviders["envref"].APIKey; got != "${OPENAI_API_KEY}" {
		t.Errorf("env ref = %q, want untouched", got)
	}
	if got := red.LLMProviders["empty"].APIKey; got != "" {
		t.Errorf("empty key = %q, want empty", got)
	}
	if got := red.TTSProviders["tts"].APIKey; got != "********" {
		t.Errorf("tts key = %q, want masked", got)
	}

	// Original must not be mutated.
	if cfg.LLMProviders["literal"].APIKey != "sk-very-secret" {
		t.Error("Redacted() mutated the original config")
	}
}

func TestToProviderRegistryConfig(t *testing.T) {
	t.Setenv("SPEAKEASY_TEST_LLM_KEY", "resolved-llm")
	t.Setenv("SPEAKEASY_TEST_TTS_KEY", "resolved-tts")

	cfg := &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"main": {
				Type:      "openai",
				Model:     "gpt-4o-mini",
				APIKey:    "${SPEAKEASY_TEST_LLM_KEY}",
				RateLimit: 5,
				Enabled:   true,
			},
		},
		TTSProviders: map[string]TTSProviderCfg{
			"speech": {
				Type:    "elevenlabs",
				Voice:   "v1",
				Format:  "pcm_16000",
				APIKey:  "${SPEAKEASY_TEST_TTS_KEY}",
				Enabled: true,
			},
		},
		Defaults: DefaultsCfg{LLMProvider: "main", TTSProvider: "speech"},
	}

	rc := cfg.ToProviderRegistryConfig()

	if rc.DefaultLLM != "main" || rc.DefaultTTS != "speech" {
		t.Errorf("defaults = %q/%q", rc.DefaultLLM, rc.DefaultTTS)
	}

	llm := rc.LLMProviders["main"]
	if llm.APIKey != "resolved-llm" {
		t.Errorf("LLM APIKey = %q, want env-resolved value", llm.APIKey)
	}
	if llm.Type != "openai" || llm.Model != "gpt-4o-mini" || !llm.Enabled {
		t.Errorf("LLM config = %+v", llm)
	}

	tts := rc.TTSProviders["speech"]
	if tts.APIKey != "resolved-tts" {
		t.Errorf("TTS APIKey = %q, want env-resolved value", tts.APIKey)
	}
	if tts.Voice != "v1" || tts.Format != "pcm_16000" {
		t.Errorf("TTS config = %+v", tts)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "# SpeakEasy configuration") {
		t.Error("expected comment header")
	}
	for _, want := range []string{"llm_providers:", "tts_providers:", "${OPENAI_API_KEY}", "chunk_budget: 5000"} {
		if !strings.Contains(content, want) {
			t.Errorf("written config missing %q", want)
		}
	}
}
