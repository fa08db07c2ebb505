package profile

import (
	"os"
	"testing"
)

func clearAIEnvVars() {
	for _, key := range []string{
		"RESTLY_AI_LLM_PROVIDER",
		"RESTLY_AI_LLM_API_KEY",
		"RESTLY_AI_LLM_BASE_URL",
		"RESTLY_AI_LLM_MODEL",
		"RESTLY_AI_LLM_TIMEOUT_SECONDS",
	} {
		os.Unsetenv(key)
	}
}

func TestProfileDefaults(t *testing.T) {
	clearAIEnvVars()

	p := &Profile{}
	p.FromEnv()

	if p.AIEnabled {
		t.Errorf("AIEnabled: expected false without an API key")
	}
	if p.LLMProvider != "openai" {
		t.Errorf("LLMProvider: expected %q, got %q", "openai", p.LLMProvider)
	}
	if p.LLMBaseURL != "https://api.openai.com/v1" {
		t.Errorf("LLMBaseURL: expected openai default, got %q", p.LLMBaseURL)
	}
	if p.LLMModel != "gpt-4o" {
		t.Errorf("LLMModel: expected %q, got %q", "gpt-4o", p.LLMModel)
	}
	if p.LLMTimeout != 15 {
		t.Errorf("LLMTimeout: expected 15, got %d", p.LLMTimeout)
	}
}

func TestProfileFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		envValue string
		field    func(*Profile) string
		expected string
	}{
		{
			name:     "provider override",
			envVar:   "RESTLY_AI_LLM_PROVIDER",
			envValue: "deepseek",
			field:    func(p *Profile) string { return p.LLMProvider },
			expected: "deepseek",
		},
		{
			name:     "unknown provider falls back to openai",
			envVar:   "RESTLY_AI_LLM_PROVIDER",
			envValue: "gemini",
			field:    func(p *Profile) string { return p.LLMProvider },
			expected: "openai",
		},
		{
			name:     "base URL override wins over provider default",
			envVar:   "RESTLY_AI_LLM_BASE_URL",
			envValue: "http://localhost:8000/v1",
			field:    func(p *Profile) string { return p.LLMBaseURL },
			expected: "http://localhost:8000/v1",
		},
		{
			name:     "model override",
			envVar:   "RESTLY_AI_LLM_MODEL",
			envValue: "gpt-4o-mini",
			field:    func(p *Profile) string { return p.LLMModel },
			expected: "gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearAIEnvVars()
			t.Setenv(tt.envVar, tt.envValue)

			p := &Profile{}
			p.FromEnv()

			if got := tt.field(p); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestProfileProviderDefaultModel(t *testing.T) {
	clearAIEnvVars()
	t.Setenv("RESTLY_AI_LLM_PROVIDER", "deepseek")
	t.Setenv("RESTLY_AI_LLM_API_KEY", "sk-test")

	p := &Profile{}
	p.FromEnv()

	if !p.AIEnabled {
		t.Errorf("AIEnabled: expected true with an API key")
	}
	if p.LLMBaseURL != "https://api.deepseek.com" {
		t.Errorf("LLMBaseURL: expected deepseek default, got %q", p.LLMBaseURL)
	}
	if p.LLMModel != "deepseek-chat" {
		t.Errorf("LLMModel: expected %q, got %q", "deepseek-chat", p.LLMModel)
	}
}

func TestValidateUsesExplicitDataDir(t *testing.T) {
	dir := t.TempDir()
	p := &Profile{Mode: "dev", Data: dir}

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if p.Data != dir {
		t.Errorf("Data: expected %q, got %q", dir, p.Data)
	}
}

func TestValidateNormalizesMode(t *testing.T) {
	p := &Profile{Mode: "staging", Data: t.TempDir()}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if p.Mode != "demo" {
		t.Errorf("Mode: expected %q, got %q", "demo", p.Mode)
	}
}
