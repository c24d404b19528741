package llm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCredentialsFromEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test-123")
	t.Setenv("OPENROUTER_MODEL", "meta-llama/llama-3-70b")

	creds, err := LoadCredentials(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatal(err)
	}
	if creds.APIKey != "sk-test-123" || creds.Model != "meta-llama/llama-3-70b" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}

func TestLoadCredentialsFromDotEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("OPENROUTER_MODEL", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("MODEL", "")

	envPath := filepath.Join(t.TempDir(), ".env")
	content := "API_KEY=sk-file-456\nMODEL=gpt-4o-mini\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	creds, err := LoadCredentials(envPath)
	if err != nil {
		t.Fatal(err)
	}
	if creds.APIKey != "sk-file-456" {
		t.Errorf("expected key from .env, got %q", creds.APIKey)
	}
	if creds.Model != "gpt-4o-mini" {
		t.Errorf("expected model from .env, got %q", creds.Model)
	}
}

func TestLoadCredentialsMissing(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("API_KEY", "")

	if _, err := LoadCredentials(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("expected error when no API key is available")
	}
}

func TestMaskSecret(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sk-or-v1-abcdef123456", "sk-o...3456"},
		{"short", "*****"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MaskSecret(tc.in); got != tc.want {
			t.Errorf("MaskSecret(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
