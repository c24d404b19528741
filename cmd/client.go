package cmd

import (
	"fmt"
	"time"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/llm"
)

// newLLMClient builds the chat client from app config and credentials
// (environment or .env file).
func newLLMClient(cfg *config.Config) (*llm.Client, error) {
	creds, err := llm.LoadCredentials("")
	if err != nil {
		return nil, fmt.Errorf("failed to load LLM credentials: %w", err)
	}

	model := creds.Model
	if cfg.LLM.Model != "" {
		model = cfg.LLM.Model
	}

	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	fmt.Printf("Using model %s (key %s)\n", model, llm.MaskSecret(creds.APIKey))
	return llm.NewClient(cfg.LLM.BaseURL, creds.APIKey, model, timeout), nil
}
