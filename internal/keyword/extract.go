package keyword

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seopipe/seopipe/internal/llm"
)

// ChatClient is the slice of the LLM client that extraction needs.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, jsonObject bool) (string, error)
}

const extractSystemPrompt = "You are an SEO strategist. Given a website description, return the top keywords " +
	"sorted by combined relevance and estimated search volume. Respond with a JSON array " +
	"of strings only."

// Extract asks the LLM for SEO keywords describing the given website. The
// model may answer with either a bare JSON array or {"keywords": [...]}.
func Extract(ctx context.Context, client ChatClient, description string, maxKeywords int) ([]string, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("website description must not be empty")
	}
	if maxKeywords <= 0 {
		maxKeywords = 12
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: extractSystemPrompt},
		{
			Role: llm.RoleUser,
			Content: fmt.Sprintf("Website description: %s\nLimit the response to %d keywords. Do not include explanations.",
				description, maxKeywords),
		},
	}

	raw, err := client.Chat(ctx, messages, false)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction request failed: %w", err)
	}

	keywords, err := parseKeywords(raw)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("no keywords extracted from the model response")
	}

	return cleaned, nil
}

func parseKeywords(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && wrapped.Keywords != nil {
		return wrapped.Keywords, nil
	}

	return nil, fmt.Errorf("model response did not contain a list of keyword strings")
}
