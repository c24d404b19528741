package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seopipe/seopipe/internal/llm"
)

// ChatClient is the slice of the LLM client that generation needs.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, jsonObject bool) (string, error)
}

// GenerateOptions control a single article generation request.
type GenerateOptions struct {
	Keywords     []string
	Description  string
	TopicContext string
	Tone         string // defaults to "Professional"
	Length       string // free-form word-count guidance, defaults to "Medium"
}

const generateSystemPrompt = "You are an advanced AI assistant specialising in SEO content automation. " +
	"Always produce clear, structured, search-optimised articles that follow instructions exactly, " +
	"returning only valid JSON."

// Generate asks the LLM for an SEO-optimised article that weaves in the
// given keywords, and validates the returned JSON payload.
func Generate(ctx context.Context, client ChatClient, opts GenerateOptions) (*Content, error) {
	cleaned := make([]string, 0, len(opts.Keywords))
	for _, kw := range opts.Keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("at least one keyword is required to generate content")
	}

	tone := opts.Tone
	if tone == "" {
		tone = "Professional"
	}
	length := opts.Length
	if length == "" {
		length = "Medium"
	}

	description := opts.Description
	if description == "" {
		description = opts.TopicContext
	}
	if description == "" {
		description = "No additional description provided."
	}
	contextNote := ""
	if opts.TopicContext != "" && opts.TopicContext != description {
		contextNote = fmt.Sprintf("Additional context: %s\n", opts.TopicContext)
	}

	userPrompt := fmt.Sprintf(`Generate an SEO-optimised article based on the provided description and keywords. Follow these requirements:
1. Body: A detailed markdown article with an H1 title line, multiple H2/H3 sections, and natural keyword usage.
2. Summary: 50-100 word overview capturing the article's key points.
3. Meta description: <=160 characters, compelling and keyword-rich.
4. Include concise bullet lists where helpful and a clear conclusion/call-to-action.
5. Maintain a professional tone and avoid keyword stuffing (target 1-2%% for the primary keyword).
6. Output strictly in JSON with the following schema:
{
  "title": "<catchy H1 title>",
  "body": "<full article body in markdown>",
  "summary": "<50-100 word summary>",
  "meta_description": "<<=160 character meta description>"
}
Description: %s
%sKeywords: %s
Tone: %s
Target length guidance: %s words
Do not include any additional fields, commentary, or formatting outside of the JSON.`,
		description, contextNote, strings.Join(cleaned, ", "), tone, length)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: generateSystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}

	raw, err := client.Chat(ctx, messages, true)
	if err != nil {
		return nil, fmt.Errorf("content generation request failed: %w", err)
	}

	var c Content
	if err := unmarshalLenient(raw, &c); err != nil {
		return nil, fmt.Errorf("model response was not valid JSON: %w", err)
	}

	c.Title = strings.TrimSpace(c.Title)
	c.Body = strings.TrimSpace(c.Body)
	c.Summary = strings.TrimSpace(c.Summary)
	c.MetaDescription = strings.TrimSpace(c.MetaDescription)

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", c.Title},
		{"body", c.Body},
		{"summary", c.Summary},
		{"meta_description", c.MetaDescription},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("model response missing required fields: %s", strings.Join(missing, ", "))
	}

	return &c, nil
}

// unmarshalLenient parses v from raw, falling back to the outermost JSON
// object when the model wrapped it in prose.
func unmarshalLenient(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object found in model response")
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v)
}
