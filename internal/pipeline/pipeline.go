package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/export"
	"github.com/seopipe/seopipe/internal/keyword"
	"github.com/seopipe/seopipe/internal/llm"
	"github.com/seopipe/seopipe/internal/seo"
)

// ChatClient is the LLM surface the pipeline steps need.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, jsonObject bool) (string, error)
}

// Result is the immutable output of one step: the value to store under Key
// plus any artifact file paths the step produced.
type Result struct {
	Key       string
	Value     any
	Artifacts map[string]string
}

// Runner executes a step list, accumulating each step's result into the
// shared state that later steps resolve their inputs from.
type Runner struct {
	newClient func() (ChatClient, error)
	client    ChatClient
}

// NewRunner builds a runner. The client factory is called lazily, on the
// first step that actually talks to the LLM, so offline step lists run
// without credentials.
func NewRunner(newClient func() (ChatClient, error)) *Runner {
	return &Runner{newClient: newClient}
}

type handler func(ctx context.Context, step Step, state *State) (*Result, error)

func (r *Runner) handlers() map[string]handler {
	return map[string]handler{
		"load_config":      r.runLoadConfig,
		"extract_keywords": r.runExtractKeywords,
		"generate_content": r.runGenerateContent,
		"evaluate_content": r.runEvaluateContent,
		"export_csv":       r.runExportCSV,
	}
}

// Run executes every step in order. It fails fast on the first step error.
func (r *Runner) Run(ctx context.Context, steps []Step) (*State, error) {
	state := newState()
	handlers := r.handlers()

	for i, step := range steps {
		if step.Operation == "" {
			return nil, fmt.Errorf("step #%d is missing an \"operation\" field", i+1)
		}
		h, ok := handlers[step.Operation]
		if !ok {
			return nil, fmt.Errorf("unsupported operation %q (step #%d)", step.Operation, i+1)
		}

		fmt.Printf("\nStep %d/%d: %s\n", i+1, len(steps), strings.ReplaceAll(step.Operation, "_", " "))
		result, err := h(ctx, step, state)
		if err != nil {
			return nil, fmt.Errorf("step %q failed: %w", step.Operation, err)
		}
		if result != nil {
			state.put(result.Key, result.Value)
			for name, path := range result.Artifacts {
				state.put(name, path)
			}
		}
	}

	return state, nil
}

func (r *Runner) ensureClient() (ChatClient, error) {
	if r.client != nil {
		return r.client, nil
	}
	client, err := r.newClient()
	if err != nil {
		return nil, err
	}
	r.client = client
	return client, nil
}

func (r *Runner) runLoadConfig(ctx context.Context, step Step, state *State) (*Result, error) {
	path := step.String("config_path", "config.json")
	project, err := config.LoadProject(path)
	if err != nil {
		return nil, err
	}

	fmt.Printf("  loaded %s (tone: %s, length: %d words)\n", path, project.ContentSettings.Tone, project.ContentSettings.Length)
	return &Result{Key: "config", Value: project}, nil
}

func (r *Runner) runExtractKeywords(ctx context.Context, step Step, state *State) (*Result, error) {
	project := state.Project()
	if project == nil {
		return nil, fmt.Errorf("configuration must be loaded before extracting keywords")
	}

	description, _ := state.Resolve(step.String("source", ""), project.WebsiteDescription).(string)
	maxKeywords := step.Int("max_keywords", 12)

	client, err := r.ensureClient()
	if err != nil {
		return nil, err
	}

	keywords, err := keyword.Extract(ctx, client, description, maxKeywords)
	if err != nil {
		if step.Bool("fallback_to_config_keywords") {
			fmt.Printf("  extraction failed (%v); falling back to config keywords\n", err)
			return &Result{Key: "keywords", Value: project.SEOPreferences.Keywords}, nil
		}
		return nil, err
	}

	fmt.Printf("  extracted %d keywords\n", len(keywords))
	return &Result{Key: "keywords", Value: keywords}, nil
}

func (r *Runner) runGenerateContent(ctx context.Context, step Step, state *State) (*Result, error) {
	project := state.Project()
	if project == nil {
		return nil, fmt.Errorf("configuration must be loaded before content generation")
	}

	keywords := state.Keywords()
	if len(keywords) == 0 {
		keywords = project.SEOPreferences.Keywords
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords available for content generation")
	}

	client, err := r.ensureClient()
	if err != nil {
		return nil, err
	}

	tone, _ := state.Resolve(step.String("tone_source", ""), project.ContentSettings.Tone).(string)
	length := state.Resolve(step.String("length_source", ""), project.ContentSettings.Length)
	topicContext, _ := state.Resolve(step.String("topic_context_source", ""), project.ContentCategory).(string)

	generated, err := content.Generate(ctx, client, content.GenerateOptions{
		Keywords:     keywords,
		Description:  project.WebsiteDescription,
		TopicContext: topicContext,
		Tone:         tone,
		Length:       fmt.Sprint(length),
	})
	if err != nil {
		return nil, err
	}

	fmt.Printf("  generated: %s\n", generated.Title)

	result := &Result{Key: "content", Value: generated}
	if outPath := step.String("output_content_path", ""); outPath != "" {
		if err := generated.WriteFile(outPath); err != nil {
			return nil, err
		}
		result.Artifacts = map[string]string{"content_json_path": outPath}
		fmt.Printf("  saved content to %s\n", outPath)
	}
	return result, nil
}

func (r *Runner) runEvaluateContent(ctx context.Context, step Step, state *State) (*Result, error) {
	project := state.Project()
	generated := state.Content()
	if generated == nil || project == nil {
		return nil, fmt.Errorf("content and configuration must be available before evaluation")
	}

	keywords := state.Keywords()
	if len(keywords) == 0 {
		keywords = project.SEOPreferences.Keywords
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords available for evaluation")
	}

	primary := keywords[0]
	if source := step.String("primary_keyword_source", "auto"); source != "auto" {
		primary, _ = state.Resolve(source, keywords[0]).(string)
	}

	evaluation, err := seo.Evaluate(*generated, keywords, primary)
	if err != nil {
		return nil, err
	}

	fmt.Printf("  evaluation score: %d/100\n", evaluation.TotalScore)

	result := &Result{Key: "evaluation", Value: evaluation}
	if outPath := step.String("output_report_path", ""); outPath != "" {
		if err := writeReport(outPath, evaluation, keywords); err != nil {
			return nil, err
		}
		result.Artifacts = map[string]string{"evaluation_json_path": outPath}
		fmt.Printf("  saved report to %s\n", outPath)
	}
	return result, nil
}

func (r *Runner) runExportCSV(ctx context.Context, step Step, state *State) (*Result, error) {
	project := state.Project()
	generated := state.Content()
	if generated == nil || project == nil {
		return nil, fmt.Errorf("content and configuration must be available before exporting")
	}

	keywords := state.Keywords()
	if len(keywords) == 0 {
		keywords = project.SEOPreferences.Keywords
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords available for export")
	}

	outPath := step.String("output_csv_path", filepath.Join("output", "article.csv"))
	category, _ := state.Resolve(step.String("category_source", ""), project.ContentCategory).(string)

	written, err := export.ContentCSV(generated, keywords, outPath, category)
	if err != nil {
		return nil, err
	}

	fmt.Printf("  exported CSV to %s\n", written)
	return &Result{Key: "csv_path", Value: written}, nil
}

// writeReport serializes the evaluation as the flat report JSON with the
// keyword list injected alongside the scores.
func writeReport(path string, evaluation *seo.Evaluation, keywords []string) error {
	data, err := json.Marshal(evaluation)
	if err != nil {
		return err
	}
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	flat["keywords"] = keywords

	out, err := json.MarshalIndent(flat, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}
