package cmd

import (
	"context"
	"fmt"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [steps.json]",
	Short: "Run a step-driven pipeline",
	Long: `Executes a JSON step list: load_config, extract_keywords,
generate_content, evaluate_content, export_csv. Later steps resolve their
inputs from earlier step outputs via dot-path descriptors like
"config.website_description".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	stepsPath := "pipeline.json"
	if len(args) == 1 {
		stepsPath = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	steps, err := pipeline.LoadSteps(stepsPath)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(func() (pipeline.ChatClient, error) {
		return newLLMClient(cfg)
	})

	state, err := runner.Run(context.Background(), steps)
	if err != nil {
		return err
	}

	fmt.Println("\nCompleted all steps.")
	for _, key := range []string{"content_json_path", "evaluation_json_path", "csv_path"} {
		if v, ok := state.Value(key); ok {
			fmt.Printf("  %s: %v\n", key, v)
		}
	}
	return nil
}
