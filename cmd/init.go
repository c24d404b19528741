package cmd

import (
	"fmt"
	"os"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize seopipe configuration and database",
	Long:  `Creates the ~/.seopipe directory with config.yaml and the SQLite database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s/seopipe.db\n", dir)

	fmt.Println("\nSeopipe initialized! Next steps:")
	fmt.Println("  seopipe extract \"<website description>\"   Extract SEO keywords")
	fmt.Println("  seopipe run pipeline.json                 Run a full pipeline")

	return nil
}
