package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deckview/internal/progress"
	"github.com/ziadkadry99/deckview/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static presentation site from a directory of decks",
	Long:  `Renders every deck document under the configured decks directory into a self-contained static HTML site with navigation and an index page.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("decks", "", "override decks directory")
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	decksDir := cfg.DecksDir
	if v, _ := cmd.Flags().GetString("decks"); v != "" {
		decksDir = v
	}
	outputDir := cfg.OutputDir
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		outputDir = v
	}

	if _, err := os.Stat(decksDir); os.IsNotExist(err) {
		return fmt.Errorf("decks directory not found at %s", decksDir)
	}

	generator := site.NewGenerator(decksDir, outputDir, string(cfg.Theme))
	generator.Include = cfg.Include
	generator.Exclude = cfg.Exclude

	pageCount, err := generator.Generate(progress.NewReporter())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d decks)\n", outputDir, pageCount)
	return nil
}
