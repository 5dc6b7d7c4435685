package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "deckview",
	Short: "Render and serve slide decks from small JSON documents",
	Long: `Deckview turns small JSON or YAML deck documents into navigable,
scroll-synchronized HTML presentations. It builds static sites from a
directory of decks, and serves a single deck live, with optional
in-place editing that mutates the underlying document through
string-addressed field paths.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".deckview.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
