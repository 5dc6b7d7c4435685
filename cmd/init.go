package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deckview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize deckview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure deckview for your project and generates a .deckview.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
