package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize slidecast configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure slidecast and generates a .slidecast.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
