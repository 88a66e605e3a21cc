package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve a converted presentation over HTTP",
	Long: `Starts a local HTTP server for a previously converted presentation
directory. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the presentation in the default browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("presentation directory %s: %w", dir, err)
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	open, _ := cmd.Flags().GetBool("open")

	return site.Serve(dir, port, open)
}
