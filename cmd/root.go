package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "slidecast",
	Short: "Convert PowerPoint presentations into self-contained HTML5 slideshows",
	Long: `Slidecast converts .pptx files into self-contained HTML5 presentations:
positioned shapes, embedded images, keyboard/touch navigation, hidden-slide
toggling, and per-shape entrance animations. It can also serve a converted
presentation locally or present it live to multiple browsers in sync.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".slidecast.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
