package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/config"
	"github.com/slidecast/slidecast/internal/deck"
	"github.com/slidecast/slidecast/internal/history"
	"github.com/slidecast/slidecast/internal/progress"
	"github.com/slidecast/slidecast/internal/site"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.pptx ...>",
	Short: "Convert PowerPoint presentations into HTML5 slideshows",
	Long: `Converts one or more .pptx files into self-contained HTML5 presentations.
Arguments may be plain paths or doublestar glob patterns (decks/**/*.pptx).
Each presentation is written to its own output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	convertCmd.Flags().BoolP("include-notes", "n", false, "include speaker notes in the output")
	convertCmd.Flags().Bool("no-animations", false, "disable entrance animations")
	convertCmd.Flags().String("theme", "", "chrome theme: light or dark (overrides config)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("include-notes") {
		cfg.IncludeNotes, _ = cmd.Flags().GetBool("include-notes")
	}
	if noAnim, _ := cmd.Flags().GetBool("no-animations"); noAnim {
		cfg.Animations = false
	}
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		cfg.Theme = config.Theme(theme)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.OutputDir
	}

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}

	// History recording is best effort; a broken database should not block
	// the conversion itself.
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		warnf("conversion history disabled: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	reporter := progress.NewReporter()
	reporter.Start(len(inputs))

	var lastIndex string
	for i, input := range inputs {
		d, err := deck.Open(input)
		if err != nil {
			return fmt.Errorf("reading %s: %w", input, err)
		}

		g := site.NewGenerator(d, outputDirFor(input, output, len(inputs) > 1))
		g.Theme = string(cfg.Theme)
		g.IncludeNotes = cfg.IncludeNotes
		g.Animations = cfg.Animations
		g.SwipeThreshold = cfg.SwipeThreshold

		indexPath, err := g.Generate()
		if err != nil {
			return fmt.Errorf("generating %s: %w", input, err)
		}
		lastIndex = indexPath

		if store != nil {
			hidden := 0
			for _, s := range d.Slides {
				if s.Hidden {
					hidden++
				}
			}
			if _, err := store.Record(ctx, history.Entry{
				Input:  input,
				Output: indexPath,
				Slides: len(d.Slides),
				Hidden: hidden,
			}); err != nil {
				warnf("recording history for %s: %v", input, err)
			}
		}

		reporter.Update(i+1, input)
	}

	reporter.Finish()

	fmt.Printf("Converted %d presentation(s)\n", len(inputs))
	fmt.Printf("Open %s in a browser, or run `slidecast serve` to view it locally\n", lastIndex)
	return nil
}
