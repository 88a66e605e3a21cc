package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/slidecast/slidecast/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `slidecast init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// expandInputs resolves the command-line arguments into a sorted, deduplicated
// list of .pptx paths. Arguments containing glob metacharacters are expanded
// with doublestar (so `decks/**/*.pptx` works); plain paths are kept as-is.
func expandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var inputs []string

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			if !seen[arg] {
				seen[arg] = true
				inputs = append(inputs, arg)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		for _, m := range matches {
			if strings.EqualFold(filepath.Ext(m), ".pptx") && !seen[m] {
				seen[m] = true
				inputs = append(inputs, m)
			}
		}
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no .pptx files matched the given arguments")
	}

	sort.Strings(inputs)
	return inputs, nil
}

// outputDirFor picks the output directory for one input: the override when
// converting a single file, a stem-named directory under the override when
// converting several, or a stem-named sibling of the input by default.
func outputDirFor(input, override string, multi bool) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	switch {
	case override == "":
		return filepath.Join(filepath.Dir(input), stem)
	case multi:
		return filepath.Join(override, stem)
	default:
		return override
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
