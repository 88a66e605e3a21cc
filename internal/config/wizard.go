package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .slidecast.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to slidecast! Let's configure your presentations.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Theme selection.
	themePrompt := promptui.Select{
		Label: "Select presentation theme",
		Items: []string{"light", "dark"},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = Theme(themeStr)

	// 2. Speaker notes.
	notesPrompt := promptui.Select{
		Label: "Include speaker notes in the output",
		Items: []string{"no", "yes"},
	}
	notesIdx, _, err := notesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("notes selection: %w", err)
	}
	cfg.IncludeNotes = notesIdx == 1

	// 3. Entrance animations.
	animPrompt := promptui.Select{
		Label: "Play entrance animations for slides that define them",
		Items: []string{"yes", "no"},
	}
	animIdx, _, err := animPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("animations selection: %w", err)
	}
	cfg.Animations = animIdx == 0

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory (empty = named after each input file)",
		Default: "",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 5. Serve port.
	portPrompt := promptui.Prompt{
		Label:   "Port for serve/present",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("must be a port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(".slidecast.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .slidecast.yml")
	return cfg, nil
}
