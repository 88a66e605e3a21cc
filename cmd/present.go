package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/deck"
	"github.com/slidecast/slidecast/internal/live"
	"github.com/slidecast/slidecast/internal/site"
)

var presentCmd = &cobra.Command{
	Use:   "present <input.pptx>",
	Short: "Present a deck live, mirrored to every connected browser",
	Long: `Converts the given .pptx and serves it in live mode. Every connected
browser shows the same slide: navigation from any of them (keyboard, buttons,
swipes) is applied on the server and broadcast to all.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresent,
}

func init() {
	presentCmd.Flags().IntP("port", "p", 0, "port to listen on (overrides config)")
	presentCmd.Flags().Bool("open", false, "open the presentation in the default browser")
	presentCmd.Flags().BoolP("include-notes", "n", false, "include speaker notes in the output")
	rootCmd.AddCommand(presentCmd)
}

func runPresent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := args[0]
	if !strings.EqualFold(filepath.Ext(input), ".pptx") {
		return fmt.Errorf("present requires a .pptx input, got %s", input)
	}

	d, err := deck.Open(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	dir, err := os.MkdirTemp("", "slidecast-present-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	g := site.NewGenerator(d, dir)
	g.Theme = string(cfg.Theme)
	g.Animations = cfg.Animations
	g.SwipeThreshold = cfg.SwipeThreshold
	g.LiveMode = true
	if cmd.Flags().Changed("include-notes") {
		g.IncludeNotes, _ = cmd.Flags().GetBool("include-notes")
	} else {
		g.IncludeNotes = cfg.IncludeNotes
	}
	if _, err := g.Generate(); err != nil {
		return fmt.Errorf("generating %s: %w", input, err)
	}

	session := live.NewSession(site.PlayerSlides(d, cfg.Animations), cfg.SwipeThreshold)
	go session.Run(cmd.Context())

	router := site.Router(dir)
	router.Get("/ws", session.ServeWS)

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	url := fmt.Sprintf("http://localhost:%d", port)

	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(url)
	}

	fmt.Printf("Presenting %s (session %s)\n", d.Title, session.ID)
	fmt.Printf("Audience URL: %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	return http.ListenAndServe(fmt.Sprintf(":%d", port), router)
}
