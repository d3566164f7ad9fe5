// Command typographer asks the suggestion service for a font to match a
// title and caches the font file locally. It runs as a one-shot lookup
// with --title or as an interactive prompt loop.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/jessevdk/go-flags"

	"github.com/MishC/Gemini-typography/internal/fonts"
	"github.com/MishC/Gemini-typography/sdk/typography"
)

// Options are the command line flags. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Endpoint string `short:"e" long:"endpoint" env:"TYPOGRAPHY_ENDPOINT" default:"http://localhost:8080" description:"suggestion service base URL"`
	Title    string `short:"t" long:"title" description:"resolve a single title and exit"`
	FontDir  string `long:"font-dir" description:"directory for downloaded font files (overrides FONT_CACHE_DIR)"`
	NoFonts  bool   `long:"no-fonts" description:"skip downloading suggested font files"`
	Verbose  bool   `short:"v" long:"verbose" description:"enable debug logging"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Diagnostics go to stderr so suggestion output stays clean on stdout.
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	loader, err := buildLoader(opts, logger)
	if err != nil {
		logger.Error("failed to set up font cache", "error", err)
		os.Exit(1)
	}

	client, err := typography.New(typography.Config{
		Endpoint:      opts.Endpoint,
		OnStateChange: renderState,
		OnSuggestion:  cacheFont(loader, logger),
	})
	if err != nil {
		logger.Error("failed to create client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if opts.Title != "" {
		st := client.Submit(ctx, opts.Title, false)
		if st.Phase == typography.PhaseFailed && st.Result == nil {
			os.Exit(1)
		}
		return
	}

	fmt.Println("Type a title and press Enter (Ctrl-D to quit).")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		client.Submit(ctx, scanner.Text(), true)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	fmt.Println()
}

// buildLoader sets up the font cache from the environment, with --font-dir
// taking precedence over FONT_CACHE_DIR. Returns nil when --no-fonts is set.
func buildLoader(opts Options, logger *slog.Logger) (*fonts.Loader, error) {
	if opts.NoFonts {
		return nil, nil
	}

	var cfg fonts.Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if opts.FontDir != "" {
		cfg.Dir = opts.FontDir
	}

	return fonts.NewLoader(cfg, nil, logger), nil
}

// renderState prints one line per state transition.
func renderState(st typography.State) {
	switch st.Phase {
	case typography.PhaseLoading:
		fmt.Println("Analyzing title...")
	case typography.PhaseSucceeded:
		if st.Result != nil {
			fmt.Printf("Font: %s\n  %s\n", st.Result.FontName, st.Result.Reason)
		}
	case typography.PhaseFailed:
		fmt.Fprintf(os.Stderr, "Error: %s\n", st.Err)
		if st.Result != nil {
			fmt.Printf("Font: %s\n  %s\n", st.Result.FontName, st.Result.Reason)
		}
	}
}

// cacheFont returns the hook that downloads each newly applied font.
func cacheFont(loader *fonts.Loader, logger *slog.Logger) typography.OnSuggestion {
	return func(s typography.Suggestion) {
		if loader == nil {
			return
		}

		path, err := loader.EnsureLoaded(context.Background(), s.FontName)
		if err != nil {
			logger.Warn("font not cached", "family", s.FontName, "error", err)
			return
		}
		fmt.Printf("  cached at %s\n", path)
	}
}
