package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/cinemate/cinemate/internal/collection"
	"github.com/cinemate/cinemate/internal/config"
	"github.com/cinemate/cinemate/internal/domain"
	"github.com/cinemate/cinemate/internal/log"
	"github.com/cinemate/cinemate/internal/omdb"
	"github.com/cinemate/cinemate/internal/store"
	"github.com/cinemate/cinemate/internal/tmdb"
	"github.com/cinemate/cinemate/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	var noPersist bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&noPersist, "no-persist", false, "keep collections in memory only")
	flag.Parse()

	if showVersion {
		fmt.Printf("cinemate %s\n", Version)
		return
	}

	if err := run(noPersist); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(noPersist bool) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting cinemate", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	// Open the collection store. An open failure degrades to a
	// memory-only session rather than refusing to start.
	dataDir := cfg.Storage.DataDir
	if noPersist {
		dataDir = ""
	}
	kv, err := store.NewStore(dataDir)
	if err != nil {
		logger.Error("failed to open store, collections will not persist", "error", err)
		kv, _ = store.NewStore("")
	}
	defer kv.Close()

	// Create catalog and ratings clients
	catalog := tmdb.NewClient(cfg.Catalog.TMDBKey, cfg.Catalog.Language, logger)
	ratings := omdb.NewClient(cfg.Catalog.OMDBKey, logger)

	// Create the collection service
	collections := collection.NewService(kv, logger)

	// Create TUI model
	model := tui.NewModel(catalog, ratings, collections, cfg.UI, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when no API key is configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Cinemate!")
	fmt.Println()
	fmt.Println("A TMDB API key is required to browse the catalog.")
	fmt.Println("Create one for free at https://www.themoviedb.org/settings/api")
	fmt.Println()

	// Loop until we get a key that the catalog accepts
	var tmdbKey string
	for {
		key, err := promptSecret("Enter your TMDB API key: ")
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if key == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		fmt.Println("Checking key...")
		if err := validateTMDBKey(key, cfg.Catalog.Language, logger); err != nil {
			if errors.Is(err, domain.ErrNotConfigured) {
				fmt.Println("✗ The catalog rejected that key. Please try again.")
				fmt.Println()
				continue
			}
			return fmt.Errorf("could not reach the catalog: %w", err)
		}

		tmdbKey = key
		break
	}

	fmt.Println("✓ Key accepted")
	fmt.Println()

	// OMDb is optional; skipping it only disables extra ratings
	fmt.Println("An OMDb API key adds IMDb and Rotten Tomatoes ratings to the")
	fmt.Println("detail view. Press enter to skip.")
	omdbKey, err := promptSecret("Enter your OMDb API key (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if err := config.SaveAPIKeys(tmdbKey, omdbKey); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run cinemate again to start the application.")

	return nil
}

// promptSecret reads a line without echo when stdin is a terminal,
// falling back to a plain read when it is not (pipes, tests).
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// validateTMDBKey makes a cheap authenticated request to confirm the key works
func validateTMDBKey(key, language string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := tmdb.NewClient(key, language, logger)
	_, err := client.GetGenres(ctx)
	return err
}
