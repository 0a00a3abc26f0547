package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/cli"
	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/foliohq/folio/internal/store"
	"github.com/foliohq/folio/internal/upload"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for development; real env vars win.
	_ = godotenv.Load()

	cfg := api.LoadConfig()

	// Determine DB path: env var or default ~/.folio/folio.db
	dbPath := os.Getenv("FOLIO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".folio", "folio.db")
	}

	database, err := store.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	prefs := store.NewPrefs(database)
	formatter.ApplyTheme(prefs.DarkMode())

	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}

	uploads := upload.NewClient(cfg.UploadURL, time.Duration(cfg.TimeoutMs)*time.Millisecond)
	uploads.SetResizeBound(cfg.ResizeMaxEdge)

	app := &cli.App{
		API:      api.NewClient(cfg, prefs, observer),
		Uploads:  uploads,
		Prefs:    prefs,
		Projects: store.NewProjectStore(),
		PageSize: cfg.PageSize,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
