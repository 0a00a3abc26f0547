package cli

import (
	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/store"
	"github.com/foliohq/folio/internal/upload"
)

// App holds the wired collaborators every view and command reaches through.
// It is constructed once in main and injected; views never look anything up
// ambiently.
type App struct {
	API      *api.Client
	Uploads  *upload.Client
	Prefs    *store.Prefs
	Projects *store.ProjectStore

	PageSize int

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}
