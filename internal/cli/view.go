package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewProjectList
	ViewEducationList
	ViewForm
	ViewUpload
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views whose text-input state comes and
// goes (list views with a filter prompt).
type inputCapturer interface {
	capturingInput() bool
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.capturingInput()
	}
	return false
}
