package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/foliohq/folio/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the dashboard as the home view.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient output (success banners, errors), displayed in content area.
	lastOutput string

	// Scrollable viewport for output that exceeds terminal height.
	outputVP     viewport.Model
	outputActive bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := appModel{
		state:    state,
		outputVP: vp,
	}

	m.viewStack = []View{newDashboardView(state)}

	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.outputActive {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}

	case pushViewMsg:
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.clearOutput()
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views reload
		// data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case cmdOutputMsg:
		m.lastOutput = msg.output
		m.outputActive = true
		m.outputVP.SetContent(msg.output)
		m.outputVP.Width = m.state.Width
		m.outputVP.Height = m.state.ContentHeight()
		m.outputVP.GotoTop()
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.clearOutput()
		// Batch the follow-up command with a refresh so the underlying view reloads.
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward to active view (e.g., load completions, upload progress)
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// When output is displayed, intercept scroll keys for the viewport.
	// Non-scroll keys dismiss the output, then fall through to normal handling.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
	}

	// If active view captures input (has its own text input), forward
	// directly so it receives all characters including 'q'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		return m, quit()

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			m.clearOutput()
			return m, nil
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.lastOutput != "" {
		if m.outputActive && m.state.Height > 0 {
			sections = append(sections, m.outputVP.View())
		} else {
			sections = append(sections, m.lastOutput)
		}
	} else if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("folio")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	if m.state.ActiveProjectTitle != "" {
		proj := formatter.StyleGreen.Render(formatter.Truncate(m.state.ActiveProjectTitle, 24))
		header += "  " + formatter.Dim("[") + proj + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height {
		hints = append(hints, scrollIndicator(m.outputVP))
		hints = append(hints, formatter.Dim("↑↓ pgup/pgdn: scroll"))
		hints = append(hints, formatter.Dim("esc: dismiss"))
	} else if v := m.activeView(); v != nil && !m.outputActive {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.outputActive && len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.StyleDim.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// clearOutput dismisses the transient output and deactivates the viewport.
func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}

// outputViewportKeyMap returns a restricted keymap for the output viewport.
// Only arrow/page keys scroll; letter keys are left free so they can
// dismiss the output or trigger global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// isOutputScrollKey returns true if the key should scroll the output
// viewport rather than dismissing the output.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
