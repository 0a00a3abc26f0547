package cli

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubView is a minimal View for stack-machinery tests.
type stubView struct {
	id        ViewID
	title     string
	refreshed int
	capturing bool
}

func (v *stubView) Init() tea.Cmd { return nil }
func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshViewMsg); ok {
		v.refreshed++
	}
	return v, nil
}
func (v *stubView) View() string             { return v.title }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) Title() string            { return v.title }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) capturingInput() bool     { return v.capturing }

func testAppModel() appModel {
	m := newAppModel(&App{PageSize: 10})
	// Swap the real dashboard for a stub so no loads fire.
	m.viewStack = []View{&stubView{id: ViewDashboard, title: "Home"}}
	return m
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(appModel)
	require.True(t, ok)
	return next
}

func TestAppModel_PushAndPop(t *testing.T) {
	m := testAppModel()

	child := &stubView{id: ViewProjectList, title: "Projects"}
	m = update(t, m, pushViewMsg{view: child})
	assert.Len(t, m.viewStack, 2)
	assert.Same(t, child, m.activeView())

	m = update(t, m, popViewMsg{})
	assert.Len(t, m.viewStack, 1)

	// The root view never pops.
	m = update(t, m, popViewMsg{})
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_EscPopsButNotPastRoot(t *testing.T) {
	m := testAppModel()
	m = update(t, m, pushViewMsg{view: &stubView{id: ViewProjectList, title: "Projects"}})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.viewStack, 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_RefreshBroadcastsToWholeStack(t *testing.T) {
	m := testAppModel()
	root := m.viewStack[0].(*stubView)
	child := &stubView{id: ViewProjectList, title: "Projects"}
	m = update(t, m, pushViewMsg{view: child})

	m = update(t, m, refreshViewMsg{})

	assert.Equal(t, 1, root.refreshed, "views below the top reload too")
	assert.Equal(t, 1, child.refreshed)
}

func TestAppModel_WizardCompletePopsAndRefreshes(t *testing.T) {
	m := testAppModel()
	m = update(t, m, pushViewMsg{view: &stubView{id: ViewForm, title: "New Project"}})

	updated, cmd := m.Update(wizardCompleteMsg{})
	m = updated.(appModel)

	assert.Len(t, m.viewStack, 1)
	assert.NotNil(t, cmd, "follow-up batch carries the refresh")
}

func TestAppModel_CapturingViewReceivesGlobalKeys(t *testing.T) {
	m := testAppModel()
	form := &stubView{id: ViewForm, title: "Form"}
	m = update(t, m, pushViewMsg{view: form})

	// 'q' must reach the form as text, not quit the app.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.False(t, m.quitting)
	assert.Len(t, m.viewStack, 2)
}

func TestAppModel_QuitOnQFromListViews(t *testing.T) {
	m := testAppModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(appModel)
	require.NotNil(t, cmd, "'q' requests shutdown through the quit message")

	msg := cmd()
	require.IsType(t, quitMsg{}, msg)

	m = update(t, m, msg)
	assert.True(t, m.quitting)
}

func TestAppModel_ReplaceSwapsTopView(t *testing.T) {
	m := testAppModel()
	m = update(t, m, pushViewMsg{view: &stubView{id: ViewProjectList, title: "Projects"}})

	swapped := &stubView{id: ViewEducationList, title: "Education"}
	m = update(t, m, replaceViewMsg{view: swapped})

	assert.Len(t, m.viewStack, 2, "replace keeps the stack depth")
	assert.Same(t, swapped, m.activeView())
}

func TestViewCapturesInput(t *testing.T) {
	assert.True(t, viewCapturesInput(&stubView{id: ViewForm}))
	assert.False(t, viewCapturesInput(&stubView{id: ViewProjectList}))
	assert.True(t, viewCapturesInput(&stubView{id: ViewProjectList, capturing: true}))
	assert.False(t, viewCapturesInput(nil))
}

func TestNextInCycle(t *testing.T) {
	cycle := []string{"all", "planned", "in_progress"}
	assert.Equal(t, "planned", nextInCycle(cycle, "all"))
	assert.Equal(t, "all", nextInCycle(cycle, "in_progress"))
	assert.Equal(t, "planned", nextInCycle(cycle, ""), "unknown state restarts after the sentinel")
}
