package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/foliohq/folio/internal/controller"
	"github.com/foliohq/folio/internal/domain"
)

// educationSortCycle is the order the sort key steps through on 's'.
var educationSortCycle = []domain.EducationSortKey{
	domain.EducationSortOrder,
	domain.EducationSortInstitution,
	domain.EducationSortStartDate,
}

// ── messages ─────────────────────────────────────────────────────────────────

// educationLoadedMsg resolves one load of the full education list.
type educationLoadedMsg struct {
	seq     uint64
	entries []domain.EducationEntry
	err     error
}

// educationDeletedMsg resolves an in-flight delete.
type educationDeletedMsg struct {
	id  string
	err error
}

// ── view ─────────────────────────────────────────────────────────────────────

// educationListView lists education entries. The server returns the whole
// collection; filtering, sorting and paging happen locally.
type educationListView struct {
	state *SharedState
	list  *controller.List[domain.EducationEntry]

	cursor int

	filterMode  bool
	filterInput textinput.Model

	confirmingID string
	deletingID   string
}

func newEducationListView(state *SharedState) *educationListView {
	ti := textinput.New()
	ti.Placeholder = "search education..."
	ti.Prompt = "/ "
	ti.CharLimit = 80

	return &educationListView{
		state:       state,
		list:        controller.NewEducationList(state.App.PageSize),
		filterInput: ti,
	}
}

func (v *educationListView) ID() ViewID    { return ViewEducationList }
func (v *educationListView) Title() string { return "Education" }

func (v *educationListView) capturingInput() bool { return v.filterMode }

func (v *educationListView) ShortHelp() []key.Binding {
	if v.filterMode {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	if v.confirmingID != "" {
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm delete")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "page")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *educationListView) Init() tea.Cmd {
	return v.load()
}

func (v *educationListView) load() tea.Cmd {
	seq := v.list.BeginLoad()
	app := v.state.App
	return func() tea.Msg {
		entries, err := app.API.Education.List(context.Background())
		return educationLoadedMsg{seq: seq, entries: entries, err: err}
	}
}

func (v *educationListView) deleteEntry(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.API.Education.Delete(context.Background(), id)
		return educationDeletedMsg{id: id, err: err}
	}
}

func (v *educationListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case educationLoadedMsg:
		if v.list.ApplyLoad(msg.seq, msg.entries, len(msg.entries), msg.err) {
			v.clampCursor()
		}
		return v, nil

	case educationDeletedMsg:
		if msg.id != v.deletingID {
			return v, nil
		}
		v.deletingID = ""
		if v.list.ApplyDelete(msg.id, msg.err) {
			v.clampCursor()
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *educationListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.filterMode {
		switch msg.Type {
		case tea.KeyEnter:
			v.filterMode = false
			v.filterInput.Blur()
			v.list.SetFilter("search", strings.TrimSpace(v.filterInput.Value()))
			v.list.ClearError()
			v.cursor = 0
			return v, nil
		case tea.KeyEsc:
			v.filterMode = false
			v.filterInput.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.filterInput, cmd = v.filterInput.Update(msg)
		return v, cmd
	}

	if v.confirmingID != "" {
		switch msg.String() {
		case "y":
			id := v.confirmingID
			v.confirmingID = ""
			v.deletingID = id
			return v, v.deleteEntry(id)
		default:
			v.confirmingID = ""
			return v, nil
		}
	}

	visible := v.list.Visible()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}

	case "enter":
		if v.cursor < len(visible) {
			e := visible[v.cursor]
			return v, pushView(newEducationFormView(v.state, &e))
		}

	case "n":
		return v, pushView(newEducationFormView(v.state, nil))

	case "/":
		v.filterMode = true
		v.filterInput.SetValue(v.list.Filter("search"))
		return v, v.filterInput.Focus()

	case "s":
		v.list.ClearError()
		keys := educationSortCycle
		cur := v.list.SortKey()
		for i, k := range keys {
			if string(k) == cur {
				v.list.SetSort(string(keys[(i+1)%len(keys)]), v.list.SortDesc())
				return v, nil
			}
		}
		v.list.SetSort(string(keys[0]), false)

	case "S":
		v.list.ClearError()
		v.list.SetSort(v.list.SortKey(), !v.list.SortDesc())

	case "d":
		if v.cursor < len(visible) {
			v.confirmingID = visible[v.cursor].ID
		}

	case "[":
		v.list.SetPage(v.list.Page() - 1)
		v.cursor = 0
	case "]":
		v.list.SetPage(v.list.Page() + 1)
		v.cursor = 0

	case "p":
		return v, replaceView(newProjectListView(v.state))

	case "r":
		return v, v.load()
	}

	return v, nil
}

func (v *educationListView) clampCursor() {
	n := len(v.list.Visible())
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *educationListView) View() string {
	var b strings.Builder

	dir := "asc"
	if v.list.SortDesc() {
		dir = "desc"
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("sort=%s %s", v.list.SortKey(), dir)) + "\n\n")

	if v.filterMode {
		b.WriteString(v.filterInput.View() + "\n")
	}

	if v.list.Loading() && len(v.list.Items()) == 0 {
		b.WriteString(formatter.Dim("Loading education...") + "\n")
		return b.String()
	}
	if msg := v.list.Err(); msg != "" {
		b.WriteString(formatter.StyleRed.Render(msg) + "\n")
	}

	visible := v.list.Visible()
	if len(visible) == 0 && !v.list.Loading() {
		b.WriteString(formatter.Dim("No education entries match.") + "\n")
	}

	for i, e := range visible {
		b.WriteString(v.renderRow(i, e))
	}

	b.WriteString("\n" + formatter.Dim(fmt.Sprintf("page %d/%d · %s entries",
		v.list.Page(), v.list.TotalPages(), formatter.Number(v.list.TotalCount()))))
	return b.String()
}

func (v *educationListView) renderRow(i int, e domain.EducationEntry) string {
	cursor := "  "
	if i == v.cursor {
		cursor = formatter.StyleHeader.Render("> ")
	}

	if e.ID == v.confirmingID {
		return cursor + formatter.StyleRed.Render(
			fmt.Sprintf("Delete %q? (y/n)", formatter.Truncate(e.Degree, 40))) + "\n"
	}

	degree := formatter.PadRight(formatter.Truncate(e.Degree, 30), 30)
	if i == v.cursor {
		degree = formatter.Bold(degree)
	}

	current := ""
	if e.Current {
		current = " " + formatter.StyleGreen.Render("current")
	}

	deleting := ""
	if e.ID == v.deletingID {
		deleting = " " + formatter.Dim("deleting...")
	}

	return fmt.Sprintf("%s%s %s %s%s%s\n",
		cursor,
		degree,
		formatter.PadRight(formatter.Truncate(e.Institution, 28), 28),
		formatter.Dim(e.Period()),
		current,
		deleting,
	)
}
