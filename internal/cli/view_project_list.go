package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/foliohq/folio/internal/controller"
	"github.com/foliohq/folio/internal/domain"
)

// statusCycle is the order the status filter steps through on 'c'.
var statusCycle = []string{
	"all",
	string(domain.ProjectPlanned),
	string(domain.ProjectInProgress),
	string(domain.ProjectCompleted),
	string(domain.ProjectOnHold),
}

// projectSortCycle is the order the sort key steps through on 's'.
var projectSortCycle = []domain.ProjectSortKey{
	domain.ProjectSortUpdated,
	domain.ProjectSortTitle,
	domain.ProjectSortStatus,
	domain.ProjectSortPriority,
	domain.ProjectSortProgress,
}

// ── messages ─────────────────────────────────────────────────────────────────

// projectPageLoadedMsg resolves one page load. seq is the controller's
// load sequence so superseded loads are discarded.
type projectPageLoadedMsg struct {
	seq  uint64
	page *api.ProjectPage
	err  error
}

// projectDeletedMsg resolves an in-flight delete.
type projectDeletedMsg struct {
	id  string
	err error
}

// ── view ─────────────────────────────────────────────────────────────────────

// projectListView lists projects with server-side paging and filtering.
type projectListView struct {
	state *SharedState
	list  *controller.List[domain.Project]

	cursor int

	// Filter prompt state ('/' opens, enter applies, esc cancels).
	filterMode  bool
	filterInput textinput.Model

	// Pending delete confirmation ('d' arms, 'y' fires).
	confirmingID    string
	confirmingTitle string
	deletingID      string
}

func newProjectListView(state *SharedState) *projectListView {
	prefs := state.App.Prefs
	list := controller.NewProjectList(state.App.PageSize, prefs.IsFavorite)

	ti := textinput.New()
	ti.Placeholder = "search projects..."
	ti.Prompt = "/ "
	ti.CharLimit = 80

	return &projectListView{
		state:       state,
		list:        list,
		filterInput: ti,
	}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Projects" }

func (v *projectListView) capturingInput() bool { return v.filterMode }

func (v *projectListView) ShortHelp() []key.Binding {
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
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "status")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "page")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "education")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *projectListView) Init() tea.Cmd {
	return v.load()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *projectListView) load() tea.Cmd {
	seq := v.list.BeginLoad()
	query := v.list.Query()
	app := v.state.App
	return func() tea.Msg {
		page, err := app.API.Projects.List(context.Background(), query)
		return projectPageLoadedMsg{seq: seq, page: page, err: err}
	}
}

func (v *projectListView) deleteProject(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.API.Projects.Delete(context.Background(), id)
		return projectDeletedMsg{id: id, err: err}
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectPageLoadedMsg:
		var items []domain.Project
		total := 0
		if msg.page != nil {
			items = msg.page.Projects
			total = msg.page.Total
		}
		if !v.list.ApplyLoad(msg.seq, items, total, msg.err) {
			return v, nil
		}
		if msg.err == nil {
			v.state.App.Projects.Replace(items)
		}
		v.clampCursor()
		return v, nil

	case projectDeletedMsg:
		if msg.id != v.deletingID {
			return v, nil
		}
		v.deletingID = ""
		removed := v.list.ApplyDelete(msg.id, msg.err)
		if removed {
			v.state.App.Projects.DeleteByID(msg.id)
			v.clampCursor()
			// Server pages shrink after a delete; refill the current page.
			return v, v.load()
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *projectListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.filterMode {
		switch msg.Type {
		case tea.KeyEnter:
			v.filterMode = false
			v.filterInput.Blur()
			if v.list.SetFilter("search", strings.TrimSpace(v.filterInput.Value())) {
				return v, v.load()
			}
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
			v.confirmingTitle = ""
			v.deletingID = id
			return v, v.deleteProject(id)
		default:
			v.confirmingID = ""
			v.confirmingTitle = ""
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
			p := visible[v.cursor]
			v.state.SetActiveProject(p.ID, p.Title)
			return v, pushView(newProjectFormView(v.state, &p))
		}

	case "n":
		v.state.ClearProjectContext()
		return v, pushView(newProjectFormView(v.state, nil))

	case "/":
		v.filterMode = true
		v.filterInput.SetValue(v.list.Filter("search"))
		return v, v.filterInput.Focus()

	case "c":
		next := nextInCycle(statusCycle, v.list.Filter("status"))
		if v.list.SetFilter("status", next) {
			v.cursor = 0
			return v, v.load()
		}

	case "s":
		v.list.ClearError()
		keys := projectSortCycle
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

	case "f":
		if v.cursor < len(visible) {
			_, _ = v.state.App.Prefs.ToggleFavorite(visible[v.cursor].ID)
		}

	case "d":
		if v.cursor < len(visible) {
			v.confirmingID = visible[v.cursor].ID
			v.confirmingTitle = visible[v.cursor].Title
		}

	case "[":
		if v.list.SetPage(v.list.Page() - 1) {
			v.cursor = 0
			return v, v.load()
		}
	case "]":
		if v.list.SetPage(v.list.Page() + 1) {
			v.cursor = 0
			return v, v.load()
		}

	case "e":
		// Sibling section swap; replacing keeps the stack at one level
		// above the dashboard.
		return v, replaceView(newEducationListView(v.state))

	case "r":
		return v, v.load()
	}

	return v, nil
}

func (v *projectListView) clampCursor() {
	n := len(v.list.Visible())
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// nextInCycle returns the element following cur, treating "" as the first.
func nextInCycle(cycle []string, cur string) string {
	for i, c := range cycle {
		if c == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}
	if len(cycle) > 1 {
		return cycle[1]
	}
	return cur
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *projectListView) View() string {
	var b strings.Builder

	b.WriteString(v.renderToolbar())

	if v.filterMode {
		b.WriteString(v.filterInput.View() + "\n")
	}

	if v.list.Loading() && len(v.list.Items()) == 0 {
		b.WriteString(formatter.Dim("Loading projects...") + "\n")
		return b.String()
	}
	if msg := v.list.Err(); msg != "" {
		b.WriteString(formatter.StyleRed.Render(msg) + "\n")
	}

	visible := v.list.Visible()
	if len(visible) == 0 && !v.list.Loading() {
		b.WriteString(formatter.Dim("No projects match.") + "\n")
	}

	for i, p := range visible {
		b.WriteString(v.renderRow(i, p))
	}

	b.WriteString(v.renderFooter())
	return b.String()
}

func (v *projectListView) renderToolbar() string {
	parts := []string{}
	if s := v.list.Filter("status"); s != "" && s != "all" {
		parts = append(parts, "status="+s)
	}
	if q := v.list.Filter("search"); q != "" {
		parts = append(parts, "search="+q)
	}
	dir := "asc"
	if v.list.SortDesc() {
		dir = "desc"
	}
	parts = append(parts, fmt.Sprintf("sort=%s %s", v.list.SortKey(), dir))
	return formatter.Dim(strings.Join(parts, "  ")) + "\n\n"
}

func (v *projectListView) renderRow(i int, p domain.Project) string {
	cursor := "  "
	if i == v.cursor {
		cursor = formatter.StyleHeader.Render("> ")
	}

	if p.ID == v.confirmingID {
		return cursor + formatter.StyleRed.Render(
			fmt.Sprintf("Delete %q? (y/n)", formatter.Truncate(v.confirmingTitle, 40))) + "\n"
	}

	fav := formatter.FavoriteMark(v.state.App.Prefs.IsFavorite(p.ID))
	title := formatter.PadRight(formatter.Truncate(p.DisplayTitle(), 32), 32)
	if i == v.cursor {
		title = formatter.Bold(title)
	}

	deleting := ""
	if p.ID == v.deletingID {
		deleting = " " + formatter.Dim("deleting...")
	}

	return fmt.Sprintf("%s%s %s %s %s %s %s%s\n",
		cursor,
		fav,
		title,
		formatter.PadRight(formatter.StatusPill(p.Status), 22),
		formatter.PadRight(formatter.PriorityPill(p.Priority), 16),
		formatter.RenderProgress(p.ProgressFraction(), 12),
		formatter.Dim(formatter.RelativeTime(p.UpdatedAt)),
		deleting,
	)
}

func (v *projectListView) renderFooter() string {
	total := v.list.TotalCount()
	pages := v.list.TotalPages()
	return "\n" + formatter.Dim(fmt.Sprintf("page %d/%d · %s projects",
		v.list.Page(), pages, formatter.Number(total)))
}
