package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/foliohq/folio/internal/domain"
)

const deadlineWindowDays = 30

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries the three dashboard sections for one load.
// seq ties the message to the load that produced it; stale loads are
// dropped so a refresh started later always wins.
type dashboardLoadedMsg struct {
	seq       uint64
	overview  *domain.DashboardOverview
	deadlines []domain.Deadline
	activity  []domain.Activity
	err       error
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: headline numbers, upcoming deadlines
// and the recent-activity feed, split into two panes on wide terminals.
type dashboardView struct {
	state   *SharedState
	loading bool
	errMsg  string
	seq     uint64

	overview  *domain.DashboardOverview
	deadlines []domain.Deadline
	activity  []domain.Activity
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "education")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadData() tea.Cmd {
	v.seq++
	v.loading = true
	seq := v.seq
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		overview, err := app.API.Dashboard.Overview(ctx)
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		deadlines, err := app.API.Dashboard.UpcomingDeadlines(ctx, deadlineWindowDays)
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		activity, err := app.API.Dashboard.RecentActivity(ctx, 10)
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}

		return dashboardLoadedMsg{
			seq:       seq,
			overview:  overview,
			deadlines: deadlines,
			activity:  activity,
		}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.errMsg = api.UserMessage(msg.err)
			return v, nil
		}
		v.errMsg = ""
		v.overview = msg.overview
		v.deadlines = msg.deadlines
		v.activity = msg.activity
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return v, pushView(newProjectListView(v.state))
		case "e":
			return v, pushView(newEducationListView(v.state))
		case "u":
			return v, pushView(newUploadView(v.state, "projects", nil))
		case "t":
			prefs := v.state.App.Prefs
			dark := !prefs.DarkMode()
			_ = prefs.SetDarkMode(dark)
			formatter.ApplyTheme(dark)
			return v, nil
		case "r":
			return v, v.loadData()
		}
	}

	return v, nil
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading && v.overview == nil {
		return formatter.Dim("Loading dashboard...")
	}
	if v.errMsg != "" && v.overview == nil {
		return formatter.StyleRed.Render(v.errMsg)
	}

	left := v.renderOverview()
	right := v.renderFeeds()

	if v.state.Width >= 80 {
		leftW := v.state.Width / 2
		leftStyle := lipgloss.NewStyle().Width(leftW).PaddingRight(2)
		return lipgloss.JoinHorizontal(lipgloss.Top, leftStyle.Render(left), right)
	}
	return left + "\n\n" + right
}

func (v *dashboardView) renderOverview() string {
	o := v.overview
	var b strings.Builder

	b.WriteString(formatter.Header("Overview") + "\n\n")
	if v.errMsg != "" {
		b.WriteString(formatter.StyleRed.Render(v.errMsg) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Projects", 16), formatter.Bold(formatter.Number(o.TotalProjects))))
	for _, s := range []domain.ProjectStatus{
		domain.ProjectPlanned, domain.ProjectInProgress,
		domain.ProjectCompleted, domain.ProjectOnHold,
	} {
		if n := o.ProjectsByStatus[s]; n > 0 {
			b.WriteString(fmt.Sprintf("  %s %s\n", formatter.PadRight(formatter.StatusPill(s), 24), formatter.Number(n)))
		}
	}
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Featured", 16), formatter.Number(o.FeaturedProjects)))
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Education", 16), formatter.Number(o.EducationCount)))
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Technologies", 16), formatter.Number(o.TechnologiesInUse)))
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Total budget", 16), formatter.Currency(o.TotalBudget)))

	b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Completion", 16), formatter.Percent(o.CompletionRate)))
	b.WriteString("  " + formatter.RenderProgress(o.CompletionRate, 24) + "\n")

	return b.String()
}

func (v *dashboardView) renderFeeds() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Upcoming Deadlines") + "\n\n")
	if len(v.deadlines) == 0 {
		b.WriteString(formatter.Dim("Nothing due in the next 30 days.") + "\n")
	}
	for _, d := range v.deadlines {
		due := formatter.HumanDate(d.DueDate)
		left := fmt.Sprintf("%dd", d.DaysLeft)
		style := formatter.StyleGreen
		if d.DaysLeft <= 7 {
			style = formatter.StyleRed
		} else if d.DaysLeft <= 14 {
			style = formatter.StyleYellow
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			style.Render(formatter.PadRight(left, 4)),
			formatter.PadRight(formatter.Truncate(d.Title, 28), 28),
			formatter.Dim(due)))
	}

	b.WriteString("\n" + formatter.Header("Recent Activity") + "\n\n")
	if len(v.activity) == 0 {
		b.WriteString(formatter.Dim("No recent activity.") + "\n")
	}
	for _, a := range v.activity {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			formatter.Dim(formatter.PadRight(string(a.Kind), 10)),
			formatter.PadRight(formatter.Truncate(a.Subject, 28), 28),
			formatter.Dim(formatter.RelativeTime(a.Timestamp))))
	}

	return b.String()
}
