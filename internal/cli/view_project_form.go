package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/foliohq/folio/internal/controller"
	"github.com/foliohq/folio/internal/domain"
)

// projectSavedMsg resolves an in-flight create or update.
type projectSavedMsg struct {
	saved *domain.Project
	err   error
}

// projectFormView hosts the project create/edit draft. huh renders the
// inputs; the form controller owns validation and the submit lifecycle.
type projectFormView struct {
	state   *SharedState
	ctrl    *controller.Form
	bind    *formBinding
	huhForm *huh.Form

	base    domain.Project
	editing bool
}

// newProjectFormView builds the form. existing is nil for create mode.
func newProjectFormView(state *SharedState, existing *domain.Project) *projectFormView {
	ctrl := controller.NewProjectForm()

	base := domain.Project{
		Status:   domain.ProjectPlanned,
		Priority: domain.PriorityMedium,
	}
	editing := false
	if existing != nil {
		base = *existing
		editing = true
	}
	ctrl.Hydrate(controller.ProjectDraft(base))

	v := &projectFormView{
		state:   state,
		ctrl:    ctrl,
		base:    base,
		editing: editing,
	}
	v.bind = newFormBinding(ctrl)
	v.huhForm = buildProjectHuh(v.bind)
	return v
}

func (v *projectFormView) ID() ViewID { return ViewForm }

func (v *projectFormView) Title() string {
	if v.editing {
		return "Edit Project"
	}
	return "New Project"
}

func (v *projectFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "upload image")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *projectFormView) Init() tea.Cmd {
	return v.huhForm.Init()
}

func (v *projectFormView) save() tea.Cmd {
	app := v.state.App
	draft := controller.ProjectFromDraft(v.base, v.ctrl.Values())
	editing := v.editing
	id := v.base.ID
	return func() tea.Msg {
		ctx := context.Background()
		var saved *domain.Project
		var err error
		if editing {
			saved, err = app.API.Projects.Update(ctx, id, draft)
		} else {
			saved, err = app.API.Projects.Create(ctx, draft)
		}
		return projectSavedMsg{saved: saved, err: err}
	}
}

func (v *projectFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectSavedMsg:
		v.ctrl.ApplySubmit(msg.err)
		if msg.err != nil {
			// Back to idle so the user can fix the draft and retry.
			v.ctrl.Reset()
			v.huhForm = buildProjectHuh(v.bind)
			return v, v.huhForm.Init()
		}
		title := v.ctrl.Value(controller.FieldTitle)
		if msg.saved != nil {
			v.state.App.Projects.Upsert(*msg.saved)
			title = msg.saved.DisplayTitle()
		}
		banner := formatter.StyleGreen.Render(fmt.Sprintf("Saved %q.", title))
		return v, func() tea.Msg { return wizardCompleteOutput(banner) }

	case tea.KeyMsg:
		if v.ctrl.Submitting() {
			return v, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyCtrlO:
			// Upload an image and write its URL back into the draft.
			ptr := v.bind.ptr(controller.FieldImageURL)
			return v, pushView(newUploadView(v.state, "projects", func(url string) tea.Cmd {
				*ptr = url
				return nil
			}))
		}
	}

	form, cmd := v.huhForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.huhForm = f
	}

	if v.huhForm.State == huh.StateCompleted && !v.ctrl.Submitting() {
		v.bind.sync()
		if _, ok := v.ctrl.BeginSubmit(); ok {
			return v, tea.Batch(cmd, v.save())
		}
		// A declared rule still fails; reopen the form with values intact.
		v.huhForm = buildProjectHuh(v.bind)
		return v, tea.Batch(cmd, v.huhForm.Init())
	}

	return v, cmd
}

func (v *projectFormView) View() string {
	out := v.huhForm.View()
	if v.ctrl.Submitting() {
		out += "\n" + formatter.Dim("Saving...")
	}
	if msg := v.ctrl.SubmitError(); msg != "" {
		out += "\n" + formatter.StyleRed.Render(msg)
	}
	return out
}
