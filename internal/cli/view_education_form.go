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

// educationSavedMsg resolves an in-flight create or update.
type educationSavedMsg struct {
	saved *domain.EducationEntry
	err   error
}

// educationFormView hosts the education create/edit draft.
type educationFormView struct {
	state   *SharedState
	ctrl    *controller.Form
	bind    *formBinding
	huhForm *huh.Form

	base    domain.EducationEntry
	editing bool
}

// newEducationFormView builds the form. existing is nil for create mode.
func newEducationFormView(state *SharedState, existing *domain.EducationEntry) *educationFormView {
	ctrl := controller.NewEducationForm()

	var base domain.EducationEntry
	editing := false
	if existing != nil {
		base = *existing
		editing = true
	}
	ctrl.Hydrate(controller.EducationDraft(base))

	v := &educationFormView{
		state:   state,
		ctrl:    ctrl,
		base:    base,
		editing: editing,
	}
	v.bind = newFormBinding(ctrl)
	v.huhForm = buildEducationHuh(v.bind)
	return v
}

func (v *educationFormView) ID() ViewID { return ViewForm }

func (v *educationFormView) Title() string {
	if v.editing {
		return "Edit Education"
	}
	return "New Education"
}

func (v *educationFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "upload logo")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *educationFormView) Init() tea.Cmd {
	return v.huhForm.Init()
}

func (v *educationFormView) save() tea.Cmd {
	app := v.state.App
	draft := controller.EducationFromDraft(v.base, v.ctrl.Values())
	editing := v.editing
	id := v.base.ID
	return func() tea.Msg {
		ctx := context.Background()
		var saved *domain.EducationEntry
		var err error
		if editing {
			saved, err = app.API.Education.Update(ctx, id, draft)
		} else {
			saved, err = app.API.Education.Create(ctx, draft)
		}
		return educationSavedMsg{saved: saved, err: err}
	}
}

func (v *educationFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case educationSavedMsg:
		v.ctrl.ApplySubmit(msg.err)
		if msg.err != nil {
			v.ctrl.Reset()
			v.huhForm = buildEducationHuh(v.bind)
			return v, v.huhForm.Init()
		}
		degree := v.ctrl.Value(controller.FieldDegree)
		if msg.saved != nil {
			degree = msg.saved.Degree
		}
		banner := formatter.StyleGreen.Render(fmt.Sprintf("Saved %q.", degree))
		return v, func() tea.Msg { return wizardCompleteOutput(banner) }

	case tea.KeyMsg:
		if v.ctrl.Submitting() {
			return v, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyCtrlO:
			ptr := v.bind.ptr(controller.FieldLogoURL)
			return v, pushView(newUploadView(v.state, "education", func(url string) tea.Cmd {
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
		v.huhForm = buildEducationHuh(v.bind)
		return v, tea.Batch(cmd, v.huhForm.Init())
	}

	return v, cmd
}

func (v *educationFormView) View() string {
	out := v.huhForm.View()
	if v.ctrl.Submitting() {
		out += "\n" + formatter.Dim("Saving...")
	}
	if msg := v.ctrl.SubmitError(); msg != "" {
		out += "\n" + formatter.StyleRed.Render(msg)
	}
	return out
}
