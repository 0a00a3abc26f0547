package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/foliohq/folio/internal/controller"
	"github.com/foliohq/folio/internal/domain"
)

// formBinding bridges huh inputs and a controller.Form. huh owns the string
// pointers while the form is on screen; each field's Validate hook pushes
// the value into the controller so inline errors come from the declared
// rules, and sync() flushes everything before submission.
type formBinding struct {
	ctrl *controller.Form
	vals map[string]*string
}

func newFormBinding(ctrl *controller.Form) *formBinding {
	return &formBinding{ctrl: ctrl, vals: map[string]*string{}}
}

// ptr returns the bound string pointer for a field, seeded from the
// controller's hydrated value.
func (b *formBinding) ptr(name string) *string {
	if p, ok := b.vals[name]; ok {
		return p
	}
	v := b.ctrl.Value(name)
	b.vals[name] = &v
	return b.vals[name]
}

// validator adapts the field's declared rules into a huh Validate func.
func (b *formBinding) validator(name string) func(string) error {
	return func(s string) error {
		b.ctrl.Set(name, s)
		b.ctrl.Blur(name)
		if msg := b.ctrl.FieldError(name); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

// sync flushes every bound value into the controller. Select fields have
// no Validate hook, so this is what carries their final values across.
func (b *formBinding) sync() {
	for name, p := range b.vals {
		b.ctrl.Set(name, *p)
	}
}

// buildProjectHuh lays out the project draft as a two-group huh form.
func buildProjectHuh(b *formBinding) *huh.Form {
	statusOptions := make([]huh.Option[string], 0, len(domain.ValidProjectStatuses))
	for _, s := range []domain.ProjectStatus{
		domain.ProjectPlanned, domain.ProjectInProgress,
		domain.ProjectCompleted, domain.ProjectOnHold,
	} {
		statusOptions = append(statusOptions, huh.NewOption(string(s), string(s)))
	}

	priorityOptions := []huh.Option[string]{
		huh.NewOption("low", string(domain.PriorityLow)),
		huh.NewOption("medium", string(domain.PriorityMedium)),
		huh.NewOption("high", string(domain.PriorityHigh)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(b.ptr(controller.FieldTitle)).
				Validate(b.validator(controller.FieldTitle)),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(b.ptr(controller.FieldDescription)).
				Validate(b.validator(controller.FieldDescription)),
			huh.NewInput().
				Title("Category").
				Placeholder("web, mobile, data...").
				Value(b.ptr(controller.FieldCategory)).
				Validate(b.validator(controller.FieldCategory)),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions...).
				Value(b.ptr(controller.FieldStatus)),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOptions...).
				Value(b.ptr(controller.FieldPriority)),
			huh.NewInput().
				Title("Technologies").
				Placeholder("comma-separated").
				Value(b.ptr(controller.FieldTech)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(b.ptr(controller.FieldStartDate)).
				Validate(b.validator(controller.FieldStartDate)),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(b.ptr(controller.FieldEndDate)).
				Validate(b.validator(controller.FieldEndDate)),
			huh.NewInput().
				Title("Budget").
				Placeholder("12500 or $12,500").
				Value(b.ptr(controller.FieldBudget)).
				Validate(b.validator(controller.FieldBudget)),
			huh.NewInput().
				Title("Progress (%)").
				Value(b.ptr(controller.FieldProgress)).
				Validate(b.validator(controller.FieldProgress)),
			huh.NewInput().
				Title("Image URL").
				Value(b.ptr(controller.FieldImageURL)).
				Validate(b.validator(controller.FieldImageURL)),
			huh.NewInput().
				Title("Live URL").
				Value(b.ptr(controller.FieldLiveURL)).
				Validate(b.validator(controller.FieldLiveURL)),
			huh.NewInput().
				Title("Repository URL").
				Value(b.ptr(controller.FieldRepoURL)).
				Validate(b.validator(controller.FieldRepoURL)),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// buildEducationHuh lays out the education draft as a two-group huh form.
func buildEducationHuh(b *formBinding) *huh.Form {
	currentOptions := []huh.Option[string]{
		huh.NewOption("no", "false"),
		huh.NewOption("yes", "true"),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Degree").
				Value(b.ptr(controller.FieldDegree)).
				Validate(b.validator(controller.FieldDegree)),
			huh.NewInput().
				Title("Institution").
				Value(b.ptr(controller.FieldInstitution)).
				Validate(b.validator(controller.FieldInstitution)),
			huh.NewInput().
				Title("Field of study").
				Value(b.ptr(controller.FieldFieldOfStudy)).
				Validate(b.validator(controller.FieldFieldOfStudy)),
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(b.ptr(controller.FieldEduStart)).
				Validate(b.validator(controller.FieldEduStart)),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(b.ptr(controller.FieldEduEnd)).
				Validate(b.validator(controller.FieldEduEnd)),
			huh.NewSelect[string]().
				Title("Currently enrolled").
				Options(currentOptions...).
				Value(b.ptr(controller.FieldCurrent)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("GPA").
				Value(b.ptr(controller.FieldGPA)).
				Validate(b.validator(controller.FieldGPA)),
			huh.NewInput().
				Title("Max GPA").
				Placeholder("4.0").
				Value(b.ptr(controller.FieldMaxGPA)).
				Validate(b.validator(controller.FieldMaxGPA)),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(b.ptr(controller.FieldEduDesc)).
				Validate(b.validator(controller.FieldEduDesc)),
			huh.NewInput().
				Title("Achievements").
				Placeholder("semicolon-separated").
				Value(b.ptr(controller.FieldAchievements)),
			huh.NewInput().
				Title("Logo URL").
				Value(b.ptr(controller.FieldLogoURL)).
				Validate(b.validator(controller.FieldLogoURL)),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}
