package controller

import "github.com/foliohq/folio/internal/api"

// SubmitPhase is the submission lifecycle of a form.
type SubmitPhase string

const (
	SubmitIdle       SubmitPhase = "idle"
	SubmitInFlight   SubmitPhase = "submitting"
	SubmitSucceeded  SubmitPhase = "succeeded"
	SubmitFailedOnce SubmitPhase = "failed"
)

// Rule validates one field value against the whole-form snapshot and
// returns an error message, or "" when valid.
type Rule func(value string, form map[string]string) string

// FieldSpec declares one form field. Declaration order determines which
// failing field is reported first on submit, stable across runs.
type FieldSpec struct {
	Name  string
	Rules []Rule
}

// Form manages a single draft record through validation and submission.
// Field values are held as strings, matching what text inputs produce;
// transformers convert them on the way out.
type Form struct {
	fields []FieldSpec

	values  map[string]string
	initial map[string]string
	errs    map[string]string
	touched map[string]bool

	phase     SubmitPhase
	submitErr string
}

// NewForm creates an empty form over the given field declarations.
func NewForm(fields ...FieldSpec) *Form {
	return &Form{
		fields:  fields,
		values:  map[string]string{},
		initial: map[string]string{},
		errs:    map[string]string{},
		touched: map[string]bool{},
		phase:   SubmitIdle,
	}
}

// Hydrate seeds the draft from an existing record (edit mode) and resets
// dirty tracking, errors, and the submit phase.
func (f *Form) Hydrate(values map[string]string) {
	f.values = map[string]string{}
	f.initial = map[string]string{}
	for k, v := range values {
		f.values[k] = v
		f.initial[k] = v
	}
	f.errs = map[string]string{}
	f.touched = map[string]bool{}
	f.phase = SubmitIdle
	f.submitErr = ""
}

// Set updates one field. A field that was already touched is re-validated
// immediately so its inline error tracks the input.
func (f *Form) Set(name, value string) {
	f.values[name] = value
	if f.touched[name] {
		f.validateField(name)
	}
}

// Blur marks a field touched and validates it.
func (f *Form) Blur(name string) {
	f.touched[name] = true
	f.validateField(name)
}

// Value returns the current value of a field.
func (f *Form) Value(name string) string { return f.values[name] }

// Values returns a snapshot copy of the draft.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// FieldError returns the inline error for a field, or "".
func (f *Form) FieldError(name string) string { return f.errs[name] }

// IsDirty reports whether any field differs from its hydrated value.
func (f *Form) IsDirty() bool {
	for _, spec := range f.fields {
		if f.values[spec.Name] != f.initial[spec.Name] {
			return true
		}
	}
	return false
}

// Validate runs every rule for every field, marking all fields touched.
// It returns the name of the first failing field in declaration order,
// or "" when the form is valid.
func (f *Form) Validate() string {
	first := ""
	for _, spec := range f.fields {
		f.touched[spec.Name] = true
		f.validateField(spec.Name)
		if first == "" && f.errs[spec.Name] != "" {
			first = spec.Name
		}
	}
	return first
}

func (f *Form) validateField(name string) {
	for _, spec := range f.fields {
		if spec.Name != name {
			continue
		}
		for _, rule := range spec.Rules {
			if msg := rule(f.values[name], f.values); msg != "" {
				f.errs[name] = msg
				return
			}
		}
		delete(f.errs, name)
		return
	}
}

// ── submission state machine ─────────────────────────────────────────────────

// BeginSubmit validates the full form and, if valid and no submit is in
// flight, transitions to submitting. It returns the first failing field
// name when validation blocks the submit; ok is false both then and when a
// submit is already in flight (the duplicate click is simply suppressed).
func (f *Form) BeginSubmit() (firstInvalid string, ok bool) {
	if f.phase == SubmitInFlight {
		return "", false
	}
	if first := f.Validate(); first != "" {
		return first, false
	}
	f.phase = SubmitInFlight
	f.submitErr = ""
	return "", true
}

// ApplySubmit resolves the in-flight submission.
func (f *Form) ApplySubmit(err error) {
	if f.phase != SubmitInFlight {
		return
	}
	if err != nil {
		f.phase = SubmitFailedOnce
		f.submitErr = api.UserMessage(err)
		return
	}
	f.phase = SubmitSucceeded
}

// Reset returns a failed form to idle so the user can retry.
func (f *Form) Reset() {
	if f.phase == SubmitFailedOnce {
		f.phase = SubmitIdle
	}
}

// Phase returns the current submission phase.
func (f *Form) Phase() SubmitPhase { return f.phase }

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.phase == SubmitInFlight }

// SubmitError returns the user-presentable submit failure message, or "".
func (f *Form) SubmitError() string { return f.submitErr }
