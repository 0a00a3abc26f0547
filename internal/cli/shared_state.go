package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active record context for breadcrumbs
	ActiveProjectID    string
	ActiveProjectTitle string

	// Terminal dimensions
	Width  int
	Height int
}

// ClearProjectContext resets the active project state.
func (s *SharedState) ClearProjectContext() {
	s.ActiveProjectID = ""
	s.ActiveProjectTitle = ""
}

// SetActiveProject sets the active project context for breadcrumbs.
func (s *SharedState) SetActiveProject(id, title string) {
	s.ActiveProjectID = id
	s.ActiveProjectTitle = title
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
