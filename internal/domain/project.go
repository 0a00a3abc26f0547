package domain

import "time"

// Project is the UI-facing shape of a portfolio project. Dates are held as
// date-only strings (YYYY-MM-DD) so they round-trip through date inputs
// without timezone conversion.
type Project struct {
	ID          string
	Title       string
	Description string
	Category    string
	Status      ProjectStatus
	Priority    Priority
	Tech        []string

	StartDate string
	EndDate   string

	Budget   *float64
	Progress int // 0..100

	ImageURL string
	LiveURL  string
	RepoURL  string

	Featured bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayTitle returns the title, or a placeholder for unnamed drafts.
func (p *Project) DisplayTitle() string {
	if p.Title == "" {
		return "(untitled)"
	}
	return p.Title
}

// ProgressFraction returns Progress clamped into the 0..1 range.
func (p *Project) ProgressFraction() float64 {
	pct := p.Progress
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return float64(pct) / 100.0
}

// IsActive reports whether the project still accrues work.
func (p *Project) IsActive() bool {
	return p.Status == ProjectPlanned || p.Status == ProjectInProgress
}
