package api

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/foliohq/folio/internal/domain"
)

// Inbound wire shapes are tolerant: numeric fields may arrive as numbers or
// as formatted strings ("$12,000+"), legacy field names are accepted, and
// every field has an explicit default so nothing nil-ish reaches a view.
// Outbound payloads are strict: nil numerics are omitted entirely so server
// defaults are never overwritten.

// flexNumber accepts a JSON number or a formatted numeric string.
type flexNumber struct {
	raw json.RawMessage
}

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	f.raw = append(f.raw[:0], data...)
	return nil
}

// Float returns the parsed value, or nil when absent or unparseable.
func (f *flexNumber) Float() *float64 {
	if len(f.raw) == 0 || string(f.raw) == "null" {
		return nil
	}
	var n float64
	if err := json.Unmarshal(f.raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(f.raw, &s); err == nil {
		return ExtractNumber(s)
	}
	return nil
}

// Int returns the parsed value truncated to an integer, or nil.
func (f *flexNumber) Int() *int {
	v := f.Float()
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// ExtractNumber parses a numeric string that may carry formatting noise
// such as currency symbols, thousands separators or a trailing "+". An
// unparseable input yields nil, never NaN.
func ExtractNumber(s string) *float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ExtractInt is ExtractNumber truncated to an integer.
func ExtractInt(s string) *int {
	v := ExtractNumber(s)
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// dateOnly truncates an ISO-8601 timestamp to its date portion. No timezone
// conversion is performed; the backend interprets calendar dates.
func dateOnly(s string) string {
	if len(s) >= 10 {
		candidate := s[:10]
		if _, err := time.Parse("2006-01-02", candidate); err == nil {
			return candidate
		}
	}
	return s
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ── project ──────────────────────────────────────────────────────────────────

type durationWire struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Total     string `json:"total"` // derived by the server; lossy on round-trip
}

type projectWire struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Status       string        `json:"status"`
	Priority     string        `json:"priority"`
	Technologies []string      `json:"technologies"`
	Tech         []string      `json:"tech"` // legacy name
	Duration     *durationWire `json:"duration"`
	Budget       flexNumber    `json:"budget"`
	Progress     flexNumber    `json:"progress"`
	ImageURL     string        `json:"imageUrl"`
	LiveURL      string        `json:"liveUrl"`
	Demo         string        `json:"demo"` // legacy name
	RepoURL      string        `json:"repoUrl"`
	Featured     bool          `json:"featured"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}

// projectPayload is the outbound shape. Pointer fields with omitempty keep
// absent values out of the body entirely.
type projectPayload struct {
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Category     string        `json:"category,omitempty"`
	Status       string        `json:"status,omitempty"`
	Priority     string        `json:"priority,omitempty"`
	Technologies []string      `json:"technologies"`
	Duration     *durationWire `json:"duration,omitempty"`
	Budget       *float64      `json:"budget,omitempty"`
	Progress     *int          `json:"progress,omitempty"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	LiveURL      string        `json:"liveUrl,omitempty"`
	RepoURL      string        `json:"repoUrl,omitempty"`
	Featured     bool          `json:"featured"`
}

func projectFromWire(w projectWire) domain.Project {
	p := domain.Project{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Category:    w.Category,
		Status:      domain.ProjectStatus(firstNonEmpty(w.Status, string(domain.ProjectPlanned))),
		Priority:    domain.Priority(firstNonEmpty(w.Priority, string(domain.PriorityMedium))),
		Tech:        []string{},
		Budget:      w.Budget.Float(),
		ImageURL:    w.ImageURL,
		LiveURL:     firstNonEmpty(w.LiveURL, w.Demo),
		RepoURL:     w.RepoURL,
		Featured:    w.Featured,
		CreatedAt:   parseTimestamp(w.CreatedAt),
		UpdatedAt:   parseTimestamp(w.UpdatedAt),
	}
	if len(w.Technologies) > 0 {
		p.Tech = w.Technologies
	} else if len(w.Tech) > 0 {
		p.Tech = w.Tech
	}
	if w.Duration != nil {
		p.StartDate = dateOnly(w.Duration.StartDate)
		p.EndDate = dateOnly(w.Duration.EndDate)
	}
	if n := w.Progress.Int(); n != nil {
		p.Progress = clampPct(*n)
	}
	return p
}

func projectToWire(p domain.Project) projectPayload {
	out := projectPayload{
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Status:       string(p.Status),
		Priority:     string(p.Priority),
		Technologies: p.Tech,
		Budget:       p.Budget,
		ImageURL:     p.ImageURL,
		LiveURL:      p.LiveURL,
		RepoURL:      p.RepoURL,
		Featured:     p.Featured,
	}
	if out.Technologies == nil {
		out.Technologies = []string{}
	}
	if p.StartDate != "" || p.EndDate != "" {
		// Raw input values go out unchanged.
		out.Duration = &durationWire{StartDate: p.StartDate, EndDate: p.EndDate}
	}
	progress := p.Progress
	out.Progress = &progress
	return out
}

// ── education ────────────────────────────────────────────────────────────────

type educationWire struct {
	ID           string     `json:"id"`
	Degree       string     `json:"degree"`
	Institution  string     `json:"institution"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	Current      bool       `json:"current"`
	GPA          flexNumber `json:"gpa"`
	MaxGPA       flexNumber `json:"maxGpa"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
	LogoURL      string     `json:"logoUrl"`
	Order        flexNumber `json:"order"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

type educationPayload struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	FieldOfStudy string   `json:"fieldOfStudy,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	GPA          *float64 `json:"gpa,omitempty"`
	MaxGPA       *float64 `json:"maxGpa,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements"`
	LogoURL      string   `json:"logoUrl,omitempty"`
	Order        *int     `json:"order,omitempty"`
}

func educationFromWire(w educationWire) domain.EducationEntry {
	e := domain.EducationEntry{
		ID:           w.ID,
		Degree:       w.Degree,
		Institution:  w.Institution,
		FieldOfStudy: w.FieldOfStudy,
		StartDate:    dateOnly(w.StartDate),
		EndDate:      dateOnly(w.EndDate),
		Current:      w.Current,
		GPA:          w.GPA.Float(),
		MaxGPA:       w.MaxGPA.Float(),
		Description:  w.Description,
		Achievements: []string{},
		LogoURL:      w.LogoURL,
		CreatedAt:    parseTimestamp(w.CreatedAt),
		UpdatedAt:    parseTimestamp(w.UpdatedAt),
	}
	if len(w.Achievements) > 0 {
		e.Achievements = w.Achievements
	}
	if n := w.Order.Int(); n != nil {
		e.Order = *n
	}
	return e
}

func educationToWire(e domain.EducationEntry) educationPayload {
	out := educationPayload{
		Degree:       e.Degree,
		Institution:  e.Institution,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Current:      e.Current,
		GPA:          e.GPA,
		MaxGPA:       e.MaxGPA,
		Description:  e.Description,
		Achievements: e.Achievements,
		LogoURL:      e.LogoURL,
	}
	if out.Achievements == nil {
		out.Achievements = []string{}
	}
	order := e.Order
	out.Order = &order
	return out
}

// ── dashboard ────────────────────────────────────────────────────────────────

type overviewWire struct {
	Projects struct {
		Total    flexNumber            `json:"total"`
		ByStatus map[string]flexNumber `json:"byStatus"`
		Featured flexNumber            `json:"featured"`
	} `json:"projects"`
	Education struct {
		Total flexNumber `json:"total"`
	} `json:"education"`
	Budget struct {
		Total flexNumber `json:"total"`
	} `json:"budget"`
	CompletionRate flexNumber `json:"completionRate"`
	Technologies   flexNumber `json:"technologies"`
}

func overviewFromWire(w overviewWire) domain.DashboardOverview {
	o := domain.DashboardOverview{
		ProjectsByStatus: map[domain.ProjectStatus]int{},
		TotalBudget:      w.Budget.Total.Float(),
	}
	if n := w.Projects.Total.Int(); n != nil {
		o.TotalProjects = *n
	}
	for status, count := range w.Projects.ByStatus {
		if n := count.Int(); n != nil {
			o.ProjectsByStatus[domain.ProjectStatus(status)] = *n
		}
	}
	if n := w.Projects.Featured.Int(); n != nil {
		o.FeaturedProjects = *n
	}
	if n := w.Education.Total.Int(); n != nil {
		o.EducationCount = *n
	}
	if f := w.CompletionRate.Float(); f != nil {
		rate := *f
		if rate > 1 {
			rate = rate / 100.0 // server may report a percentage
		}
		o.CompletionRate = rate
	}
	if n := w.Technologies.Int(); n != nil {
		o.TechnologiesInUse = *n
	}
	return o
}

type deadlineWire struct {
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	DueDate   string     `json:"dueDate"`
	DaysLeft  flexNumber `json:"daysLeft"`
}

func deadlineFromWire(w deadlineWire) domain.Deadline {
	d := domain.Deadline{
		ProjectID: w.ProjectID,
		Title:     w.Title,
		DueDate:   dateOnly(w.DueDate),
	}
	if n := w.DaysLeft.Int(); n != nil {
		d.DaysLeft = *n
	}
	return d
}

type activityWire struct {
	Kind      string `json:"kind"`
	Subject   string `json:"subject"`
	Detail    string `json:"detail"`
	Timestamp string `json:"timestamp"`
}

func activityFromWire(w activityWire) domain.Activity {
	return domain.Activity{
		Kind:      domain.ActivityKind(w.Kind),
		Subject:   w.Subject,
		Detail:    w.Detail,
		Timestamp: parseTimestamp(w.Timestamp),
	}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func clampPct(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
