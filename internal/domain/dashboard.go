package domain

import "time"

// DashboardOverview aggregates the headline numbers shown on the home screen.
type DashboardOverview struct {
	TotalProjects     int
	ProjectsByStatus  map[ProjectStatus]int
	EducationCount    int
	TotalBudget       *float64
	CompletionRate    float64 // 0..1
	FeaturedProjects  int
	TechnologiesInUse int
}

// Deadline is one upcoming project deadline.
type Deadline struct {
	ProjectID string
	Title     string
	DueDate   string // YYYY-MM-DD
	DaysLeft  int
}

// Activity is one entry in the recent-activity feed.
type Activity struct {
	Kind      ActivityKind
	Subject   string
	Detail    string
	Timestamp time.Time
}
