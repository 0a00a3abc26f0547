package domain

import "time"

// EducationEntry is the UI-facing shape of one education record.
type EducationEntry struct {
	ID           string
	Degree       string
	Institution  string
	FieldOfStudy string

	StartDate string
	EndDate   string
	Current   bool

	GPA    *float64
	MaxGPA *float64

	Description  string
	Achievements []string
	LogoURL      string

	// Order is the server-assigned display position. Ties on equal Order
	// keep input order when sorting.
	Order int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period returns a display range like "2019 – 2023" or "2021 – present".
func (e *EducationEntry) Period() string {
	start := yearOf(e.StartDate)
	if e.Current {
		return start + " – present"
	}
	end := yearOf(e.EndDate)
	if end == "" {
		return start
	}
	return start + " – " + end
}

func yearOf(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}
