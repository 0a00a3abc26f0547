package domain

type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"planned": true, "in_progress": true, "completed": true, "on_hold": true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// SortDirection orders a sorted list ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ProjectSortKey enumerates the columns a project list can be sorted by.
type ProjectSortKey string

const (
	ProjectSortTitle    ProjectSortKey = "title"
	ProjectSortStatus   ProjectSortKey = "status"
	ProjectSortPriority ProjectSortKey = "priority"
	ProjectSortProgress ProjectSortKey = "progress"
	ProjectSortUpdated  ProjectSortKey = "updated"
)

// EducationSortKey enumerates the columns an education list can be sorted by.
type EducationSortKey string

const (
	EducationSortOrder       EducationSortKey = "order"
	EducationSortInstitution EducationSortKey = "institution"
	EducationSortStartDate   EducationSortKey = "start_date"
)

// ActivityKind classifies a recent-activity feed entry.
type ActivityKind string

const (
	ActivityCreated  ActivityKind = "created"
	ActivityUpdated  ActivityKind = "updated"
	ActivityDeleted  ActivityKind = "deleted"
	ActivityUploaded ActivityKind = "uploaded"
)
