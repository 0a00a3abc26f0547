package controller

import (
	"strconv"
	"strings"

	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/domain"
)

// priorityRank orders priorities low < medium < high for sorting.
var priorityRank = map[domain.Priority]int{
	domain.PriorityLow:    0,
	domain.PriorityMedium: 1,
	domain.PriorityHigh:   2,
}

// statusRank orders statuses by pipeline position.
var statusRank = map[domain.ProjectStatus]int{
	domain.ProjectPlanned:    0,
	domain.ProjectInProgress: 1,
	domain.ProjectOnHold:     2,
	domain.ProjectCompleted:  3,
}

// NewProjectList builds the server-paged project list. isFavorite supplies
// the favorites tie-break: favorited projects sort first regardless of the
// active sort key.
func NewProjectList(pageSize int, isFavorite func(id string) bool) *List[domain.Project] {
	pinned := func(p domain.Project) bool { return false }
	if isFavorite != nil {
		pinned = func(p domain.Project) bool { return isFavorite(p.ID) }
	}

	return NewList(ListConfig[domain.Project]{
		IDOf:        func(p domain.Project) string { return p.ID },
		Pinned:      pinned,
		ServerPaged: true,
		PageSize:    pageSize,
		DefaultSort: string(domain.ProjectSortUpdated),
		Predicates: map[string]Predicate[domain.Project]{
			// Status, category and search go to the server via Query();
			// tech is the one filter applied locally within a page.
			"tech": func(value string) func(domain.Project) bool {
				want := strings.ToLower(value)
				return func(p domain.Project) bool {
					for _, t := range p.Tech {
						if strings.ToLower(t) == want {
							return true
						}
					}
					return false
				}
			},
		},
		Comparators: map[string]Comparator[domain.Project]{
			string(domain.ProjectSortTitle): func(a, b domain.Project) int {
				return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
			},
			string(domain.ProjectSortStatus): func(a, b domain.Project) int {
				return statusRank[a.Status] - statusRank[b.Status]
			},
			string(domain.ProjectSortPriority): func(a, b domain.Project) int {
				return priorityRank[a.Priority] - priorityRank[b.Priority]
			},
			string(domain.ProjectSortProgress): func(a, b domain.Project) int {
				return a.Progress - b.Progress
			},
			string(domain.ProjectSortUpdated): func(a, b domain.Project) int {
				return a.UpdatedAt.Compare(b.UpdatedAt)
			},
		},
	})
}

// Project form field names, in declaration (and focus) order.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldTech        = "tech"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldBudget      = "budget"
	FieldProgress    = "progress"
	FieldImageURL    = "imageUrl"
	FieldLiveURL     = "liveUrl"
	FieldRepoURL     = "repoUrl"
)

// NewProjectForm declares the project draft fields and their rules.
func NewProjectForm() *Form {
	return NewForm(
		FieldSpec{Name: FieldTitle, Rules: []Rule{Required("Title"), MaxLen("Title", 120)}},
		FieldSpec{Name: FieldDescription, Rules: []Rule{MaxLen("Description", 2000)}},
		FieldSpec{Name: FieldCategory, Rules: []Rule{MaxLen("Category", 60)}},
		FieldSpec{Name: FieldStatus, Rules: nil},
		FieldSpec{Name: FieldPriority, Rules: nil},
		FieldSpec{Name: FieldTech, Rules: nil},
		FieldSpec{Name: FieldStartDate, Rules: []Rule{DateISO("Start date")}},
		FieldSpec{Name: FieldEndDate, Rules: []Rule{
			DateISO("End date"),
			NotBeforeField("End date", FieldStartDate, "start date"),
		}},
		FieldSpec{Name: FieldBudget, Rules: []Rule{Numeric("Budget")}},
		FieldSpec{Name: FieldProgress, Rules: []Rule{IntRange("Progress", 0, 100)}},
		FieldSpec{Name: FieldImageURL, Rules: []Rule{URLField("Image URL")}},
		FieldSpec{Name: FieldLiveURL, Rules: []Rule{URLField("Live URL")}},
		FieldSpec{Name: FieldRepoURL, Rules: []Rule{URLField("Repository URL")}},
	)
}

// ProjectDraft converts a project into form values for hydration.
func ProjectDraft(p domain.Project) map[string]string {
	values := map[string]string{
		FieldTitle:       p.Title,
		FieldDescription: p.Description,
		FieldCategory:    p.Category,
		FieldStatus:      string(p.Status),
		FieldPriority:    string(p.Priority),
		FieldTech:        strings.Join(p.Tech, ", "),
		FieldStartDate:   p.StartDate,
		FieldEndDate:     p.EndDate,
		FieldProgress:    strconv.Itoa(p.Progress),
		FieldImageURL:    p.ImageURL,
		FieldLiveURL:     p.LiveURL,
		FieldRepoURL:     p.RepoURL,
	}
	if p.Budget != nil {
		values[FieldBudget] = strconv.FormatFloat(*p.Budget, 'f', -1, 64)
	}
	return values
}

// ProjectFromDraft converts validated form values back into a project,
// preserving the identity fields of base.
func ProjectFromDraft(base domain.Project, values map[string]string) domain.Project {
	p := base
	p.Title = strings.TrimSpace(values[FieldTitle])
	p.Description = strings.TrimSpace(values[FieldDescription])
	p.Category = strings.TrimSpace(values[FieldCategory])
	if domain.ValidProjectStatuses[values[FieldStatus]] {
		p.Status = domain.ProjectStatus(values[FieldStatus])
	}
	if domain.ValidPriorities[values[FieldPriority]] {
		p.Priority = domain.Priority(values[FieldPriority])
	}
	p.Tech = splitTags(values[FieldTech])
	p.StartDate = values[FieldStartDate]
	p.EndDate = values[FieldEndDate]
	p.Budget = api.ExtractNumber(values[FieldBudget])
	if n := api.ExtractInt(values[FieldProgress]); n != nil {
		p.Progress = *n
	}
	p.ImageURL = values[FieldImageURL]
	p.LiveURL = values[FieldLiveURL]
	p.RepoURL = values[FieldRepoURL]
	return p
}

// splitTags parses a comma-separated tag field into a clean slice.
func splitTags(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
