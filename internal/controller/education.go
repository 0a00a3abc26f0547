package controller

import (
	"strconv"
	"strings"

	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/domain"
)

// NewEducationList builds the client-paged education list: the server
// returns all entries and filtering, sorting and pagination are pure views
// over them.
func NewEducationList(pageSize int) *List[domain.EducationEntry] {
	return NewList(ListConfig[domain.EducationEntry]{
		IDOf:        func(e domain.EducationEntry) string { return e.ID },
		ServerPaged: false,
		PageSize:    pageSize,
		DefaultSort: string(domain.EducationSortOrder),
		Predicates: map[string]Predicate[domain.EducationEntry]{
			"search": func(value string) func(domain.EducationEntry) bool {
				needle := strings.ToLower(value)
				return func(e domain.EducationEntry) bool {
					return strings.Contains(strings.ToLower(e.Degree), needle) ||
						strings.Contains(strings.ToLower(e.Institution), needle) ||
						strings.Contains(strings.ToLower(e.FieldOfStudy), needle)
				}
			},
			"current": func(value string) func(domain.EducationEntry) bool {
				want := value == "true"
				return func(e domain.EducationEntry) bool { return e.Current == want }
			},
		},
		Comparators: map[string]Comparator[domain.EducationEntry]{
			string(domain.EducationSortOrder): func(a, b domain.EducationEntry) int {
				return a.Order - b.Order
			},
			string(domain.EducationSortInstitution): func(a, b domain.EducationEntry) int {
				return strings.Compare(strings.ToLower(a.Institution), strings.ToLower(b.Institution))
			},
			string(domain.EducationSortStartDate): func(a, b domain.EducationEntry) int {
				return strings.Compare(a.StartDate, b.StartDate)
			},
		},
	})
}

// Education form field names, in declaration (and focus) order.
const (
	FieldDegree       = "degree"
	FieldInstitution  = "institution"
	FieldFieldOfStudy = "fieldOfStudy"
	FieldEduStart     = "startDate"
	FieldEduEnd       = "endDate"
	FieldCurrent      = "current"
	FieldGPA          = "gpa"
	FieldMaxGPA       = "maxGpa"
	FieldEduDesc      = "description"
	FieldAchievements = "achievements"
	FieldLogoURL      = "logoUrl"
)

// NewEducationForm declares the education draft fields and their rules.
func NewEducationForm() *Form {
	return NewForm(
		FieldSpec{Name: FieldDegree, Rules: []Rule{Required("Degree"), MaxLen("Degree", 120)}},
		FieldSpec{Name: FieldInstitution, Rules: []Rule{Required("Institution"), MaxLen("Institution", 120)}},
		FieldSpec{Name: FieldFieldOfStudy, Rules: []Rule{MaxLen("Field of study", 120)}},
		FieldSpec{Name: FieldEduStart, Rules: []Rule{Required("Start date"), DateISO("Start date")}},
		FieldSpec{Name: FieldEduEnd, Rules: []Rule{
			DateISO("End date"),
			NotBeforeField("End date", FieldEduStart, "start date"),
		}},
		FieldSpec{Name: FieldCurrent, Rules: nil},
		FieldSpec{Name: FieldGPA, Rules: []Rule{
			Numeric("GPA"),
			AtMostField("GPA", FieldMaxGPA, "max GPA"),
		}},
		FieldSpec{Name: FieldMaxGPA, Rules: []Rule{Numeric("Max GPA")}},
		FieldSpec{Name: FieldEduDesc, Rules: []Rule{MaxLen("Description", 2000)}},
		FieldSpec{Name: FieldAchievements, Rules: nil},
		FieldSpec{Name: FieldLogoURL, Rules: []Rule{URLField("Logo URL")}},
	)
}

// EducationDraft converts an entry into form values for hydration.
func EducationDraft(e domain.EducationEntry) map[string]string {
	values := map[string]string{
		FieldDegree:       e.Degree,
		FieldInstitution:  e.Institution,
		FieldFieldOfStudy: e.FieldOfStudy,
		FieldEduStart:     e.StartDate,
		FieldEduEnd:       e.EndDate,
		FieldCurrent:      strconv.FormatBool(e.Current),
		FieldEduDesc:      e.Description,
		FieldAchievements: strings.Join(e.Achievements, "; "),
		FieldLogoURL:      e.LogoURL,
	}
	if e.GPA != nil {
		values[FieldGPA] = strconv.FormatFloat(*e.GPA, 'f', -1, 64)
	}
	if e.MaxGPA != nil {
		values[FieldMaxGPA] = strconv.FormatFloat(*e.MaxGPA, 'f', -1, 64)
	}
	return values
}

// EducationFromDraft converts validated form values back into an entry,
// preserving the identity fields of base.
func EducationFromDraft(base domain.EducationEntry, values map[string]string) domain.EducationEntry {
	e := base
	e.Degree = strings.TrimSpace(values[FieldDegree])
	e.Institution = strings.TrimSpace(values[FieldInstitution])
	e.FieldOfStudy = strings.TrimSpace(values[FieldFieldOfStudy])
	e.StartDate = values[FieldEduStart]
	e.EndDate = values[FieldEduEnd]
	e.Current = values[FieldCurrent] == "true"
	if e.Current {
		e.EndDate = ""
	}
	e.GPA = api.ExtractNumber(values[FieldGPA])
	e.MaxGPA = api.ExtractNumber(values[FieldMaxGPA])
	e.Description = strings.TrimSpace(values[FieldEduDesc])
	e.Achievements = splitAchievements(values[FieldAchievements])
	e.LogoURL = values[FieldLogoURL]
	return e
}

func splitAchievements(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ";") {
		if a := strings.TrimSpace(part); a != "" {
			out = append(out, a)
		}
	}
	return out
}
