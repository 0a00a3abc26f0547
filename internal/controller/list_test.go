package controller

import (
	"fmt"
	"testing"
	"time"

	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testProject(id, title string, status domain.ProjectStatus, progress int) domain.Project {
	return domain.Project{
		ID:       id,
		Title:    title,
		Status:   status,
		Priority: domain.PriorityMedium,
		Progress: progress,
		Tech:     []string{},
	}
}

func loadedProjectList(t *testing.T, favorites map[string]bool, items ...domain.Project) *List[domain.Project] {
	t.Helper()
	list := NewProjectList(10, func(id string) bool { return favorites[id] })
	seq := list.BeginLoad()
	assert.True(t, list.ApplyLoad(seq, items, len(items), nil))
	return list
}

func TestList_VisibleIsSubsetAndPure(t *testing.T) {
	list := loadedProjectList(t, nil,
		testProject("a", "Alpha", domain.ProjectPlanned, 10),
		testProject("b", "Beta", domain.ProjectInProgress, 50),
		testProject("c", "Gamma", domain.ProjectCompleted, 100),
	)
	list.SetSort(string(domain.ProjectSortTitle), false)

	first := list.Visible()
	second := list.Visible()

	assert.Equal(t, first, second, "same state must yield identical output")
	assert.LessOrEqual(t, len(first), len(list.Items()))

	ids := map[string]bool{"a": true, "b": true, "c": true}
	for _, p := range first {
		assert.True(t, ids[p.ID], "visible item %s must come from the loaded set", p.ID)
	}
}

func TestList_FavoritesSortFirstRegardlessOfSortKey(t *testing.T) {
	list := loadedProjectList(t, map[string]bool{"z": true},
		testProject("a", "Alpha", domain.ProjectPlanned, 10),
		testProject("m", "Mid", domain.ProjectPlanned, 20),
		testProject("z", "Zulu", domain.ProjectPlanned, 30),
	)
	list.SetSort(string(domain.ProjectSortTitle), false)

	visible := list.Visible()
	assert.Equal(t, "z", visible[0].ID, "favorited project leads even though it sorts last by title")
	assert.Equal(t, "a", visible[1].ID)
	assert.Equal(t, "m", visible[2].ID)
}

func TestList_TiesKeepInputOrder(t *testing.T) {
	list := loadedProjectList(t, nil,
		testProject("first", "Same", domain.ProjectPlanned, 10),
		testProject("second", "Same", domain.ProjectPlanned, 20),
		testProject("third", "Same", domain.ProjectPlanned, 30),
	)
	list.SetSort(string(domain.ProjectSortTitle), false)

	visible := list.Visible()
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{visible[0].ID, visible[1].ID, visible[2].ID})
}

func TestList_SortDescInvertsComparator(t *testing.T) {
	list := loadedProjectList(t, nil,
		testProject("a", "Alpha", domain.ProjectPlanned, 10),
		testProject("b", "Beta", domain.ProjectPlanned, 90),
	)
	list.SetSort(string(domain.ProjectSortProgress), true)

	visible := list.Visible()
	assert.Equal(t, "b", visible[0].ID)
}

func TestList_SupersedesStaleLoad(t *testing.T) {
	list := NewProjectList(10, nil)

	oldSeq := list.BeginLoad()
	newSeq := list.BeginLoad()

	applied := list.ApplyLoad(newSeq, []domain.Project{testProject("new", "New", domain.ProjectPlanned, 0)}, 1, nil)
	assert.True(t, applied)

	stale := list.ApplyLoad(oldSeq, []domain.Project{testProject("old", "Old", domain.ProjectPlanned, 0)}, 1, nil)
	assert.False(t, stale, "stale response must be discarded")

	items := list.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, PhaseReady, list.Phase())
}

func TestList_FailedLoadKeepsPreviousItems(t *testing.T) {
	list := loadedProjectList(t, nil, testProject("a", "Alpha", domain.ProjectPlanned, 10))

	seq := list.BeginLoad()
	list.ApplyLoad(seq, nil, 0, api.ErrNetwork)

	assert.Equal(t, PhaseFailed, list.Phase())
	assert.Len(t, list.Items(), 1, "stale-but-present beats empty")
	assert.Equal(t, "Could not reach the server. Check your connection.", list.Err())
}

func TestList_ClearErrorDismissesFailureMessage(t *testing.T) {
	list := loadedProjectList(t, nil, testProject("a", "Alpha", domain.ProjectPlanned, 10))

	seq := list.BeginLoad()
	list.ApplyLoad(seq, nil, 0, api.ErrNetwork)
	assert.NotEmpty(t, list.Err())

	list.ClearError()
	assert.Empty(t, list.Err())
	assert.Len(t, list.Items(), 1, "dismissal leaves the stale rows alone")
}

func TestList_SetFilterClearsOnEmptyAndAll(t *testing.T) {
	list := NewEducationList(10)

	list.SetFilter("search", "physics")
	assert.Equal(t, "physics", list.Filter("search"))

	list.SetFilter("search", "all")
	assert.Equal(t, "", list.Filter("search"))

	list.SetFilter("search", "physics")
	list.SetFilter("search", "")
	assert.Equal(t, "", list.Filter("search"))
}

func TestList_ServerPagedFilterRequiresReload(t *testing.T) {
	list := NewProjectList(10, nil)
	seq := list.BeginLoad()
	list.ApplyLoad(seq, nil, 35, nil)
	list.SetPage(3)

	reload := list.SetFilter("status", string(domain.ProjectInProgress))
	assert.True(t, reload)
	assert.Equal(t, 1, list.Page(), "filter change resets to page 1")
	assert.Equal(t, string(domain.ProjectInProgress), list.Query().Status)
}

func TestList_ClientPagedVisibleSlices(t *testing.T) {
	var entries []domain.EducationEntry
	for i := 0; i < 7; i++ {
		entries = append(entries, domain.EducationEntry{
			ID:    fmt.Sprintf("e%d", i),
			Order: i,
		})
	}

	list := NewEducationList(3)
	seq := list.BeginLoad()
	list.ApplyLoad(seq, entries, len(entries), nil)

	assert.Equal(t, 3, list.TotalPages())
	assert.Len(t, list.Visible(), 3)

	list.SetPage(3)
	assert.Len(t, list.Visible(), 1, "last page holds the remainder")

	list.SetPage(99)
	assert.Equal(t, 3, list.Page(), "page clamps into range")
}

func TestList_ApplyDeleteRemovesConfirmedRow(t *testing.T) {
	list := loadedProjectList(t, nil,
		testProject("a", "Alpha", domain.ProjectPlanned, 10),
		testProject("b", "Beta", domain.ProjectPlanned, 20),
	)

	removed := list.ApplyDelete("a", nil)
	assert.True(t, removed)
	assert.Len(t, list.Items(), 1)
	assert.Equal(t, "b", list.Items()[0].ID)
	assert.Equal(t, 1, list.TotalCount())
}

func TestList_ApplyDeleteTreats404AsSuccess(t *testing.T) {
	list := loadedProjectList(t, nil, testProject("a", "Alpha", domain.ProjectPlanned, 10))

	err := fmt.Errorf("wrapped: %w", api.ErrGone)
	removed := list.ApplyDelete("a", err)

	assert.True(t, removed, "the row is gone either way")
	assert.Empty(t, list.Items())
	assert.Empty(t, list.Err())
}

func TestList_ApplyDeleteKeepsRowOnOtherFailure(t *testing.T) {
	list := loadedProjectList(t, nil, testProject("a", "Alpha", domain.ProjectPlanned, 10))

	removed := list.ApplyDelete("a", api.ErrServer)

	assert.False(t, removed)
	assert.Len(t, list.Items(), 1, "no optimistic removal before the server confirms")
	assert.NotEmpty(t, list.Err())
}

func TestList_QueryCarriesPagingAndFilters(t *testing.T) {
	list := NewProjectList(10, nil)
	seq := list.BeginLoad()
	list.ApplyLoad(seq, nil, 50, nil)

	list.SetFilter("search", "api")
	list.SetPage(2)

	q := list.Query()
	assert.Equal(t, api.ListQuery{Page: 2, PageSize: 10, Search: "api"}, q)
}

func TestList_LastUpdateSetOnSuccess(t *testing.T) {
	list := NewProjectList(10, nil)
	assert.True(t, list.LastUpdate().IsZero())

	seq := list.BeginLoad()
	list.ApplyLoad(seq, nil, 0, nil)
	assert.WithinDuration(t, time.Now(), list.LastUpdate(), time.Second)
}
