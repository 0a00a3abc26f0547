package store

import (
	"testing"

	"github.com/foliohq/folio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProjectStore_SnapshotIsACopy(t *testing.T) {
	s := NewProjectStore()
	s.Replace([]domain.Project{{ID: "a", Title: "Alpha"}})

	snap := s.Snapshot()
	snap[0].Title = "Mutated"

	assert.Equal(t, "Alpha", s.Snapshot()[0].Title, "callers cannot reach into the cache")
}

func TestProjectStore_UpsertInsertsThenUpdates(t *testing.T) {
	s := NewProjectStore()

	s.Upsert(domain.Project{ID: "a", Title: "Alpha"})
	assert.Len(t, s.Snapshot(), 1)

	s.Upsert(domain.Project{ID: "a", Title: "Alpha v2"})
	snap := s.Snapshot()
	assert.Len(t, snap, 1)
	assert.Equal(t, "Alpha v2", snap[0].Title)
}

func TestProjectStore_DeleteByID(t *testing.T) {
	s := NewProjectStore()
	s.Replace([]domain.Project{{ID: "a"}, {ID: "b"}})

	s.DeleteByID("a")
	snap := s.Snapshot()
	assert.Len(t, snap, 1)
	assert.Equal(t, "b", snap[0].ID)

	s.DeleteByID("missing")
	assert.Len(t, s.Snapshot(), 1)
}

func TestProjectStore_VersionBumpsOnEveryMutation(t *testing.T) {
	s := NewProjectStore()
	v0 := s.Version()

	s.Replace(nil)
	s.Upsert(domain.Project{ID: "a"})
	s.DeleteByID("a")

	assert.Equal(t, v0+3, s.Version())
}
