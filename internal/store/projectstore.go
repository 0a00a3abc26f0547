package store

import (
	"sync"

	"github.com/foliohq/folio/internal/domain"
)

// ProjectStore is the shared project cache, owned by the application root
// and handed to views by injection. It keeps create/edit/delete on one
// screen visible on another without a re-fetch. Discipline is single
// writer: only the controller that just completed a mutation writes.
type ProjectStore struct {
	mu       sync.RWMutex
	projects []domain.Project
	version  uint64
}

// NewProjectStore creates an empty store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

// Snapshot returns a copy of the cached projects.
func (s *ProjectStore) Snapshot() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Version increments on every mutation so readers can cheaply detect
// staleness.
func (s *ProjectStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace swaps the whole cache after a fresh list fetch.
func (s *ProjectStore) Replace(projects []domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = make([]domain.Project, len(projects))
	copy(s.projects, projects)
	s.version++
}

// Upsert inserts or updates one project after a confirmed create/update.
func (s *ProjectStore) Upsert(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			s.version++
			return
		}
	}
	s.projects = append(s.projects, p)
	s.version++
}

// DeleteByID removes one project after a confirmed delete.
func (s *ProjectStore) DeleteByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	s.version++
}
