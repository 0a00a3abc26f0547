package api

import (
	"context"
	"net/http"

	"github.com/foliohq/folio/internal/domain"
)

// EducationService exposes the /education resource family. Education lists
// are small; the server returns all entries and pagination happens
// client-side.
type EducationService struct {
	client *Client
}

func (s *EducationService) List(ctx context.Context) ([]domain.EducationEntry, error) {
	var wire struct {
		Education []educationWire `json:"education"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/education", nil, nil, &wire); err != nil {
		return nil, err
	}
	entries := make([]domain.EducationEntry, 0, len(wire.Education))
	for _, w := range wire.Education {
		entries = append(entries, educationFromWire(w))
	}
	return entries, nil
}

func (s *EducationService) Get(ctx context.Context, id string) (*domain.EducationEntry, error) {
	var wire struct {
		Education educationWire `json:"education"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/education/"+id, nil, nil, &wire); err != nil {
		return nil, err
	}
	e := educationFromWire(wire.Education)
	return &e, nil
}

func (s *EducationService) Create(ctx context.Context, e domain.EducationEntry) (*domain.EducationEntry, error) {
	var wire struct {
		Education educationWire `json:"education"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/education", nil, educationToWire(e), &wire); err != nil {
		return nil, err
	}
	created := educationFromWire(wire.Education)
	return &created, nil
}

func (s *EducationService) Update(ctx context.Context, id string, e domain.EducationEntry) (*domain.EducationEntry, error) {
	var wire struct {
		Education educationWire `json:"education"`
	}
	if err := s.client.do(ctx, http.MethodPut, "/education/"+id, nil, educationToWire(e), &wire); err != nil {
		return nil, err
	}
	updated := educationFromWire(wire.Education)
	return &updated, nil
}

func (s *EducationService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/education/"+id, nil, nil, nil)
}
