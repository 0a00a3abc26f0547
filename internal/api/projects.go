package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/foliohq/folio/internal/domain"
)

// ProjectService exposes the /projects resource family. Project lists are
// paginated server-side; page metadata comes back with each response.
type ProjectService struct {
	client *Client
}

// ListQuery carries the server-side filter and pagination parameters.
type ListQuery struct {
	Page     int
	PageSize int
	Status   string
	Category string
	Search   string
}

// ProjectPage is one server page of projects plus its pagination metadata.
type ProjectPage struct {
	Projects []domain.Project
	Page     int
	Pages    int
	Total    int
}

type projectListWire struct {
	Projects   []projectWire `json:"projects"`
	Pagination struct {
		Page  int `json:"page"`
		Pages int `json:"pages"`
		Total int `json:"total"`
	} `json:"pagination"`
}

func (s *ProjectService) List(ctx context.Context, q ListQuery) (*ProjectPage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("limit", strconv.Itoa(q.PageSize))
	}
	if q.Status != "" && q.Status != "all" {
		query.Set("status", q.Status)
	}
	if q.Category != "" && q.Category != "all" {
		query.Set("category", q.Category)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}

	var wire projectListWire
	if err := s.client.do(ctx, http.MethodGet, "/projects", query, nil, &wire); err != nil {
		return nil, err
	}

	page := &ProjectPage{
		Projects: make([]domain.Project, 0, len(wire.Projects)),
		Page:     wire.Pagination.Page,
		Pages:    wire.Pagination.Pages,
		Total:    wire.Pagination.Total,
	}
	for _, w := range wire.Projects {
		page.Projects = append(page.Projects, projectFromWire(w))
	}
	if page.Page == 0 {
		page.Page = 1
	}
	return page, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	var wire struct {
		Project projectWire `json:"project"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+id, nil, nil, &wire); err != nil {
		return nil, err
	}
	p := projectFromWire(wire.Project)
	return &p, nil
}

func (s *ProjectService) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	var wire struct {
		Project projectWire `json:"project"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/projects", nil, projectToWire(p), &wire); err != nil {
		return nil, err
	}
	created := projectFromWire(wire.Project)
	return &created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, p domain.Project) (*domain.Project, error) {
	var wire struct {
		Project projectWire `json:"project"`
	}
	if err := s.client.do(ctx, http.MethodPut, "/projects/"+id, nil, projectToWire(p), &wire); err != nil {
		return nil, err
	}
	updated := projectFromWire(wire.Project)
	return &updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil, nil)
}
