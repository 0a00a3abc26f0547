package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/foliohq/folio/internal/domain"
)

// DashboardService exposes the read-only /dashboard resource family.
type DashboardService struct {
	client *Client
}

func (s *DashboardService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	var wire overviewWire
	if err := s.client.do(ctx, http.MethodGet, "/dashboard/overview", nil, nil, &wire); err != nil {
		return nil, err
	}
	o := overviewFromWire(wire)
	return &o, nil
}

func (s *DashboardService) UpcomingDeadlines(ctx context.Context, withinDays int) ([]domain.Deadline, error) {
	query := url.Values{}
	if withinDays > 0 {
		query.Set("days", strconv.Itoa(withinDays))
	}
	var wire struct {
		Deadlines []deadlineWire `json:"deadlines"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/dashboard/upcoming-deadlines", query, nil, &wire); err != nil {
		return nil, err
	}
	deadlines := make([]domain.Deadline, 0, len(wire.Deadlines))
	for _, w := range wire.Deadlines {
		deadlines = append(deadlines, deadlineFromWire(w))
	}
	return deadlines, nil
}

func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var wire struct {
		Activity []activityWire `json:"activity"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/dashboard/recent-activity", query, nil, &wire); err != nil {
		return nil, err
	}
	activity := make([]domain.Activity, 0, len(wire.Activity))
	for _, w := range wire.Activity {
		activity = append(activity, activityFromWire(w))
	}
	return activity, nil
}
