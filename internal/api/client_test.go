package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	return NewClient(cfg, StaticToken("test-token"), nil)
}

func TestClient_NoTokenFailsBeforeAnyRequest(t *testing.T) {
	dialed := false
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		dialed = true
	})
	client.tokens = StaticToken("")

	_, err := client.Projects.List(context.Background(), ListQuery{})

	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, dialed, "missing token must not produce network traffic")
}

func TestClient_SendsBearerTokenAndUnwrapsEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "in_progress", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"projects": [{"id": "p1", "title": "Gateway", "budget": "$5,000"}],
				"pagination": {"page": 2, "pages": 4, "total": 35}
			}
		}`))
	})

	page, err := client.Projects.List(context.Background(), ListQuery{
		Page: 2, PageSize: 10, Status: "in_progress",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 4, page.Pages)
	assert.Equal(t, 35, page.Total)
	require.Len(t, page.Projects, 1)
	assert.Equal(t, "Gateway", page.Projects[0].Title)
	assert.Equal(t, 5000.0, *page.Projects[0].Budget)
}

func TestClient_AllFilterValuesAreNotSent(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("status"), `"all" means unfiltered`)
		w.Write([]byte(`{"success": true, "data": {"projects": []}}`))
	})

	_, err := client.Projects.List(context.Background(), ListQuery{Status: "all"})
	assert.NoError(t, err)
}

func TestClient_StatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"401 unauthorized", 401, ErrUnauthorized},
		{"403 forbidden", 403, ErrForbidden},
		{"404 gone", 404, ErrGone},
		{"409 conflict", 409, ErrConflict},
		{"500 server", 500, ErrServer},
		{"503 server", 503, ErrServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"success": false, "message": "nope"}`))
			})

			_, err := client.Projects.Get(context.Background(), "p1")
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestClient_ConflictSurfacesServerMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(409)
		w.Write([]byte(`{"success": false, "message": "Project is referenced by 3 invoices"}`))
	})

	err := client.Projects.Delete(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Project is referenced by 3 invoices", UserMessage(err))
}

func TestClient_NetworkFailureMapsToErrNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	srv.Close() // nothing listening anymore

	client := NewClient(cfg, StaticToken("tok"), nil)
	_, err := client.Projects.Get(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "Could not reach the server. Check your connection.", UserMessage(err))
}

func TestClient_FalseEnvelopeIsADecodeError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "validation failed"}`))
	})

	_, err := client.Projects.Get(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestClient_ObserverSeesOutcome(t *testing.T) {
	var events []CallEvent
	recorder := observerFunc(func(e CallEvent) { events = append(events, e) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`{"success": false}`))
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	client := NewClient(cfg, StaticToken("tok"), recorder)

	_ = client.Projects.Delete(context.Background(), "p1")

	require.Len(t, events, 1)
	assert.Equal(t, http.MethodDelete, events[0].Method)
	assert.Equal(t, "/projects/p1", events[0].Path)
	assert.Equal(t, 500, events[0].Status)
	assert.False(t, events[0].Success)
	assert.Equal(t, "SERVER", events[0].ErrorCode)
}

// observerFunc adapts a function to the Observer interface for tests.
type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
