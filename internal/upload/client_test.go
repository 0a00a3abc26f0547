package upload

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		kind     Kind
		ok       bool
	}{
		{"photo.jpg", KindImage, true},
		{"photo.JPEG", KindImage, true},
		{"banner.webp", KindImage, true},
		{"resume.pdf", KindDocument, true},
		{"notes.docx", KindDocument, true},
		{"archive.zip", "", false},
		{"noextension", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			kind, ok := DetectKind(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestValidate_SizeCeilings(t *testing.T) {
	_, err := Validate("photo.png", MaxImageBytes)
	assert.NoError(t, err, "exactly at the limit is allowed")

	_, err = Validate("photo.png", MaxImageBytes+1)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = Validate("resume.pdf", 8<<20)
	assert.NoError(t, err, "documents get the larger ceiling")

	_, err = Validate("resume.pdf", MaxDocumentBytes+1)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = Validate("script.sh", 10)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUpload_RejectsInvalidFileBeforeDialing(t *testing.T) {
	dialed := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dialed = true
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)

	oversized := int64(MaxImageBytes + 1)
	task, err := client.Upload(context.Background(), strings.NewReader(""), oversized, "projects", "huge.png", nil)

	assert.ErrorIs(t, err, ErrTooLarge)
	assert.False(t, dialed, "a rejected file never reaches the network")
	require.NotNil(t, task)
	assert.Equal(t, TaskFailed, task.Status)
	assert.NotEmpty(t, task.LastErr)
}

func TestUpload_SuccessReportsMonotonicProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "projects", r.FormValue("folder"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(header.Filename, ".png"), "stored under a generated object name")

		w.Write([]byte(`{"success": true, "data": {"url": "https://cdn.example.com/projects/abc.png"}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)

	content := bytes.Repeat([]byte("x"), 64<<10)
	var ticks []int
	task, err := client.Upload(context.Background(), bytes.NewReader(content), int64(len(content)), "projects", "shot.png",
		func(pct int) { ticks = append(ticks, pct) })

	require.NoError(t, err)
	assert.Equal(t, TaskDone, task.Status)
	assert.Equal(t, "https://cdn.example.com/projects/abc.png", task.URL)
	assert.Equal(t, 100, task.Percent)
	assert.True(t, task.Status.IsFinished())

	require.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.GreaterOrEqual(t, ticks[i], ticks[i-1], "progress never goes backwards")
	}
	assert.Equal(t, 100, ticks[len(ticks)-1])
}

func TestUpload_ServerRejectionFailsTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`storage unavailable`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	task, err := client.Upload(context.Background(), strings.NewReader("data"), 4, "projects", "shot.png", nil)

	assert.ErrorIs(t, err, ErrUploadFailed)
	require.NotNil(t, task)
	assert.Equal(t, TaskFailed, task.Status)
}

func TestUpload_FalseEnvelopeFailsTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "bucket quota exceeded"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	_, err := client.Upload(context.Background(), strings.NewReader("data"), 4, "projects", "shot.png", nil)

	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "bucket quota exceeded")
}

func TestDelete_404IsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(404)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	err := client.Delete(context.Background(), "https://cdn.example.com/projects/gone.png")
	assert.NoError(t, err, "the object is gone either way")
}

func TestGetMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/metadata", r.URL.Path)
		assert.Equal(t, "https://cdn.example.com/projects/abc.png", r.URL.Query().Get("url"))
		w.Write([]byte(`{"success": true, "data": {"url": "https://cdn.example.com/projects/abc.png", "size": 2048, "contentType": "image/png", "uploadedAt": "2026-08-01T12:00:00Z"}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	meta, err := client.GetMetadata(context.Background(), "https://cdn.example.com/projects/abc.png")

	require.NoError(t, err)
	assert.Equal(t, int64(2048), meta.Size)
	assert.Equal(t, "image/png", meta.ContentType)
}
