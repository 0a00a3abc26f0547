// Package upload wraps the blob-storage service: client-side validation of
// file type and size, optional image downscaling, multipart upload with
// progress reporting, delete, and metadata lookup.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Size ceilings enforced before any network call.
const (
	MaxImageBytes    = 5 << 20  // 5 MB
	MaxDocumentBytes = 10 << 20 // 10 MB
)

var (
	// ErrUnsupportedType indicates the file extension is not allowlisted.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrTooLarge indicates the file exceeds the ceiling for its kind.
	ErrTooLarge = errors.New("file too large")

	// ErrUploadFailed indicates the storage service rejected the upload.
	ErrUploadFailed = errors.New("upload failed")
)

// Kind classifies an upload for validation purposes.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var documentExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
}

// DetectKind classifies a filename by extension. The second return value is
// false for extensions outside both allowlists.
func DetectKind(filename string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if imageExts[ext] {
		return KindImage, true
	}
	if documentExts[ext] {
		return KindDocument, true
	}
	return "", false
}

// Validate applies the type allowlist and size ceiling for a file. It runs
// entirely client-side; a rejected file never reaches the network.
func Validate(filename string, size int64) (Kind, error) {
	kind, ok := DetectKind(filename)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
	limit := int64(MaxImageBytes)
	if kind == KindDocument {
		limit = MaxDocumentBytes
	}
	if size > limit {
		return kind, fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrTooLarge, size, limit)
	}
	return kind, nil
}

// Metadata describes a stored object.
type Metadata struct {
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	UploadedAt  string `json:"uploadedAt"`
}

// ProgressFunc receives upload percentages in 0..100. Values are
// monotonically non-decreasing; callbacks run on the uploader goroutine and
// must not block.
type ProgressFunc func(percent int)

// Client talks to the file-storage service.
type Client struct {
	baseURL     string
	http        *http.Client
	resizeBound int
}

// NewClient creates an upload client for the given storage endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetResizeBound caps the longest edge of uploaded jpeg and png images at
// maxEdge pixels; larger images are downscaled client-side before the
// upload. Zero disables resizing.
func (c *Client) SetResizeBound(maxEdge int) {
	c.resizeBound = maxEdge
}

// Upload validates the file, streams it as multipart form data, and
// returns the completed Task carrying the publicly resolvable URL. On
// failure the task is returned in the failed state along with the error so
// the caller's draft stays untouched.
func (c *Client) Upload(ctx context.Context, r io.Reader, size int64, folder, filename string, onProgress ProgressFunc) (*Task, error) {
	task := &Task{
		ID:        uuid.NewString(),
		Filename:  filename,
		Folder:    folder,
		Size:      size,
		Status:    TaskPending,
		StartedAt: time.Now(),
	}

	kind, err := Validate(filename, size)
	if err != nil {
		task.Status = TaskFailed
		task.LastErr = err.Error()
		task.FinishedAt = time.Now()
		return task, err
	}

	if kind == KindImage && c.resizeBound > 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return c.fail(task, fmt.Errorf("reading file: %w", err))
		}
		resized, did, err := ResizeImage(data, filename, c.resizeBound)
		if err != nil {
			return c.fail(task, err)
		}
		if did {
			size = int64(len(resized))
			task.Size = size
		}
		r = bytes.NewReader(resized)
	}

	task.Status = TaskUploading

	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	// Build the multipart body up front; progress is reported against the
	// encoded size as the request body is consumed.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("folder", folder); err != nil {
		return c.fail(task, err)
	}
	part, err := mw.CreateFormFile("file", objectName)
	if err != nil {
		return c.fail(task, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return c.fail(task, fmt.Errorf("reading file: %w", err))
	}
	if err := mw.Close(); err != nil {
		return c.fail(task, err)
	}

	body := &progressReader{
		r:     &buf,
		total: int64(buf.Len()),
		report: func(pct int) {
			if pct > task.Percent {
				task.Percent = pct
			}
			if onProgress != nil {
				onProgress(task.Percent)
			}
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", body)
	if err != nil {
		return c.fail(task, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.ContentLength = body.total

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(task, fmt.Errorf("%w: %v", ErrUploadFailed, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(task, fmt.Errorf("%w: reading response: %v", ErrUploadFailed, err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(task, fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, strings.TrimSpace(string(respBody))))
	}

	var result struct {
		Success bool `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return c.fail(task, fmt.Errorf("%w: decoding response: %v", ErrUploadFailed, err))
	}
	if !result.Success || result.Data.URL == "" {
		return c.fail(task, fmt.Errorf("%w: %s", ErrUploadFailed, result.Message))
	}

	task.Status = TaskDone
	task.Percent = 100
	task.URL = result.Data.URL
	task.FinishedAt = time.Now()
	if onProgress != nil {
		onProgress(100)
	}
	return task, nil
}

func (c *Client) fail(task *Task, err error) (*Task, error) {
	task.Status = TaskFailed
	task.LastErr = err.Error()
	task.FinishedAt = time.Now()
	return task, err
}

// Delete removes a stored object by its public URL.
func (c *Client) Delete(ctx context.Context, objectURL string) error {
	q := url.Values{"url": {objectURL}}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/object?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("deleting object: %w", err)
	}
	defer resp.Body.Close()
	// Missing objects are fine; the goal state is "gone".
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("deleting object: status %d", resp.StatusCode)
	}
	return nil
}

// GetMetadata fetches the stored metadata for an object URL.
func (c *Client) GetMetadata(ctx context.Context, objectURL string) (*Metadata, error) {
	q := url.Values{"url": {objectURL}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/metadata?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching metadata: status %d", resp.StatusCode)
	}

	var result struct {
		Success bool     `json:"success"`
		Data    Metadata `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}
	return &result.Data, nil
}

// progressReader reports consumption of the request body as clamped,
// non-decreasing percentages.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report func(pct int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct > p.last {
			p.last = pct
			p.report(pct)
		}
	}
	return n, err
}
