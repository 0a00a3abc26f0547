package upload

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestResizeImage_ShrinksOversizedPNG(t *testing.T) {
	data := encodePNG(t, 64, 16)

	out, resized, err := ResizeImage(data, "banner.png", 32)

	require.NoError(t, err)
	assert.True(t, resized)
	w, h := decodeDims(t, out)
	assert.Equal(t, 32, w, "longest edge lands on the bound")
	assert.Equal(t, 8, h, "aspect ratio is preserved")
}

func TestResizeImage_ShrinksOversizedJPEG(t *testing.T) {
	data := encodeJPEG(t, 48, 96)

	out, resized, err := ResizeImage(data, "shot.jpg", 32)

	require.NoError(t, err)
	assert.True(t, resized)
	w, h := decodeDims(t, out)
	assert.Equal(t, 16, w)
	assert.Equal(t, 32, h)
}

func TestResizeImage_PassesThroughWithinBound(t *testing.T) {
	data := encodePNG(t, 16, 16)

	out, resized, err := ResizeImage(data, "icon.png", 32)

	require.NoError(t, err)
	assert.False(t, resized)
	assert.Equal(t, data, out, "bytes are untouched, not re-encoded")
}

func TestResizeImage_SkipsUnsupportedFormats(t *testing.T) {
	for _, filename := range []string{"anim.gif", "banner.webp", "resume.pdf"} {
		t.Run(filename, func(t *testing.T) {
			data := []byte("not even an image")
			out, resized, err := ResizeImage(data, filename, 32)
			require.NoError(t, err)
			assert.False(t, resized)
			assert.Equal(t, data, out)
		})
	}
}

func TestResizeImage_ZeroBoundDisables(t *testing.T) {
	data := encodePNG(t, 64, 64)
	out, resized, err := ResizeImage(data, "big.png", 0)
	require.NoError(t, err)
	assert.False(t, resized)
	assert.Equal(t, data, out)
}

func TestResizeImage_RejectsCorruptImage(t *testing.T) {
	_, _, err := ResizeImage([]byte("garbage"), "broken.png", 32)
	assert.Error(t, err)
}

func TestUpload_ResizesImageBeforeSend(t *testing.T) {
	var receivedW, receivedH int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		img, _, err := image.Decode(file)
		require.NoError(t, err)
		receivedW, receivedH = img.Bounds().Dx(), img.Bounds().Dy()
		w.Write([]byte(`{"success": true, "data": {"url": "https://cdn.example.com/projects/abc.png"}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	client.SetResizeBound(32)

	data := encodePNG(t, 64, 64)
	task, err := client.Upload(context.Background(), bytes.NewReader(data), int64(len(data)), "projects", "shot.png", nil)

	require.NoError(t, err)
	assert.Equal(t, TaskDone, task.Status)
	assert.Equal(t, 32, receivedW, "server receives the downscaled image")
	assert.Equal(t, 32, receivedH)
	assert.NotEqual(t, int64(len(data)), task.Size, "task size tracks the re-encoded bytes")
}

func TestUpload_ResizeLeavesDocumentsAlone(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		buf := new(bytes.Buffer)
		_, err = buf.ReadFrom(file)
		require.NoError(t, err)
		received = buf.Bytes()
		w.Write([]byte(`{"success": true, "data": {"url": "https://cdn.example.com/documents/abc.pdf"}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	client.SetResizeBound(32)

	data := []byte("%PDF-1.4 fake document body")
	task, err := client.Upload(context.Background(), bytes.NewReader(data), int64(len(data)), "documents", "resume.pdf", nil)

	require.NoError(t, err)
	assert.Equal(t, TaskDone, task.Status)
	assert.Equal(t, data, received)
}
