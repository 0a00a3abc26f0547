package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/foliohq/folio/internal/upload"
)

// ── messages ─────────────────────────────────────────────────────────────────

// uploadProgressMsg carries one progress tick from the uploader goroutine.
type uploadProgressMsg struct {
	seq     uint64
	percent int
}

// uploadDoneMsg resolves the upload.
type uploadDoneMsg struct {
	seq  uint64
	task *upload.Task
	err  error
}

// uploadMetadataMsg resolves a metadata lookup for the stored object.
type uploadMetadataMsg struct {
	meta *upload.Metadata
	err  error
}

// ── view ─────────────────────────────────────────────────────────────────────

// uploadView drives a single file upload: pick a path, watch the progress
// bar, then hand the stored URL to the continuation (or just display it).
type uploadView struct {
	state  *SharedState
	folder string

	// onDone, when set, receives the stored URL after the user accepts it.
	onDone func(url string) tea.Cmd

	pathInput textinput.Model

	seq       uint64
	uploading bool
	filename  string
	size      int64
	percent   int
	task      *upload.Task
	meta      *upload.Metadata
	errMsg    string

	progress chan int
}

func newUploadView(state *SharedState, folder string, onDone func(url string) tea.Cmd) *uploadView {
	ti := textinput.New()
	ti.Placeholder = "/path/to/file.png"
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Focus()

	return &uploadView{
		state:     state,
		folder:    folder,
		onDone:    onDone,
		pathInput: ti,
	}
}

func (v *uploadView) ID() ViewID    { return ViewUpload }
func (v *uploadView) Title() string { return "Upload" }

func (v *uploadView) capturingInput() bool {
	return !v.uploading && v.task == nil
}

func (v *uploadView) ShortHelp() []key.Binding {
	if v.task != nil && v.task.Status == upload.TaskDone {
		bindings := []key.Binding{
			key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "metadata")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete object")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		}
		if v.onDone != nil {
			return append([]key.Binding{
				key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use URL")),
			}, bindings...)
		}
		return bindings
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "upload")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *uploadView) Init() tea.Cmd {
	return textinput.Blink
}

// ── upload plumbing ──────────────────────────────────────────────────────────

// startUpload validates and uploads the chosen file. Progress ticks flow
// through a buffered channel; the uploader never blocks on a slow UI.
func (v *uploadView) startUpload(path string) tea.Cmd {
	v.seq++
	seq := v.seq
	v.uploading = true
	v.percent = 0
	v.errMsg = ""
	v.progress = make(chan int, 16)

	app := v.state.App
	folder := v.folder
	ch := v.progress

	run := func() tea.Msg {
		defer close(ch)

		f, err := os.Open(path)
		if err != nil {
			return uploadDoneMsg{seq: seq, err: err}
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return uploadDoneMsg{seq: seq, err: err}
		}

		task, err := app.Uploads.Upload(context.Background(), f, info.Size(), folder, filepath.Base(path),
			func(pct int) {
				select {
				case ch <- pct:
				default:
				}
			})
		return uploadDoneMsg{seq: seq, task: task, err: err}
	}

	return tea.Batch(run, v.waitForProgress(seq, ch))
}

// waitForProgress reads one tick and re-arms itself from Update.
func (v *uploadView) waitForProgress(seq uint64, ch chan int) tea.Cmd {
	return func() tea.Msg {
		pct, ok := <-ch
		if !ok {
			return nil
		}
		return uploadProgressMsg{seq: seq, percent: pct}
	}
}

func (v *uploadView) fetchMetadata(url string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		meta, err := app.Uploads.GetMetadata(context.Background(), url)
		return uploadMetadataMsg{meta: meta, err: err}
	}
}

func (v *uploadView) deleteObject(url string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Uploads.Delete(context.Background(), url); err != nil {
			return cmdOutputMsg{output: formatter.StyleRed.Render(err.Error())}
		}
		return wizardCompleteOutput(formatter.Dim("Object deleted."))
	}
}

func (v *uploadView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadProgressMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		if msg.percent > v.percent {
			v.percent = msg.percent
		}
		return v, v.waitForProgress(msg.seq, v.progress)

	case uploadDoneMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v.uploading = false
		if msg.err != nil {
			v.errMsg = msg.err.Error()
			v.task = msg.task
			return v, nil
		}
		v.task = msg.task
		v.percent = 100
		return v, nil

	case uploadMetadataMsg:
		if msg.err != nil {
			v.errMsg = msg.err.Error()
			return v, nil
		}
		v.meta = msg.meta
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if !v.uploading && v.task == nil {
		var cmd tea.Cmd
		v.pathInput, cmd = v.pathInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *uploadView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Terminal state: the upload finished successfully.
	if v.task != nil && v.task.Status == upload.TaskDone {
		switch msg.String() {
		case "enter":
			if v.onDone != nil {
				return v, tea.Batch(v.onDone(v.task.URL), popView())
			}
		case "m":
			return v, v.fetchMetadata(v.task.URL)
		case "x":
			return v, v.deleteObject(v.task.URL)
		}
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}
		return v, nil
	}

	if v.uploading {
		// No cancel mid-flight; the client timeout bounds the wait.
		return v, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		path := strings.TrimSpace(v.pathInput.Value())
		if path == "" {
			return v, nil
		}
		// Reject unsupported types and oversized files before dialing.
		info, err := os.Stat(path)
		if err != nil {
			v.errMsg = err.Error()
			return v, nil
		}
		if _, err := upload.Validate(filepath.Base(path), info.Size()); err != nil {
			v.errMsg = err.Error()
			return v, nil
		}
		v.filename = filepath.Base(path)
		v.size = info.Size()
		return v, v.startUpload(path)

	case tea.KeyEsc:
		return v, popView()
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *uploadView) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Upload to /"+v.folder) + "\n\n")

	switch {
	case v.uploading:
		b.WriteString(fmt.Sprintf("%s %s\n\n", formatter.Bold(v.filename), formatter.Dim(formatter.FileSize(v.size))))
		b.WriteString(formatter.RenderUploadProgress(v.percent, 32) + "\n")

	case v.task != nil && v.task.Status == upload.TaskDone:
		b.WriteString(fmt.Sprintf("%s %s\n\n", formatter.Bold(v.task.Filename), formatter.Dim(formatter.FileSize(v.task.Size))))
		b.WriteString(formatter.RenderUploadProgress(100, 32) + "\n\n")
		b.WriteString(formatter.StyleGreen.Render(v.task.URL) + "\n")
		if v.meta != nil {
			b.WriteString(formatter.Dim(fmt.Sprintf("%s · %s · uploaded %s",
				v.meta.ContentType, formatter.FileSize(v.meta.Size), uploadedAtLabel(v.meta.UploadedAt))) + "\n")
		}
		if v.onDone != nil {
			b.WriteString("\n" + formatter.Dim("enter uses this URL in the draft") + "\n")
		}

	default:
		b.WriteString("Images up to 5 MB (jpg, png, gif, webp), documents up to 10 MB (pdf, doc, docx).\n\n")
		b.WriteString(v.pathInput.View() + "\n")
	}

	if v.errMsg != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(v.errMsg) + "\n")
	}

	return b.String()
}

// uploadedAtLabel shortens the service's RFC3339 uploadedAt timestamp to a
// readable date. Unparseable input passes through unchanged.
func uploadedAtLabel(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return formatter.HumanDate(t.Format("2006-01-02"))
}
