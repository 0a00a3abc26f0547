package upload

import "time"

// TaskStatus is the lifecycle of one upload.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskUploading TaskStatus = "uploading"
	TaskDone      TaskStatus = "done"
	TaskFailed    TaskStatus = "failed"
)

// IsFinished reports whether the task reached a terminal status.
func (s TaskStatus) IsFinished() bool {
	return s == TaskDone || s == TaskFailed
}

// Task tracks a single upload.
type Task struct {
	ID       string
	Filename string
	Folder   string
	Size     int64
	Status   TaskStatus
	Percent  int    // 0..100, monotonically non-decreasing
	URL      string // set on success
	LastErr  string

	StartedAt  time.Time
	FinishedAt time.Time
}
