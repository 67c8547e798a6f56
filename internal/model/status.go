package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusStarting means yt-dlp is resolving the URL
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means bytes are being transferred
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusDelivering means the file is being handed to the user
	TaskStatusDelivering TaskStatus = "Saving"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusDownloading || ts == TaskStatusDelivering
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
