package domain

import "time"

// JobStatus represents the state of an asynchronous download job.
type JobStatus string

const (
	// JobStatusPending means the job is accepted but its engine process has
	// not started yet.
	JobStatusPending JobStatus = "pending"

	// JobStatusRunning means the engine process is executing.
	JobStatusRunning JobStatus = "running"

	// JobStatusCompleted means the engine process exited successfully.
	JobStatusCompleted JobStatus = "completed"

	// JobStatusFailed means the engine process failed or could not be run.
	JobStatusFailed JobStatus = "failed"

	// JobStatusCancelled means the job was cancelled by the caller.
	JobStatusCancelled JobStatus = "cancelled"
)

// String returns the string representation of JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// IsFinished reports whether the job has reached a terminal state.
func (s JobStatus) IsFinished() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// Job tracks one asynchronous download submitted by the presentation layer.
// The underlying semantics are unchanged from the synchronous path: one
// engine process per job, classified into a DownloadResult on exit.
type Job struct {
	ID         string          `json:"id"`
	Request    DownloadRequest `json:"request"`
	Status     JobStatus       `json:"status"`
	Result     *DownloadResult `json:"result,omitempty"`
	Progress   ProgressUpdate  `json:"progress"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at,omitzero"`
}

// ProgressUpdate is a point-in-time snapshot of a running download, derived
// from the retrieval engine's output stream.
type ProgressUpdate struct {
	Percent      int    `json:"percent"`
	Message      string `json:"message"`
	CurrentTrack int    `json:"current_track"`
	TotalTracks  int    `json:"total_tracks"`
	Speed        string `json:"speed,omitempty"` // e.g. "2.5 songs/min"
}
