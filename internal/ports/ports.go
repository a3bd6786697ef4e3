package ports

import (
	"context"

	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
)

// ProgressFunc receives progress snapshots while a download is running. It is
// called from the goroutine reading the engine's output, so implementations
// must be safe to call concurrently with the submitting goroutine.
type ProgressFunc func(domain.ProgressUpdate)

// RetrievalEngine defines the contract for the external tool that performs
// the actual fetch and audio conversion. This is the driven port: the
// orchestration layer only knows its command-line shaped semantics and exit
// classification.
type RetrievalEngine interface {
	// Fetch runs one retrieval process for the given request and blocks until
	// it terminates. With verbose set, the engine's output streams are passed
	// through to the caller's terminal and progress is not reported; otherwise
	// output is captured and progress (if non-nil) receives updates parsed
	// from it.
	//
	// A nil return means the engine exited successfully. Failures are
	// reported as *apperrors.ExecutionError (non-zero exit) or
	// *apperrors.EnvironmentError (tool missing, destination unusable).
	Fetch(ctx context.Context, req domain.DownloadRequest, verbose bool, progress ProgressFunc) error
}

// DownloadService defines the driving port for the core download use case.
type DownloadService interface {
	// Download validates the request, dispatches it to the retrieval engine
	// and classifies the outcome. It never returns an error: every failure is
	// folded into the result record.
	Download(ctx context.Context, req domain.DownloadRequest, verbose bool) domain.DownloadResult

	// DownloadWithProgress behaves like Download but additionally forwards
	// progress snapshots parsed from the engine's output. Progress reporting
	// requires captured output, so verbose is implied false.
	DownloadWithProgress(ctx context.Context, req domain.DownloadRequest, progress ProgressFunc) domain.DownloadResult
}

// JobService defines the driving port for asynchronous downloads, as consumed
// by presentation layers that cannot block on a long-running engine process.
type JobService interface {
	// Submit validates the request and starts a download on its own
	// goroutine. A validation failure is returned immediately and no job is
	// created.
	Submit(req domain.DownloadRequest) (*domain.Job, error)

	// Get returns a snapshot of the job with the given ID.
	Get(id string) (*domain.Job, bool)

	// List returns snapshots of all known jobs.
	List() []*domain.Job

	// Cancel terminates the running engine process of the given job.
	Cancel(id string) error

	// Subscribe returns a channel of progress updates for the given job. The
	// channel is closed when the job finishes. The returned function must be
	// called to release the subscription.
	Subscribe(id string) (<-chan domain.ProgressUpdate, func(), error)
}
