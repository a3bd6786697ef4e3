package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
	"github.com/pvictorr/SpotifyDownloader-API/internal/ports"
)

// JobService implements ports.JobService: it runs each download on its own
// goroutine so presentation layers don't block on the engine process, and it
// fans progress updates out to subscribers. The download semantics are the
// synchronous service's, unchanged.
type JobService struct {
	svc ports.DownloadService
	log zerolog.Logger

	mu   sync.RWMutex
	jobs map[string]*jobEntry
}

type jobEntry struct {
	job         *domain.Job
	cancel      context.CancelFunc
	subscribers map[chan domain.ProgressUpdate]struct{}
}

// NewJobService creates a job service delegating to the given download service.
func NewJobService(svc ports.DownloadService, logger zerolog.Logger) *JobService {
	return &JobService{
		svc:  svc,
		log:  logger,
		jobs: make(map[string]*jobEntry),
	}
}

func (s *JobService) Submit(req domain.DownloadRequest) (*domain.Job, error) {
	// Reject malformed input up front so the caller gets an immediate error
	// instead of a job that is born failed.
	normalized := s.normalize(req)
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	entry := &jobEntry{
		job: &domain.Job{
			ID:        uuid.NewString(),
			Request:   normalized,
			Status:    domain.JobStatusPending,
			StartedAt: time.Now(),
		},
		cancel:      cancel,
		subscribers: make(map[chan domain.ProgressUpdate]struct{}),
	}

	s.mu.Lock()
	s.jobs[entry.job.ID] = entry
	s.mu.Unlock()

	s.log.Info().Str("job_id", entry.job.ID).Str("url", normalized.URL).Msg("job submitted")
	go s.run(ctx, entry)

	return s.snapshot(entry), nil
}

// normalize delegates to the download service when it is the concrete
// implementation, so the job record reflects the effective request.
func (s *JobService) normalize(req domain.DownloadRequest) domain.DownloadRequest {
	if ds, ok := s.svc.(*DownloadService); ok {
		return ds.Normalize(req)
	}
	return req
}

func (s *JobService) run(ctx context.Context, entry *jobEntry) {
	s.setStatus(entry, domain.JobStatusRunning)

	result := s.svc.DownloadWithProgress(ctx, entry.job.Request, func(u domain.ProgressUpdate) {
		s.publish(entry, u)
	})

	s.mu.Lock()
	switch {
	case ctx.Err() == context.Canceled:
		entry.job.Status = domain.JobStatusCancelled
		entry.job.Result = &domain.DownloadResult{Success: false, Error: "download cancelled"}
	case result.Success:
		entry.job.Status = domain.JobStatusCompleted
		entry.job.Result = &result
		entry.job.Progress = domain.ProgressUpdate{
			Percent:      100,
			Message:      "Download complete!",
			CurrentTrack: entry.job.Progress.TotalTracks,
			TotalTracks:  entry.job.Progress.TotalTracks,
			Speed:        entry.job.Progress.Speed,
		}
	default:
		entry.job.Status = domain.JobStatusFailed
		entry.job.Result = &result
	}
	entry.job.FinishedAt = time.Now()
	for ch := range entry.subscribers {
		close(ch)
	}
	entry.subscribers = make(map[chan domain.ProgressUpdate]struct{})
	s.mu.Unlock()

	s.log.Info().Str("job_id", entry.job.ID).Str("status", entry.job.Status.String()).Msg("job finished")
}

func (s *JobService) Get(id string) (*domain.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.jobs[id]
	if !ok {
		return nil, false
	}
	return s.snapshotLocked(entry), true
}

func (s *JobService) List() []*domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*domain.Job, 0, len(s.jobs))
	for _, entry := range s.jobs {
		jobs = append(jobs, s.snapshotLocked(entry))
	}
	return jobs
}

func (s *JobService) Cancel(id string) error {
	s.mu.Lock()
	entry, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("job not found: %s", id)
	}
	if entry.job.Status.IsFinished() {
		s.mu.Unlock()
		return fmt.Errorf("job already finished: %s", id)
	}
	s.mu.Unlock()

	s.log.Info().Str("job_id", id).Msg("cancelling job")
	entry.cancel()
	return nil
}

func (s *JobService) Subscribe(id string) (<-chan domain.ProgressUpdate, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.jobs[id]
	if !ok {
		return nil, nil, fmt.Errorf("job not found: %s", id)
	}

	// Buffered so a slow consumer drops updates instead of stalling the
	// engine's output reader.
	ch := make(chan domain.ProgressUpdate, 16)
	if entry.job.Status.IsFinished() {
		close(ch)
		return ch, func() {}, nil
	}
	entry.subscribers[ch] = struct{}{}

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, live := entry.subscribers[ch]; live {
			delete(entry.subscribers, ch)
			close(ch)
		}
	}
	return ch, unsubscribe, nil
}

func (s *JobService) setStatus(entry *jobEntry, status domain.JobStatus) {
	s.mu.Lock()
	entry.job.Status = status
	s.mu.Unlock()
}

func (s *JobService) publish(entry *jobEntry, u domain.ProgressUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.job.Progress = u
	for ch := range entry.subscribers {
		select {
		case ch <- u:
		default:
		}
	}
}

func (s *JobService) snapshot(entry *jobEntry) *domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(entry)
}

// snapshotLocked copies the job record so callers never share the mutable
// state guarded by s.mu.
func (s *JobService) snapshotLocked(entry *jobEntry) *domain.Job {
	job := *entry.job
	if entry.job.Result != nil {
		result := *entry.job.Result
		job.Result = &result
	}
	return &job
}
