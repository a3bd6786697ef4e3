package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/pvictorr/SpotifyDownloader-API/internal/apperrors"
	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
	"github.com/pvictorr/SpotifyDownloader-API/internal/ports"
)

// DownloadService implements ports.DownloadService: it validates requests,
// dispatches them to the retrieval engine and folds every outcome into a
// uniform DownloadResult. One blocking engine invocation per call, no
// automatic retry.
type DownloadService struct {
	engine      ports.RetrievalEngine
	defaultPath string
	log         zerolog.Logger
}

// NewDownloadService creates a download service backed by the given engine.
// defaultPath is used when a request carries no destination of its own.
func NewDownloadService(engine ports.RetrievalEngine, defaultPath string, logger zerolog.Logger) *DownloadService {
	return &DownloadService{
		engine:      engine,
		defaultPath: defaultPath,
		log:         logger,
	}
}

func (s *DownloadService) Download(ctx context.Context, req domain.DownloadRequest, verbose bool) domain.DownloadResult {
	return s.download(ctx, req, verbose, nil)
}

func (s *DownloadService) DownloadWithProgress(ctx context.Context, req domain.DownloadRequest, progress ports.ProgressFunc) domain.DownloadResult {
	return s.download(ctx, req, false, progress)
}

func (s *DownloadService) download(ctx context.Context, req domain.DownloadRequest, verbose bool, progress ports.ProgressFunc) domain.DownloadResult {
	req = s.Normalize(req)

	if err := req.Validate(); err != nil {
		s.log.Warn().Err(err).Str("url", req.URL).Msg("rejected download request")
		return domain.DownloadResult{Success: false, Error: err.Error()}
	}

	s.log.Info().
		Str("content_type", req.ContentType.String()).
		Str("url", req.URL).
		Int("threads", req.Threads).
		Str("destination", req.DestinationPath).
		Msg("dispatching download")

	err := s.engine.Fetch(ctx, req, verbose, progress)
	return s.classify(req, err)
}

// Normalize fills in the default destination and clamps the worker count.
// The clamp is deliberately silent: an out-of-range count is capped, not
// reported as an error.
func (s *DownloadService) Normalize(req domain.DownloadRequest) domain.DownloadRequest {
	if req.DestinationPath == "" {
		req.DestinationPath = s.defaultPath
	}
	if req.ContentType.IsMulti() {
		clamped := domain.ClampThreads(req.Threads)
		if clamped != req.Threads {
			s.log.Debug().Int("requested", req.Threads).Int("effective", clamped).Msg("worker count adjusted")
		}
		req.Threads = clamped
	}
	return req
}

// classify turns the engine's outcome into the uniform result record.
// Exactly one of Message/Error is populated.
func (s *DownloadService) classify(req domain.DownloadRequest, err error) domain.DownloadResult {
	if err == nil {
		msg := req.ContentType.Capitalized() + " downloaded successfully!"
		s.log.Info().Str("url", req.URL).Msg("download complete")
		return domain.DownloadResult{Success: true, Message: msg}
	}

	var execErr *apperrors.ExecutionError
	if errors.As(err, &execErr) {
		s.log.Error().Int("exit_code", execErr.ExitCode).Str("url", req.URL).Msg("download failed")
		return domain.DownloadResult{Success: false, Error: "Download failed: " + execErr.Diagnostic()}
	}

	// Environment failures (tool missing, destination unusable) and anything
	// else surface as their plain description.
	s.log.Error().Err(err).Str("url", req.URL).Msg("download could not be run")
	return domain.DownloadResult{Success: false, Error: err.Error()}
}
