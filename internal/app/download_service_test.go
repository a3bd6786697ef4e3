package app

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvictorr/SpotifyDownloader-API/internal/apperrors"
	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
	"github.com/pvictorr/SpotifyDownloader-API/internal/ports"
)

// -- Mock engine -------------------------------------------------------------

type mockEngine struct {
	mu        sync.Mutex
	calls     []domain.DownloadRequest
	verbose   []bool
	err       error
	onFetch   func(ctx context.Context, progress ports.ProgressFunc) error
	callCount int
}

func (m *mockEngine) Fetch(ctx context.Context, req domain.DownloadRequest, verbose bool, progress ports.ProgressFunc) error {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.verbose = append(m.verbose, verbose)
	m.callCount++
	m.mu.Unlock()

	if m.onFetch != nil {
		return m.onFetch(ctx, progress)
	}
	return m.err
}

func (m *mockEngine) lastCall(t *testing.T) domain.DownloadRequest {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.calls)
	return m.calls[len(m.calls)-1]
}

func newTestService(engine *mockEngine) *DownloadService {
	return NewDownloadService(engine, "/tmp/music", zerolog.Nop())
}

// assertExactlyOne checks the result record invariant: exactly one of
// message/error populated, never both, never neither.
func assertExactlyOne(t *testing.T, result domain.DownloadResult) {
	t.Helper()
	if result.Success {
		assert.NotEmpty(t, result.Message)
		assert.Empty(t, result.Error)
	} else {
		assert.Empty(t, result.Message)
		assert.NotEmpty(t, result.Error)
	}
}

// -- Tests -------------------------------------------------------------------

func TestDownload_TrackSuccess(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/track/abc123",
		ContentType:     domain.ContentTypeTrack,
		DestinationPath: "/tmp/music",
	}, false)

	require.True(t, result.Success)
	assert.Equal(t, "Track downloaded successfully!", result.Message)
	assert.Empty(t, result.Error)
	assertExactlyOne(t, result)
}

func TestDownload_PlaylistSuccessMessage(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/playlist/xyz",
		ContentType:     domain.ContentTypePlaylist,
		Threads:         4,
		DestinationPath: "/tmp/music",
	}, false)

	require.True(t, result.Success)
	assert.Equal(t, "Playlist downloaded successfully!", result.Message)
}

func TestDownload_ThreadsClampedToCeiling(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/playlist/xyz",
		ContentType:     domain.ContentTypePlaylist,
		Threads:         20,
		DestinationPath: "/tmp/music",
	}, false)

	require.True(t, result.Success)
	assert.Equal(t, 16, engine.lastCall(t).Threads)
	// The clamp is silent: nothing in the result mentions it.
	assert.NotContains(t, result.Message, "16")
}

func TestDownload_ThreadsDefaulted(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	for _, threads := range []int{0, -1} {
		svc.Download(context.Background(), domain.DownloadRequest{
			URL:             "https://open.spotify.com/album/xyz",
			ContentType:     domain.ContentTypeAlbum,
			Threads:         threads,
			DestinationPath: "/tmp/music",
		}, false)

		assert.Equal(t, domain.DefaultThreads, engine.lastCall(t).Threads, "threads %d", threads)
	}
}

func TestDownload_ThreadsInRangeUsedVerbatim(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	for _, threads := range []int{1, 8, 16} {
		svc.Download(context.Background(), domain.DownloadRequest{
			URL:             "https://open.spotify.com/playlist/xyz",
			ContentType:     domain.ContentTypePlaylist,
			Threads:         threads,
			DestinationPath: "/tmp/music",
		}, false)

		assert.Equal(t, threads, engine.lastCall(t).Threads, "threads %d", threads)
	}
}

func TestDownload_InvalidURLRejectedBeforeDispatch(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "not-a-url",
		ContentType:     domain.ContentTypeTrack,
		DestinationPath: "/tmp/music",
	}, false)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "url")
	assert.Zero(t, engine.callCount, "no subprocess may be launched for malformed input")
	assertExactlyOne(t, result)
}

func TestDownload_InvalidContentTypeRejectedBeforeDispatch(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/track/abc",
		ContentType:     "podcast",
		DestinationPath: "/tmp/music",
	}, false)

	require.False(t, result.Success)
	assert.Zero(t, engine.callCount)
	assertExactlyOne(t, result)
}

func TestDownload_EngineFailureCarriesDiagnostic(t *testing.T) {
	engine := &mockEngine{
		err: &apperrors.ExecutionError{ExitCode: 1, Stderr: "404 not found"},
	}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/track/abc123",
		ContentType:     domain.ContentTypeTrack,
		DestinationPath: "/tmp/music",
	}, false)

	require.False(t, result.Success)
	assert.Equal(t, "Download failed: 404 not found", result.Error)
	assert.Empty(t, result.Message)
	assertExactlyOne(t, result)
}

func TestDownload_EngineFailureWithoutStderr(t *testing.T) {
	engine := &mockEngine{
		err: &apperrors.ExecutionError{ExitCode: 2},
	}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/track/abc123",
		ContentType:     domain.ContentTypeTrack,
		DestinationPath: "/tmp/music",
	}, false)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Download failed: ")
	assert.Contains(t, result.Error, "status 2")
	assertExactlyOne(t, result)
}

func TestDownload_EnvironmentFailure(t *testing.T) {
	engine := &mockEngine{
		err: &apperrors.EnvironmentError{Op: "run spotdl", Err: assert.AnError},
	}
	svc := newTestService(engine)

	result := svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/track/abc123",
		ContentType:     domain.ContentTypeTrack,
		DestinationPath: "/tmp/music",
	}, false)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "run spotdl")
	assert.NotContains(t, result.Error, "Download failed:")
	assertExactlyOne(t, result)
}

func TestDownload_DefaultDestinationApplied(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	svc.Download(context.Background(), domain.DownloadRequest{
		URL:         "https://open.spotify.com/track/abc123",
		ContentType: domain.ContentTypeTrack,
	}, false)

	assert.Equal(t, "/tmp/music", engine.lastCall(t).DestinationPath)
}

func TestDownload_VerbosePassedThrough(t *testing.T) {
	engine := &mockEngine{}
	svc := newTestService(engine)

	svc.Download(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/track/abc123",
		ContentType:     domain.ContentTypeTrack,
		DestinationPath: "/tmp/music",
	}, true)

	require.Len(t, engine.verbose, 1)
	assert.True(t, engine.verbose[0])
}

func TestDownloadWithProgress_ForwardsUpdates(t *testing.T) {
	engine := &mockEngine{
		onFetch: func(_ context.Context, progress ports.ProgressFunc) error {
			progress(domain.ProgressUpdate{Percent: 10, Message: "Found 3 song(s), starting download..."})
			progress(domain.ProgressUpdate{Percent: 38, Message: "Downloading..."})
			return nil
		},
	}
	svc := newTestService(engine)

	var updates []domain.ProgressUpdate
	result := svc.DownloadWithProgress(context.Background(), domain.DownloadRequest{
		URL:             "https://open.spotify.com/playlist/xyz",
		ContentType:     domain.ContentTypePlaylist,
		Threads:         2,
		DestinationPath: "/tmp/music",
	}, func(u domain.ProgressUpdate) {
		updates = append(updates, u)
	})

	require.True(t, result.Success)
	require.Len(t, updates, 2)
	assert.Equal(t, 10, updates[0].Percent)
	assert.Equal(t, 38, updates[1].Percent)
	// Progress reporting requires captured output.
	assert.False(t, engine.verbose[0])
}
