package spotdl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
)

// progressTracker derives coarse progress from spotdl's output lines. spotdl
// has no machine-readable progress stream, so this keys off the phrases it
// prints: "Found N songs", "Downloaded ...", "Skipping ...", "Converting ...".
// Discovery accounts for the first 10%, downloading for 10-95%.
type progressTracker struct {
	current     int
	total       int
	lastPercent int
	start       time.Time
}

func newProgressTracker() *progressTracker {
	return &progressTracker{start: time.Now()}
}

// Line consumes one output line and reports whether it produced an update.
func (t *progressTracker) Line(line string) (domain.ProgressUpdate, bool) {
	message := strings.TrimSpace(line)
	if message == "" {
		return domain.ProgressUpdate{}, false
	}

	switch {
	case (strings.Contains(message, "Found") && strings.Contains(message, "song")) ||
		strings.Contains(message, "Processing query"):
		if count, ok := extractNumber(message); ok {
			t.total = max(count, 1)
			t.lastPercent = 10
			return domain.ProgressUpdate{
				Percent:     10,
				Message:     fmt.Sprintf("Found %d song(s), starting download...", t.total),
				TotalTracks: t.total,
			}, true
		}

	case strings.Contains(message, "Downloaded"):
		return t.advance("Downloading...")

	case strings.Contains(message, "Skipping"):
		// Already present locally, still counts towards completion.
		return t.advance("Processing...")

	case strings.Contains(message, "Converting") || strings.Contains(message, "Processing"):
		return domain.ProgressUpdate{
			Percent:      max(t.lastPercent, 90),
			Message:      "Converting to MP3...",
			CurrentTrack: t.current,
			TotalTracks:  t.total,
			Speed:        t.speed(),
		}, true
	}

	return domain.ProgressUpdate{}, false
}

func (t *progressTracker) advance(message string) (domain.ProgressUpdate, bool) {
	t.current++

	downloaded := 50
	if t.total > 0 {
		downloaded = int(float64(t.current) / float64(t.total) * 85)
	}
	percent := min(10+downloaded, 95)

	if percent <= t.lastPercent {
		return domain.ProgressUpdate{}, false
	}
	t.lastPercent = percent

	return domain.ProgressUpdate{
		Percent:      percent,
		Message:      message,
		CurrentTrack: t.current,
		TotalTracks:  t.total,
		Speed:        t.speed(),
	}, true
}

// speed estimates throughput as songs/min, or seconds per song when slower
// than one per minute.
func (t *progressTracker) speed() string {
	elapsed := time.Since(t.start).Seconds()
	if t.current == 0 || elapsed <= 0 {
		return "calculating..."
	}

	songsPerMin := float64(t.current) / elapsed * 60
	if songsPerMin >= 1 {
		return fmt.Sprintf("%.1f songs/min", songsPerMin)
	}
	return fmt.Sprintf("%.0fs/song", elapsed/float64(t.current))
}

// extractNumber returns the first whitespace-separated integer in s.
func extractNumber(s string) (int, bool) {
	for _, word := range strings.Fields(s) {
		if n, err := strconv.Atoi(word); err == nil {
			return n, true
		}
	}
	return 0, false
}
