package domain

import (
	"strings"

	"github.com/pvictorr/SpotifyDownloader-API/internal/apperrors"
)

// ProviderURLPrefix is the only URL origin the orchestrator accepts. Anything
// else is rejected before a retrieval process is started.
const ProviderURLPrefix = "https://open.spotify.com/"

const (
	// DefaultThreads is used when the caller supplies no worker count (or a
	// non-positive one) for multi-item content.
	DefaultThreads = 4

	// MaxThreads caps the worker count passed to the retrieval engine. The
	// clamp is silent: it is a safety cap, not a user mistake.
	MaxThreads = 16
)

// ContentType is the granularity of the requested media.
type ContentType string

const (
	ContentTypeTrack    ContentType = "track"
	ContentTypePlaylist ContentType = "playlist"
	ContentTypeAlbum    ContentType = "album"

	// ContentTypeExit is the interactive menu's quit sentinel. It is never a
	// valid download target.
	ContentTypeExit ContentType = "exit"
)

// ParseContentType maps external input to the closed enumeration. It accepts
// both the words used by the programmatic entry point ("track") and the menu
// digits used by the console surface ("1".."4").
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "track":
		return ContentTypeTrack, nil
	case "2", "playlist":
		return ContentTypePlaylist, nil
	case "3", "album":
		return ContentTypeAlbum, nil
	case "4", "exit":
		return ContentTypeExit, nil
	default:
		return "", apperrors.NewValidationError("content_type", "must be one of track, playlist, album, exit")
	}
}

func (ct ContentType) String() string {
	return string(ct)
}

// IsMulti reports whether the content type refers to multi-item content, the
// only case in which a worker count is passed to the retrieval engine.
func (ct ContentType) IsMulti() bool {
	return ct == ContentTypePlaylist || ct == ContentTypeAlbum
}

// Capitalized returns the content type with an upper-cased first letter, as
// used in success messages ("Track downloaded successfully!").
func (ct ContentType) Capitalized() string {
	s := string(ct)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DownloadRequest describes a single retrieval invocation. It is immutable
// once constructed and discarded after the dispatcher consumes it.
type DownloadRequest struct {
	URL             string      `json:"url" binding:"required"`
	ContentType     ContentType `json:"content_type" binding:"required"`
	Threads         int         `json:"threads"`
	DestinationPath string      `json:"destination_path"`
}

// Validate rejects malformed requests before any external process is started.
func (r DownloadRequest) Validate() error {
	switch r.ContentType {
	case ContentTypeTrack, ContentTypePlaylist, ContentTypeAlbum:
	case ContentTypeExit:
		return apperrors.NewValidationError("content_type", "exit is not a downloadable content type")
	default:
		return apperrors.NewValidationError("content_type", "must be one of track, playlist, album")
	}

	if r.URL == "" {
		return apperrors.NewValidationError("url", "is required")
	}
	if !strings.HasPrefix(r.URL, ProviderURLPrefix) {
		return apperrors.NewValidationError("url", "must start with "+ProviderURLPrefix)
	}
	if r.DestinationPath == "" {
		return apperrors.NewValidationError("destination_path", "is required")
	}
	return nil
}

// ClampThreads normalizes a requested worker count: non-positive values fall
// back to DefaultThreads, values above MaxThreads are capped at MaxThreads.
func ClampThreads(n int) int {
	if n <= 0 {
		return DefaultThreads
	}
	if n > MaxThreads {
		return MaxThreads
	}
	return n
}

// DownloadResult is the uniform outcome record returned for every request.
// Exactly one of Message/Error is populated on completion.
type DownloadResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
