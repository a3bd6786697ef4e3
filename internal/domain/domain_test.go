package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		input string
		want  ContentType
	}{
		{"track", ContentTypeTrack},
		{"playlist", ContentTypePlaylist},
		{"album", ContentTypeAlbum},
		{"exit", ContentTypeExit},
		{"1", ContentTypeTrack},
		{"2", ContentTypePlaylist},
		{"3", ContentTypeAlbum},
		{"4", ContentTypeExit},
		{"  Track ", ContentTypeTrack},
		{"ALBUM", ContentTypeAlbum},
	}

	for _, tt := range tests {
		got, err := ParseContentType(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseContentType_Invalid(t *testing.T) {
	for _, input := range []string{"", "5", "podcast", "track playlist"} {
		_, err := ParseContentType(input)
		require.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), "content_type")
	}
}

func TestContentType_IsMulti(t *testing.T) {
	assert.False(t, ContentTypeTrack.IsMulti())
	assert.True(t, ContentTypePlaylist.IsMulti())
	assert.True(t, ContentTypeAlbum.IsMulti())
	assert.False(t, ContentTypeExit.IsMulti())
}

func TestContentType_Capitalized(t *testing.T) {
	assert.Equal(t, "Track", ContentTypeTrack.Capitalized())
	assert.Equal(t, "Playlist", ContentTypePlaylist.Capitalized())
	assert.Equal(t, "Album", ContentTypeAlbum.Capitalized())
}

func TestClampThreads(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, DefaultThreads},
		{0, DefaultThreads},
		{1, 1},
		{4, 4},
		{16, 16},
		{17, 16},
		{20, 16},
		{1000, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampThreads(tt.in), "input %d", tt.in)
	}
}

func TestDownloadRequest_Validate(t *testing.T) {
	valid := DownloadRequest{
		URL:             "https://open.spotify.com/track/abc123",
		ContentType:     ContentTypeTrack,
		Threads:         4,
		DestinationPath: "/tmp/music",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*DownloadRequest)
		wantMsg string
	}{
		{
			name:    "empty url",
			mutate:  func(r *DownloadRequest) { r.URL = "" },
			wantMsg: "url",
		},
		{
			name:    "wrong origin",
			mutate:  func(r *DownloadRequest) { r.URL = "not-a-url" },
			wantMsg: "https://open.spotify.com/",
		},
		{
			name:    "http origin",
			mutate:  func(r *DownloadRequest) { r.URL = "http://open.spotify.com/track/abc" },
			wantMsg: "https://open.spotify.com/",
		},
		{
			name:    "exit sentinel",
			mutate:  func(r *DownloadRequest) { r.ContentType = ContentTypeExit },
			wantMsg: "content_type",
		},
		{
			name:    "unknown content type",
			mutate:  func(r *DownloadRequest) { r.ContentType = "podcast" },
			wantMsg: "content_type",
		},
		{
			name:    "missing destination",
			mutate:  func(r *DownloadRequest) { r.DestinationPath = "" },
			wantMsg: "destination_path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
