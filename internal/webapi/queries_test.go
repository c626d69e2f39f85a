package webapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toptracks/internal/track"
)

func TestTopTracks_Request(t *testing.T) {
	srv, captured := newServer(t, http.StatusOK, `{"items":[]}`)
	f := newTestFetcher(t, srv.URL)

	_, err := TopTracks(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/v1/me/top/tracks", captured.path)
	assert.Equal(t, "time_range=long_term&limit=5", captured.rawQuery)
	assert.Equal(t, "Bearer test-token", captured.auth)
	assert.Empty(t, captured.body)
}

func TestTopTracks_Items(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []track.Track
		present bool
	}{
		{
			name: "items present",
			body: `{"items":[
				{"name":"A","artists":[{"name":"X"}],"popularity":80},
				{"name":"B","artists":[{"name":"X"},{"name":"Y"}]}
			],"total":2}`,
			want: []track.Track{
				{Name: "A", Artists: []track.Artist{{Name: "X"}}},
				{Name: "B", Artists: []track.Artist{{Name: "X"}, {Name: "Y"}}},
			},
			present: true,
		},
		{
			name:    "empty items",
			body:    `{"items":[]}`,
			want:    []track.Track{},
			present: true,
		},
		{
			name:    "items missing",
			body:    `{"total":0}`,
			present: false,
		},
		{
			name:    "items null",
			body:    `{"items":null}`,
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, http.StatusOK, tt.body)
			f := newTestFetcher(t, srv.URL)

			got, err := TopTracks(context.Background(), f)
			require.NoError(t, err)

			items, ok := got.Get()
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.want, items)
			}
		})
	}
}

func TestTopTracks_PropagatesFailure(t *testing.T) {
	srv, _ := newServer(t, http.StatusForbidden, `{"error":{"status":403,"message":"Insufficient client scope"}}`)
	f := newTestFetcher(t, srv.URL)

	got, err := TopTracks(context.Background(), f)
	require.Error(t, err)
	assert.False(t, got.IsPresent())
	assert.Contains(t, err.Error(), "get top tracks")
	assert.Contains(t, err.Error(), "Insufficient client scope")
}

func TestTopArtists(t *testing.T) {
	srv, captured := newServer(t, http.StatusOK, `{"items":[{"name":"X","genres":["rock"]},{"name":"Y"}]}`)
	f := newTestFetcher(t, srv.URL)

	got, err := TopArtists(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "/v1/me/top/artists", captured.path)
	assert.Equal(t, "time_range=long_term&limit=5", captured.rawQuery)

	items, ok := got.Get()
	require.True(t, ok)
	assert.Equal(t, []track.Artist{{Name: "X"}, {Name: "Y"}}, items)
}

func TestCurrentUser(t *testing.T) {
	srv, captured := newServer(t, http.StatusOK, `{"id":"jane42","display_name":"Jane","country":"FR"}`)
	f := newTestFetcher(t, srv.URL)

	got, err := CurrentUser(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "/v1/me", captured.path)
	assert.Equal(t, track.User{ID: "jane42", DisplayName: "Jane"}, got)
}

func TestRecentTracks(t *testing.T) {
	srv, captured := newServer(t, http.StatusOK, `{"items":[
		{"track":{"name":"A","artists":[{"name":"X"}]},"played_at":"2024-05-01T10:00:00Z"},
		{"track":{"name":"B","artists":[{"name":"X"},{"name":"Y"}]},"played_at":"2024-05-01T09:56:00Z"}
	],"limit":5}`)
	f := newTestFetcher(t, srv.URL)

	got, err := RecentTracks(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/v1/me/player/recently-played", captured.path)
	assert.Equal(t, "limit=5", captured.rawQuery)
	assert.Equal(t, "Bearer test-token", captured.auth)

	items, ok := got.Get()
	require.True(t, ok)
	assert.Equal(t, []track.Track{
		{Name: "A", Artists: []track.Artist{{Name: "X"}}},
		{Name: "B", Artists: []track.Artist{{Name: "X"}, {Name: "Y"}}},
	}, items)
}

func TestRecentTracks_MissingItems(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"cursors":null}`)
	f := newTestFetcher(t, srv.URL)

	got, err := RecentTracks(context.Background(), f)
	require.NoError(t, err)
	assert.False(t, got.IsPresent())
}
