package webapi

import (
	"context"
	"fmt"
	"net/http"

	"toptracks/internal/optional"
	"toptracks/internal/track"
)

// Fixed endpoints. The time range and the count are not configurable.
const (
	TopTracksEndpoint   = "v1/me/top/tracks?time_range=long_term&limit=5"
	TopArtistsEndpoint  = "v1/me/top/artists?time_range=long_term&limit=5"
	CurrentUserEndpoint = "v1/me"

	RecentlyPlayedEndpoint = "v1/me/player/recently-played?limit=5"
)

// page is the response envelope of the top-items endpoints. Items is a
// pointer so that a missing or null field can be told apart from [].
type page[T any] struct {
	Items *[]T `json:"items"`
}

// playHistory is one entry of the recently-played envelope
type playHistory struct {
	Track track.Track `json:"track"`
}

// TopTracks returns the user's five long-term favourite tracks, or None
// when the response carries no items field.
func TopTracks(ctx context.Context, f *Fetcher) (optional.Option[[]track.Track], error) {
	p, err := FetchJSON[page[track.Track]](ctx, f, TopTracksEndpoint, http.MethodGet, nil)
	if err != nil {
		return optional.None[[]track.Track](), fmt.Errorf("get top tracks: %w", err)
	}
	return optional.FromPtr(p.Items), nil
}

// TopArtists returns the user's five long-term favourite artists
func TopArtists(ctx context.Context, f *Fetcher) (optional.Option[[]track.Artist], error) {
	p, err := FetchJSON[page[track.Artist]](ctx, f, TopArtistsEndpoint, http.MethodGet, nil)
	if err != nil {
		return optional.None[[]track.Artist](), fmt.Errorf("get top artists: %w", err)
	}
	return optional.FromPtr(p.Items), nil
}

// RecentTracks returns the last five tracks the user played, most recent
// first, or None when the response carries no items field.
func RecentTracks(ctx context.Context, f *Fetcher) (optional.Option[[]track.Track], error) {
	p, err := FetchJSON[page[playHistory]](ctx, f, RecentlyPlayedEndpoint, http.MethodGet, nil)
	if err != nil {
		return optional.None[[]track.Track](), fmt.Errorf("get recently played: %w", err)
	}
	return optional.Map(optional.FromPtr(p.Items), func(items []playHistory) []track.Track {
		tracks := make([]track.Track, len(items))
		for i, item := range items {
			tracks[i] = item.Track
		}
		return tracks
	}), nil
}

// CurrentUser returns the profile the token was issued for
func CurrentUser(ctx context.Context, f *Fetcher) (track.User, error) {
	u, err := FetchJSON[track.User](ctx, f, CurrentUserEndpoint, http.MethodGet, nil)
	if err != nil {
		return track.User{}, fmt.Errorf("get current user: %w", err)
	}
	return u, nil
}
