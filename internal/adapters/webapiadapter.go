package adapters

import (
	"context"

	"toptracks/internal/optional"
	"toptracks/internal/track"
	"toptracks/internal/webapi"
)

// WebAPIAdapter reads top lists with the plain JSON Fetcher
type WebAPIAdapter struct {
	BaseAdapter
	fetcher *webapi.Fetcher
}

// NewWebAPIAdapter creates a new WebAPIAdapter
func NewWebAPIAdapter(token string, settings Settings) (*WebAPIAdapter, error) {
	opts := []webapi.Option{webapi.WithLogger(settings.Logger)}
	if settings.BaseURL != "" {
		opts = append(opts, webapi.WithBaseURL(settings.BaseURL))
	}
	if settings.Transport != nil {
		opts = append(opts, webapi.WithTransport(settings.Transport))
	}

	fetcher, err := webapi.NewFetcher(token, opts...)
	if err != nil {
		return nil, err
	}

	return &WebAPIAdapter{
		BaseAdapter: NewBaseAdapter("Spotify Web API", token),
		fetcher:     fetcher,
	}, nil
}

// TopTracks retrieves the user's long-term top tracks
func (a *WebAPIAdapter) TopTracks(ctx context.Context) (optional.Option[[]track.Track], error) {
	if err := a.CheckAuth(); err != nil {
		return optional.None[[]track.Track](), err
	}
	return webapi.TopTracks(ctx, a.fetcher)
}

// TopArtists retrieves the user's long-term top artists
func (a *WebAPIAdapter) TopArtists(ctx context.Context) (optional.Option[[]track.Artist], error) {
	if err := a.CheckAuth(); err != nil {
		return optional.None[[]track.Artist](), err
	}
	return webapi.TopArtists(ctx, a.fetcher)
}

// RecentTracks retrieves the user's last played tracks
func (a *WebAPIAdapter) RecentTracks(ctx context.Context) (optional.Option[[]track.Track], error) {
	if err := a.CheckAuth(); err != nil {
		return optional.None[[]track.Track](), err
	}
	return webapi.RecentTracks(ctx, a.fetcher)
}

// CurrentUser retrieves the profile of the token owner
func (a *WebAPIAdapter) CurrentUser(ctx context.Context) (track.User, error) {
	if err := a.CheckAuth(); err != nil {
		return track.User{}, err
	}
	return webapi.CurrentUser(ctx, a.fetcher)
}
