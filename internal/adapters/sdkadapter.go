package adapters

import (
	"context"
	"fmt"
	"strings"

	"toptracks/internal/optional"
	"toptracks/internal/track"
	"toptracks/internal/webapi"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

// topLimit is the fixed number of items requested from the top endpoints
const topLimit = 5

// SDKAdapter reads top lists through the zmb3/spotify client
type SDKAdapter struct {
	BaseAdapter
	client *spotify.Client
	logger *zap.Logger
}

// NewSDKAdapter creates a new SDKAdapter
func NewSDKAdapter(token string, settings Settings) (*SDKAdapter, error) {
	if token == "" {
		return nil, webapi.ErrMissingToken
	}

	var opts []spotify.ClientOption
	if settings.BaseURL != "" {
		opts = append(opts, spotify.WithBaseURL(sdkBaseURL(settings.BaseURL)))
	}

	return &SDKAdapter{
		BaseAdapter: NewBaseAdapter("Spotify SDK", token),
		client:      spotify.New(webapi.BearerClient(token, settings.Transport), opts...),
		logger:      settings.Logger,
	}, nil
}

// sdkBaseURL turns an API host into the versioned prefix the SDK expects
func sdkBaseURL(host string) string {
	host = strings.TrimSuffix(host, "/")
	if strings.HasSuffix(host, "/v1") {
		return host + "/"
	}
	return host + "/v1/"
}

// TopTracks retrieves the user's long-term top tracks
func (a *SDKAdapter) TopTracks(ctx context.Context) (optional.Option[[]track.Track], error) {
	if err := a.CheckAuth(); err != nil {
		return optional.None[[]track.Track](), err
	}

	page, err := a.client.CurrentUsersTopTracks(ctx,
		spotify.Timerange(spotify.LongTermRange),
		spotify.Limit(topLimit),
	)
	if err != nil {
		return optional.None[[]track.Track](), fmt.Errorf("get top tracks: %w", err)
	}

	a.logger.Debug("Fetched top tracks via SDK", zap.Int("count", len(page.Tracks)))

	// A nil slice means the items field was missing from the response
	if page.Tracks == nil {
		return optional.None[[]track.Track](), nil
	}

	tracks := make([]track.Track, len(page.Tracks))
	for i, t := range page.Tracks {
		tracks[i] = fromSimpleTrack(t.SimpleTrack)
	}

	return optional.Some(tracks), nil
}

// RecentTracks retrieves the user's last played tracks
func (a *SDKAdapter) RecentTracks(ctx context.Context) (optional.Option[[]track.Track], error) {
	if err := a.CheckAuth(); err != nil {
		return optional.None[[]track.Track](), err
	}

	items, err := a.client.PlayerRecentlyPlayedOpt(ctx, &spotify.RecentlyPlayedOptions{Limit: topLimit})
	if err != nil {
		return optional.None[[]track.Track](), fmt.Errorf("get recently played: %w", err)
	}

	a.logger.Debug("Fetched recently played via SDK", zap.Int("count", len(items)))

	if items == nil {
		return optional.None[[]track.Track](), nil
	}

	tracks := make([]track.Track, len(items))
	for i, item := range items {
		tracks[i] = fromSimpleTrack(item.Track)
	}

	return optional.Some(tracks), nil
}

func fromSimpleTrack(t spotify.SimpleTrack) track.Track {
	artists := make([]track.Artist, len(t.Artists))
	for i, artist := range t.Artists {
		artists[i] = track.Artist{Name: artist.Name}
	}
	return track.Track{Name: t.Name, Artists: artists}
}

// TopArtists retrieves the user's long-term top artists
func (a *SDKAdapter) TopArtists(ctx context.Context) (optional.Option[[]track.Artist], error) {
	if err := a.CheckAuth(); err != nil {
		return optional.None[[]track.Artist](), err
	}

	page, err := a.client.CurrentUsersTopArtists(ctx,
		spotify.Timerange(spotify.LongTermRange),
		spotify.Limit(topLimit),
	)
	if err != nil {
		return optional.None[[]track.Artist](), fmt.Errorf("get top artists: %w", err)
	}

	if page.Artists == nil {
		return optional.None[[]track.Artist](), nil
	}

	artists := make([]track.Artist, len(page.Artists))
	for i, artist := range page.Artists {
		artists[i] = track.Artist{Name: artist.Name}
	}

	return optional.Some(artists), nil
}

// CurrentUser retrieves the profile of the token owner
func (a *SDKAdapter) CurrentUser(ctx context.Context) (track.User, error) {
	if err := a.CheckAuth(); err != nil {
		return track.User{}, err
	}

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return track.User{}, fmt.Errorf("get current user: %w", err)
	}

	return track.User{ID: user.ID, DisplayName: user.DisplayName}, nil
}
