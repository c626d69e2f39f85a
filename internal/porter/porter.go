package porter

import (
	"context"
	"fmt"

	"toptracks/internal/adapters"
	"toptracks/internal/format"
	"toptracks/internal/optional"
	"toptracks/internal/track"

	"go.uber.org/zap"
)

// Porter reads top lists through an adapter and turns them into
// display strings
type Porter struct {
	adapter adapters.ApiAdapter
	logger  *zap.Logger
}

// NewPorter creates a new Porter using the specified adapter
func NewPorter(adapter adapters.ApiAdapter, logger *zap.Logger) *Porter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Porter{
		adapter: adapter,
		logger:  logger,
	}
}

// NewPorterWithToken creates a Porter for the given backend and bearer token
func NewPorterWithToken(backend, token string, settings adapters.Settings) (*Porter, error) {
	adapter, err := adapters.NewApiAdapter(backend, token, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create adapter for backend %s: %w", backend, err)
	}
	return NewPorter(adapter, settings.Logger), nil
}

// Authenticate delegates authentication to the adapter
func (p *Porter) Authenticate() error {
	return p.adapter.Authenticate()
}

// IsAuthenticated checks if the service is authenticated
func (p *Porter) IsAuthenticated() bool {
	return p.adapter.IsAuthenticated()
}

// TopTracks returns "<track> by <artists>" lines, or None when the
// response had no items
func (p *Porter) TopTracks(ctx context.Context) (optional.Option[[]string], error) {
	tracks, err := p.adapter.TopTracks(ctx)
	if err != nil {
		return optional.None[[]string](), err
	}

	return p.formatTracks("top tracks", tracks), nil
}

// RecentTracks returns the last played tracks as "<track> by <artists>"
// lines, or None when the response had no items
func (p *Porter) RecentTracks(ctx context.Context) (optional.Option[[]string], error) {
	tracks, err := p.adapter.RecentTracks(ctx)
	if err != nil {
		return optional.None[[]string](), err
	}

	return p.formatTracks("recently played", tracks), nil
}

func (p *Porter) formatTracks(what string, tracks optional.Option[[]track.Track]) optional.Option[[]string] {
	lines := format.Tracks(tracks)
	if !lines.IsPresent() {
		p.logger.Warn("Response carried no items",
			zap.String("list", what),
			zap.String("backend", p.adapter.PlatformName()),
		)
	}
	p.logger.Debug("Formatted tracks", zap.String("list", what), zap.Int("count", len(lines.OrElse(nil))))

	return lines
}

// TopArtists returns the artist names, or None when the response had no items
func (p *Porter) TopArtists(ctx context.Context) (optional.Option[[]string], error) {
	artists, err := p.adapter.TopArtists(ctx)
	if err != nil {
		return optional.None[[]string](), err
	}

	names := format.Artists(artists)
	if !names.IsPresent() {
		p.logger.Warn("Top artists response carried no items", zap.String("backend", p.adapter.PlatformName()))
	}

	return names, nil
}

// Whoami returns the "Logged in as" line for the token owner
func (p *Porter) Whoami(ctx context.Context) (string, error) {
	user, err := p.adapter.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	return format.User(user), nil
}
