package adapters

import (
	"context"
	"fmt"
	"net/http"

	"toptracks/internal/optional"
	"toptracks/internal/track"

	"go.uber.org/zap"
)

// ApiAdapter defines the interface for reading a listener's top lists
// from Spotify through one of the available client backends
type ApiAdapter interface {
	// Authentication methods
	Authenticate() error
	IsAuthenticated() bool
	PlatformName() string

	// Top lists
	TopTracks(ctx context.Context) (optional.Option[[]track.Track], error)
	TopArtists(ctx context.Context) (optional.Option[[]track.Artist], error)

	// Listening history
	RecentTracks(ctx context.Context) (optional.Option[[]track.Track], error)

	// Profile
	CurrentUser(ctx context.Context) (track.User, error)
}

// BackendType represents the supported client backends
type BackendType string

const (
	WebAPIBackend BackendType = "webapi"
	SDKBackend    BackendType = "sdk"
)

// Settings carries the optional knobs shared by every backend
type Settings struct {
	BaseURL   string
	Transport http.RoundTripper
	Logger    *zap.Logger
}

// NewApiAdapter is a factory function that creates a new adapter for the specified backend
func NewApiAdapter(backend string, token string, settings Settings) (ApiAdapter, error) {
	if settings.Logger == nil {
		settings.Logger = zap.NewNop()
	}

	switch BackendType(backend) {
	case WebAPIBackend:
		return NewWebAPIAdapter(token, settings)
	case SDKBackend:
		return NewSDKAdapter(token, settings)
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}
