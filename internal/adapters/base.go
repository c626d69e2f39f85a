package adapters

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when an adapter is used before Authenticate
var ErrNotAuthenticated = errors.New("not authenticated")

// BaseAdapter provides common functionality for backend adapters
type BaseAdapter struct {
	authenticated bool
	platformName  string
	token         string
}

// NewBaseAdapter creates a new BaseAdapter
func NewBaseAdapter(platformName, token string) BaseAdapter {
	return BaseAdapter{
		authenticated: false,
		platformName:  platformName,
		token:         token,
	}
}

// Authenticate accepts the configured bearer token. Nothing is exchanged
// or refreshed; an empty token is the only thing rejected.
func (b *BaseAdapter) Authenticate() error {
	if b.token == "" {
		return fmt.Errorf("%w: no bearer token configured for %s", ErrNotAuthenticated, b.platformName)
	}
	b.authenticated = true
	return nil
}

// IsAuthenticated checks if the adapter is authenticated
func (b *BaseAdapter) IsAuthenticated() bool {
	return b.authenticated
}

// CheckAuth ensures the adapter is authenticated before making API calls
func (b *BaseAdapter) CheckAuth() error {
	if !b.IsAuthenticated() {
		return fmt.Errorf("%w, call Authenticate() first for %s", ErrNotAuthenticated, b.platformName)
	}
	return nil
}

// PlatformName returns the name of the backend
func (b *BaseAdapter) PlatformName() string {
	return b.platformName
}
