// Package format turns top-list results into display strings.
package format

import (
	"strings"

	"toptracks/internal/optional"
	"toptracks/internal/track"
)

// Track renders "<name> by <artist1>, <artist2>"
func Track(t track.Track) string {
	return t.Name + " by " + strings.Join(t.ArtistNames(), ", ")
}

// Tracks formats every track in order. An absent list stays absent.
func Tracks(tracks optional.Option[[]track.Track]) optional.Option[[]string] {
	return optional.Map(tracks, func(ts []track.Track) []string {
		lines := make([]string, len(ts))
		for i, t := range ts {
			lines[i] = Track(t)
		}
		return lines
	})
}

// Artists returns the artist names in order. An absent list stays absent.
func Artists(artists optional.Option[[]track.Artist]) optional.Option[[]string] {
	return optional.Map(artists, func(as []track.Artist) []string {
		names := make([]string, len(as))
		for i, a := range as {
			names[i] = a.Name
		}
		return names
	})
}

// User renders the "logged in as" line for u
func User(u track.User) string {
	if u.DisplayName == "" || u.DisplayName == u.ID {
		return "Logged in as " + u.Label()
	}
	return "Logged in as " + u.DisplayName + " (" + u.ID + ")"
}
