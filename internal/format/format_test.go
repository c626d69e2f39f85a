package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"toptracks/internal/optional"
	"toptracks/internal/track"
)

func artists(names ...string) []track.Artist {
	out := make([]track.Artist, len(names))
	for i, n := range names {
		out[i] = track.Artist{Name: n}
	}
	return out
}

func TestTracks(t *testing.T) {
	tests := []struct {
		name    string
		input   optional.Option[[]track.Track]
		want    []string
		present bool
	}{
		{
			name:    "single artist",
			input:   optional.Some([]track.Track{{Name: "A", Artists: artists("X")}}),
			want:    []string{"A by X"},
			present: true,
		},
		{
			name:    "multiple artists are comma separated",
			input:   optional.Some([]track.Track{{Name: "B", Artists: artists("X", "Y")}}),
			want:    []string{"B by X, Y"},
			present: true,
		},
		{
			name: "order is preserved",
			input: optional.Some([]track.Track{
				{Name: "One", Artists: artists("P")},
				{Name: "Two", Artists: artists("Q", "R", "S")},
			}),
			want:    []string{"One by P", "Two by Q, R, S"},
			present: true,
		},
		{
			name:    "track without artists",
			input:   optional.Some([]track.Track{{Name: "Solo"}}),
			want:    []string{"Solo by "},
			present: true,
		},
		{
			name:    "empty list",
			input:   optional.Some([]track.Track{}),
			want:    []string{},
			present: true,
		},
		{
			name:    "absent list",
			input:   optional.None[[]track.Track](),
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Tracks(tt.input).Get()
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestArtists(t *testing.T) {
	got, ok := Artists(optional.Some(artists("X", "Y"))).Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"X", "Y"}, got)

	assert.False(t, Artists(optional.None[[]track.Artist]()).IsPresent())
}

func TestUser(t *testing.T) {
	assert.Equal(t, "Logged in as Jane (jane42)", User(track.User{ID: "jane42", DisplayName: "Jane"}))
	assert.Equal(t, "Logged in as jane42", User(track.User{ID: "jane42"}))
}
