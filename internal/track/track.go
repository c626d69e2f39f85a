package track

// Artist is a performer credited on a track
type Artist struct {
	Name string `json:"name"`
}

// Track represents a single top track; only the name and the credited
// artists are read from the API response
type Track struct {
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

// User is the account the bearer token belongs to
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ArtistNames returns the names of the credited artists in order
func (t Track) ArtistNames() []string {
	names := make([]string, len(t.Artists))
	for i, artist := range t.Artists {
		names[i] = artist.Name
	}
	return names
}

// Label returns the display name of the user, falling back to the ID
func (u User) Label() string {
	if u.DisplayName == "" {
		return u.ID
	}
	return u.DisplayName
}
