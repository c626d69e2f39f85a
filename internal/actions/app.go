package actions

import (
	"github.com/urfave/cli/v2"
)

// NewApp builds the toptracks command line application
func NewApp(r *Runner) *cli.App {
	return &cli.App{
		Name:  "toptracks",
		Usage: "Print your all-time favourite Spotify tracks using a pre-issued bearer token.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "token",
				Usage: "Spotify bearer token (defaults to $SPOTIFY_TOKEN)",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "client to use: webapi or sdk (defaults to $TOPTRACKS_BACKEND)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format: json or lines (defaults to $TOPTRACKS_OUTPUT)",
			},
		},
		Action: r.TopTracks,
		Commands: []*cli.Command{
			{
				Name:   "tracks",
				Usage:  "Print your top 5 long-term tracks as \"track by artists\"",
				Action: r.TopTracks,
			},
			{
				Name:   "recent",
				Usage:  "Print the last 5 tracks you played as \"track by artists\"",
				Action: r.RecentTracks,
			},
			{
				Name:   "artists",
				Usage:  "Print your top 5 long-term artists",
				Action: r.TopArtists,
			},
			{
				Name:   "me",
				Usage:  "Print who the token belongs to",
				Action: r.Whoami,
			},
		},
	}
}
