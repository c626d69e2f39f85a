package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"toptracks/internal/adapters"
	"toptracks/internal/config"
	"toptracks/internal/optional"
	"toptracks/internal/porter"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Runner holds what every command needs besides its flags
type Runner struct {
	Logger      *zap.Logger
	Stdout      io.Writer
	Interactive bool

	// Stderr receives the spinner; nil means os.Stderr
	Stderr io.Writer

	// Settings is passed to the adapter; tests point BaseURL at a fake API
	Settings adapters.Settings
}

// TopTracks prints the user's five long-term favourite tracks
func (r *Runner) TopTracks(c *cli.Context) error {
	return r.printList(c, "Fetching your top tracks...", (*porter.Porter).TopTracks)
}

// RecentTracks prints the last five tracks the user played
func (r *Runner) RecentTracks(c *cli.Context) error {
	return r.printList(c, "Fetching your recently played tracks...", (*porter.Porter).RecentTracks)
}

// TopArtists prints the user's five long-term favourite artists
func (r *Runner) TopArtists(c *cli.Context) error {
	return r.printList(c, "Fetching your top artists...", (*porter.Porter).TopArtists)
}

// Whoami prints who the bearer token belongs to
func (r *Runner) Whoami(c *cli.Context) error {
	p, _, err := r.newPorter(c)
	if err != nil {
		return err
	}

	var line string
	err = r.spin(c.Context, "Fetching your profile...", func(ctx context.Context) error {
		var err error
		line, err = p.Whoami(ctx)
		return err
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.Stdout, line)
	return err
}

func (r *Runner) printList(c *cli.Context, title string, fetch func(*porter.Porter, context.Context) (optional.Option[[]string], error)) error {
	p, cfg, err := r.newPorter(c)
	if err != nil {
		return err
	}

	var list optional.Option[[]string]
	err = r.spin(c.Context, title, func(ctx context.Context) error {
		var err error
		list, err = fetch(p, ctx)
		return err
	})
	if err != nil {
		return err
	}

	return PrintList(r.Stdout, cfg.Output, list)
}

// newPorter resolves the configuration (env, then flags, then the
// interactive backend picker) and returns an authenticated Porter
func (r *Runner) newPorter(c *cli.Context) (*porter.Porter, *config.Config, error) {
	cfg := config.FromEnv()
	if c.IsSet("token") {
		cfg.SpotifyToken = c.String("token")
	}
	if c.IsSet("backend") {
		cfg.Backend = strings.ToLower(c.String("backend"))
	}
	if c.IsSet("output") {
		cfg.Output = strings.ToLower(c.String("output"))
	}

	if cfg.Backend == "" && r.Interactive {
		err := huh.NewSelect[string]().
			Title("Choose the client to talk to Spotify with").
			Options(
				huh.NewOption("Web API (plain HTTP)", config.BackendWebAPI),
				huh.NewOption("zmb3/spotify SDK", config.BackendSDK),
			).
			Value(&cfg.Backend).
			Run()
		if err != nil {
			return nil, nil, fmt.Errorf("choose backend: %w", err)
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	settings := r.Settings
	settings.Logger = r.logger()

	p, err := porter.NewPorterWithToken(cfg.Backend, cfg.SpotifyToken, settings)
	if err != nil {
		return nil, nil, err
	}

	if err := p.Authenticate(); err != nil {
		return nil, nil, err
	}

	r.logger().Debug("Porter ready", zap.String("backend", cfg.Backend), zap.String("output", cfg.Output))

	return p, cfg, nil
}

// spin runs action behind a spinner on a terminal and directly otherwise
func (r *Runner) spin(ctx context.Context, title string, action func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !r.Interactive {
		return action(ctx)
	}
	return spinner.New().
		Title(title).
		Output(r.stderr()).
		Context(ctx).
		ActionWithErr(action).
		Run()
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
