package runner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotifyexp/internal/services"
	"github.com/desertthunder/spotifyexp/internal/shared"
	"github.com/desertthunder/spotifyexp/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// Dependencies left nil in [RunnerOpts] are built lazily by prepare, so that flag parsing
// and configuration errors happen before any network call.
type Runner struct {
	config     *shared.Config
	settings   *shared.Settings
	spotify    services.Spotify
	engine     *tasks.PlaybackEngine
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	loadConfig func() (*shared.Config, error)
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Settings   *shared.Settings
	Spotify    services.Spotify
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	LoadConfig func() (*shared.Config, error) // defaults to shared.LoadConfig
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = shared.LoadConfig
	}

	return &Runner{
		config:     opts.Config,
		settings:   opts.Settings,
		spotify:    opts.Spotify,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		loadConfig: opts.LoadConfig,
	}
}

// prepare applies the common flags and builds whatever the command needs.
//
// Settings come from the --settings file when it exists; an explicitly named file that is
// missing is an error. Credentials are read from the environment only when no client was injected.
func (r *Runner) prepare(cmd *cli.Command) error {
	if r.settings == nil {
		settings, err := r.readSettings(cmd)
		if err != nil {
			return err
		}
		r.settings = settings
	}

	level, err := r.settings.LogLevel()
	if err != nil {
		return err
	}
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)
	r.logger = shared.WithLogger(r.logger, "invocation", shared.GenerateID())

	if r.spotify == nil {
		if r.config == nil {
			config, err := r.loadConfig()
			if err != nil {
				return err
			}
			r.config = config
		}

		client, err := services.NewClient(services.ClientOpts{
			Config:            r.config,
			HTTPClient:        r.httpClient,
			BaseURL:           r.settings.API.BaseURL,
			AccountsURL:       r.settings.API.AccountsURL,
			Market:            r.settings.API.Market,
			Limit:             r.settings.API.Limit,
			RequestsPerSecond: r.settings.API.RequestsPerSecond,
			Logger:            r.logger,
		})
		if err != nil {
			return err
		}
		r.spotify = client
	}

	r.engine = tasks.NewPlaybackEngine(r.spotify, r.logger)
	return nil
}

func (r *Runner) readSettings(cmd *cli.Command) (*shared.Settings, error) {
	path := cmd.String("settings")
	if path == "" {
		path = shared.DefaultSettingsPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.IsSet("settings") {
			return shared.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("%w: settings file %s: %v", shared.ErrInvalidConfig, path, err)
	}

	settings, err := shared.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("loaded settings", "path", path)
	return settings, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}
