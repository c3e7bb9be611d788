package runner

import (
	"github.com/desertthunder/spotifyexp/internal/shared"
	"github.com/urfave/cli/v3"
)

// Version is reported by every binary.
const Version = "0.1.0"

// commonFlags returns a fresh set of the flags every command accepts.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "settings",
			Aliases: []string{"s"},
			Usage:   "Path to settings file",
			Value:   shared.DefaultSettingsPath,
			Sources: cli.EnvVars("SPOTIFYEXP_SETTINGS"),
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
}

func withCommon(flags ...cli.Flag) []cli.Flag {
	return append(flags, commonFlags()...)
}

func deviceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "device-id",
		Aliases: []string{"d"},
		Usage:   "Target device ID (defaults to the active device)",
		Sources: cli.EnvVars("SPOTIFY_DEVICE_ID"),
	}
}

func urisFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:     "uri",
		Aliases:  []string{"u"},
		Usage:    "Spotify track URI (repeatable)",
		Required: true,
	}
}

func SearchAlbumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "search-albums",
		Usage:   "Search the catalog for albums",
		Version: Version,
		Flags: withCommon(&cli.StringFlag{
			Name:     "query",
			Aliases:  []string{"q"},
			Usage:    "Search query",
			Required: true,
		}),
		Action: r.SearchAlbums,
	}
}

func SearchArtistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "search-artists",
		Usage:   "Search the catalog for artists",
		Version: Version,
		Flags: withCommon(&cli.StringFlag{
			Name:     "query",
			Aliases:  []string{"q"},
			Usage:    "Search query",
			Required: true,
		}),
		Action: r.SearchArtists,
	}
}

func AlbumTracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "album-tracks",
		Usage:   "List the tracks of an album",
		Version: Version,
		Flags: withCommon(&cli.StringFlag{
			Name:     "album-id",
			Aliases:  []string{"a"},
			Usage:    "Spotify album ID",
			Required: true,
		}),
		Action: r.AlbumTracks,
	}
}

func ListDevicesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list-devices",
		Usage:   "List available Spotify Connect devices",
		Version: Version,
		Flags:   withCommon(),
		Action:  r.ListDevices,
	}
}

func ShowCurrentTrackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "show-current-track",
		Usage:   "Show the currently playing track",
		Version: Version,
		Flags:   withCommon(),
		Action:  r.ShowCurrentTrack,
	}
}

func PlayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "play",
		Usage:   "Start playback of track URIs, replacing the current queue context",
		Version: Version,
		Flags:   withCommon(deviceFlag(), urisFlag()),
		Action:  r.Play,
	}
}

func PlaybackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playback",
		Usage:   "Queue track URIs and play the first of them",
		Version: Version,
		Flags:   withCommon(deviceFlag(), urisFlag()),
		Action:  r.Playback,
	}
}

func PlaybackPlaylistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playback-playlist",
		Usage:   "Play an album or playlist context URI",
		Version: Version,
		Flags: withCommon(deviceFlag(), &cli.StringFlag{
			Name:     "uri",
			Aliases:  []string{"u"},
			Usage:    "Spotify album or playlist URI",
			Required: true,
		}),
		Action: r.PlaybackPlaylist,
	}
}

func PauseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "pause",
		Usage:   "Pause playback",
		Version: Version,
		Flags:   withCommon(deviceFlag()),
		Action:  r.Pause,
	}
}

func GetPlaylistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "get-playlists",
		Usage:   "List your playlists",
		Version: Version,
		Flags:   withCommon(),
		Action:  r.GetPlaylists,
	}
}

func RefreshTokenCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:        "refresh-token",
		Usage:       "Exchange the refresh token for a new access token",
		Description: "Prints shell assignments; use eval \"$(refresh-token)\" to update the environment.",
		Version:     Version,
		Flags:       withCommon(),
		Action:      r.RefreshToken,
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Write an example settings file",
		Flags:  withCommon(),
		Action: r.Setup,
	}
}

// Commands returns every action as a subcommand of the umbrella binary.
func (r *Runner) Commands() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		SearchAlbumsCommand, SearchArtistsCommand, AlbumTracksCommand, ListDevicesCommand,
		ShowCurrentTrackCommand, PlayCommand, PlaybackCommand, PlaybackPlaylistCommand,
		PauseCommand, GetPlaylistsCommand, RefreshTokenCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// App returns the umbrella command registering every action.
func App(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "spotifyexp",
		Usage:    "Spotify Web API from the command line",
		Version:  Version,
		Commands: r.Commands(),
	}
}
